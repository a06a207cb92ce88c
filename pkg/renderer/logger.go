package renderer

import (
	"strings"

	"github.com/golang/glog"

	"github.com/df07/go-bounce-raytracer/pkg/core"
)

// GlogLogger implements core.Logger on top of glog
type GlogLogger struct {
	verbosity glog.Level
}

// NewGlogLogger creates a logger that writes at the given glog verbosity.
// Level 0 messages are always logged; higher levels need -v.
func NewGlogLogger(verbosity glog.Level) core.Logger {
	return &GlogLogger{verbosity: verbosity}
}

func (l *GlogLogger) Printf(format string, args ...interface{}) {
	glog.V(l.verbosity).Infof(strings.TrimSuffix(format, "\n"), args...)
}
