package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string // Name used on the command line
	Description string // One line description
	Animated    bool   // Whether the scene changes with the frame number
}

type builder func(frame, frames int) *Scene

type registration struct {
	info  SceneInfo
	build builder
}

var builtinScenes = map[string]registration{
	"default": {
		info:  SceneInfo{Name: "default", Description: "Two mirror spheres lit by a blue light surrounding the camera"},
		build: func(int, int) *Scene { return NewDefaultScene() },
	},
	"mirror-floor": {
		info:  SceneInfo{Name: "mirror-floor", Description: "Mirror spheres on a reflective floor under a glowing ceiling"},
		build: func(int, int) *Scene { return NewMirrorFloorScene() },
	},
	"orbit": {
		info:  SceneInfo{Name: "orbit", Description: "A mirror sphere orbiting a light, one orbit per animation", Animated: true},
		build: NewOrbitScene,
	},
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, reg := range builtinScenes {
		scenes = append(scenes, reg.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// New builds the named scene for the given frame of an animation of frames
// frames. Static scenes ignore both numbers.
func New(name string, frame, frames int) (*Scene, error) {
	reg, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return reg.build(frame, frames), nil
}

// Builder returns a function producing the named scene for each frame
func Builder(name string, frames int) (func(frame int) *Scene, error) {
	reg, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return func(frame int) *Scene {
		return reg.build(frame, frames)
	}, nil
}
