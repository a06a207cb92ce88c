package material

// Surface describes how a primitive interacts with light.
// The set of surfaces is closed: Light and Bounce are the only variants.
type Surface interface {
	isSurface()
}

func (Light) isSurface()  {}
func (Bounce) isSurface() {}
