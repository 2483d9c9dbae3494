package area

import "github.com/go-gl/mathgl/mgl32"

// Camera is a view that can be centred on a position.
type Camera interface {
	Center(pos mgl32.Vec3)
}

// Context is passed through every update and handler call. It carries the state
// collaborators need to find without globals: the active area, the hero and the
// camera following it.
type Context struct {
	Area   *Area
	Hero   Entity
	Camera Camera
	Tick   uint64
}

// IsHero returns true if the GUID passed belongs to the context's hero.
func (ctx *Context) IsHero(guid uint64) bool {
	return ctx != nil && ctx.Hero != nil && ctx.Hero.GUID() == guid
}
