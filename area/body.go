package area

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/platsim/bbox"
)

// Body is the spatial state of one entity inside an area. Bodies are owned by their
// area; everything outside the area refers to them through their entity.
type Body struct {
	entity Entity

	box     bbox.BBox
	prevBox bbox.BBox

	// accel and velocity live in the (y, z) plane.
	accel    mgl32.Vec2
	velocity mgl32.Vec2

	orientation float32
	falling     bool
	layer       int

	// arrivedVia is the exit the body warped in through. It is ignored until the
	// body is seen off every exit tile.
	arrivedVia string
}

func newBody(e Entity) *Body {
	return &Body{entity: e, box: bbox.Default(), prevBox: bbox.Default()}
}

func (b *Body) Entity() Entity       { return b.entity }
func (b *Body) BBox() bbox.BBox      { return b.box }
func (b *Body) PrevBBox() bbox.BBox  { return b.prevBox }
func (b *Body) Accel() mgl32.Vec2    { return b.accel }
func (b *Body) Velocity() mgl32.Vec2 { return b.velocity }
func (b *Body) Orientation() float32 { return b.orientation }
func (b *Body) Falling() bool        { return b.falling }
func (b *Body) Layer() int           { return b.layer }
func (b *Body) Position() mgl32.Vec3 { return b.box.Origin() }

// Pushable reports whether other bodies may push this one.
func (b *Body) Pushable() bool {
	if p, ok := b.entity.(Pushable); ok {
		return p.Pushable()
	}
	return true
}

func (b *Body) hasGravity() bool {
	if g, ok := b.entity.(Gravitational); ok {
		return g.Gravity()
	}
	return true
}

func (b *Body) setBBox(box bbox.BBox) {
	b.prevBox = b.box
	b.box = box
}
