package bbox

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/platsim/assert"
	"github.com/oomph-ac/platsim/geometry"
)

// BBox is an axis-aligned box positioned by its near-left-bottom corner. X is depth,
// Y is horizontal and Z is vertical growing downward, so the box spans
// [z-height, z] on the vertical axis.
type BBox struct {
	origin mgl32.Vec3
	size   mgl32.Vec3
}

// New returns a box with the origin and size (depth, width, height) passed. It panics
// if any size component is negative.
func New(origin, size mgl32.Vec3) BBox {
	assert.IsTrue(size[0] >= 0 && size[1] >= 0 && size[2] >= 0, "bbox size must not be negative: %v", size)
	return BBox{origin: origin, size: size}
}

// Box returns a box from its six scalar components.
func Box(x, y, z, depth, width, height float32) BBox {
	return New(mgl32.Vec3{x, y, z}, mgl32.Vec3{depth, width, height})
}

// Default is the box given to newly created bodies.
func Default() BBox {
	return Box(0, 0, 0, 1, 1, 1)
}

func (b BBox) Origin() mgl32.Vec3 { return b.origin }
func (b BBox) Size() mgl32.Vec3   { return b.size }
func (b BBox) X() float32         { return b.origin[0] }
func (b BBox) Y() float32         { return b.origin[1] }
func (b BBox) Z() float32         { return b.origin[2] }
func (b BBox) Depth() float32     { return b.size[0] }
func (b BBox) Width() float32     { return b.size[1] }
func (b BBox) Height() float32    { return b.size[2] }

// Bottom returns the vertical coordinate of the box's floor.
func (b BBox) Bottom() float32 {
	return b.origin[2]
}

// Top returns the vertical coordinate of the box's ceiling.
func (b BBox) Top() float32 {
	return b.origin[2] - b.size[2]
}

// Center returns the centre of the box.
func (b BBox) Center() mgl32.Vec3 {
	return mgl32.Vec3{b.origin[0] + b.size[0]/2, b.origin[1] + b.size[1]/2, b.origin[2] - b.size[2]/2}
}

// BottomCenter returns the centre of the box's floor.
func (b BBox) BottomCenter() mgl32.Vec3 {
	return mgl32.Vec3{b.origin[0] + b.size[0]/2, b.origin[1] + b.size[1]/2, b.origin[2]}
}

// TopCenter returns the centre of the box's ceiling.
func (b BBox) TopCenter() mgl32.Vec3 {
	return mgl32.Vec3{b.origin[0] + b.size[0]/2, b.origin[1] + b.size[1]/2, b.Top()}
}

// Move returns the box translated by the vector passed.
func (b BBox) Move(delta mgl32.Vec3) BBox {
	b.origin = b.origin.Add(delta)
	return b
}

// MoveXYZ returns the box translated by the offsets passed.
func (b BBox) MoveXYZ(dx, dy, dz float32) BBox {
	return b.Move(mgl32.Vec3{dx, dy, dz})
}

// Inflate grows the box by the amounts passed on each axis, keeping its centre fixed.
// Negative amounts shrink it; a size never drops below zero.
func (b BBox) Inflate(dx, dy, dz float32) BBox {
	c := b.Center()
	size := mgl32.Vec3{max(b.size[0]+dx, 0), max(b.size[1]+dy, 0), max(b.size[2]+dz, 0)}
	return BBox{
		origin: mgl32.Vec3{c[0] - size[0]/2, c[1] - size[1]/2, c[2] + size[2]/2},
		size:   size,
	}
}

// WithOrigin returns a box of the same size placed at the origin passed.
func (b BBox) WithOrigin(origin mgl32.Vec3) BBox {
	b.origin = origin
	return b
}

// Cube converts the box into a float32-cube box, with min and max corners.
func (b BBox) Cube() cube.BBox {
	return cube.Box(b.origin[0], b.origin[1], b.Top(), b.origin[0]+b.size[0], b.origin[1]+b.size[1], b.origin[2])
}

// Rect projects the box onto the level plane used by static geometry. The depth axis
// is dropped.
func (b BBox) Rect() geometry.Rect {
	return geometry.Rect{X: b.origin[1], Y: b.Top(), W: b.size[1], H: b.size[2]}
}

// Intersects returns true if the two boxes overlap on every axis. Boxes that only
// touch do not intersect.
func (b BBox) Intersects(o BBox) bool {
	return b.Cube().IntersectsWith(o.Cube())
}

// CollideAll returns the indices of every box in boxes that intersects b.
func (b BBox) CollideAll(boxes []BBox) []int {
	var hits []int
	c := b.Cube()
	for i, o := range boxes {
		if c.IntersectsWith(o.Cube()) {
			hits = append(hits, i)
		}
	}
	return hits
}
