package area

import "github.com/go-gl/mathgl/mgl32"

// Entity is anything that can own a body inside an area. The GUID must be unique
// across every area of a world.
type Entity interface {
	GUID() uint64
}

// Pushable is implemented by entities that may refuse to be pushed by other bodies.
// Entities that do not implement it are pushable.
type Pushable interface {
	Pushable() bool
}

// Gravitational is implemented by entities that may opt out of gravity, such as
// lifts and floating platforms. Entities that do not implement it fall.
type Gravitational interface {
	Gravity() bool
}

// Usable is implemented by entities that react to being used by another entity
// standing next to them.
type Usable interface {
	Use(ctx *Context, user Entity)
}

// Ticker is implemented by entities that run a behaviour once per area update, after
// physics has been applied to every body.
type Ticker interface {
	Tick(ctx *Context, a *Area, dt float32)
}

// Sizer is implemented by entities that know the size (depth, width, height) of
// their own body. It is used when placing entities from level data.
type Sizer interface {
	Size() mgl32.Vec3
}
