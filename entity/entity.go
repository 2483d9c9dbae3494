package entity

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/platsim/area"
)

// Behaviour is run once per area update for the thing that owns it, after physics.
type Behaviour func(t *Thing, ctx *area.Context, a *area.Area, dt float32)

// UseFunc is called when another entity uses the thing.
type UseFunc func(t *Thing, ctx *area.Context, user area.Entity)

// Config describes a thing. The zero value is a pushable, falling 1x1x1 thing with no
// behaviour.
type Config struct {
	// Name is a human readable name, used in logs and level files.
	Name string
	// Size is the size (depth, width, height) of the thing's body.
	Size mgl32.Vec3
	// Fixed things cannot be pushed by other bodies.
	Fixed bool
	// Floating things are not affected by gravity.
	Floating bool
	// Behaviour is run every update.
	Behaviour Behaviour
	// Use is called when another entity uses the thing.
	Use UseFunc
}

// Thing is a generic game object. What it does is decided by the behaviour and use
// functions it was created with rather than by its type.
type Thing struct {
	guid uint64
	// name is the name of the thing.
	name string
	// size is the size of the thing's body.
	size mgl32.Vec3
	// fixed is true if the thing cannot be pushed.
	fixed bool
	// floating is true if gravity does not apply to the thing.
	floating  bool
	behaviour Behaviour
	use       UseFunc
}

// New creates a thing with the GUID passed.
func (c Config) New(guid uint64) *Thing {
	size := c.Size
	if size == (mgl32.Vec3{}) {
		size = mgl32.Vec3{1, 1, 1}
	}
	return &Thing{
		guid:      guid,
		name:      c.Name,
		size:      size,
		fixed:     c.Fixed,
		floating:  c.Floating,
		behaviour: c.Behaviour,
		use:       c.Use,
	}
}

func (t *Thing) GUID() uint64     { return t.guid }
func (t *Thing) Name() string     { return t.name }
func (t *Thing) Size() mgl32.Vec3 { return t.size }
func (t *Thing) Pushable() bool   { return !t.fixed }
func (t *Thing) Gravity() bool    { return !t.floating }

// Tick runs the thing's behaviour, if it has one.
func (t *Thing) Tick(ctx *area.Context, a *area.Area, dt float32) {
	if t.behaviour != nil {
		t.behaviour(t, ctx, a, dt)
	}
}

// Use runs the thing's use function, if it has one.
func (t *Thing) Use(ctx *area.Context, user area.Entity) {
	if t.use != nil {
		t.use(t, ctx, user)
	}
}

type patrolState struct {
	walked float32
	dir    float32
}

// Patrol returns a behaviour that walks a body back and forth along y, turning around
// whenever it is blocked or has covered distance units. Every thing running the
// behaviour keeps its own progress, so one Config may build many patrolling things.
func Patrol(distance, speed float32) Behaviour {
	states := make(map[uint64]*patrolState)
	return func(t *Thing, ctx *area.Context, a *area.Area, dt float32) {
		b, ok := a.Body(t)
		if !ok {
			return
		}
		s, ok := states[t.GUID()]
		if !ok {
			s = &patrolState{dir: 1}
			states[t.GUID()] = s
		}
		step := speed * dt / a.Config().TimeScale
		opts := area.DefaultMove
		opts.Context = ctx
		if s.walked+step > distance || !a.MovePosition(b, mgl32.Vec3{0, s.dir * step, 0}, opts) {
			s.dir, s.walked = -s.dir, 0
			return
		}
		s.walked += step
	}
}
