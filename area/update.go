package area

import "github.com/go-gl/mathgl/mgl32"

// Update advances the area by dt milliseconds. Sound timers are aged, forces are
// integrated into movement for every body, then every Ticker entity runs. Warps
// triggered during the update are applied once it has finished.
func (a *Area) Update(ctx *Context, dt float32) {
	if ctx == nil {
		ctx = &Context{Area: a}
	}
	a.tick++
	a.time += dt
	a.advanceSounds(dt)

	a.inUpdate = true
	bodies := a.Bodies()
	for _, b := range bodies {
		if a.owns(b) {
			a.integrate(ctx, b, dt)
		}
	}
	for _, b := range bodies {
		if t, ok := b.entity.(Ticker); ok && a.owns(b) {
			t.Tick(ctx, a, dt)
		}
	}
	a.inUpdate = false

	a.flushWarps(ctx)
}

// integrate applies one integration step to a body. An airborne body that is still
// being pushed upwards is slowed down, gravity is added, and the resulting velocity
// is applied as a horizontal move followed by a vertical one. The vertical result
// decides whether the body is falling.
func (a *Area) integrate(ctx *Context, b *Body, dt float32) {
	t := dt / a.cfg.TimeScale

	acc := b.accel
	if acc[1] < 0 && !a.Grounded(b) {
		acc[1] = min(acc[1]+a.cfg.AirDrag, 0)
	}
	vel := acc.Mul(t)
	if b.hasGravity() {
		vel[1] += a.cfg.Gravity * t
	}
	b.accel = acc
	b.velocity = vel

	opts := DefaultMove
	opts.Context = ctx
	if vel[0] != 0 {
		a.Move(b, mgl32.Vec3{0, vel[0], 0}, opts)
	}
	if vel[1] != 0 && a.owns(b) {
		b.falling = a.Move(b, mgl32.Vec3{0, 0, vel[1]}, opts) == MoveOK
	}
}
