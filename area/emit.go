package area

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/platsim/event"
	"github.com/oomph-ac/platsim/game"
	"github.com/oomph-ac/platsim/geometry"
)

// activeSound tracks an emitted identifier until its time to live runs out.
type activeSound struct {
	id    string
	timer float32
	ttl   float32
}

func (s *activeSound) done() bool {
	return s.timer >= s.ttl
}

// EmitSound asks audio collaborators to play a sound using the default time to live.
// It returns false if the same sound is still active and nothing was emitted.
func (a *Area) EmitSound(ctx *Context, id string, pos mgl32.Vec3) bool {
	return a.EmitSoundTTL(ctx, id, pos, a.cfg.SoundTTL)
}

// EmitSoundTTL asks audio collaborators to play a sound. Emitting the same sound
// again is ignored until ttl milliseconds of area time have passed.
func (a *Area) EmitSoundTTL(ctx *Context, id string, pos mgl32.Vec3, ttl float32) bool {
	if active(a.sounds, id) {
		return false
	}
	a.sounds = append(a.sounds, &activeSound{id: id, ttl: ttl})

	ev := event.Sound{Area: a.guid, Sound: id, Position: pos}
	ev.EvTime = a.tick
	for _, h := range a.handlers {
		h.HandleSound(ctx, ev)
	}
	return true
}

// EmitText adds a line to the area's message log and notifies handlers. The same
// line is ignored while it is still active, like sounds.
func (a *Area) EmitText(ctx *Context, text string) bool {
	if active(a.texts, text) {
		return false
	}
	a.texts = append(a.texts, &activeSound{id: text, ttl: a.cfg.SoundTTL})
	a.messages.Append(text)

	ev := event.Text{Area: a.guid, Text: text}
	ev.EvTime = a.tick
	for _, h := range a.handlers {
		h.HandleText(ctx, ev)
	}
	return true
}

// Messages returns the message log, oldest first.
func (a *Area) Messages() []string {
	return a.messages.Slice()
}

// walkSound emits the sound of the surface a body is standing on.
func (a *Area) walkSound(ctx *Context, b *Body) {
	if a.surfaces.Len() == 0 {
		return
	}
	probe := geometry.Rect{X: b.box.Y(), Y: b.box.Bottom(), W: b.box.Width(), H: game.GroundProbe}
	hits := a.surfaces.Query(probe)
	if len(hits) == 0 {
		return
	}
	if id, ok := hits[0].Value.(string); ok && id != "" {
		a.EmitSound(ctx, id, b.box.BottomCenter())
	}
}

// advanceSounds ages every active sound and text line and forgets the expired ones.
func (a *Area) advanceSounds(dt float32) {
	a.sounds = age(a.sounds, dt)
	a.texts = age(a.texts, dt)
}

func age(list []*activeSound, dt float32) []*activeSound {
	kept := list[:0]
	for _, s := range list {
		s.timer += dt
		if !s.done() {
			kept = append(kept, s)
		}
	}
	return kept
}

func active(list []*activeSound, id string) bool {
	for _, s := range list {
		if s.id == id && !s.done() {
			return true
		}
	}
	return false
}
