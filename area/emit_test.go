package area

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/platsim/geometry"
)

func TestSoundDedup(t *testing.T) {
	a := newTestArea(1)
	h := &mockHandler{}
	a.Subscribe(h)

	if !a.EmitSound(nil, "door.ogg", mgl32.Vec3{1, 2, 3}) {
		t.Fatalf("expected first emission to go through")
	}
	if a.EmitSound(nil, "door.ogg", mgl32.Vec3{4, 5, 6}) {
		t.Fatalf("expected duplicate emission to be dropped")
	}
	if !a.EmitSound(nil, "step.ogg", mgl32.Vec3{}) {
		t.Fatalf("expected a different sound to go through")
	}
	if len(h.sounds) != 2 || h.sounds[0].Sound != "door.ogg" || h.sounds[0].Position != (mgl32.Vec3{1, 2, 3}) {
		t.Fatalf("unexpected sound events %+v", h.sounds)
	}

	a.Update(nil, 200)
	if a.EmitSound(nil, "door.ogg", mgl32.Vec3{}) {
		t.Fatalf("sound emitted again before its time to live elapsed")
	}
	a.Update(nil, 100)
	if !a.EmitSound(nil, "door.ogg", mgl32.Vec3{}) {
		t.Fatalf("expected sound to be emitted again after its time to live")
	}
}

func TestSoundCustomTTL(t *testing.T) {
	a := newTestArea(1)
	a.EmitSoundTTL(nil, "lift.ogg", mgl32.Vec3{}, 1000)
	a.Update(nil, 500)
	if a.EmitSound(nil, "lift.ogg", mgl32.Vec3{}) {
		t.Fatalf("expected long sound to still be active")
	}
}

func TestTextLog(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TextLogSize = 2
	a := newTestAreaConfig(1, cfg)
	h := &mockHandler{}
	a.Subscribe(h)

	a.EmitText(nil, "hello")
	a.EmitText(nil, "hello")
	a.EmitText(nil, "the door is locked")
	a.EmitText(nil, "you found a key")

	if len(h.texts) != 3 {
		t.Fatalf("expected 3 text events, got %d", len(h.texts))
	}
	msgs := a.Messages()
	if len(msgs) != 2 || msgs[0] != "the door is locked" || msgs[1] != "you found a key" {
		t.Fatalf("unexpected message log %v", msgs)
	}
}

func TestWalkSound(t *testing.T) {
	a := newTestArea(1)
	a.SetLayerGeometry(0, []geometry.Rect{{X: 0, Y: 50, W: 200, H: 16}})
	a.SetSurfaces([]geometry.Entry{{Rect: geometry.Rect{X: 0, Y: 50, W: 100, H: 16}, Value: "stone.ogg"}})
	h := &mockHandler{}
	a.Subscribe(h)

	b := place(a, &mockEntity{guid: 1}, mgl32.Vec3{0, 10, 50}, bodySize)
	a.MovePosition(b, mgl32.Vec3{0, 2, 0}, DefaultMove)
	a.MovePosition(b, mgl32.Vec3{0, 2, 0}, DefaultMove)
	if len(h.sounds) != 1 || h.sounds[0].Sound != "stone.ogg" {
		t.Fatalf("expected one footstep, got %+v", h.sounds)
	}
	if h.sounds[0].Position != (mgl32.Vec3{2, 16, 50}) {
		t.Fatalf("expected footstep at the body's feet, got %v", h.sounds[0].Position)
	}

	a.MovePosition(b, mgl32.Vec3{0, 100, 0}, DefaultMove)
	if len(h.sounds) != 1 {
		t.Fatalf("no footstep expected off the surface, got %+v", h.sounds)
	}
}
