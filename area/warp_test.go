package area

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/platsim/game"
	"github.com/oomph-ac/platsim/geometry"
)

// linkedAreas returns two areas joined by the exit "door": in src the tile sits at
// y=64, in dst its anchor is (10, 10, 0).
func linkedAreas(cfg Config) (src, dst *Area, dir mockDirectory) {
	src, dst = newTestAreaConfig(1, cfg), newTestAreaConfig(2, cfg)
	dir = mockDirectory{1: src, 2: dst}
	for _, a := range []*Area{src, dst} {
		a.SetDirectory(dir)
		a.SetLayerGeometry(0, nil)
	}
	src.SetExit("door", mgl32.Vec3{0, 64, 0})
	dst.SetExit("door", mgl32.Vec3{10, 10, 0})
	src.LinkExit("door", 2)
	dst.LinkExit("door", 1)
	return
}

func TestWarpScenario(t *testing.T) {
	src, dst, _ := linkedAreas(DefaultConfig())
	h := &mockHandler{}
	src.Subscribe(h)

	e := &mockEntity{guid: 7}
	b := place(src, e, mgl32.Vec3{0, 50, 0}, bodySize)
	src.SetOrientation(e, 1.25)

	if !src.MovePosition(b, mgl32.Vec3{0, 10, 0}, DefaultMove) {
		t.Fatalf("expected move onto the exit to succeed")
	}
	if src.Has(e) {
		t.Fatalf("expected entity to leave the source area")
	}
	nb, ok := dst.Body(e)
	if !ok {
		t.Fatalf("expected entity in the destination area")
	}
	if nb == b {
		t.Fatalf("expected a fresh body in the destination area")
	}
	if !game.Vec3ApproxEq(nb.Position(), mgl32.Vec3{16, 14, 0}) {
		t.Fatalf("expected body centred on the exit tile, got %v", nb.Position())
	}
	center := nb.BBox().Center()
	if center.X()-10 > game.TileSize || center.Y()-10 > game.TileSize || center.Y() < 10 {
		t.Fatalf("expected centre near the anchor, got %v", center)
	}
	if nb.Orientation() != 1.25 {
		t.Fatalf("expected orientation preserved, got %v", nb.Orientation())
	}

	if len(h.warps) != 1 {
		t.Fatalf("expected one warp event, got %d", len(h.warps))
	}
	if ev := h.warps[0]; ev.Entity != 7 || ev.From != 1 || ev.To != 2 || ev.Exit != "door" {
		t.Fatalf("unexpected warp event %+v", ev)
	}
}

func TestWarpUnlinkedExitIsNoop(t *testing.T) {
	src := newTestArea(1)
	src.SetLayerGeometry(0, nil)
	src.SetExit("door", mgl32.Vec3{0, 64, 0})
	e := &mockEntity{guid: 7}
	b := place(src, e, mgl32.Vec3{0, 50, 0}, bodySize)

	if !src.MovePosition(b, mgl32.Vec3{0, 10, 0}, DefaultMove) || !src.Has(e) {
		t.Fatalf("expected body to stay in the area on an unlinked exit")
	}
	if b.Position().Y() != 60 {
		t.Fatalf("unexpected position %v", b.Position())
	}
}

func TestWarpSuppressed(t *testing.T) {
	src, _, _ := linkedAreas(DefaultConfig())
	e := &mockEntity{guid: 7}
	b := place(src, e, mgl32.Vec3{0, 50, 0}, bodySize)
	src.MovePosition(b, mgl32.Vec3{0, 10, 0}, MoveOpts{Push: true, SuppressWarp: true})
	if !src.Has(e) {
		t.Fatalf("suppressed move must not warp")
	}
}

func TestWarpPushesOccupant(t *testing.T) {
	src, dst, _ := linkedAreas(DefaultConfig())
	occupant := &mockEntity{guid: 8}
	ob := place(dst, occupant, mgl32.Vec3{16, 14, 0}, bodySize)

	e := &mockEntity{guid: 7}
	b := place(src, e, mgl32.Vec3{0, 50, 0}, bodySize)
	src.MovePosition(b, mgl32.Vec3{0, 10, 0}, DefaultMove)

	nb, ok := dst.Body(e)
	if !ok {
		t.Fatalf("expected entity in the destination area")
	}
	if !game.Vec3ApproxEq(nb.Position(), mgl32.Vec3{16, 14, 0}) {
		t.Fatalf("expected body on the spawn point, got %v", nb.Position())
	}
	if !game.Vec3ApproxEq(ob.Position(), mgl32.Vec3{16, 22, 0}) {
		t.Fatalf("expected occupant shoved along the direction of travel, got %v", ob.Position())
	}
	if nb.BBox().Intersects(ob.BBox()) {
		t.Fatalf("settled body still overlaps the occupant")
	}
}

func TestWarpNoPingPong(t *testing.T) {
	src, dst, _ := linkedAreas(DefaultConfig())
	e := &mockEntity{guid: 7}
	b := place(src, e, mgl32.Vec3{0, 50, 0}, bodySize)
	src.MovePosition(b, mgl32.Vec3{0, 10, 0}, DefaultMove)

	nb, _ := dst.Body(e)
	dst.MovePosition(nb, mgl32.Vec3{0, 1, 0}, DefaultMove)
	if !dst.Has(e) {
		t.Fatalf("body warped back through the exit it arrived from")
	}

	dst.MovePosition(nb, mgl32.Vec3{0, 40, 0}, DefaultMove)
	dst.MovePosition(nb, mgl32.Vec3{0, -40, 0}, DefaultMove)
	if dst.Has(e) || !src.Has(e) {
		t.Fatalf("expected body to warp back after leaving and re-entering the exit")
	}
}

func TestWarpLatchOnlyIgnoresArrivalExit(t *testing.T) {
	src, dst, _ := linkedAreas(DefaultConfig())
	src.SetExit("hatch", mgl32.Vec3{0, 80, 0})
	dst.SetExit("hatch", mgl32.Vec3{10, 60, 0})
	src.LinkExit("hatch", 2)
	dst.LinkExit("hatch", 1)
	h := &mockHandler{}
	src.Subscribe(h)

	e := &mockEntity{guid: 7}
	b := place(src, e, mgl32.Vec3{0, 66, 0}, bodySize)
	b.arrivedVia = "door"

	src.MovePosition(b, mgl32.Vec3{0, 8, 0}, DefaultMove)
	if src.Has(e) || !dst.Has(e) {
		t.Fatalf("expected the neighbouring exit to warp a body latched to another exit")
	}
	if len(h.warps) != 1 || h.warps[0].Exit != "hatch" {
		t.Fatalf("expected one warp through the hatch, got %+v", h.warps)
	}
}

func TestWarpDeferredDuringUpdate(t *testing.T) {
	src, dst, _ := linkedAreas(DefaultConfig())
	mover := &mockEntity{guid: 7, floating: true}
	place(src, mover, mgl32.Vec3{0, 50, 0}, bodySize)
	src.SetForce(mover, mgl32.Vec3{0, 10, 0})

	w := &watchEntity{mockEntity: mockEntity{guid: 9, floating: true}, watched: mover}
	place(src, w, mgl32.Vec3{0, 200, 0}, bodySize)

	src.Update(nil, 100)
	if !w.sawPresent {
		t.Fatalf("warp was applied while the area was still updating")
	}
	if src.Has(mover) || !dst.Has(mover) {
		t.Fatalf("expected queued warp to be applied after the update")
	}
}

type watchEntity struct {
	mockEntity
	watched    Entity
	sawPresent bool
}

func (w *watchEntity) Tick(_ *Context, a *Area, _ float32) {
	w.sawPresent = a.Has(w.watched)
}

func TestSettleEscapesGeometry(t *testing.T) {
	src, dst, _ := linkedAreas(DefaultConfig())
	dst.SetLayerGeometry(0, []geometry.Rect{{X: -10, Y: -20, W: 18, H: 20}})

	e := &mockEntity{guid: 7}
	b := place(src, e, mgl32.Vec3{0, 50, 0}, bodySize)
	src.MovePosition(b, mgl32.Vec3{0, 10, 0}, DefaultMove)

	nb, ok := dst.Body(e)
	if !ok {
		t.Fatalf("expected entity in the destination area")
	}
	if !game.Vec3ApproxEq(nb.Position(), mgl32.Vec3{16, 14, 0}) {
		t.Fatalf("expected body to walk out of the wall onto the spawn, got %v", nb.Position())
	}
}

func TestSettleFallbackPlacesOnSpawn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SettleSteps = 5
	src, dst, _ := linkedAreas(cfg)
	dst.SetLayerGeometry(0, []geometry.Rect{{X: -10, Y: -20, W: 18, H: 20}})

	e := &mockEntity{guid: 7}
	b := place(src, e, mgl32.Vec3{0, 50, 0}, bodySize)
	src.MovePosition(b, mgl32.Vec3{0, 10, 0}, DefaultMove)

	nb, _ := dst.Body(e)
	if !game.Vec3ApproxEq(nb.Position(), mgl32.Vec3{16, 14, 0}) {
		t.Fatalf("expected stuck body to be placed on the spawn, got %v", nb.Position())
	}
}

func TestFollowerSwitchesArea(t *testing.T) {
	src, dst, dir := linkedAreas(DefaultConfig())
	src.Subscribe(Follower{Directory: dir})

	hero := &mockEntity{guid: 7}
	cam := &mockCamera{}
	ctx := &Context{Area: src, Hero: hero, Camera: cam}

	b := place(src, hero, mgl32.Vec3{0, 50, 0}, bodySize)
	src.MovePosition(b, mgl32.Vec3{0, 4, 0}, MoveOpts{Push: true, Context: ctx})
	if len(cam.centers) != 1 || cam.centers[0] != (mgl32.Vec3{0, 54, 0}) {
		t.Fatalf("expected camera to follow the hero, got %v", cam.centers)
	}

	src.MovePosition(b, mgl32.Vec3{0, 6, 0}, MoveOpts{Push: true, Context: ctx})
	if ctx.Area != dst {
		t.Fatalf("expected the hero's new area to become active")
	}
	if last := cam.centers[len(cam.centers)-1]; !game.Vec3ApproxEq(last, mgl32.Vec3{16, 14, 0}) {
		t.Fatalf("expected camera on the hero's spawn, got %v", last)
	}
}
