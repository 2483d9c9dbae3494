package area

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/platsim/bbox"
	"github.com/oomph-ac/platsim/event"
	"github.com/oomph-ac/platsim/game"
	"github.com/oomph-ac/platsim/geometry"
)

// Exit is a portal tile. Anchor is the corner of the tile, with its z on the tile's
// floor. Destination is the GUID of the area the exit leads to, or zero while the
// paired area has not been registered yet.
type Exit struct {
	ID          string
	Anchor      mgl32.Vec3
	Destination uint64
}

// Linked returns true if the exit leads somewhere.
func (e Exit) Linked() bool {
	return e.Destination != 0
}

type pendingWarp struct {
	body   *Body
	exit   Exit
	travel mgl32.Vec3
}

// SetExit places an exit tile. An existing exit with the same identifier is moved and
// keeps its destination.
func (a *Area) SetExit(id string, anchor mgl32.Vec3) {
	ex, _ := a.exits.Get(id)
	ex.ID, ex.Anchor = id, anchor
	a.exits.Set(id, ex)
	a.exitIndex = nil
}

// LinkExit sets the area an exit leads to. It returns false if the exit does not
// exist.
func (a *Area) LinkExit(id string, destination uint64) bool {
	ex, ok := a.exits.Get(id)
	if !ok {
		return false
	}
	ex.Destination = destination
	a.exits.Set(id, ex)
	return true
}

// Exit returns the exit with the identifier passed.
func (a *Area) Exit(id string) (Exit, bool) {
	return a.exits.Get(id)
}

// Exits returns every exit in the order they were placed.
func (a *Area) Exits() []Exit {
	out := make([]Exit, 0, a.exits.Len())
	for el := a.exits.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

func (a *Area) exitRect(anchor mgl32.Vec3) geometry.Rect {
	return geometry.Rect{X: anchor.Y(), Y: anchor.Z() - a.cfg.TileSize, W: a.cfg.TileSize, H: a.cfg.TileSize}
}

func (a *Area) exitTiles() *geometry.Index {
	if a.exitIndex == nil {
		entries := make([]geometry.Entry, 0, a.exits.Len())
		for el := a.exits.Front(); el != nil; el = el.Next() {
			entries = append(entries, geometry.Entry{Rect: a.exitRect(el.Value.Anchor), Value: el.Key})
		}
		a.exitIndex = geometry.NewEntryIndex(entries, a.cfg.CellSize)
	}
	return a.exitIndex
}

// probeExits warps the body if it stands on a linked exit tile. While the area is
// updating, the warp is queued until the update finishes.
func (a *Area) probeExits(ctx *Context, b *Body) {
	if a.exits.Len() == 0 {
		return
	}
	hits := a.exitTiles().Query(b.box.Rect())
	if len(hits) == 0 {
		b.arrivedVia = ""
		return
	}
	var (
		target string
		found  bool
	)
	for _, h := range hits {
		if id := h.Value.(string); id != b.arrivedVia {
			target, found = id, true
			break
		}
	}
	if !found {
		return
	}

	ex, _ := a.exits.Get(target)
	if !ex.Linked() {
		return
	}
	w := pendingWarp{body: b, exit: ex, travel: game.TravelDirection(b.prevBox.Origin(), b.box.Origin())}
	if a.inUpdate {
		for _, p := range a.pending {
			if p.body == b {
				return
			}
		}
		a.pending = append(a.pending, w)
		return
	}
	a.warp(ctx, w)
}

// flushWarps applies the warps queued during an update.
func (a *Area) flushWarps(ctx *Context) {
	pending := a.pending
	a.pending = nil
	for _, w := range pending {
		a.warp(ctx, w)
	}
}

// warp moves a body through an exit into the paired area and settles it there.
func (a *Area) warp(ctx *Context, w pendingWarp) {
	b := w.body
	if !a.owns(b) {
		return
	}
	if a.directory == nil {
		a.log.Warnf("area %d: exit %q leads to area %d but no directory is set", a.guid, w.exit.ID, w.exit.Destination)
		return
	}
	dest, ok := a.directory.AreaByGUID(w.exit.Destination)
	if !ok {
		a.log.Warnf("area %d: exit %q leads to unknown area %d", a.guid, w.exit.ID, w.exit.Destination)
		return
	}
	target, ok := dest.Exit(w.exit.ID)
	if !ok {
		a.log.Warnf("area %d: destination area %d has no exit %q", a.guid, dest.guid, w.exit.ID)
		return
	}

	e := b.entity
	a.Remove(e)
	nb := dest.Add(e)
	spawn := dest.spawnBox(target.Anchor, b.box.Size())
	nb.box, nb.prevBox = spawn, spawn
	nb.orientation = b.orientation
	nb.layer = b.layer
	nb.arrivedVia = w.exit.ID

	dest.settle(ctx, nb, spawn, w.travel)

	a.log.Debugf("area %d: entity %d warped through %q to area %d at %v", a.guid, e.GUID(), w.exit.ID, dest.guid, nb.box.Origin())
	ev := event.BodyWarp{Entity: e.GUID(), From: a.guid, To: dest.guid, Exit: w.exit.ID, Position: nb.box.Origin()}
	ev.EvTime = a.tick
	for _, h := range a.handlers {
		h.HandleBodyWarp(ctx, ev)
	}
}

// spawnBox returns a box of the size passed centred on the exit tile at anchor, with
// its floor on the anchor.
func (a *Area) spawnBox(anchor, size mgl32.Vec3) bbox.BBox {
	half := a.cfg.TileSize / 2
	return bbox.New(mgl32.Vec3{anchor.X() + half - size.X()/2, anchor.Y() + half - size.Y()/2, anchor.Z()}, size)
}

// settle clears space for a body that just arrived at spawn. The body is backed off
// against its direction of travel without collisions, then walked back onto the
// spawn one unit at a time, pushing anything in the way. A body still stuck in
// geometry afterwards is placed on the spawn.
func (a *Area) settle(ctx *Context, b *Body, spawn bbox.BBox, travel mgl32.Vec3) {
	a.Move(b, travel.Mul(-a.cfg.SettleOffset), MoveOpts{NoClip: true, SuppressWarp: true, Context: ctx})

	step := MoveOpts{Push: true, SuppressWarp: true, Context: ctx}
	for i := 0; i < a.cfg.SettleSteps; i++ {
		if b.box.Origin().Sub(spawn.Origin()).Len() < 1e-3 {
			break
		}
		res := a.Move(b, travel, step)
		if res == MoveBlockedGeometry && a.TestCollideGeometry(b.box, b.layer) {
			noClip := step
			noClip.NoClip = true
			res = a.Move(b, travel, noClip)
		}
		if res != MoveOK {
			break
		}
	}

	if a.TestCollideGeometry(b.box, b.layer) {
		a.log.Warnf("area %d: entity %d could not settle clear of geometry, placing it on the exit", a.guid, b.entity.GUID())
		b.setBBox(spawn)
	}
}
