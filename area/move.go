package area

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/platsim/bbox"
	"github.com/oomph-ac/platsim/event"
	"golang.org/x/exp/slices"
)

// MoveResult is the outcome of a movement attempt.
type MoveResult uint8

const (
	// MoveOK means the body, and every body it pushed, moved.
	MoveOK MoveResult = iota
	// MoveBlockedGeometry means the destination hit static geometry or left the extent.
	MoveBlockedGeometry
	// MoveBlockedBody means the destination overlapped a body that could not be pushed.
	MoveBlockedBody
	// MoveBlockedPush means a body further down the push chain could not move.
	MoveBlockedPush
	// MoveCyclic means the body was already moved earlier in the same push chain.
	MoveCyclic
	// MoveUnknownBody means the body does not belong to the area.
	MoveUnknownBody
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlockedGeometry:
		return "blocked by geometry"
	case MoveBlockedBody:
		return "blocked by body"
	case MoveBlockedPush:
		return "push chain blocked"
	case MoveCyclic:
		return "cyclic"
	case MoveUnknownBody:
		return "unknown body"
	}
	return "unknown"
}

// MoveOpts controls how a movement is resolved. The zero value moves without pushing
// and with collisions and exits enabled.
type MoveOpts struct {
	// Push recursively moves colliding pushable bodies by the same amount.
	Push bool
	// NoClip lets the body pass through geometry and, when not pushing, other bodies.
	NoClip bool
	// SuppressWarp disables exit probing for every body moved.
	SuppressWarp bool
	// Context is handed to handlers and warps triggered by the move.
	Context *Context
}

// DefaultMove is the mode used for ordinary movement.
var DefaultMove = MoveOpts{Push: true}

// moveTx tracks one top-level movement and every push it causes.
type moveTx struct {
	visited map[*Body]struct{}
	journal []moveUndo
}

type moveUndo struct {
	body         *Body
	box, prevBox bbox.BBox
}

// MovePosition attempts to move a body and reports whether it moved.
func (a *Area) MovePosition(b *Body, delta mgl32.Vec3, opts MoveOpts) bool {
	return a.Move(b, delta, opts) == MoveOK
}

// Move attempts to move a body by delta. Bodies in the way are pushed along when
// opts.Push is set and all of them are pushable; bodies joined to a mover are always
// pushed. Either every body in the chain moves or none does. Move notifications
// and exit probes are only issued once the whole chain has moved.
func (a *Area) Move(b *Body, delta mgl32.Vec3, opts MoveOpts) MoveResult {
	if b == nil || !a.owns(b) {
		return MoveUnknownBody
	}

	tx := &moveTx{visited: make(map[*Body]struct{})}
	if res := a.move(tx, b, delta, opts.Push, !opts.NoClip); res != MoveOK {
		return res
	}
	a.commit(opts, tx)
	return MoveOK
}

func (a *Area) move(tx *moveTx, b *Body, delta mgl32.Vec3, push, clip bool) MoveResult {
	if _, ok := tx.visited[b]; ok {
		return MoveCyclic
	}
	tx.visited[b] = struct{}{}

	candidate := b.box.Move(delta)
	if clip && a.TestCollideGeometry(candidate, b.layer) {
		return MoveBlockedGeometry
	}

	collide := a.TestCollideObjects(candidate)
	collide = slices.DeleteFunc(collide, func(o *Body) bool { return o == b })

	joined := make(map[*Body]struct{})
	for _, e := range a.Joined(b.entity) {
		jb, ok := a.bodies.Get(e)
		if !ok || jb == b {
			continue
		}
		joined[jb] = struct{}{}
		if !slices.Contains(collide, jb) {
			collide = append(collide, jb)
		}
	}
	if len(joined) > 0 {
		push = true
	}

	if len(collide) > 0 {
		if push && a.canPush(tx, collide, joined) {
			mark := len(tx.journal)
			a.apply(tx, b, candidate)
			for _, other := range collide {
				switch a.move(tx, other, delta, true, true) {
				case MoveOK, MoveCyclic:
				default:
					a.rollback(tx, mark)
					return MoveBlockedPush
				}
			}
			return MoveOK
		}
		if clip {
			return MoveBlockedBody
		}
	}

	a.apply(tx, b, candidate)
	return MoveOK
}

// canPush returns true if every collider may be pushed. Bodies already moving in this
// chain and bodies dragged by a join do not need to be pushable.
func (a *Area) canPush(tx *moveTx, collide []*Body, joined map[*Body]struct{}) bool {
	for _, o := range collide {
		if _, ok := tx.visited[o]; ok {
			continue
		}
		if _, ok := joined[o]; ok {
			continue
		}
		if !o.Pushable() {
			return false
		}
	}
	return true
}

func (a *Area) apply(tx *moveTx, b *Body, box bbox.BBox) {
	tx.journal = append(tx.journal, moveUndo{body: b, box: b.box, prevBox: b.prevBox})
	b.setBBox(box)
}

// rollback restores every body moved after the journal mark, newest first.
func (a *Area) rollback(tx *moveTx, mark int) {
	for i := len(tx.journal) - 1; i >= mark; i-- {
		u := tx.journal[i]
		u.body.box, u.body.prevBox = u.box, u.prevBox
	}
	tx.journal = tx.journal[:mark]
}

// commit issues the notifications of a successful movement in the order the bodies
// moved.
func (a *Area) commit(opts MoveOpts, tx *moveTx) {
	for _, u := range tx.journal {
		b := u.body
		if !a.owns(b) {
			continue
		}
		a.emitMove(opts.Context, b)
		a.walkSound(opts.Context, b)
		if !opts.SuppressWarp {
			a.probeExits(opts.Context, b)
		}
	}
}

func (a *Area) emitMove(ctx *Context, b *Body) {
	ev := event.BodyMove{Area: a.guid, Entity: b.entity.GUID(), Position: b.box.Origin()}
	ev.EvTime = a.tick
	for _, h := range a.handlers {
		h.HandleBodyMove(ctx, ev)
	}
}
