package area

import (
	"github.com/oomph-ac/platsim/event"
)

// Handler receives the notifications an area emits. Handlers are called
// synchronously on the simulation goroutine; ctx may be nil when the mutation was not
// made on behalf of an update.
type Handler interface {
	HandleBodyMove(ctx *Context, ev event.BodyMove)
	HandleBodyWarp(ctx *Context, ev event.BodyWarp)
	HandleSound(ctx *Context, ev event.Sound)
	HandleText(ctx *Context, ev event.Text)
}

type NopHandler struct{}

func (NopHandler) HandleBodyMove(*Context, event.BodyMove) {}
func (NopHandler) HandleBodyWarp(*Context, event.BodyWarp) {}
func (NopHandler) HandleSound(*Context, event.Sound)       {}
func (NopHandler) HandleText(*Context, event.Text)         {}

// Recorder appends every notification to an event log.
type Recorder struct {
	Log *event.Log
}

func (r Recorder) HandleBodyMove(_ *Context, ev event.BodyMove) { r.Log.Append(ev) }
func (r Recorder) HandleBodyWarp(_ *Context, ev event.BodyWarp) { r.Log.Append(ev) }
func (r Recorder) HandleSound(_ *Context, ev event.Sound)       { r.Log.Append(ev) }
func (r Recorder) HandleText(_ *Context, ev event.Text)         { r.Log.Append(ev) }

// Follower keeps the context's camera centred on its hero and makes the hero's new
// area the active one when the hero warps.
type Follower struct {
	NopHandler
	Directory Directory
}

func (f Follower) HandleBodyMove(ctx *Context, ev event.BodyMove) {
	if ctx.IsHero(ev.Entity) && ctx.Camera != nil {
		ctx.Camera.Center(ev.Position)
	}
}

func (f Follower) HandleBodyWarp(ctx *Context, ev event.BodyWarp) {
	if !ctx.IsHero(ev.Entity) {
		return
	}
	if f.Directory != nil {
		if dst, ok := f.Directory.AreaByGUID(ev.To); ok {
			ctx.Area = dst
		}
	}
	if ctx.Camera != nil {
		ctx.Camera.Center(ev.Position)
	}
}
