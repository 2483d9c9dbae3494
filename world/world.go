package world

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/platsim/area"
	"github.com/oomph-ac/platsim/bbox"
	"github.com/oomph-ac/platsim/oerror"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// World is the registry of every area and entity in a game. Areas find each other
// through it when a body warps. The registry is safe for concurrent use, the areas
// it holds are not.
type World struct {
	log *logrus.Logger
	cfg area.Config

	areas    *orderedmap.OrderedMap[uint64, *area.Area]
	entities map[uint64]area.Entity
	handlers []area.Handler

	tick atomic.Uint64

	deadlock.RWMutex
}

// New creates an empty world. Areas built by the world use the configuration passed.
func New(log *logrus.Logger, cfg area.Config) *World {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &World{
		log:      log,
		cfg:      cfg,
		areas:    orderedmap.NewOrderedMap[uint64, *area.Area](),
		entities: make(map[uint64]area.Entity),
	}
}

// Tick returns the number of updates the world has run.
func (w *World) Tick() uint64 {
	return w.tick.Load()
}

// AddEntity registers an entity so that levels can place it by GUID.
func (w *World) AddEntity(e area.Entity) error {
	if e.GUID() == 0 {
		return oerror.New("entity guid must not be zero")
	}
	w.Lock()
	defer w.Unlock()

	if _, ok := w.entities[e.GUID()]; ok {
		return oerror.New("entity %d already registered", e.GUID())
	}
	w.entities[e.GUID()] = e
	return nil
}

// Entity returns the entity registered with the GUID passed.
func (w *World) Entity(guid uint64) (area.Entity, bool) {
	w.RLock()
	defer w.RUnlock()

	e, ok := w.entities[guid]
	return e, ok
}

// Subscribe adds a handler to every area registered now or later.
func (w *World) Subscribe(h area.Handler) {
	w.Lock()
	defer w.Unlock()

	w.handlers = append(w.handlers, h)
	for el := w.areas.Front(); el != nil; el = el.Next() {
		el.Value.Subscribe(h)
	}
}

// AddArea registers an area. Every unlinked exit of the area is linked with the
// first registered area holding an unlinked exit of the same identifier, in both
// directions.
func (w *World) AddArea(a *area.Area) error {
	w.Lock()
	defer w.Unlock()

	if _, ok := w.areas.Get(a.GUID()); ok {
		return oerror.New("area %d already registered", a.GUID())
	}
	for _, ex := range a.Exits() {
		if ex.Linked() {
			continue
		}
		for el := w.areas.Front(); el != nil; el = el.Next() {
			other := el.Value
			pair, ok := other.Exit(ex.ID)
			if !ok || pair.Linked() {
				continue
			}
			a.LinkExit(ex.ID, other.GUID())
			other.LinkExit(ex.ID, a.GUID())
			w.log.Debugf("world: linked exit %q between area %d and area %d", ex.ID, a.GUID(), other.GUID())
			break
		}
	}
	a.SetDirectory(w)
	for _, h := range w.handlers {
		a.Subscribe(h)
	}
	w.areas.Set(a.GUID(), a)
	return nil
}

// AreaByGUID returns the area registered with the GUID passed.
func (w *World) AreaByGUID(guid uint64) (*area.Area, bool) {
	w.RLock()
	defer w.RUnlock()

	return w.areas.Get(guid)
}

// Areas returns every area in the order they were registered.
func (w *World) Areas() []*area.Area {
	w.RLock()
	defer w.RUnlock()

	out := make([]*area.Area, 0, w.areas.Len())
	for el := w.areas.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// Locate returns the area the entity currently has a body in.
func (w *World) Locate(e area.Entity) (*area.Area, bool) {
	for _, a := range w.Areas() {
		if a.Has(e) {
			return a, true
		}
	}
	return nil, false
}

// Spawn places an entity in an area with the box passed. It fails if the entity
// already has a body in another area.
func (w *World) Spawn(a *area.Area, e area.Entity, box bbox.BBox) error {
	if other, ok := w.Locate(e); ok && other != a {
		return oerror.New("entity %d already has a body in area %d", e.GUID(), other.GUID())
	}
	a.Add(e)
	a.SetBBox(e, box)
	return nil
}

// Update runs one update of the context's active area. Other areas are frozen until
// the hero enters them.
func (w *World) Update(ctx *area.Context, dt float32) {
	ctx.Tick = w.tick.Inc()
	if ctx.Area == nil {
		return
	}
	ctx.Area.Update(ctx, dt)
}
