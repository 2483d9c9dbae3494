package world

import (
	"fmt"

	"github.com/oomph-ac/platsim/area"
	"github.com/oomph-ac/platsim/bbox"
	"github.com/oomph-ac/platsim/game"
	"github.com/oomph-ac/platsim/geometry"
	"github.com/oomph-ac/platsim/level"
	"github.com/oomph-ac/platsim/oerror"
)

// BuildArea creates an area from a level document, places the level's entities in it
// and registers it. Entities must be registered before the level is built.
func (w *World) BuildArea(lvl *level.Level) (*area.Area, error) {
	cfg := w.cfg
	cfg.TileSize = lvl.TileSize
	a := area.New(lvl.GUID, lvl.Name, cfg, w.log)

	if r := lvl.Extent.Rect(); !r.Empty() {
		a.SetExtent(r)
	}
	for _, index := range lvl.LayerIndices() {
		a.SetLayerGeometry(index, lvl.SolidRects(index))
	}
	for _, ex := range lvl.Exits {
		a.SetExit(ex.ID, ex.AnchorVec())
	}
	if len(lvl.Surfaces) > 0 {
		entries := make([]geometry.Entry, len(lvl.Surfaces))
		for i, s := range lvl.Surfaces {
			entries[i] = geometry.Entry{Rect: s.Rect.Rect(), Value: s.Sound}
		}
		a.SetSurfaces(entries)
	}
	if err := w.place(a, lvl.GUID, lvl.Placements); err != nil {
		return nil, err
	}

	a.Subscribe(area.Follower{Directory: w})
	if err := w.AddArea(a); err != nil {
		for _, b := range a.Bodies() {
			a.Remove(b.Entity())
		}
		return nil, err
	}
	w.log.Debugf("world: built area %d (%s) with %d bodies and %d exits", a.GUID(), a.Name(), a.Len(), len(lvl.Exits))
	return a, nil
}

type placement struct {
	entity area.Entity
	box    bbox.BBox
	layer  int
	facing float32
}

// place resolves every placement of a level before adding any of them, so a level
// that fails to build leaves no bodies behind.
func (w *World) place(a *area.Area, guid uint64, placements []level.Placement) error {
	resolved := make([]placement, 0, len(placements))
	seen := make(map[uint64]struct{}, len(placements))
	for _, p := range placements {
		e, ok := w.Entity(p.GUID)
		if !ok {
			return oerror.New("level %d: entity %d is not registered", guid, p.GUID)
		}
		if _, ok := seen[p.GUID]; ok {
			return oerror.New("level %d: entity %d placed twice", guid, p.GUID)
		}
		seen[p.GUID] = struct{}{}
		if other, ok := w.Locate(e); ok && other != a {
			return oerror.New("level %d: entity %d already has a body in area %d", guid, p.GUID, other.GUID())
		}

		size, ok := p.SizeVec()
		if !ok {
			size = bbox.Default().Size()
			if s, ok := e.(area.Sizer); ok {
				size = s.Size()
			}
		}
		if size.X() < 0 || size.Y() < 0 || size.Z() < 0 {
			return oerror.New("level %d: entity %d: negative size %v", guid, p.GUID, size)
		}
		var facing float32
		if p.Facing != "" {
			angle, err := game.CardinalAngle(p.Facing)
			if err != nil {
				return fmt.Errorf("level %d: entity %d: %w", guid, p.GUID, err)
			}
			facing = angle
		}
		resolved = append(resolved, placement{entity: e, box: bbox.New(p.OriginVec(), size), layer: p.Layer, facing: facing})
	}

	for _, p := range resolved {
		a.Add(p.entity)
		a.SetBBox(p.entity, p.box)
		a.SetLayer(p.entity, p.layer)
		a.SetOrientation(p.entity, p.facing)
	}
	return nil
}
