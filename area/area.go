package area

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/platsim/bbox"
	"github.com/oomph-ac/platsim/game"
	"github.com/oomph-ac/platsim/geometry"
	"github.com/oomph-ac/platsim/utils"
	"github.com/sirupsen/logrus"
)

// Directory resolves areas by GUID. Exits use it to find the area they lead to.
type Directory interface {
	AreaByGUID(guid uint64) (*Area, bool)
}

// Area is a bounded playfield holding bodies, static geometry and exits. It is the
// collision and physics authority for everything inside it. An Area is not safe for
// concurrent use: every method must be called from the simulation goroutine.
type Area struct {
	guid uint64
	name string
	cfg  Config
	log  *logrus.Logger

	bodies *orderedmap.OrderedMap[Entity, *Body]

	geometry     map[int]*geometry.Index
	warnedLayers map[int]struct{}
	extent       geometry.Rect
	hasExtent    bool
	surfaces     *geometry.Index

	joins []join

	exits     *orderedmap.OrderedMap[string, Exit]
	exitIndex *geometry.Index
	directory Directory
	pending   []pendingWarp

	sounds   []*activeSound
	texts    []*activeSound
	messages *utils.CircularQueue[string]

	handlers []Handler

	tick     int64
	time     float32
	inUpdate bool
}

// New creates an empty area. A nil logger falls back to the logrus standard logger.
func New(guid uint64, name string, cfg Config, log *logrus.Logger) *Area {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if cfg.TextLogSize <= 0 {
		cfg.TextLogSize = game.TextLogSize
	}
	return &Area{
		guid:         guid,
		name:         name,
		cfg:          cfg,
		log:          log,
		bodies:       orderedmap.NewOrderedMap[Entity, *Body](),
		geometry:     make(map[int]*geometry.Index),
		warnedLayers: make(map[int]struct{}),
		exits:        orderedmap.NewOrderedMap[string, Exit](),
		messages:     utils.NewCircularQueue[string](cfg.TextLogSize),
	}
}

func (a *Area) GUID() uint64   { return a.guid }
func (a *Area) Name() string   { return a.name }
func (a *Area) Config() Config { return a.cfg }

// Tick returns the number of updates the area has run.
func (a *Area) Tick() int64 { return a.tick }

// Time returns the total simulated time, in milliseconds.
func (a *Area) Time() float32 { return a.time }

// SetDirectory sets the directory used to resolve exit destinations.
func (a *Area) SetDirectory(d Directory) {
	a.directory = d
}

// Subscribe registers a handler for the area's notifications.
func (a *Area) Subscribe(h Handler) {
	a.handlers = append(a.handlers, h)
}

// Add creates a body for the entity with the default box, no force and facing 0. If
// the entity already has a body in this area, that body is returned unchanged.
func (a *Area) Add(e Entity) *Body {
	if b, ok := a.bodies.Get(e); ok {
		return b
	}
	b := newBody(e)
	a.bodies.Set(e, b)
	return b
}

// Remove destroys the entity's body along with every join it takes part in. It
// returns false if the entity has no body here.
func (a *Area) Remove(e Entity) bool {
	if !a.bodies.Delete(e) {
		return false
	}
	a.dropJoins(e)
	return true
}

// Has returns true if the entity has a body in the area.
func (a *Area) Has(e Entity) bool {
	_, ok := a.bodies.Get(e)
	return ok
}

// Body returns the entity's body.
func (a *Area) Body(e Entity) (*Body, bool) {
	return a.bodies.Get(e)
}

// Len returns the number of bodies in the area.
func (a *Area) Len() int {
	return a.bodies.Len()
}

// Bodies returns every body in the order the entities were added.
func (a *Area) Bodies() []*Body {
	out := make([]*Body, 0, a.bodies.Len())
	for el := a.bodies.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// owns returns true if b is the live body of its entity in this area.
func (a *Area) owns(b *Body) bool {
	cur, ok := a.bodies.Get(b.entity)
	return ok && cur == b
}

// Position returns the origin of the entity's box.
func (a *Area) Position(e Entity) (mgl32.Vec3, bool) {
	b, ok := a.bodies.Get(e)
	if !ok {
		return mgl32.Vec3{}, false
	}
	return b.box.Origin(), true
}

// SetPosition places the entity's box at the origin passed without any collision
// checks.
func (a *Area) SetPosition(e Entity, origin mgl32.Vec3) bool {
	b, ok := a.bodies.Get(e)
	if !ok {
		return false
	}
	b.setBBox(b.box.WithOrigin(origin))
	return true
}

// Size returns the size (depth, width, height) of the entity's box.
func (a *Area) Size(e Entity) (mgl32.Vec3, bool) {
	b, ok := a.bodies.Get(e)
	if !ok {
		return mgl32.Vec3{}, false
	}
	return b.box.Size(), true
}

// SetBBox replaces the entity's box without any collision checks.
func (a *Area) SetBBox(e Entity, box bbox.BBox) bool {
	b, ok := a.bodies.Get(e)
	if !ok {
		return false
	}
	b.setBBox(box)
	return true
}

// Orientation returns the angle, in radians, the entity is facing.
func (a *Area) Orientation(e Entity) (float32, bool) {
	b, ok := a.bodies.Get(e)
	if !ok {
		return 0, false
	}
	return b.orientation, true
}

// SetOrientation sets the angle, in radians, the entity is facing.
func (a *Area) SetOrientation(e Entity, angle float32) bool {
	b, ok := a.bodies.Get(e)
	if !ok {
		return false
	}
	b.orientation = angle
	return true
}

// SetCardinal turns the entity to face a compass direction: north, east, south or
// west.
func (a *Area) SetCardinal(e Entity, direction string) error {
	angle, err := game.CardinalAngle(direction)
	if err != nil {
		return err
	}
	a.SetOrientation(e, angle)
	return nil
}

// SetLayer moves the entity's body onto another geometry layer.
func (a *Area) SetLayer(e Entity, layer int) bool {
	b, ok := a.bodies.Get(e)
	if !ok {
		return false
	}
	b.layer = layer
	return true
}

// ApplyForce adds a force to the entity's body. Only the y and z components are
// simulated.
func (a *Area) ApplyForce(e Entity, force mgl32.Vec3) bool {
	b, ok := a.bodies.Get(e)
	if !ok {
		return false
	}
	b.accel = b.accel.Add(mgl32.Vec2{force.Y(), force.Z()})
	return true
}

// SetForce replaces the force applied to the entity's body. Only the y and z
// components are simulated.
func (a *Area) SetForce(e Entity, force mgl32.Vec3) bool {
	b, ok := a.bodies.Get(e)
	if !ok {
		return false
	}
	b.accel = mgl32.Vec2{force.Y(), force.Z()}
	return true
}

// SetExtent sets the absolute bounds of the playfield. Boxes leaving the extent
// collide as if with geometry.
func (a *Area) SetExtent(r geometry.Rect) {
	a.extent, a.hasExtent = r, true
}

// Extent returns the bounds of the playfield, if any were set.
func (a *Area) Extent() (geometry.Rect, bool) {
	return a.extent, a.hasExtent
}

// SetLayerGeometry builds the static index for a layer from the solid rectangles
// passed, replacing any previous geometry on that layer.
func (a *Area) SetLayerGeometry(layer int, rects []geometry.Rect) {
	a.geometry[layer] = geometry.NewIndex(rects, a.cfg.CellSize)
	delete(a.warnedLayers, layer)
}

// LayerGeometry returns the static index of a layer.
func (a *Area) LayerGeometry(layer int) (*geometry.Index, bool) {
	idx, ok := a.geometry[layer]
	return idx, ok
}

// SetSurfaces sets the walk-sound surfaces of the area. Each entry's value is the
// sound emitted when a body moves while standing on it.
func (a *Area) SetSurfaces(entries []geometry.Entry) {
	a.surfaces = geometry.NewEntryIndex(entries, a.cfg.CellSize)
}

// TestCollideGeometry returns true if the box hits solid geometry on the layer
// passed or leaves the area's extent. A layer without geometry is logged and never
// collides.
func (a *Area) TestCollideGeometry(box bbox.BBox, layer int) bool {
	idx, ok := a.geometry[layer]
	if !ok {
		if _, warned := a.warnedLayers[layer]; !warned {
			a.warnedLayers[layer] = struct{}{}
			a.log.Warnf("area %d (%s): no geometry on layer %d, ignoring static collisions", a.guid, a.name, layer)
		}
		return false
	}

	r := box.Rect()
	if idx.Hit(r) {
		return true
	}
	return a.hasExtent && !a.extent.Contains(r)
}

// TestCollideObjects returns every body whose box intersects the box passed.
func (a *Area) TestCollideObjects(box bbox.BBox) []*Body {
	var hits []*Body
	c := box.Cube()
	for el := a.bodies.Front(); el != nil; el = el.Next() {
		if c.IntersectsWith(el.Value.box.Cube()) {
			hits = append(hits, el.Value)
		}
	}
	return hits
}

// Grounded returns true if the body is resting on solid geometry, probing one unit
// below it. The body is not modified.
func (a *Area) Grounded(b *Body) bool {
	return a.TestCollideGeometry(b.box.MoveXYZ(0, 0, game.GroundProbe), b.layer)
}

// UseNear calls Use on every usable entity within reach of the user and returns how
// many were used.
func (a *Area) UseNear(ctx *Context, user Entity) int {
	b, ok := a.bodies.Get(user)
	if !ok {
		return 0
	}
	var n int
	for _, other := range a.TestCollideObjects(b.box.Inflate(game.UseReach, game.UseReach, game.UseReach)) {
		if other == b {
			continue
		}
		if u, ok := other.entity.(Usable); ok {
			u.Use(ctx, user)
			n++
		}
	}
	return n
}
