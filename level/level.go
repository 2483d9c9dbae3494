package level

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/platsim/game"
	"github.com/oomph-ac/platsim/geometry"
	"github.com/oomph-ac/platsim/oerror"
	"github.com/oomph-ac/platsim/worker"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Level is the document an area is built from. It may be written as YAML or TOML.
type Level struct {
	GUID       uint64      `yaml:"guid" toml:"guid"`
	Name       string      `yaml:"name" toml:"name"`
	TileSize   float32     `yaml:"tile_size" toml:"tile_size"`
	Extent     Rect        `yaml:"extent" toml:"extent"`
	Layers     []Layer     `yaml:"layers" toml:"layers"`
	Exits      []Exit      `yaml:"exits" toml:"exits"`
	Surfaces   []Surface   `yaml:"surfaces" toml:"surfaces"`
	Placements []Placement `yaml:"placements" toml:"placements"`
}

// Rect is a rectangle in the level plane: X is the column and Y the row, growing
// downward.
type Rect struct {
	X float32 `yaml:"x" toml:"x"`
	Y float32 `yaml:"y" toml:"y"`
	W float32 `yaml:"w" toml:"w"`
	H float32 `yaml:"h" toml:"h"`
}

// Rect converts r to a geometry rectangle.
func (r Rect) Rect() geometry.Rect {
	return geometry.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Layer holds the static geometry of one collision layer. Rows is an optional tile
// map: every '#' is a solid tile of the level's tile size, row zero at the top.
type Layer struct {
	Index  int      `yaml:"index" toml:"index"`
	Solids []Rect   `yaml:"solids" toml:"solids"`
	Rows   []string `yaml:"rows" toml:"rows"`
}

// Exit is a portal tile. Exits with the same ID in two levels lead to each other.
type Exit struct {
	ID     string    `yaml:"id" toml:"id"`
	Anchor []float32 `yaml:"anchor" toml:"anchor"`
}

// Surface tags a rectangle of floor with the sound played when walking on it.
type Surface struct {
	Sound string `yaml:"sound" toml:"sound"`
	Rect  Rect   `yaml:"rect" toml:"rect"`
}

// Placement puts a registered entity into the level.
type Placement struct {
	GUID   uint64    `yaml:"guid" toml:"guid"`
	Origin []float32 `yaml:"origin" toml:"origin"`
	// Size overrides the size reported by the entity, if set.
	Size   []float32 `yaml:"size" toml:"size"`
	Facing string    `yaml:"facing" toml:"facing"`
	Layer  int       `yaml:"layer" toml:"layer"`
}

// AnchorVec returns the anchor of the exit as a vector.
func (e Exit) AnchorVec() mgl32.Vec3 {
	return vec(e.Anchor)
}

// OriginVec returns the origin of the placement as a vector.
func (p Placement) OriginVec() mgl32.Vec3 {
	return vec(p.Origin)
}

// SizeVec returns the size override of the placement and true, or false if the
// placement has none.
func (p Placement) SizeVec() (mgl32.Vec3, bool) {
	if len(p.Size) == 0 {
		return mgl32.Vec3{}, false
	}
	return vec(p.Size), true
}

func vec(v []float32) mgl32.Vec3 {
	var out mgl32.Vec3
	copy(out[:], v)
	return out
}

// Load reads a level file. The format is picked from the extension: .yaml and .yml
// files are decoded as YAML, .toml files as TOML.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lvl, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return lvl, nil
}

// Parse decodes a level document in the format named by ext and validates it.
func Parse(data []byte, ext string) (*Level, error) {
	lvl := &Level{TileSize: game.TileSize}
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, lvl); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, lvl); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, oerror.New("unsupported level format %q", ext)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

// LoadAll loads every level file passed on the worker pool. The levels are returned
// in the order of the paths. The first failing path, in that order, is reported.
func LoadAll(paths ...string) ([]*Level, error) {
	levels := make([]*Level, len(paths))
	errs := make([]error, len(paths))
	jobs := make([]func(), len(paths))
	for i, path := range paths {
		i, path := i, path
		jobs[i] = func() {
			levels[i], errs[i] = Load(path)
		}
	}
	worker.Run(jobs...)

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return levels, nil
}

// Validate returns an error if the level cannot be built into an area.
func (l *Level) Validate() error {
	if l.GUID == 0 {
		return oerror.New("level %q has no guid", l.Name)
	}
	if l.TileSize <= 0 {
		return oerror.New("level %d: tile size must be positive, got %v", l.GUID, l.TileSize)
	}
	if err := checkRect(l.Extent); err != nil {
		return fmt.Errorf("level %d: extent: %w", l.GUID, err)
	}

	layers := make(map[int]struct{}, len(l.Layers))
	for _, layer := range l.Layers {
		if _, ok := layers[layer.Index]; ok {
			return oerror.New("level %d: duplicate layer %d", l.GUID, layer.Index)
		}
		layers[layer.Index] = struct{}{}
		for _, r := range layer.Solids {
			if err := checkRect(r); err != nil {
				return fmt.Errorf("level %d: layer %d: %w", l.GUID, layer.Index, err)
			}
		}
	}

	exits := make(map[string]struct{}, len(l.Exits))
	for _, ex := range l.Exits {
		if ex.ID == "" {
			return oerror.New("level %d: exit without id", l.GUID)
		}
		if _, ok := exits[ex.ID]; ok {
			return oerror.New("level %d: duplicate exit %q", l.GUID, ex.ID)
		}
		exits[ex.ID] = struct{}{}
		if len(ex.Anchor) != 3 {
			return oerror.New("level %d: exit %q: anchor needs 3 components, got %d", l.GUID, ex.ID, len(ex.Anchor))
		}
	}

	for _, s := range l.Surfaces {
		if s.Sound == "" {
			return oerror.New("level %d: surface without sound", l.GUID)
		}
		if err := checkRect(s.Rect); err != nil {
			return fmt.Errorf("level %d: surface %q: %w", l.GUID, s.Sound, err)
		}
	}

	placed := make(map[uint64]struct{}, len(l.Placements))
	for _, p := range l.Placements {
		if p.GUID == 0 {
			return oerror.New("level %d: placement without guid", l.GUID)
		}
		if _, ok := placed[p.GUID]; ok {
			return oerror.New("level %d: entity %d placed twice", l.GUID, p.GUID)
		}
		placed[p.GUID] = struct{}{}
		if len(p.Origin) != 3 {
			return oerror.New("level %d: entity %d: origin needs 3 components, got %d", l.GUID, p.GUID, len(p.Origin))
		}
		if size, ok := p.SizeVec(); ok {
			if len(p.Size) != 3 {
				return oerror.New("level %d: entity %d: size needs 3 components, got %d", l.GUID, p.GUID, len(p.Size))
			}
			if size.X() < 0 || size.Y() < 0 || size.Z() < 0 {
				return oerror.New("level %d: entity %d: negative size %v", l.GUID, p.GUID, size)
			}
		}
		if p.Facing != "" {
			if _, err := game.CardinalAngle(p.Facing); err != nil {
				return fmt.Errorf("level %d: entity %d: %w", l.GUID, p.GUID, err)
			}
		}
	}
	return nil
}

func checkRect(r Rect) error {
	if r.W < 0 || r.H < 0 {
		return oerror.New("negative rectangle size %vx%v", r.W, r.H)
	}
	return nil
}

// LayerIndices returns the indices of the layers in the order they are declared.
func (l *Level) LayerIndices() []int {
	out := make([]int, len(l.Layers))
	for i, layer := range l.Layers {
		out[i] = layer.Index
	}
	return out
}

// SolidRects returns the solid rectangles of a layer: its explicit solids followed
// by the merged tiles of its rows.
func (l *Level) SolidRects(index int) []geometry.Rect {
	for _, layer := range l.Layers {
		if layer.Index != index {
			continue
		}
		out := make([]geometry.Rect, 0, len(layer.Solids))
		for _, r := range layer.Solids {
			out = append(out, r.Rect())
		}
		return append(out, MergeRows(layer.Rows, l.TileSize)...)
	}
	return nil
}
