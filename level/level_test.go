package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/platsim/geometry"
)

const hallYAML = `
guid: 2
name: hall
tile_size: 16
extent: {x: 0, y: 0, w: 320, h: 160}
layers:
  - index: 0
    solids: [{x: 0, y: 144, w: 320, h: 16}]
    rows: ["....", "##..", "##.#"]
exits:
  - {id: door-a, anchor: [0, 32, 144]}
surfaces:
  - {sound: stone.ogg, rect: {x: 0, y: 144, w: 320, h: 16}}
placements:
  - {guid: 10, origin: [0, 40, 144], size: [4, 8, 16], facing: east}
`

const cellarTOML = `
guid = 3
name = "cellar"

[extent]
x = 0.0
y = 0.0
w = 160.0
h = 160.0

[[layers]]
index = 0
rows = ["####"]

[[exits]]
id = "door-a"
anchor = [0.0, 16.0, 128.0]
`

func TestParseYAML(t *testing.T) {
	lvl, err := Parse([]byte(hallYAML), ".yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if lvl.GUID != 2 || lvl.Name != "hall" || lvl.TileSize != 16 {
		t.Fatalf("unexpected header %+v", lvl)
	}
	if lvl.Extent.Rect() != (geometry.Rect{W: 320, H: 160}) {
		t.Fatalf("unexpected extent %+v", lvl.Extent)
	}
	if len(lvl.Exits) != 1 || lvl.Exits[0].AnchorVec() != (mgl32.Vec3{0, 32, 144}) {
		t.Fatalf("unexpected exits %+v", lvl.Exits)
	}
	p := lvl.Placements[0]
	size, ok := p.SizeVec()
	if !ok || size != (mgl32.Vec3{4, 8, 16}) || p.OriginVec() != (mgl32.Vec3{0, 40, 144}) || p.Facing != "east" {
		t.Fatalf("unexpected placement %+v", p)
	}

	solids := lvl.SolidRects(0)
	want := []geometry.Rect{
		{X: 0, Y: 144, W: 320, H: 16},
		{X: 48, Y: 32, W: 16, H: 16},
		{X: 0, Y: 16, W: 32, H: 32},
	}
	if len(solids) != len(want) {
		t.Fatalf("expected %d solids, got %+v", len(want), solids)
	}
	for _, w := range want {
		found := false
		for _, s := range solids {
			if s == w {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected solid %+v in %+v", w, solids)
		}
	}
	if lvl.SolidRects(5) != nil {
		t.Fatalf("expected no solids for a missing layer")
	}
}

func TestParseTOML(t *testing.T) {
	lvl, err := Parse([]byte(cellarTOML), "toml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if lvl.GUID != 3 || lvl.TileSize != 16 {
		t.Fatalf("expected guid 3 with the default tile size, got %+v", lvl)
	}
	if got := lvl.SolidRects(0); len(got) != 1 || got[0] != (geometry.Rect{W: 64, H: 16}) {
		t.Fatalf("unexpected solids %+v", got)
	}
	if lvl.Exits[0].AnchorVec() != (mgl32.Vec3{0, 16, 128}) {
		t.Fatalf("unexpected anchor %v", lvl.Exits[0].AnchorVec())
	}
}

func TestMergeRows(t *testing.T) {
	rows := []string{
		"###.",
		"###.",
		"#..#",
		"...#",
	}
	got := MergeRows(rows, 1)
	want := map[geometry.Rect]bool{
		{X: 0, Y: 0, W: 3, H: 2}: true,
		{X: 0, Y: 2, W: 1, H: 1}: true,
		{X: 3, Y: 2, W: 1, H: 2}: true,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rects, got %+v", len(want), got)
	}
	for _, r := range got {
		if !want[r] {
			t.Fatalf("unexpected rect %+v in %+v", r, got)
		}
	}
	if MergeRows(nil, 16) != nil {
		t.Fatalf("expected no rects for an empty map")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"negative solid":  "guid: 1\nlayers: [{index: 0, solids: [{x: 0, y: 0, w: -1, h: 4}]}]",
		"duplicate exit":  "guid: 1\nexits: [{id: a, anchor: [0, 0, 0]}, {id: a, anchor: [0, 16, 0]}]",
		"short anchor":    "guid: 1\nexits: [{id: a, anchor: [0, 0]}]",
		"missing guid":    "name: nowhere",
		"negative size":   "guid: 1\nplacements: [{guid: 4, origin: [0, 0, 0], size: [1, -1, 1]}]",
		"unknown facing":  "guid: 1\nplacements: [{guid: 4, origin: [0, 0, 0], facing: up}]",
		"placed twice":    "guid: 1\nplacements: [{guid: 4, origin: [0, 0, 0]}, {guid: 4, origin: [0, 0, 0]}]",
		"duplicate layer": "guid: 1\nlayers: [{index: 0}, {index: 0}]",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc), "yml"); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
	if _, err := Parse([]byte(hallYAML), "json"); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	hall := filepath.Join(dir, "hall.yaml")
	cellar := filepath.Join(dir, "cellar.toml")
	if err := os.WriteFile(hall, []byte(hallYAML), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(cellar, []byte(cellarTOML), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	levels, err := LoadAll(hall, cellar)
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(levels) != 2 || levels[0].Name != "hall" || levels[1].Name != "cellar" {
		t.Fatalf("levels out of order: %+v", levels)
	}

	if _, err := LoadAll(hall, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}
