package geometry

import (
	"github.com/chewxy/math32"
	"github.com/solarlune/resolv"
	"golang.org/x/exp/slices"
)

// Entry is a rectangle stored in an Index together with an arbitrary value, such as
// an exit identifier or a sound name.
type Entry struct {
	Rect  Rect
	Value any
}

// Index is a static spatial index over rectangles. It is built once and never
// modified afterwards. Each rectangle is registered in every grid cell its footprint
// touches, so a query only has to look at the cells under the probe.
type Index struct {
	space   *resolv.Space
	entries []Entry
	bounds  Rect
	cell    int
}

// NewIndex builds an index over the rectangles passed, using square cells of the
// given size. Empty rectangles are kept but can never be hit.
func NewIndex(rects []Rect, cellSize int) *Index {
	entries := make([]Entry, len(rects))
	for i, r := range rects {
		entries[i] = Entry{Rect: r}
	}
	return NewEntryIndex(entries, cellSize)
}

// NewEntryIndex builds an index over the entries passed.
func NewEntryIndex(entries []Entry, cellSize int) *Index {
	if cellSize <= 0 {
		cellSize = 16
	}
	idx := &Index{entries: entries, cell: cellSize}
	if len(entries) == 0 {
		return idx
	}

	idx.bounds = entries[0].Rect
	for _, e := range entries[1:] {
		idx.bounds = idx.bounds.Union(e.Rect)
	}
	// Snap the grid origin onto a cell boundary so footprints stay integral.
	idx.bounds.X = math32.Floor(idx.bounds.X/float32(cellSize)) * float32(cellSize)
	idx.bounds.Y = math32.Floor(idx.bounds.Y/float32(cellSize)) * float32(cellSize)

	cols, rows := idx.cellCoords(idx.bounds.X+idx.bounds.W, idx.bounds.Y+idx.bounds.H)
	idx.space = resolv.NewSpace((cols+2)*cellSize, (rows+2)*cellSize, cellSize, cellSize)

	for i, e := range entries {
		x0 := math32.Floor(e.Rect.X - idx.bounds.X)
		y0 := math32.Floor(e.Rect.Y - idx.bounds.Y)
		x1 := math32.Ceil(e.Rect.Right() - idx.bounds.X)
		y1 := math32.Ceil(e.Rect.Bottom() - idx.bounds.Y)
		obj := resolv.NewObject(float64(x0), float64(y0), float64(max(x1-x0, 1)), float64(max(y1-y0, 1)), "static")
		obj.Data = i
		idx.space.Add(obj)
	}
	return idx
}

// Len returns the number of rectangles stored in the index.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}

// Entries returns every entry stored in the index, in build order.
func (idx *Index) Entries() []Entry {
	if idx == nil {
		return nil
	}
	return idx.entries
}

// Query returns every entry whose rectangle overlaps the probe, in build order.
func (idx *Index) Query(probe Rect) []Entry {
	hits := idx.query(probe, false)
	if len(hits) == 0 {
		return nil
	}
	out := make([]Entry, len(hits))
	for i, h := range hits {
		out[i] = idx.entries[h]
	}
	return out
}

// Hit returns true if any stored rectangle overlaps the probe.
func (idx *Index) Hit(probe Rect) bool {
	return len(idx.query(probe, true)) > 0
}

func (idx *Index) query(probe Rect, first bool) []int {
	if idx == nil || idx.space == nil || probe.Empty() {
		return nil
	}

	cx0, cy0 := idx.cellCoords(probe.X, probe.Y)
	cx1, cy1 := idx.cellCoords(probe.Right(), probe.Bottom())

	var (
		hits []int
		seen map[int]struct{}
	)
	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			cell := idx.space.Cell(cx, cy)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				i := obj.Data.(int)
				if _, ok := seen[i]; ok {
					continue
				}
				if seen == nil {
					seen = make(map[int]struct{})
				}
				seen[i] = struct{}{}

				if !idx.entries[i].Rect.Intersects(probe) {
					continue
				}
				hits = append(hits, i)
				if first {
					return hits
				}
			}
		}
	}
	slices.Sort(hits)
	return hits
}

// cellCoords converts an absolute position into grid cell coordinates.
func (idx *Index) cellCoords(x, y float32) (int, int) {
	size := float32(idx.cell)
	return int(math32.Floor((x - idx.bounds.X) / size)), int(math32.Floor((y - idx.bounds.Y) / size))
}
