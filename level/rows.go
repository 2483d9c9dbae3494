package level

import "github.com/oomph-ac/platsim/geometry"

// Solid is the tile character that marks a solid tile in a layer's rows.
const Solid = '#'

// MergeRows turns an ASCII tile map into rectangles. Runs of solid tiles on a row
// become one rectangle, then rectangles spanning the same columns on consecutive rows
// are merged vertically.
func MergeRows(rows []string, tileSize float32) []geometry.Rect {
	type run struct {
		start, end int
		top        int
		merged     bool
	}
	var (
		out  []geometry.Rect
		open []*run
	)
	flush := func(r *run, bottom int) {
		out = append(out, geometry.Rect{
			X: float32(r.start) * tileSize,
			Y: float32(r.top) * tileSize,
			W: float32(r.end-r.start) * tileSize,
			H: float32(bottom-r.top) * tileSize,
		})
	}

	for y, row := range rows {
		var next []*run
		for x := 0; x < len(row); {
			if row[x] != Solid {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] == Solid {
				x++
			}
			r := &run{start: start, end: x, top: y}
			for _, o := range open {
				if !o.merged && o.start == start && o.end == x {
					o.merged, r = true, o
					break
				}
			}
			next = append(next, r)
		}
		for _, o := range open {
			if !o.merged {
				flush(o, y)
			}
		}
		for _, r := range next {
			r.merged = false
		}
		open = next
	}
	for _, o := range open {
		flush(o, len(rows))
	}
	return out
}
