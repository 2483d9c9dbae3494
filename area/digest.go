package area

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
	"golang.org/x/exp/slices"
)

// Digest hashes the spatial state of every body, ordered by GUID. Two areas holding
// the same entities in the same state produce the same digest.
func (a *Area) Digest() uint64 {
	bodies := a.Bodies()
	slices.SortFunc(bodies, func(x, y *Body) int {
		gx, gy := x.entity.GUID(), y.entity.GUID()
		switch {
		case gx < gy:
			return -1
		case gx > gy:
			return 1
		}
		return 0
	})

	buf := make([]byte, 0, len(bodies)*53)
	for _, b := range bodies {
		buf = binary.LittleEndian.AppendUint64(buf, b.entity.GUID())
		origin, size := b.box.Origin(), b.box.Size()
		for _, f := range []float32{
			origin[0], origin[1], origin[2],
			size[0], size[1], size[2],
			b.accel[0], b.accel[1],
			b.orientation,
		} {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
		}
		var flags byte
		if b.falling {
			flags |= 1
		}
		buf = append(buf, flags)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(b.layer))
	}
	return xxh3.Hash(buf)
}
