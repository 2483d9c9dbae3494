package event

import (
	"bytes"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/platsim/utils"
)

// BodyMove is emitted after a body's box has been committed to a new position.
type BodyMove struct {
	NopEvent

	Area     uint64
	Entity   uint64
	Position mgl32.Vec3
}

func (BodyMove) ID() byte {
	return EventIDBodyMove
}

func (ev BodyMove) Encode() []byte {
	return encode(ev, func(buf *bytes.Buffer) {
		utils.WriteLUint64(buf, ev.Area)
		utils.WriteLUint64(buf, ev.Entity)
		writeVec3(buf, ev.Position)
	})
}

// BodyWarp is emitted once a body has been transferred to another area through an
// exit and settled there. Position is the body's origin in the destination area.
type BodyWarp struct {
	NopEvent

	Entity   uint64
	From     uint64
	To       uint64
	Exit     string
	Position mgl32.Vec3
}

func (BodyWarp) ID() byte {
	return EventIDBodyWarp
}

func (ev BodyWarp) Encode() []byte {
	return encode(ev, func(buf *bytes.Buffer) {
		utils.WriteLUint64(buf, ev.Entity)
		utils.WriteLUint64(buf, ev.From)
		utils.WriteLUint64(buf, ev.To)
		utils.WriteString(buf, ev.Exit)
		writeVec3(buf, ev.Position)
	})
}
