package event

import (
	"bytes"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/platsim/utils"
)

// Sound asks an audio collaborator to play a sound at a position.
type Sound struct {
	NopEvent

	Area     uint64
	Sound    string
	Position mgl32.Vec3
}

func (Sound) ID() byte {
	return EventIDSound
}

func (ev Sound) Encode() []byte {
	return encode(ev, func(buf *bytes.Buffer) {
		utils.WriteLUint64(buf, ev.Area)
		utils.WriteString(buf, ev.Sound)
		writeVec3(buf, ev.Position)
	})
}

// Text is a line of dialogue or narration for the message log.
type Text struct {
	NopEvent

	Area uint64
	Text string
}

func (Text) ID() byte {
	return EventIDText
}

func (ev Text) Encode() []byte {
	return encode(ev, func(buf *bytes.Buffer) {
		utils.WriteLUint64(buf, ev.Area)
		utils.WriteString(buf, ev.Text)
	})
}
