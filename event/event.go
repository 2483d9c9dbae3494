package event

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/platsim/internal"
	"github.com/oomph-ac/platsim/oerror"
	"github.com/oomph-ac/platsim/utils"
)

const EventsVersion = "1"

// Event is a notification emitted by an area. Time is the tick of the area that
// emitted it.
type Event interface {
	ID() byte
	Encode() []byte

	Time() int64
}

type NopEvent struct {
	EvTime int64
}

func (n NopEvent) Time() int64 {
	return n.EvTime
}

func WriteEventHeader(ev Event, buf *bytes.Buffer) {
	utils.WriteLUint64(buf, uint64(ev.ID()))
	utils.WriteLUint64(buf, uint64(ev.Time()))
}

func writeVec3(buf *bytes.Buffer, v mgl32.Vec3) {
	utils.WriteLFloat32(buf, v[0])
	utils.WriteLFloat32(buf, v[1])
	utils.WriteLFloat32(buf, v[2])
}

// encode runs the body writer against a pooled buffer and returns a copy of the
// result.
func encode(ev Event, body func(buf *bytes.Buffer)) []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	WriteEventHeader(ev, buf)
	body(buf)
	return bytes.Clone(buf.Bytes())
}

func DecodeEvents(dat []byte) ([]Event, error) {
	buf := bytes.NewBuffer(dat)
	events := []Event{}
	for buf.Len() > 0 {
		ev, err := DecodeEvent(buf)
		if err != nil {
			return events, oerror.New("error decoding event: %v", err)
		}

		events = append(events, ev)
	}

	return events, nil
}

func DecodeEvent(buf *bytes.Buffer) (Event, error) {
	r := &reader{buf: buf}
	id := byte(r.u64())
	t := int64(r.u64())
	if r.err != nil {
		return nil, oerror.New("error reading event header: %v", r.err)
	}

	var ev Event
	switch id {
	case EventIDBodyMove:
		e := BodyMove{}
		e.EvTime = t
		e.Area = r.u64()
		e.Entity = r.u64()
		e.Position = r.vec()
		ev = e
	case EventIDBodyWarp:
		e := BodyWarp{}
		e.EvTime = t
		e.Entity = r.u64()
		e.From = r.u64()
		e.To = r.u64()
		e.Exit = r.str()
		e.Position = r.vec()
		ev = e
	case EventIDSound:
		e := Sound{}
		e.EvTime = t
		e.Area = r.u64()
		e.Sound = r.str()
		e.Position = r.vec()
		ev = e
	case EventIDText:
		e := Text{}
		e.EvTime = t
		e.Area = r.u64()
		e.Text = r.str()
		ev = e
	default:
		return nil, oerror.New("unknown event: %d", id)
	}

	if r.err != nil {
		return nil, oerror.New("error decoding event %d: %v", id, r.err)
	}
	return ev, nil
}

// reader reads little-endian values from a buffer, remembering the first short read.
type reader struct {
	buf *bytes.Buffer
	err error
}

func (r *reader) next(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.buf.Len() < n {
		r.err = oerror.New("unexpected end of data: need %d bytes, have %d", n, r.buf.Len())
		return nil
	}
	return r.buf.Next(n)
}

func (r *reader) u64() uint64 {
	if b := r.next(8); b != nil {
		return binary.LittleEndian.Uint64(b)
	}
	return 0
}

func (r *reader) u32() uint32 {
	if b := r.next(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

func (r *reader) f32() float32 {
	return math.Float32frombits(r.u32())
}

func (r *reader) vec() mgl32.Vec3 {
	return mgl32.Vec3{r.f32(), r.f32(), r.f32()}
}

func (r *reader) str() string {
	n := int(r.u32())
	if b := r.next(n); b != nil {
		return string(b)
	}
	return ""
}

const (
	_ = iota
	EventIDBodyMove
	EventIDBodyWarp
	EventIDSound
	EventIDText
)
