package event

import (
	"bytes"
	"encoding/binary"

	"github.com/oomph-ac/entsim/internal"
	"github.com/oomph-ac/entsim/oerror"
	"github.com/oomph-ac/entsim/utils"
)

// Event is produced by the simulation during a tick and handed to handlers once the tick is flushed.
type Event interface {
	ID() byte
	Encode() []byte

	// Tick returns the tick the event was produced on.
	Tick() int64
}

type NopEvent struct {
	EvTick int64
}

func (n NopEvent) Tick() int64 {
	return n.EvTick
}

// Stamp sets the tick the event was produced on.
func (n *NopEvent) Stamp(tick int64) {
	n.EvTick = tick
}

func WriteEventHeader(ev Event, buf *bytes.Buffer) {
	binary.Write(buf, binary.LittleEndian, uint64(ev.ID()))
	binary.Write(buf, binary.LittleEndian, uint64(ev.Tick()))
}

// encode runs f on a pooled buffer after writing the header of the event, and returns a copy of the
// bytes written.
func encode(ev Event, f func(buf *bytes.Buffer)) []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	WriteEventHeader(ev, buf)
	f(buf)
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
	if buf.Len() < 16 {
		return nil, oerror.New("event header too short (%d bytes)", buf.Len())
	}
	id := byte(binary.LittleEndian.Uint64(buf.Next(8)))
	t := int64(binary.LittleEndian.Uint64(buf.Next(8)))

	if size, ok := payloadSizes[id]; !ok {
		return nil, oerror.New("unknown event: %d", id)
	} else if buf.Len() < size {
		return nil, oerror.New("event %d truncated: need %d bytes, have %d", id, size, buf.Len())
	}

	switch id {
	case EventIDServerTick:
		ev := TickEvent{}
		ev.EvTick = t
		ev.Bodies = utils.LInt32(buf.Next(4))
		ev.Active = utils.LInt32(buf.Next(4))
		return ev, nil
	case EventIDBlockCollision:
		ev := BlockCollisionEvent{}
		ev.EvTick = t
		ev.Entity = uint64(utils.LInt64(buf.Next(8)))
		ev.Position = utils.Vec64(buf.Next(24))
		ev.PreviousVelocity = utils.Vec32(buf.Next(12))
		ev.Block = utils.BlockPos(buf.Next(12))
		face, _ := buf.ReadByte()
		f, err := faceFromByte(face)
		if err != nil {
			return nil, err
		}
		ev.Face = f
		return ev, nil
	case EventIDEntityCollision:
		ev := EntityCollisionEvent{}
		ev.EvTick = t
		ev.Entity = uint64(utils.LInt64(buf.Next(8)))
		ev.Other = uint64(utils.LInt64(buf.Next(8)))
		return ev, nil
	default:
		ev := PhysicsStoppedEvent{}
		ev.EvTick = t
		ev.Entity = uint64(utils.LInt64(buf.Next(8)))
		reason, _ := buf.ReadByte()
		ev.Reason = StopReason(reason)
		return ev, nil
	}
}

const (
	_ = iota
	EventIDServerTick
	EventIDBlockCollision
	EventIDEntityCollision
	EventIDPhysicsStopped
)

// payloadSizes holds the size of the body of every event, following its header.
var payloadSizes = map[byte]int{
	EventIDServerTick:      8,
	EventIDBlockCollision:  8 + 24 + 12 + 12 + 1,
	EventIDEntityCollision: 16,
	EventIDPhysicsStopped:  9,
}
