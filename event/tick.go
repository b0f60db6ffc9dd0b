package event

import (
	"bytes"

	"github.com/oomph-ac/entsim/utils"
)

// TickEvent marks the end of a flushed tick in a journal. Events of the tick are appended before it.
type TickEvent struct {
	NopEvent

	// Bodies is the amount of bodies in the space, Active the amount of them that were simulated.
	Bodies int32
	Active int32
}

func (TickEvent) ID() byte {
	return EventIDServerTick
}

func (ev TickEvent) Encode() []byte {
	return encode(ev, func(buf *bytes.Buffer) {
		utils.WriteLInt32(buf, ev.Bodies)
		utils.WriteLInt32(buf, ev.Active)
	})
}
