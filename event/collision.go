package event

import (
	"bytes"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/entsim/oerror"
	"github.com/oomph-ac/entsim/utils"
)

// BlockCollisionEvent is produced when a body hits a block on a face it gets stuck on.
type BlockCollisionEvent struct {
	NopEvent

	Entity uint64
	// Position is the position of the body after it was moved up to the block.
	Position mgl64.Vec3
	// PreviousVelocity is the velocity the body had before any collision was resolved in the tick.
	PreviousVelocity mgl32.Vec3
	Block            cube.Pos
	// Face is the face of the block that was hit.
	Face cube.Face
}

func (BlockCollisionEvent) ID() byte {
	return EventIDBlockCollision
}

func (ev BlockCollisionEvent) Encode() []byte {
	return encode(ev, func(buf *bytes.Buffer) {
		utils.WriteLInt64(buf, int64(ev.Entity))
		utils.WriteVec64(buf, ev.Position)
		utils.WriteVec32(buf, ev.PreviousVelocity)
		utils.WriteBlockPos(buf, ev.Block)
		buf.WriteByte(byte(ev.Face))
	})
}

// EntityCollisionEvent is produced when the swept collider of Entity touches the hitbox of Other. A pair of
// bodies produces at most one event per tick.
type EntityCollisionEvent struct {
	NopEvent

	Entity uint64
	Other  uint64
}

func (EntityCollisionEvent) ID() byte {
	return EventIDEntityCollision
}

func (ev EntityCollisionEvent) Encode() []byte {
	return encode(ev, func(buf *bytes.Buffer) {
		utils.WriteLInt64(buf, int64(ev.Entity))
		utils.WriteLInt64(buf, int64(ev.Other))
	})
}

// Pair returns the handles of both bodies, lowest first.
func (ev EntityCollisionEvent) Pair() [2]uint64 {
	if ev.Other < ev.Entity {
		return [2]uint64{ev.Other, ev.Entity}
	}
	return [2]uint64{ev.Entity, ev.Other}
}

// StopReason is the reason a body stopped being simulated.
type StopReason byte

const (
	// StopExpired means the physics timer of the body ran out.
	StopExpired StopReason = iota + 1
	// StopStuck means the body hit a block on a face it gets stuck on.
	StopStuck
)

func (r StopReason) String() string {
	switch r {
	case StopExpired:
		return "expired"
	case StopStuck:
		return "stuck"
	default:
		return "unknown"
	}
}

// PhysicsStoppedEvent is produced when a body stops being simulated.
type PhysicsStoppedEvent struct {
	NopEvent

	Entity uint64
	Reason StopReason
}

func (PhysicsStoppedEvent) ID() byte {
	return EventIDPhysicsStopped
}

func (ev PhysicsStoppedEvent) Encode() []byte {
	return encode(ev, func(buf *bytes.Buffer) {
		utils.WriteLInt64(buf, int64(ev.Entity))
		buf.WriteByte(byte(ev.Reason))
	})
}

func faceFromByte(b byte) (cube.Face, error) {
	if int(b) >= len(cube.Faces()) {
		return 0, oerror.New("invalid block face %d", b)
	}
	return cube.Face(b), nil
}
