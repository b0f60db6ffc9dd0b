package utils

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// WriteLInt64 writes a little endian int64 to the buffer.
func WriteLInt64(buf *bytes.Buffer, v int64) {
	buf.Write(binary.LittleEndian.AppendUint64(nil, uint64(v)))
}

// LInt64 reads a little endian int64 from the 8 bytes passed.
func LInt64(b []byte) int64 {
	return int64(binary.LittleEndian.Uint64(b))
}

// WriteLInt32 writes a little endian int32 to the buffer.
func WriteLInt32(buf *bytes.Buffer, v int32) {
	buf.Write(binary.LittleEndian.AppendUint32(nil, uint32(v)))
}

// LInt32 reads a little endian int32 from the 4 bytes passed.
func LInt32(b []byte) int32 {
	return int32(binary.LittleEndian.Uint32(b))
}

// WriteVec64 writes the three components of the vector as little endian float64s.
func WriteVec64(buf *bytes.Buffer, v mgl64.Vec3) {
	for _, f := range v {
		WriteLInt64(buf, int64(math.Float64bits(f)))
	}
}

// Vec64 reads a vector written by WriteVec64 from the 24 bytes passed.
func Vec64(b []byte) mgl64.Vec3 {
	return mgl64.Vec3{
		math.Float64frombits(uint64(LInt64(b[0:8]))),
		math.Float64frombits(uint64(LInt64(b[8:16]))),
		math.Float64frombits(uint64(LInt64(b[16:24]))),
	}
}

// WriteVec32 writes the three components of the vector as little endian float32s.
func WriteVec32(buf *bytes.Buffer, v mgl32.Vec3) {
	for _, f := range v {
		WriteLInt32(buf, int32(math.Float32bits(f)))
	}
}

// Vec32 reads a vector written by WriteVec32 from the 12 bytes passed.
func Vec32(b []byte) mgl32.Vec3 {
	return mgl32.Vec3{
		math.Float32frombits(uint32(LInt32(b[0:4]))),
		math.Float32frombits(uint32(LInt32(b[4:8]))),
		math.Float32frombits(uint32(LInt32(b[8:12]))),
	}
}

// WriteBlockPos writes the coordinates of the block position as little endian int32s.
func WriteBlockPos(buf *bytes.Buffer, pos cube.Pos) {
	for _, c := range pos {
		WriteLInt32(buf, int32(c))
	}
}

// BlockPos reads a block position written by WriteBlockPos from the 12 bytes passed.
func BlockPos(b []byte) cube.Pos {
	return cube.Pos{int(LInt32(b[0:4])), int(LInt32(b[4:8])), int(LInt32(b[8:12]))}
}
