package world

import (
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/entsim/game"
	"github.com/oomph-ac/entsim/utils/collisions"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sasha-s/go-deadlock"
)

// World is a sparse store of dragonfly blocks, grouped by chunk. Only blocks in loaded chunks have
// geometry; a chunk is loaded explicitly or by setting a block in it. World may be read concurrently and is
// expected to be written between simulation ticks.
type World struct {
	rng          cube.Range
	lastCleanPos protocol.ChunkPos
	cleaned      bool

	chunks map[protocol.ChunkPos]map[cube.Pos]world.Block

	logger *slog.Logger

	deadlock.RWMutex
}

// New creates an empty world with the height range of the overworld. If logger is nil, slog.Default() is
// used.
func New(logger *slog.Logger) *World {
	if logger == nil {
		logger = slog.Default()
	}
	return &World{
		rng:    world.Overworld.Range(),
		chunks: make(map[protocol.ChunkPos]map[cube.Pos]world.Block),
		logger: logger,
	}
}

// ChunkPosOf returns the position of the chunk the block position is in.
func ChunkPosOf(pos cube.Pos) protocol.ChunkPos {
	return protocol.ChunkPos{int32(pos[0]) >> 4, int32(pos[2]) >> 4}
}

// LoadChunk loads an empty chunk at the position passed. Loading a chunk that is already loaded does
// nothing.
func (w *World) LoadChunk(pos protocol.ChunkPos) {
	w.Lock()
	defer w.Unlock()

	if _, ok := w.chunks[pos]; !ok {
		w.chunks[pos] = make(map[cube.Pos]world.Block)
	}
}

// UnloadChunk removes a chunk and all blocks in it.
func (w *World) UnloadChunk(pos protocol.ChunkPos) {
	w.Lock()
	defer w.Unlock()
	delete(w.chunks, pos)
}

// ChunkLoaded returns true if the chunk at the position passed is loaded.
func (w *World) ChunkLoaded(pos protocol.ChunkPos) bool {
	w.RLock()
	defer w.RUnlock()

	_, ok := w.chunks[pos]
	return ok
}

// Block returns the block at the position passed. Positions outside the height range of the world or in
// unloaded chunks hold air.
func (w *World) Block(pos cube.Pos) world.Block {
	b, _ := w.block(pos)
	return b
}

// block returns the block at the position passed, and false if its chunk is not loaded.
func (w *World) block(pos cube.Pos) (world.Block, bool) {
	w.RLock()
	defer w.RUnlock()

	c, ok := w.chunks[ChunkPosOf(pos)]
	if !ok {
		return block.Air{}, false
	}
	if pos.OutOfBounds(w.rng) {
		return block.Air{}, true
	}
	if b, ok := c[pos]; ok {
		return b, true
	}
	return block.Air{}, true
}

// SetBlock sets the block at the position passed, loading its chunk if needed. Setting air removes the
// block. Positions outside the height range of the world are ignored.
func (w *World) SetBlock(pos cube.Pos, b world.Block) {
	if pos.OutOfBounds(w.rng) {
		return
	}
	chunkPos := ChunkPosOf(pos)

	w.Lock()
	defer w.Unlock()

	c, ok := w.chunks[chunkPos]
	if !ok {
		c = make(map[cube.Pos]world.Block)
		w.chunks[chunkPos] = c
	}
	if _, air := b.(block.Air); air {
		delete(c, pos)
		return
	}
	c[pos] = b
}

// Fill sets every block in the inclusive range between the positions passed.
func (w *World) Fill(from, to cube.Pos, b world.Block) {
	for x := min(from[0], to[0]); x <= max(from[0], to[0]); x++ {
		for y := min(from[1], to[1]); y <= max(from[1], to[1]); y++ {
			for z := min(from[2], to[2]); z <= max(from[2], to[2]); z++ {
				w.SetBlock(cube.Pos{x, y, z}, b)
			}
		}
	}
}

// BlockAt returns the geometry of the block at the position passed, and false if its chunk is not loaded.
// The boxes are recomputed on every call, so a block changed between ticks is seen on the next one.
func (w *World) BlockAt(pos cube.Pos) (collisions.Block, bool) {
	b, ok := w.block(pos)
	if !ok {
		return nil, false
	}
	g := Geometry{block: b}
	if g.Air() {
		return g, true
	}

	// The world must not be locked here: models of blocks like stairs and fences read their neighbours.
	bbs := BlockCollisions(b, pos, w)
	g.boxes = make([]game.AABB, len(bbs))
	for i, bb := range bbs {
		g.boxes[i] = game.FromCube(bb)
	}
	return g, true
}

// CleanChunks unloads every chunk further than radius chunks away from the position passed.
func (w *World) CleanChunks(radius int32, pos protocol.ChunkPos) {
	w.Lock()
	defer w.Unlock()

	if w.cleaned && pos == w.lastCleanPos {
		return
	}
	w.lastCleanPos, w.cleaned = pos, true

	for chunkPos := range w.chunks {
		if !chunkInRange(radius, chunkPos, pos) {
			delete(w.chunks, chunkPos)
			w.logger.Debug("unloaded chunk out of range", "chunkPos", chunkPos, "radius", radius, "pos", pos)
		}
	}
}

// chunkInRange returns true if the chunk position is within the given radius of the chunk position.
func chunkInRange(radius int32, chunkPos, pos protocol.ChunkPos) bool {
	diffX, diffZ := pos[0]-chunkPos[0], pos[1]-chunkPos[1]
	dist := math32.Sqrt(float32(diffX*diffX) + float32(diffZ*diffZ))

	return int32(dist) <= radius
}
