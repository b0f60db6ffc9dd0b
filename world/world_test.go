package world

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/block/model"
	"github.com/oomph-ac/entsim/game"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

func TestBlockAtUnloadedChunk(t *testing.T) {
	w := New(nil)
	if _, ok := w.BlockAt(cube.Pos{0, 0, 0}); ok {
		t.Fatalf("expected no geometry in an unloaded chunk")
	}
	if _, air := w.Block(cube.Pos{0, 0, 0}).(block.Air); !air {
		t.Fatalf("expected air in an unloaded chunk")
	}

	w.LoadChunk(protocol.ChunkPos{0, 0})
	g, ok := w.BlockAt(cube.Pos{0, 0, 0})
	if !ok || !g.Air() || len(g.Boxes()) != 0 {
		t.Fatalf("expected loaded air without boxes")
	}
}

func TestUnloadChunk(t *testing.T) {
	w := New(nil)
	w.SetBlock(cube.Pos{3, 64, 3}, block.Stone{})
	w.SetBlock(cube.Pos{20, 64, 3}, block.Stone{})

	w.UnloadChunk(protocol.ChunkPos{0, 0})
	if w.ChunkLoaded(protocol.ChunkPos{0, 0}) {
		t.Fatalf("expected the chunk to be unloaded")
	}
	if _, ok := w.BlockAt(cube.Pos{3, 64, 3}); ok {
		t.Fatalf("expected no geometry once the chunk is unloaded")
	}
	if g, ok := w.BlockAt(cube.Pos{20, 64, 3}); !ok || g.Air() {
		t.Fatalf("expected other chunks to keep their blocks")
	}

	w.LoadChunk(protocol.ChunkPos{0, 0})
	if g, ok := w.BlockAt(cube.Pos{3, 64, 3}); !ok || !g.Air() {
		t.Fatalf("expected a reloaded chunk to be empty")
	}
}

func TestSetBlockLoadsChunk(t *testing.T) {
	w := New(nil)
	w.SetBlock(cube.Pos{-1, 64, 17}, block.Stone{})
	if !w.ChunkLoaded(protocol.ChunkPos{-1, 1}) {
		t.Fatalf("expected the chunk of the block to be loaded")
	}

	g, ok := w.BlockAt(cube.Pos{-1, 64, 17})
	if !ok || g.Air() {
		t.Fatalf("expected stone geometry")
	}
	boxes := g.Boxes()
	if len(boxes) != 1 || boxes[0] != game.Box(0, 0, 0, 1, 1, 1) {
		t.Fatalf("expected a full block box, got %v", boxes)
	}

	w.SetBlock(cube.Pos{-1, 64, 17}, block.Air{})
	if g, _ := w.BlockAt(cube.Pos{-1, 64, 17}); !g.Air() {
		t.Fatalf("expected setting air to remove the block")
	}
}

func TestSlabGeometry(t *testing.T) {
	w := New(nil)
	w.SetBlock(cube.Pos{0, 0, 0}, block.Slab{Block: block.Stone{}})
	w.SetBlock(cube.Pos{1, 0, 0}, block.Slab{Block: block.Stone{}, Top: true})

	g, _ := w.BlockAt(cube.Pos{0, 0, 0})
	if boxes := g.Boxes(); len(boxes) != 1 || boxes[0].Max()[1] != 0.5 {
		t.Fatalf("expected a bottom slab box, got %v", boxes)
	}
	g, _ = w.BlockAt(cube.Pos{1, 0, 0})
	if boxes := g.Boxes(); len(boxes) != 1 || boxes[0].Min()[1] != 0.5 {
		t.Fatalf("expected a top slab box, got %v", boxes)
	}
}

func TestOutOfRange(t *testing.T) {
	w := New(nil)
	w.SetBlock(cube.Pos{0, -1000, 0}, block.Stone{})
	if w.ChunkLoaded(protocol.ChunkPos{0, 0}) {
		t.Fatalf("expected blocks outside the height range to be ignored")
	}
}

func TestFillAndClean(t *testing.T) {
	w := New(nil)
	w.Fill(cube.Pos{0, 0, 0}, cube.Pos{40, 0, 0}, block.Stone{})
	for _, c := range []protocol.ChunkPos{{0, 0}, {1, 0}, {2, 0}} {
		if !w.ChunkLoaded(c) {
			t.Fatalf("expected chunk %v to be loaded", c)
		}
	}

	w.CleanChunks(1, protocol.ChunkPos{0, 0})
	if !w.ChunkLoaded(protocol.ChunkPos{1, 0}) || w.ChunkLoaded(protocol.ChunkPos{2, 0}) {
		t.Fatalf("expected only chunks out of range to be unloaded")
	}
}

func TestWallBox(t *testing.T) {
	post := wallBox(model.Wall{Post: true})
	if post != cube.Box(0.25, 0, 0.25, 0.75, 1.5, 0.75) {
		t.Fatalf("unexpected post box %v", post)
	}
	straight := wallBox(model.Wall{NorthConnection: 1, SouthConnection: 1})
	if straight != cube.Box(0.3125, 0, 0, 0.6875, 1.5, 1) {
		t.Fatalf("unexpected straight wall box %v", straight)
	}
}

func TestBlockCollisionsOverrides(t *testing.T) {
	w := New(nil)
	if boxes := BlockCollisions(block.Air{}, cube.Pos{}, w); len(boxes) != 0 {
		t.Fatalf("expected air to have no boxes")
	}
}
