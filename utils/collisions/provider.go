package collisions

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/entsim/game"
)

// Block is the solid geometry of a single block.
type Block interface {
	// Air returns true if the block has no geometry at all.
	Air() bool
	// Boxes returns the collision shapes of the block in local block space, i.e. relative to the
	// block's minimum corner. Non-full blocks such as stairs may return several boxes.
	Boxes() []game.AABB
}

// Provider gives read-only access to the blocks of a world. Implementations must be safe for
// concurrent use by multiple goroutines during a tick.
type Provider interface {
	// BlockAt returns the block at the position passed. If no geometry is known for the position,
	// for example because the chunk holding it is not loaded, false is returned.
	BlockAt(pos cube.Pos) (Block, bool)
}
