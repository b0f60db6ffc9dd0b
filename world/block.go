package world

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/block/model"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/entsim/game"
)

// Geometry is the solid geometry of a block at a specific position.
type Geometry struct {
	block world.Block
	boxes []game.AABB
}

// Air returns true if the block is air.
func (g Geometry) Air() bool {
	_, air := g.block.(block.Air)
	return air
}

// Boxes returns the collision boxes of the block relative to its position.
func (g Geometry) Boxes() []game.AABB {
	return g.boxes
}

// BlockName returns the name of the block passed.
func BlockName(b world.Block) string {
	name, _ := b.EncodeBlock()
	return name
}

// BlockCollisions returns the collision boxes of the block passed, relative to its position. Most blocks
// use the boxes of their model. Blocks that entities fall through or whose model does not match what
// clients collide with are overridden by name.
func BlockCollisions(b world.Block, pos cube.Pos, src world.BlockSource) []cube.BBox {
	switch BlockName(b) {
	case "minecraft:air", "minecraft:portal", "minecraft:end_portal", "minecraft:lever",
		"minecraft:redstone_wire", "minecraft:redstone_torch", "minecraft:unlit_redstone_torch",
		"minecraft:golden_rail", "minecraft:detector_rail", "minecraft:activator_rail", "minecraft:rail",
		"minecraft:vine", "minecraft:tallgrass", "minecraft:fern", "minecraft:large_fern",
		"minecraft:red_mushroom", "minecraft:brown_mushroom":
		return nil
	case "minecraft:web", "minecraft:bamboo":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 1, 1)}
	case "minecraft:bed":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 9.0/16.0, 1)}
	case "minecraft:waterlily":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 1.0/64.0, 1)}
	case "minecraft:soul_sand":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 7.0/8.0, 1)}
	case "minecraft:end_portal_frame":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 13.0/16.0, 1)}
	case "minecraft:repeater", "minecraft:unpowered_repeater", "minecraft:powered_repeater",
		"minecraft:comparator", "minecraft:unpowered_comparator", "minecraft:powered_comparator":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 1.0/8.0, 1)}
	case "minecraft:daylight_detector", "minecraft:daylight_detector_inverted":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 3.0/8.0, 1)}
	case "minecraft:flower_pot":
		return []cube.BBox{cube.Box(5/16.0, 0, 5/16.0, 11/16.0, 3/8.0, 11/16.0)}
	case "minecraft:snow_layer":
		_, props := b.EncodeBlock()
		height, ok := props["height"].(int32)
		if !ok {
			return nil
		}
		return []cube.BBox{cube.Box(0, 0, 0, 1, float64(height)/8.0, 1)}
	}

	if wall, ok := b.Model().(model.Wall); ok {
		return []cube.BBox{wallBox(wall)}
	}
	return b.Model().BBox(pos, src)
}

// wallBox returns the single box of a wall. Walls are 1.5 blocks tall so entities cannot jump over them,
// and are inset on every side they do not connect on.
func wallBox(w model.Wall) cube.BBox {
	north, south := w.NorthConnection > 0, w.SouthConnection > 0
	west, east := w.WestConnection > 0, w.EastConnection > 0

	inset := 0.25
	if !w.Post && ((north && south && !west && !east) || (!north && !south && west && east)) {
		inset = 0.3125
	}

	box := cube.Box(0, 0, 0, 1, 1.5, 1)
	for face, connected := range map[cube.Face]bool{
		cube.FaceNorth: north, cube.FaceSouth: south, cube.FaceWest: west, cube.FaceEast: east,
	} {
		if !connected {
			box = box.ExtendTowards(face, -inset)
		}
	}
	return box
}
