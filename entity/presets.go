package entity

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/entsim/game"
)

const (
	ArrowGravity          = 20.0
	ArrowTerminalVelocity = 100.0
	ArrowDrag             = 0.99 / 20.0

	EnderPearlGravity          = 20.0
	EnderPearlTerminalVelocity = 100.0

	// ItemGravity is the per-tick item gravity of 0.04 blocks expressed per second squared.
	ItemGravity = 16.0
	// ItemDrag removes 2% of the velocity of an item every tick at 20 ticks per second.
	ItemDrag = 0.4
	// ItemDropStrength is the speed an item is thrown with when dropped by a player.
	ItemDropStrength = 4.5
)

// ArrowConfig returns the config of an arrow shot from pos with the velocity passed. Arrows stop on any
// face they hit and collide with blocks using a tiny box anchored at their position, so they can stick
// into the side of a block without their full hitbox touching it.
func ArrowConfig(pos mgl64.Vec3, vel mgl32.Vec3) Config {
	tip := game.Box(0, 0, 0, 0.002, 0.002, 0.002)
	return Config{
		Position:         pos,
		Velocity:         vel,
		Shape:            game.BoxFromDimensions(0.5, 0.5),
		Drag:             &Drag{Coefficient: ArrowDrag},
		Gravity:          &Gravity{Rate: ArrowGravity},
		TerminalVelocity: &TerminalVelocity{Speed: ArrowTerminalVelocity},
		BlockCollider:    &Collider{Box: &tip},
		EntityCollider:   &Collider{},
		StuckMask:        StuckAllFaces,
	}
}

// EnderPearlConfig returns the config of an ender pearl thrown from pos. Pearls stop on any face so the
// teleport can be handled through the block collision.
func EnderPearlConfig(pos mgl64.Vec3, vel mgl32.Vec3) Config {
	return Config{
		Position:         pos,
		Velocity:         vel,
		Shape:            game.BoxFromDimensions(0.25, 0.25),
		Gravity:          &Gravity{Rate: EnderPearlGravity},
		TerminalVelocity: &TerminalVelocity{Speed: EnderPearlTerminalVelocity},
		BlockCollider:    &Collider{},
		StuckMask:        StuckAllFaces,
	}
}

// ItemConfig returns the config of a dropped item. Items slide along walls and stop once they land on
// top of a block.
func ItemConfig(pos mgl64.Vec3, vel mgl32.Vec3) Config {
	return Config{
		Position:      pos,
		Velocity:      vel,
		Shape:         game.BoxFromDimensions(0.25, 0.25),
		Drag:          &Drag{Coefficient: ItemDrag},
		Gravity:       &Gravity{Rate: ItemGravity},
		BlockCollider: &Collider{},
		StuckMask:     StuckFaces(cube.FaceUp),
	}
}

// ItemDropVelocity returns the velocity of an item dropped by a player looking in the direction passed,
// with yaw and pitch in degrees.
func ItemDropVelocity(yaw, pitch float32) mgl32.Vec3 {
	return game.DirectionVector(yaw, pitch).Mul(ItemDropStrength)
}
