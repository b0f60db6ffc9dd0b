package simulation

import (
	"github.com/oomph-ac/entsim/entity"
	"github.com/oomph-ac/entsim/game"
	"github.com/oomph-ac/entsim/utils"
	"github.com/oomph-ac/entsim/utils/collisions"
)

// GroundProbe is the distance below a body that is checked for blocks by OnGround. It is larger than the
// gap left between a body and a block it landed on.
const GroundProbe = 0.01

// OnGround returns true if the body rests on top of a block: any block geometry is within GroundProbe below
// the bottom of its hitbox.
func OnGround(b *entity.Body, p collisions.Provider) bool {
	hitbox := b.Hitbox()
	bbMin, bbMax := hitbox.Min(), hitbox.Max()
	probe := game.Box(bbMin[0], bbMin[1]-GroundProbe, bbMin[2], bbMax[0], bbMin[1], bbMax[2])

	for _, pos := range utils.BlocksIntersecting(probe) {
		block, ok := p.BlockAt(pos)
		if !ok || block.Air() {
			continue
		}
		offset := pos.Vec3()
		for _, shape := range block.Boxes() {
			if shape.Translate(offset).Intersects(probe) {
				return true
			}
		}
	}
	return false
}
