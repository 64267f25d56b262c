package game

import (
	"math/rand/v2"
	"time"

	"github.com/cbodonnell/tetris/pkg/game/types"
)

// Spawner picks pieces uniformly at random from the catalog. The random
// source is injected so games can be replayed deterministically.
type Spawner struct {
	rng   *rand.Rand
	width int
}

// NewSpawner creates a spawner for a board of the given width.
func NewSpawner(rng *rand.Rand, width int) *Spawner {
	return &Spawner{
		rng:   rng,
		width: width,
	}
}

// NewRand returns a PCG source seeded with seed, or with the clock when seed
// is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Spawn returns a new piece centered horizontally on the top row. The caller
// decides what an invalid spawn placement means.
func (s *Spawner) Spawn() *ActivePiece {
	def := catalog[s.rng.IntN(len(catalog))]
	return &ActivePiece{
		Kind:  def.Kind,
		Shape: def.Shape.Clone(),
		Position: types.Position{
			X: s.width/2 - def.Shape.Cols()/2,
			Y: 0,
		},
	}
}
