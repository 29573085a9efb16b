package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/pig/internal/dice Roller

import (
	"math/rand"
	"time"
)

// Sides is the number of faces on a Pig die
const Sides = 6

// Roller rolls a single die
type Roller interface {
	// Roll returns a uniformly distributed value in [1, sides]
	Roll(sides int) int
}

// SeededRoller provides dice rolling functionality backed by its own random source
type SeededRoller struct {
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible games and tests
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *SeededRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &SeededRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *SeededRoller) Roll(sides int) int {
	if sides < 1 {
		sides = Sides
	}
	return r.random.Intn(sides) + 1
}
