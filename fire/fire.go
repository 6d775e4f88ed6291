package fire

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/shipfire/gridgraph"
	"github.com/katalvlaran/shipfire/randsrc"
	"github.com/katalvlaran/shipfire/ship"
)

var (
	// ErrBadFlammability indicates q outside [0,1].
	ErrBadFlammability = errors.New("fire: flammability must be in [0,1]")

	// ErrNeighborCount indicates an ignition lookup for a neighbor count outside 0..4.
	ErrNeighborCount = errors.New("fire: burning neighbor count must be in 0..4")
)

// MaxNeighbors is the largest burning neighbor count under 4-connectivity.
const MaxNeighbors = 4

// Model holds the precomputed ignition table for one flammability.
type Model struct {
	q      float64
	chance [MaxNeighbors + 1]float64
}

// NewModel precomputes pK for K = 0..4.
func NewModel(q float64) (*Model, error) {
	if q < 0 || q > 1 || math.IsNaN(q) {
		return nil, fmt.Errorf("%w: %g", ErrBadFlammability, q)
	}
	m := &Model{q: q}
	for k := 1; k <= MaxNeighbors; k++ {
		m.chance[k] = 1 - math.Pow(1-q, float64(k))
	}
	return m, nil
}

// Flammability returns q.
func (m *Model) Flammability() float64 { return m.q }

// IgnitionProbability returns the chance that a cell with k burning
// neighbors catches fire this tick.
func (m *Model) IgnitionProbability(k int) (float64, error) {
	if k < 0 || k > MaxNeighbors {
		return 0, fmt.Errorf("%w: got %d", ErrNeighborCount, k)
	}
	return m.chance[k], nil
}

// Tick samples every frontier cell of s once and ignites the ones that
// catch, all at the end of the tick. It returns the newly burning cells in
// row-major order. s is left untouched on error.
func (m *Model) Tick(s *ship.Ship, rng *rand.Rand) ([]gridgraph.Coordinate, error) {
	rng = randsrc.OrDefault(rng)
	var caught []gridgraph.Coordinate
	for _, c := range s.FireFrontier() {
		p, err := m.IgnitionProbability(s.BurningNeighbors(c))
		if err != nil {
			return nil, err
		}
		if rng.Float64() < p {
			caught = append(caught, c)
		}
	}
	for _, c := range caught {
		s.Ignite(c)
	}
	return caught, nil
}

// Spread runs one tick on s using its own flammability.
func Spread(s *ship.Ship, rng *rand.Rand) ([]gridgraph.Coordinate, error) {
	m, err := NewModel(s.Flammability())
	if err != nil {
		return nil, err
	}
	return m.Tick(s, rng)
}
