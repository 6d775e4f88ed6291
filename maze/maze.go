package maze

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/shipfire/gridgraph"
	"github.com/katalvlaran/shipfire/randsrc"
)

// Generate builds a connected set of open cells inside a size×size grid.
// A nil rng falls back to the randsrc default stream.
//
// Steps:
//  1. Validate size and options.
//  2. Open a random start cell and grow corridors until no blocked cell has
//     exactly one open neighbor.
//  3. Cull the configured share of dead ends, best effort.
//  4. Export the open cells as a set.
func Generate(size int, rng *rand.Rand, opts ...Option) (mapset.Set[gridgraph.Coordinate], error) {
	if size <= 0 {
		return mapset.Set[gridgraph.Coordinate]{}, ErrBadSize
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return mapset.Set[gridgraph.Coordinate]{}, o.err
	}

	c := newCarver(size, randsrc.OrDefault(rng))
	c.grow(c.rng.Intn(size*size))
	c.cull(o.CullFraction, o.OnCull)

	out := mapset.New[gridgraph.Coordinate]()
	for i, ok := range c.open {
		if ok {
			out.Put(c.at(i))
		}
	}
	return out, nil
}

// carver holds the mutable state of one generation run. Cells are indexed
// row-major; count tracks open neighbors so candidate membership updates in
// O(1) per opened cell.
type carver struct {
	size  int
	open  []bool
	count []int
	cand  []int // blocked cells with exactly one open neighbor
	pos   []int // index into cand, or -1
	rng   *rand.Rand
}

func newCarver(size int, rng *rand.Rand) *carver {
	n := size * size
	c := &carver{
		size:  size,
		open:  make([]bool, n),
		count: make([]int, n),
		pos:   make([]int, n),
		rng:   rng,
	}
	for i := range c.pos {
		c.pos[i] = -1
	}
	return c
}

func (c *carver) at(i int) gridgraph.Coordinate {
	return gridgraph.Coordinate{Row: i / c.size, Col: i % c.size}
}

// neighbors calls fn for each in-bounds neighbor of i in Up, Down, Left,
// Right order.
func (c *carver) neighbors(i int, fn func(j int)) {
	for _, nb := range c.at(i).Neighbors() {
		if nb.Row >= 0 && nb.Row < c.size && nb.Col >= 0 && nb.Col < c.size {
			fn(nb.Row*c.size + nb.Col)
		}
	}
}

func (c *carver) addCandidate(i int) {
	if c.pos[i] >= 0 {
		return
	}
	c.pos[i] = len(c.cand)
	c.cand = append(c.cand, i)
}

func (c *carver) dropCandidate(i int) {
	p := c.pos[i]
	if p < 0 {
		return
	}
	last := c.cand[len(c.cand)-1]
	c.cand[p] = last
	c.pos[last] = p
	c.cand = c.cand[:len(c.cand)-1]
	c.pos[i] = -1
}

// openCell opens i and refreshes candidacy of its blocked neighbors.
func (c *carver) openCell(i int) {
	c.open[i] = true
	c.dropCandidate(i)
	c.neighbors(i, func(j int) {
		c.count[j]++
		if c.open[j] {
			return
		}
		if c.count[j] == 1 {
			c.addCandidate(j)
		} else {
			c.dropCandidate(j)
		}
	})
}

// grow opens start, then keeps opening random candidates until none remain.
// Terminates: every step opens a blocked cell of a finite grid.
func (c *carver) grow(start int) {
	c.openCell(start)
	for len(c.cand) > 0 {
		c.openCell(c.cand[c.rng.Intn(len(c.cand))])
	}
}

// deadEnds lists open cells with exactly one open neighbor, row-major.
func (c *carver) deadEnds() []int {
	var out []int
	for i, ok := range c.open {
		if ok && c.count[i] == 1 {
			out = append(out, i)
		}
	}
	return out
}

// cull selects dead ends uniformly without replacement until only
// (1-fraction) of the original list remains unselected. The list is not
// refreshed between picks, so a selected cell may already have stopped being
// a dead end; it is still widened.
func (c *carver) cull(fraction float64, onCull func(deadEnd, opened gridgraph.Coordinate, ok bool)) {
	ends := c.deadEnds()
	retain := int(float64(len(ends)) * (1 - fraction))
	for len(ends) > retain {
		k := c.rng.Intn(len(ends))
		end := ends[k]
		ends = append(ends[:k], ends[k+1:]...)

		var blocked []int
		c.neighbors(end, func(j int) {
			if !c.open[j] {
				blocked = append(blocked, j)
			}
		})
		if len(blocked) == 0 {
			onCull(c.at(end), gridgraph.Coordinate{}, false)
			continue
		}
		pick := blocked[c.rng.Intn(len(blocked))]
		c.openCell(pick)
		onCull(c.at(end), c.at(pick), true)
	}
}
