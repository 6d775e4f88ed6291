package astar

import (
	"container/heap"
	"slices"

	"github.com/katalvlaran/shipfire/gridgraph"
	"github.com/katalvlaran/shipfire/ship"
)

// Search runs a best-first search on s from start to goal under the chosen
// policy. It returns (nil, false) when goal cannot be reached; s is never
// modified.
func Search(s *ship.Ship, start, goal gridgraph.Coordinate, opts ...Option) (*Result, bool) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &runner{
		s:     s,
		goal:  goal,
		opts:  o,
		dist:  map[gridgraph.Coordinate]int{start: 0},
		prev:  make(map[gridgraph.Coordinate]gridgraph.Coordinate),
		avoid: make(map[gridgraph.Coordinate]bool),
	}
	if o.Policy == AvoidFire {
		for _, c := range s.FireFrontier() {
			r.avoid[c] = true
		}
	}
	r.push(start, 0)
	if !r.process() {
		return nil, false
	}
	return r.result(start), true
}

// runner holds the mutable state of one search.
type runner struct {
	s     *ship.Ship
	goal  gridgraph.Coordinate
	opts  Options
	dist  map[gridgraph.Coordinate]int
	prev  map[gridgraph.Coordinate]gridgraph.Coordinate
	avoid map[gridgraph.Coordinate]bool
	pq    nodePQ
	seq   int
}

// process pops until goal is popped (true) or the frontier empties (false).
func (r *runner) process() bool {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.cell
		if item.g > r.dist[u] {
			continue // stale
		}
		if r.opts.OnExpand != nil {
			r.opts.OnExpand(u)
		}
		if u == r.goal {
			return true
		}
		r.relax(u)
	}
	return false
}

func (r *runner) relax(u gridgraph.Coordinate) {
	g := r.dist[u] + 1
	for _, v := range r.s.OpenNeighbors(u) {
		if r.avoid[v] {
			continue
		}
		if old, seen := r.dist[v]; seen && g >= old {
			continue
		}
		r.dist[v] = g
		r.prev[v] = u
		r.push(v, g)
	}
}

func (r *runner) push(c gridgraph.Coordinate, g int) {
	priority := float64(g + c.Manhattan(r.goal))
	if r.opts.Policy == RiskWeighted {
		priority += r.opts.Risk[c] * r.opts.RiskScale
	}
	heap.Push(&r.pq, &nodeItem{cell: c, g: g, priority: priority, seq: r.seq})
	r.seq++
}

// result walks predecessors back from goal. Under RiskWeighted a
// predecessor's g may have dropped after the link was made, so the distance
// is taken from the walked path rather than dist[goal].
func (r *runner) result(start gridgraph.Coordinate) *Result {
	path := []gridgraph.Coordinate{r.goal}
	for at := r.goal; at != start; {
		at = r.prev[at]
		path = append(path, at)
	}
	slices.Reverse(path)
	return &Result{Path: path, Distance: len(path) - 1}
}

// nodeItem is a frontier entry. seq breaks priority ties in push order.
type nodeItem struct {
	cell     gridgraph.Coordinate
	g        int
	priority float64
	seq      int
}

// nodePQ is a min-heap of *nodeItem ordered by (priority, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
