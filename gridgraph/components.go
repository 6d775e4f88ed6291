package gridgraph

// ConnectedComponents finds all contiguous regions ("islands") of passable
// cells under 4-connectivity. Components are discovered in row-major order
// of their first cell; each component lists its cells in BFS order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Coordinate {
	seen := make([]bool, len(gg.passable))
	var comps [][]Coordinate

	for i0, ok := range gg.passable {
		if !ok || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Coordinate
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, gg.At(u))
			gg.neighbors(u, func(v int) {
				if gg.passable[v] && !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			})
		}
		comps = append(comps, comp)
	}
	return comps
}

// Connected reports whether all passable cells form a single component.
// An empty mask counts as connected.
func (gg *GridGraph) Connected() bool {
	return len(gg.ConnectedComponents()) <= 1
}

// Distances runs an unweighted BFS from src over passable cells and returns
// the step count to every reachable cell (src maps to 0).
// Returns ErrNotPassable if src is blocked or out of bounds.
//
// Time: O(W·H), Memory: O(W·H).
func (gg *GridGraph) Distances(src Coordinate) (map[Coordinate]int, error) {
	if !gg.Passable(src) {
		return nil, ErrNotPassable
	}
	dist := map[Coordinate]int{src: 0}
	queue := []int{gg.index(src)}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		du := dist[gg.At(u)]
		gg.neighbors(u, func(v int) {
			if !gg.passable[v] {
				return
			}
			vc := gg.At(v)
			if _, ok := dist[vc]; ok {
				return
			}
			dist[vc] = du + 1
			queue = append(queue, v)
		})
	}
	return dist, nil
}
