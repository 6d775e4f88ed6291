package gridgraph

import (
	"container/list"
)

// ExpandIsland finds a minimum-conversion path of blocked cells to connect
// any cell in component srcComp to any cell in component dstComp, as
// identified by ConnectedComponents(). Each blocked-cell conversion costs 1.
// Returns the path (including the start and end passable cells) and the
// total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • Moving into a passable cell → cost 0
//     • Moving into a blocked cell  → cost 1
//  3. Stop when any dstComp cell is popped.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H) time, O(W·H) memory.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []Coordinate, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[int]struct{}, len(comps[dstComp]))
	for _, c := range comps[dstComp] {
		dstSet[gg.index(c)] = struct{}{}
	}

	n := len(gg.passable)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, c := range comps[srcComp] {
		i := gg.index(c)
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		gg.neighbors(u, func(v int) {
			step := 0
			if !gg.passable[v] {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		})
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, gg.At(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[target], nil
}

// Connect repairs a split mask in place: while more than one component
// exists, it joins the first non-largest island to the largest one along a
// minimum-conversion path and marks the converted cells passable.
// Returns the converted cells in the order they were opened.
//
// Each round merges at least two islands, so at most k-1 rounds run.
func (gg *GridGraph) Connect() ([]Coordinate, error) {
	var opened []Coordinate
	for {
		comps := gg.ConnectedComponents()
		if len(comps) <= 1 {
			return opened, nil
		}
		largest := 0
		for i, comp := range comps {
			if len(comp) > len(comps[largest]) {
				largest = i
			}
		}
		src := 0
		if src == largest {
			src = 1
		}
		path, _, err := gg.ExpandIsland(src, largest)
		if err != nil {
			return opened, err
		}
		for _, c := range path {
			i := gg.index(c)
			if !gg.passable[i] {
				gg.passable[i] = true
				opened = append(opened, c)
			}
		}
	}
}
