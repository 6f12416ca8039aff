package bodygraph

// #region adjacency

// adjacency builds the center graph induced by the active channels.
func adjacency(channels []Channel) map[Center][]Center {
	adj := make(map[Center][]Center)
	for _, ch := range channels {
		a, b := centersOf(ch)
		if a == "" {
			continue
		}
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	return adj
}

// connected reports whether a path of active channels links two centers.
func connected(adj map[Center][]Center, from, to Center) bool {
	if _, ok := adj[from]; !ok {
		return false
	}
	visited := map[Center]bool{from: true}
	queue := []Center{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			return true
		}
		for _, next := range adj[cur] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// #endregion adjacency

// #region components

// Components groups the defined centers into connected areas of
// definition, each in canonical center order; areas are ordered by
// their first center.
func Components(channels []Channel) [][]Center {
	adj := adjacency(channels)
	visited := make(map[Center]bool)
	var components [][]Center

	for _, start := range Centers() {
		if _, defined := adj[start]; !defined || visited[start] {
			continue
		}
		// BFS one component.
		visited[start] = true
		queue := []Center{start}
		inComp := map[Center]bool{start: true}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range adj[cur] {
				if !visited[next] {
					visited[next] = true
					inComp[next] = true
					queue = append(queue, next)
				}
			}
		}
		var comp []Center
		for _, c := range Centers() {
			if inComp[c] {
				comp = append(comp, c)
			}
		}
		components = append(components, comp)
	}
	return components
}

// Split returns the split definition: the number of separate areas of
// definition. 0 means no definition at all (a Reflector), 1 a single
// definition, 2 a split, 3 a triple split, 4 a quadruple split.
func Split(channels []Channel) int {
	return len(Components(channels))
}

// #endregion components
