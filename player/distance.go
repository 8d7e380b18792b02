package player

import "manhunt/game"

// distances returns the number of hops from the nearest source to every
// reachable node, ignoring transport kinds and tickets.
func distances(graph game.Graph, sources ...int) map[int]int {
	dist := make(map[int]int, graph.Len())
	queue := make([]int, 0, len(sources))
	for _, s := range sources {
		if _, seen := dist[s]; !seen && graph.HasNode(s) {
			dist[s] = 0
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, e := range graph.EdgesFrom(node) {
			if _, seen := dist[e.Destination]; !seen {
				dist[e.Destination] = dist[node] + 1
				queue = append(queue, e.Destination)
			}
		}
	}
	return dist
}

// landing returns where a move leaves the player.
func landing(location int, move game.Move) int {
	dests := move.Destinations()
	if len(dests) == 0 {
		return location
	}
	return dests[len(dests)-1]
}
