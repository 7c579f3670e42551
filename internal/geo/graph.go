package geo

import (
	"container/heap"
	"math"
)

// Site is a named location in the deployment's transfer network.
type Site string

// Unreachable is the sentinel distance returned when either site is unknown
// or no path exists. It is a value, not an error: callers decide whether an
// unreachable donor is a hard failure.
var Unreachable = math.Inf(1)

// IsUnreachable reports whether d is the unreachable sentinel.
func IsUnreachable(d float64) bool {
	return math.IsInf(d, 1)
}

// Graph is a weighted graph over a fixed set of named sites. Edge weights are
// kilometers. The graph is immutable after construction, so reads need no
// locking.
type Graph struct {
	sites []Site
	adj   map[Site]map[Site]float64
}

// NewGraph builds a graph from a topology. Edges are taken exactly as
// configured; the default deployment lists both directions of every edge.
func NewGraph(topo Topology) *Graph {
	g := &Graph{adj: make(map[Site]map[Site]float64, len(topo.Sites))}
	for name, edges := range topo.Sites {
		site := Site(name)
		g.sites = append(g.sites, site)
		g.adj[site] = make(map[Site]float64, len(edges))
		for to, km := range edges {
			g.adj[site][Site(to)] = km
		}
	}
	return g
}

// HasSite reports whether s is a known site.
func (g *Graph) HasSite(s Site) bool {
	_, ok := g.adj[s]
	return ok
}

// Sites returns the known site names in unspecified order.
func (g *Graph) Sites() []Site {
	out := make([]Site, len(g.sites))
	copy(out, g.sites)
	return out
}

// ShortestDistance computes the shortest-path distance in km between two
// sites using Dijkstra's algorithm with a min-priority frontier. Returns
// Unreachable when either site is unknown or no path exists, and 0 when
// from == to.
func (g *Graph) ShortestDistance(from, to Site) float64 {
	if !g.HasSite(from) || !g.HasSite(to) {
		return Unreachable
	}
	if from == to {
		return 0
	}

	dist := make(map[Site]float64, len(g.adj))
	for s := range g.adj {
		dist[s] = Unreachable
	}
	dist[from] = 0

	visited := make(map[Site]bool, len(g.adj))
	frontier := &frontierQueue{{site: from, dist: 0}}

	for frontier.Len() > 0 {
		cur := heap.Pop(frontier).(frontierItem)
		if visited[cur.site] {
			continue
		}
		visited[cur.site] = true

		if cur.site == to {
			return cur.dist
		}

		for neighbor, km := range g.adj[cur.site] {
			next := cur.dist + km
			if next < dist[neighbor] {
				dist[neighbor] = next
				heap.Push(frontier, frontierItem{site: neighbor, dist: next})
			}
		}
	}

	return dist[to]
}

type frontierItem struct {
	site Site
	dist float64
}

// frontierQueue is a min-heap of tentative distances.
type frontierQueue []frontierItem

func (q frontierQueue) Len() int            { return len(q) }
func (q frontierQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q frontierQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *frontierQueue) Push(x interface{}) { *q = append(*q, x.(frontierItem)) }
func (q *frontierQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
