package routing

import "container/heap"

// pqItem is one entry in the shortest-path priority queue.
type pqItem struct {
	vertex VertexID
	dist   float64
	index  int
}

// priorityQueue is a min-heap over pqItem.dist, the same container/heap
// shape the pack's A* router uses for its open set.
type priorityQueue []*pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool   { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index, pq[j].index = i, j
}

func (pq *priorityQueue) Push(x any) {
	item := x.(*pqItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

// dijkstra runs single-source shortest path over non-negative weights from
// start, returning the best distance to every vertex and, for each, the
// edge used to reach it (or -1 for the start vertex / unreached vertices).
func dijkstra(g *Graph, start VertexID) (dist []float64, parentEdge []EdgeID) {
	n := g.VertexCount()
	dist = make([]float64, n)
	parentEdge = make([]EdgeID, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = posInf
		parentEdge[i] = -1
	}
	dist[start] = 0

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{vertex: start, dist: 0})

	for pq.Len() > 0 {
		top := heap.Pop(pq).(*pqItem)
		v := top.vertex
		if visited[v] {
			continue
		}
		visited[v] = true

		for _, eid := range g.EdgesFrom(v) {
			e := g.Edge(eid)
			nd := dist[v] + e.Weight
			if nd < dist[e.To] {
				dist[e.To] = nd
				parentEdge[e.To] = eid
				heap.Push(pq, &pqItem{vertex: e.To, dist: nd})
			}
		}
	}
	return dist, parentEdge
}

const posInf = 1e18
