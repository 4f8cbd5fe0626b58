package routing

// Graph owns a flat edge array plus a per-vertex adjacency list of edge ids
// (edges-as-values) — this avoids reference cycles and makes path
// reconstruction a simple index walk.
type Graph struct {
	vertexCount int
	edges       []Edge
	adjacency   [][]EdgeID
}

// NewGraph allocates a graph over vertexCount vertices with no edges.
func NewGraph(vertexCount int) *Graph {
	return &Graph{
		vertexCount: vertexCount,
		adjacency:   make([][]EdgeID, vertexCount),
	}
}

// AddEdge appends e and returns its id.
func (g *Graph) AddEdge(e Edge) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	g.adjacency[e.From] = append(g.adjacency[e.From], id)
	return id
}

// Edge returns the edge for id.
func (g *Graph) Edge(id EdgeID) Edge { return g.edges[id] }

// EdgesFrom returns the edge ids leaving vertex v.
func (g *Graph) EdgesFrom(v VertexID) []EdgeID { return g.adjacency[v] }

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int { return g.vertexCount }
