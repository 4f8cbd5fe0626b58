package routing

import "github.com/antigravity/morocco-transport/internal/catalogue"

// VertexID indexes into the layered graph: for n stops, ride(i) = i and
// wait(i) = n + i.
type VertexID int

// EdgeID indexes into Graph.edges.
type EdgeID int

// EdgeKind classifies an edge for path reconstruction.
type EdgeKind int

const (
	WaitEdge EdgeKind = iota
	RideEdge
)

// Edge is one directed weighted arc of the layered graph.
type Edge struct {
	From, To VertexID
	Weight   float64
	Kind     EdgeKind

	// Populated only for RideEdge.
	Bus  *catalogue.Bus
	Span int

	// Populated only for WaitEdge.
	Stop *catalogue.Stop
}

// RouteItem is the tagged union of itinerary steps: exactly one of
// WaitItem or BusItem implements it. Modeled as an interface over two
// concrete structs rather than a class hierarchy.
type RouteItem interface {
	isRouteItem()
}

// WaitItem is time spent at a stop before boarding.
type WaitItem struct {
	StopName string
	Time     float64
}

func (WaitItem) isRouteItem() {}

// BusItem is a ride on one bus across SpanCount hops.
type BusItem struct {
	BusName   string
	SpanCount int
	Time      float64
}

func (BusItem) isRouteItem() {}

// Result is the outcome of a successful Route query.
type Result struct {
	TotalTime float64
	Items     []RouteItem
}
