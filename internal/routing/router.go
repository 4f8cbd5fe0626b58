package routing

import (
	"fmt"

	"github.com/antigravity/morocco-transport/internal/catalogue"
)

// ErrNoDistance is fatal at build time: every adjacent stop pair traversed
// by a bus must have a declared distance in at least one direction.
type ErrNoDistance struct {
	From, To string
}

func (e *ErrNoDistance) Error() string {
	return fmt.Sprintf("routing: no distance declared between %q and %q", e.From, e.To)
}

// Router holds the immutable layered graph built once from a Catalogue plus
// the routing settings, and answers shortest-time point-to-point queries
// against it.
type Router struct {
	graph       *Graph
	waitTime    float64
	stopIndex   map[*catalogue.Stop]int
	stops       []*catalogue.Stop
}

// rideVertex and waitVertex convert a stop's position to its two layered
// vertex ids.
func rideVertex(i int) VertexID { return VertexID(i) }
func waitVertex(i, n int) VertexID { return VertexID(n + i) }

// Build constructs the layered graph for cat under the given routing
// settings. bus_wait_time is in minutes, bus_velocity in km/h.
func Build(cat *catalogue.Catalogue, busWaitTime float64, busVelocityKmh float64) (*Router, error) {
	stops := cat.AllStops()
	n := len(stops)

	r := &Router{
		graph:     NewGraph(2 * n),
		waitTime:  busWaitTime,
		stopIndex: make(map[*catalogue.Stop]int, n),
		stops:     stops,
	}
	for i, s := range stops {
		r.stopIndex[s] = i
	}

	for i, s := range stops {
		r.graph.AddEdge(Edge{
			From: waitVertex(i, n),
			To:   rideVertex(i),
			Weight: busWaitTime,
			Kind:   WaitEdge,
			Stop:   s,
		})
	}

	metersPerMinute := busVelocityKmh * 1000.0 / 60.0

	for _, bus := range cat.AllBuses() {
		arcs := traversalArcs(bus)
		for _, arc := range arcs {
			if err := r.addArcEdges(cat, bus, arc, metersPerMinute); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

// arcRange is a contiguous index range [start,end] (inclusive) into
// bus.Stops describing one traversal arc.
type arcRange struct {
	start, end int
}

// traversalArcs returns the arcs a bus's materialised route is split into
// for ride-edge generation.
func traversalArcs(bus *catalogue.Bus) []arcRange {
	n := len(bus.Stops)
	if n == 0 {
		return nil
	}
	if bus.IsRoundtrip {
		return []arcRange{{0, n - 1}}
	}
	forwardEnd := (n + 1) / 2
	reverseStart := n / 2
	return []arcRange{
		{0, forwardEnd - 1},
		{reverseStart, n - 1},
	}
}

func (r *Router) addArcEdges(cat *catalogue.Catalogue, bus *catalogue.Bus, arc arcRange, metersPerMinute float64) error {
	for i := arc.start; i < arc.end; i++ {
		cumulative := 0.0
		for j := i + 1; j <= arc.end; j++ {
			from, to := bus.Stops[j-1], bus.Stops[j]
			meters, ok := cat.Distance(from, to)
			if !ok {
				return &ErrNoDistance{From: from.Name, To: to.Name}
			}
			cumulative += float64(meters) / metersPerMinute

			if bus.Stops[j] == bus.Stops[i] {
				continue
			}

			fromIdx := r.stopIndex[bus.Stops[i]]
			toIdx := r.stopIndex[bus.Stops[j]]
			r.graph.AddEdge(Edge{
				From:   rideVertex(fromIdx),
				To:     waitVertex(toIdx, len(r.stops)),
				Weight: cumulative,
				Kind:   RideEdge,
				Bus:    bus,
				Span:   j - i,
			})
		}
	}
	return nil
}

// Route answers a shortest-time query between two stops.
func (r *Router) Route(from, to *catalogue.Stop) (*Result, bool) {
	n := len(r.stops)
	fromIdx, fromOk := r.stopIndex[from]
	toIdx, toOk := r.stopIndex[to]
	if !fromOk || !toOk {
		return nil, false
	}
	if from == to {
		return &Result{TotalTime: 0, Items: nil}, true
	}

	start := waitVertex(fromIdx, n)
	target := waitVertex(toIdx, n)

	dist, parentEdge := dijkstra(r.graph, start)
	if dist[target] >= posInf {
		return nil, false
	}

	// Walk parent edges from target back to start, then reverse.
	var edgeChain []EdgeID
	v := target
	for v != start {
		eid := parentEdge[v]
		if eid < 0 {
			return nil, false
		}
		edgeChain = append(edgeChain, eid)
		v = r.graph.Edge(eid).From
	}
	for i, j := 0, len(edgeChain)-1; i < j; i, j = i+1, j-1 {
		edgeChain[i], edgeChain[j] = edgeChain[j], edgeChain[i]
	}

	items := make([]RouteItem, 0, len(edgeChain))
	for _, eid := range edgeChain {
		e := r.graph.Edge(eid)
		switch e.Kind {
		case WaitEdge:
			items = append(items, WaitItem{StopName: e.Stop.Name, Time: e.Weight})
		case RideEdge:
			items = append(items, BusItem{BusName: e.Bus.Name, SpanCount: e.Span, Time: e.Weight})
		}
	}

	return &Result{TotalTime: dist[target], Items: items}, true
}
