// Package handler is the thin facade composing the catalogue, router and
// renderer for each of the four query kinds, the way the teacher's
// TransportHandler composes a LineRepository and a Raptor engine for its
// HTTP routes — minus the HTTP plumbing, since this system has no network
// surface.
package handler

import (
	"github.com/antigravity/morocco-transport/internal/catalogue"
	"github.com/antigravity/morocco-transport/internal/geo"
	"github.com/antigravity/morocco-transport/internal/render"
	"github.com/antigravity/morocco-transport/internal/routing"
)

// Handler answers stat queries over a loaded catalogue, router and renderer.
type Handler struct {
	cat      *catalogue.Catalogue
	router   *routing.Router
	renderer *render.Renderer
}

// New builds a Handler over already-constructed components.
func New(cat *catalogue.Catalogue, router *routing.Router, renderer *render.Renderer) *Handler {
	return &Handler{cat: cat, router: router, renderer: renderer}
}

// BusStat is the payload of a Bus("name") query.
type BusStat struct {
	StopCount       int
	UniqueStopCount int
	RouteLength     int
	Curvature       float64
}

// BusStats returns route statistics for the named bus, or ok=false if no
// such bus exists.
func (h *Handler) BusStats(name string) (BusStat, bool) {
	bus, ok := h.cat.GetBus(name)
	if !ok {
		return BusStat{}, false
	}

	routeLength := 0
	geodesicLength := 0.0
	for i := 1; i < len(bus.Stops); i++ {
		a, b := bus.Stops[i-1], bus.Stops[i]
		meters, _ := h.cat.Distance(a, b)
		routeLength += meters
		geodesicLength += geo.Distance(a.Coordinates, b.Coordinates)
	}

	curvature := 0.0
	if geodesicLength > 0 {
		curvature = float64(routeLength) / geodesicLength
	}

	return BusStat{
		StopCount:       len(bus.Stops),
		UniqueStopCount: bus.UniqueStopCount(),
		RouteLength:     routeLength,
		Curvature:       curvature,
	}, true
}

// StopBuses returns the lexicographically ordered bus names through the
// named stop, and whether the stop exists at all.
func (h *Handler) StopBuses(name string) ([]string, bool) {
	return h.cat.BusesThrough(name)
}

// Map renders the full network as an SVG document string.
func (h *Handler) Map() string {
	return h.renderer.Render(h.cat.AllBuses())
}

// Route answers a shortest-time point-to-point query. ok is false if
// either stop name is unknown or no path exists.
func (h *Handler) Route(fromName, toName string) (*routing.Result, bool) {
	from, ok := h.cat.GetStop(fromName)
	if !ok {
		return nil, false
	}
	to, ok := h.cat.GetStop(toName)
	if !ok {
		return nil, false
	}
	return h.router.Route(from, to)
}
