package transport

import (
	"github.com/antigravity/morocco-transport/internal/handler"
	"github.com/antigravity/morocco-transport/internal/routing"
)

// notFound is the literal contract payload for a query-level miss.
func notFound(requestID int) map[string]any {
	return map[string]any{
		"request_id":    requestID,
		"error_message": "not found",
	}
}

// RunQueries drives h over every stat request and returns the ordered
// result array ready for JSON encoding.
func RunQueries(h *handler.Handler, requests []StatRequest) []map[string]any {
	results := make([]map[string]any, 0, len(requests))
	for _, req := range requests {
		results = append(results, runOne(h, req))
	}
	return results
}

func runOne(h *handler.Handler, req StatRequest) map[string]any {
	switch req.Type {
	case "Bus":
		stat, ok := h.BusStats(req.Name)
		if !ok {
			return notFound(req.ID)
		}
		return map[string]any{
			"request_id":        req.ID,
			"curvature":         stat.Curvature,
			"route_length":      stat.RouteLength,
			"stop_count":        stat.StopCount,
			"unique_stop_count": stat.UniqueStopCount,
		}

	case "Stop":
		buses, ok := h.StopBuses(req.Name)
		if !ok {
			return notFound(req.ID)
		}
		busList := make([]any, len(buses))
		for i, b := range buses {
			busList[i] = b
		}
		return map[string]any{
			"request_id": req.ID,
			"buses":      busList,
		}

	case "Map":
		return map[string]any{
			"request_id": req.ID,
			"map":        h.Map(),
		}

	case "Route":
		route, ok := h.Route(req.From, req.To)
		if !ok {
			return notFound(req.ID)
		}
		return map[string]any{
			"request_id": req.ID,
			"total_time": route.TotalTime,
			"items":      routeItems(route.Items),
		}

	default:
		return notFound(req.ID)
	}
}

func routeItems(items []routing.RouteItem) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case routing.WaitItem:
			out = append(out, map[string]any{
				"type":      "Wait",
				"stop_name": v.StopName,
				"time":      v.Time,
			})
		case routing.BusItem:
			out = append(out, map[string]any{
				"type":       "Bus",
				"bus":        v.BusName,
				"span_count": v.SpanCount,
				"time":       v.Time,
			})
		}
	}
	return out
}
