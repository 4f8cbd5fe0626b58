// Package transport is the load/stat orchestration layer: it decodes the
// input document into Go structs with encoding/json, populates the
// catalogue/router/renderer, drives the handler over stat_requests and
// assembles the result array that main encodes as JSON. The catalogue,
// router and renderer below it know nothing about JSON.
package transport

import "encoding/json"

// Document is the top-level input document.
type Document struct {
	BaseRequests    []BaseRequest   `json:"base_requests"`
	RoutingSettings RoutingSettings `json:"routing_settings"`
	RenderSettings  RenderSettings  `json:"render_settings"`
	StatRequests    []StatRequest   `json:"stat_requests"`
}

// BaseRequest is one element of base_requests: either a Stop or a Bus,
// distinguished by Type. Only the fields relevant to Type are populated.
type BaseRequest struct {
	Type string `json:"type"`

	Name string `json:"name"`

	// Stop fields.
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	RoadDistances map[string]int `json:"road_distances"`

	// Bus fields.
	Stops       []string `json:"stops"`
	IsRoundtrip bool     `json:"is_roundtrip"`
}

// RoutingSettings mirrors the routing_settings block of the input document.
type RoutingSettings struct {
	BusWaitTime int     `json:"bus_wait_time"`
	BusVelocity float64 `json:"bus_velocity"`
}

// RenderSettings mirrors the render_settings block of the input document.
// Colors arrive as raw JSON (string or numeric array) and are resolved by
// decodeColor.
type RenderSettings struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`

	LineWidth  float64 `json:"line_width"`
	StopRadius float64 `json:"stop_radius"`

	BusLabelFontSize int        `json:"bus_label_font_size"`
	BusLabelOffset   [2]float64 `json:"bus_label_offset"`

	StopLabelFontSize int        `json:"stop_label_font_size"`
	StopLabelOffset   [2]float64 `json:"stop_label_offset"`

	UnderlayerColor json.RawMessage   `json:"underlayer_color"`
	UnderlayerWidth float64           `json:"underlayer_width"`
	ColorPalette    []json.RawMessage `json:"color_palette"`
}

// StatRequest is one element of stat_requests.
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`

	Name string `json:"name"` // Bus, Stop

	From string `json:"from"` // Route
	To   string `json:"to"`   // Route
}

// Decode parses the input document.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
