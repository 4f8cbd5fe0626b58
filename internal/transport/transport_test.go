package transport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/antigravity/morocco-transport/internal/render"
	"github.com/antigravity/morocco-transport/internal/svg"
)

func TestDecodeColor_Named(t *testing.T) {
	c, err := decodeColor(json.RawMessage(`"green"`))
	require.NoError(t, err)
	assert.Equal(t, svg.Named("green"), c)
}

func TestDecodeColor_RGB(t *testing.T) {
	c, err := decodeColor(json.RawMessage(`[255,160,0]`))
	require.NoError(t, err)
	assert.Equal(t, svg.RGB(255, 160, 0), c)
}

func TestDecodeColor_RGBA(t *testing.T) {
	c, err := decodeColor(json.RawMessage(`[100,20,60,0.3]`))
	require.NoError(t, err)
	assert.Equal(t, svg.RGBA(100, 20, 60, 0.3), c)
}

func TestDecodeColor_InvalidArrayLength(t *testing.T) {
	_, err := decodeColor(json.RawMessage(`[1,2]`))
	assert.Error(t, err)
}

func TestDecode_FullDocument(t *testing.T) {
	doc, err := Decode([]byte(sampleDocument))
	require.NoError(t, err)

	require.Len(t, doc.BaseRequests, 3)
	assert.Equal(t, "Stop", doc.BaseRequests[0].Type)
	assert.Equal(t, "Bus", doc.BaseRequests[2].Type)
	assert.Equal(t, 6, doc.RoutingSettings.BusWaitTime)
	assert.Equal(t, 40.0, doc.RoutingSettings.BusVelocity)
	require.Len(t, doc.StatRequests, 2)
}

func TestLoadAndRunQueries_EndToEnd(t *testing.T) {
	doc, err := Decode([]byte(sampleDocument))
	require.NoError(t, err)

	logger := zap.NewNop()
	h, err := Load(doc, logger)
	require.NoError(t, err)

	results := RunQueries(h, doc.StatRequests)
	require.Len(t, results, 2)

	busResult := results[0]
	assert.Equal(t, 1, busResult["request_id"])
	assert.Equal(t, 3, busResult["stop_count"])
	assert.Equal(t, 2, busResult["unique_stop_count"])

	stopResult := results[1]
	assert.Equal(t, 2, stopResult["request_id"])
	assert.Equal(t, []any{"1"}, stopResult["buses"])
}

func TestRunQueries_NotFound(t *testing.T) {
	doc, err := Decode([]byte(sampleDocument))
	require.NoError(t, err)

	logger := zap.NewNop()
	h, err := Load(doc, logger)
	require.NoError(t, err)

	results := RunQueries(h, []StatRequest{{ID: 99, Type: "Bus", Name: "Nonexistent"}})
	require.Len(t, results, 1)
	assert.Equal(t, "not found", results[0]["error_message"])
	assert.Equal(t, 99, results[0]["request_id"])
}

func TestLoad_RejectsEmptyPalette(t *testing.T) {
	doc, err := Decode([]byte(sampleDocument))
	require.NoError(t, err)
	doc.RenderSettings.ColorPalette = nil

	_, err = Load(doc, zap.NewNop())
	assert.ErrorIs(t, err, render.ErrEmptyPalette)
}

const sampleDocument = `{
  "base_requests": [
    {"type": "Stop", "name": "A", "latitude": 55.0, "longitude": 37.0, "road_distances": {"B": 1000}},
    {"type": "Stop", "name": "B", "latitude": 55.0, "longitude": 37.1, "road_distances": {"A": 900}},
    {"type": "Bus", "name": "1", "stops": ["A", "B"], "is_roundtrip": false}
  ],
  "routing_settings": {"bus_wait_time": 6, "bus_velocity": 40},
  "render_settings": {
    "width": 600, "height": 400, "padding": 50,
    "line_width": 14, "stop_radius": 5,
    "bus_label_font_size": 20, "bus_label_offset": [7, 15],
    "stop_label_font_size": 18, "stop_label_offset": [7, -3],
    "underlayer_color": [255, 255, 255, 0.85],
    "underlayer_width": 3,
    "color_palette": ["green", [255, 160, 0]]
  },
  "stat_requests": [
    {"id": 1, "type": "Bus", "name": "1"},
    {"id": 2, "type": "Stop", "name": "A"}
  ]
}`
