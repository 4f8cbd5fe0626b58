package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/morocco-transport/internal/catalogue"
	"github.com/antigravity/morocco-transport/internal/geo"
	"github.com/antigravity/morocco-transport/internal/render"
	"github.com/antigravity/morocco-transport/internal/routing"
	"github.com/antigravity/morocco-transport/internal/svg"
)

func TestBusStats_SingleLinearBus(t *testing.T) {
	cat := catalogue.New()
	_, err := cat.AddStop("A", geo.Coordinates{Lat: 55.0, Lng: 37.0})
	require.NoError(t, err)
	_, err = cat.AddStop("B", geo.Coordinates{Lat: 55.0, Lng: 37.1})
	require.NoError(t, err)
	require.NoError(t, cat.SetDistance("A", "B", 1000))
	require.NoError(t, cat.SetDistance("B", "A", 900))
	_, err = cat.AddBus("1", []string{"A", "B"}, false)
	require.NoError(t, err)

	router, err := routing.Build(cat, 6, 40)
	require.NoError(t, err)

	h := New(cat, router, render.New(testSettings()))

	stat, ok := h.BusStats("1")
	require.True(t, ok)
	assert.Equal(t, 3, stat.StopCount)
	assert.Equal(t, 2, stat.UniqueStopCount)
	assert.Equal(t, 1900, stat.RouteLength)
	assert.InDelta(t, 0.1489523, stat.Curvature, 1e-6)
}

func TestBusStats_UnknownBus(t *testing.T) {
	cat := catalogue.New()
	router, err := routing.Build(cat, 6, 40)
	require.NoError(t, err)
	h := New(cat, router, render.New(testSettings()))

	_, ok := h.BusStats("Z")
	assert.False(t, ok)
}

func TestStopBuses_SortedNames(t *testing.T) {
	cat := catalogue.New()
	_, err := cat.AddStop("A", geo.Coordinates{Lat: 0, Lng: 0})
	require.NoError(t, err)
	_, err = cat.AddStop("B", geo.Coordinates{Lat: 0, Lng: 0})
	require.NoError(t, err)
	require.NoError(t, cat.SetDistance("A", "B", 100))
	require.NoError(t, cat.SetDistance("B", "A", 100))

	_, err = cat.AddBus("1", []string{"A", "B"}, false)
	require.NoError(t, err)
	_, err = cat.AddBus("2", []string{"B", "A", "B"}, true)
	require.NoError(t, err)

	router, err := routing.Build(cat, 6, 40)
	require.NoError(t, err)
	h := New(cat, router, render.New(testSettings()))

	names, ok := h.StopBuses("A")
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2"}, names)
}

func TestRoute_DelegatesToRouter(t *testing.T) {
	cat := catalogue.New()
	_, err := cat.AddStop("A", geo.Coordinates{Lat: 55.0, Lng: 37.0})
	require.NoError(t, err)
	_, err = cat.AddStop("B", geo.Coordinates{Lat: 55.0, Lng: 37.01})
	require.NoError(t, err)
	require.NoError(t, cat.SetDistance("A", "B", 1000))
	require.NoError(t, cat.SetDistance("B", "A", 1000))
	_, err = cat.AddBus("1", []string{"A", "B", "A"}, true)
	require.NoError(t, err)

	router, err := routing.Build(cat, 6, 60)
	require.NoError(t, err)
	h := New(cat, router, render.New(testSettings()))

	result, ok := h.Route("A", "B")
	require.True(t, ok)
	assert.InDelta(t, 7.0, result.TotalTime, 1e-9)

	_, ok = h.Route("A", "Nonexistent")
	assert.False(t, ok)
}

func TestMap_RendersAllBuses(t *testing.T) {
	cat := catalogue.New()
	_, err := cat.AddStop("A", geo.Coordinates{Lat: 55.0, Lng: 37.0})
	require.NoError(t, err)
	_, err = cat.AddStop("B", geo.Coordinates{Lat: 55.0, Lng: 37.01})
	require.NoError(t, err)
	require.NoError(t, cat.SetDistance("A", "B", 1000))
	require.NoError(t, cat.SetDistance("B", "A", 1000))
	_, err = cat.AddBus("1", []string{"A", "B", "A"}, true)
	require.NoError(t, err)

	router, err := routing.Build(cat, 6, 60)
	require.NoError(t, err)
	h := New(cat, router, render.New(testSettings()))

	out := h.Map()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, ">1<")
}

func testSettings() render.Settings {
	return render.Settings{
		Width:             600,
		Height:            400,
		Padding:           50,
		LineWidth:         14,
		StopRadius:        5,
		BusLabelFontSize:  20,
		StopLabelFontSize: 18,
		UnderlayerColor:   svg.RGBA(255, 255, 255, 0.85),
		UnderlayerWidth:   3,
		ColorPalette:      []svg.Color{svg.Named("green"), svg.RGB(255, 160, 0)},
	}
}
