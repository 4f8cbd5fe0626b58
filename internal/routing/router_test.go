package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/morocco-transport/internal/catalogue"
	"github.com/antigravity/morocco-transport/internal/geo"
)

func TestRoute_ThreeStopTransfer(t *testing.T) {
	cat := catalogue.New()
	a, err := cat.AddStop("A", geo.Coordinates{Lat: 55.0, Lng: 37.0})
	require.NoError(t, err)
	_, err = cat.AddStop("B", geo.Coordinates{Lat: 55.0, Lng: 37.01})
	require.NoError(t, err)
	c, err := cat.AddStop("C", geo.Coordinates{Lat: 55.0, Lng: 37.02})
	require.NoError(t, err)

	require.NoError(t, cat.SetDistance("A", "B", 1000))
	require.NoError(t, cat.SetDistance("B", "A", 1000))
	require.NoError(t, cat.SetDistance("B", "C", 1000))
	require.NoError(t, cat.SetDistance("C", "B", 1000))

	_, err = cat.AddBus("X", []string{"A", "B", "A"}, true)
	require.NoError(t, err)
	_, err = cat.AddBus("Y", []string{"B", "C", "B"}, true)
	require.NoError(t, err)

	router, err := Build(cat, 6, 60)
	require.NoError(t, err)

	result, ok := router.Route(a, c)
	require.True(t, ok)

	assert.InDelta(t, 14.0, result.TotalTime, 1e-9)
	require.Len(t, result.Items, 4)

	wantWaitA := WaitItem{StopName: "A", Time: 6}
	wantBusX := BusItem{BusName: "X", SpanCount: 1, Time: 1}
	wantWaitB := WaitItem{StopName: "B", Time: 6}
	wantBusY := BusItem{BusName: "Y", SpanCount: 1, Time: 1}

	assert.Equal(t, wantWaitA, result.Items[0])
	assert.Equal(t, wantBusX, result.Items[1])
	assert.Equal(t, wantWaitB, result.Items[2])
	assert.Equal(t, wantBusY, result.Items[3])
}

func TestRoute_SameStopIsZeroWithNoItems(t *testing.T) {
	cat := catalogue.New()
	a, err := cat.AddStop("A", geo.Coordinates{Lat: 55.0, Lng: 37.0})
	require.NoError(t, err)

	router, err := Build(cat, 6, 60)
	require.NoError(t, err)

	result, ok := router.Route(a, a)
	require.True(t, ok)
	assert.Zero(t, result.TotalTime)
	assert.Empty(t, result.Items)
}

func TestRoute_UsesAsymmetricFallbackDistance(t *testing.T) {
	cat := catalogue.New()
	a, err := cat.AddStop("A", geo.Coordinates{Lat: 55.0, Lng: 37.0})
	require.NoError(t, err)
	b, err := cat.AddStop("B", geo.Coordinates{Lat: 55.0, Lng: 37.01})
	require.NoError(t, err)

	require.NoError(t, cat.SetDistance("A", "B", 2000))
	// B->A intentionally left unset: fallback must reuse A->B's 2000m.

	_, err = cat.AddBus("1", []string{"A", "B"}, false)
	require.NoError(t, err)

	router, err := Build(cat, 0, 60)
	require.NoError(t, err)

	result, ok := router.Route(b, a)
	require.True(t, ok)
	assert.InDelta(t, 2.0, result.TotalTime, 1e-9)
}

func TestRoute_NoPathReturnsNotFound(t *testing.T) {
	cat := catalogue.New()
	a, err := cat.AddStop("A", geo.Coordinates{Lat: 55.0, Lng: 37.0})
	require.NoError(t, err)
	b, err := cat.AddStop("B", geo.Coordinates{Lat: 55.0, Lng: 37.01})
	require.NoError(t, err)

	router, err := Build(cat, 6, 60)
	require.NoError(t, err)

	_, ok := router.Route(a, b)
	assert.False(t, ok)
}

func TestBuild_MissingDistanceIsFatal(t *testing.T) {
	cat := catalogue.New()
	_, err := cat.AddStop("A", geo.Coordinates{Lat: 55.0, Lng: 37.0})
	require.NoError(t, err)
	_, err = cat.AddStop("B", geo.Coordinates{Lat: 55.0, Lng: 37.01})
	require.NoError(t, err)

	_, err = cat.AddBus("1", []string{"A", "B"}, false)
	require.NoError(t, err)

	_, err = Build(cat, 6, 60)
	require.Error(t, err)
	assert.IsType(t, &ErrNoDistance{}, err)
}

func TestTraversalArcs_NonRoundtripSplitsAtMidpoint(t *testing.T) {
	cat := catalogue.New()
	for _, name := range []string{"A", "B", "C"} {
		_, err := cat.AddStop(name, geo.Coordinates{})
		require.NoError(t, err)
	}
	bus, err := cat.AddBus("750", []string{"A", "B", "C"}, false)
	require.NoError(t, err)

	// Materialised route is [A,B,C,B,A], length 5.
	arcs := traversalArcs(bus)
	require.Len(t, arcs, 2)
	assert.Equal(t, arcRange{0, 2}, arcs[0])
	assert.Equal(t, arcRange{2, 4}, arcs[1])
}
