package render

import (
	"math"

	"github.com/antigravity/morocco-transport/internal/geo"
	"github.com/antigravity/morocco-transport/internal/svg"
)

const epsilon = 1e-6

func isZero(v float64) bool { return math.Abs(v) < epsilon }

// Projector maps geodetic coordinates onto the image plane.
// It is built once per render from exactly the stop coordinates that appear
// in at least one non-empty bus.
type Projector struct {
	padding  float64
	minLng   float64
	maxLat   float64
	zoom     float64
}

// NewProjector computes the affine projection coefficients for points under
// the given canvas size and padding. With no points, the projector still
// exists but projects everything to (padding, padding).
func NewProjector(points []geo.Coordinates, width, height, padding float64) *Projector {
	p := &Projector{padding: padding}
	if len(points) == 0 {
		return p
	}

	minLng, maxLng := points[0].Lng, points[0].Lng
	minLat, maxLat := points[0].Lat, points[0].Lat
	for _, pt := range points[1:] {
		if pt.Lng < minLng {
			minLng = pt.Lng
		}
		if pt.Lng > maxLng {
			maxLng = pt.Lng
		}
		if pt.Lat < minLat {
			minLat = pt.Lat
		}
		if pt.Lat > maxLat {
			maxLat = pt.Lat
		}
	}
	p.minLng = minLng
	p.maxLat = maxLat

	var widthZoom, heightZoom *float64
	if !isZero(maxLng - minLng) {
		v := (width - 2*padding) / (maxLng - minLng)
		widthZoom = &v
	}
	if !isZero(maxLat - minLat) {
		v := (height - 2*padding) / (maxLat - minLat)
		heightZoom = &v
	}

	switch {
	case widthZoom != nil && heightZoom != nil:
		p.zoom = math.Min(*widthZoom, *heightZoom)
	case widthZoom != nil:
		p.zoom = *widthZoom
	case heightZoom != nil:
		p.zoom = *heightZoom
	default:
		p.zoom = 0
	}

	return p
}

// Project converts a geodetic coordinate to an SVG point.
func (p *Projector) Project(c geo.Coordinates) svg.Point {
	return svg.Point{
		X: (c.Lng-p.minLng)*p.zoom + p.padding,
		Y: (p.maxLat-c.Lat)*p.zoom + p.padding,
	}
}
