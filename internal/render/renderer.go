// Package render projects the catalogue's geodetic coordinates onto an
// image plane and emits a deterministic, layer-ordered SVG document.
package render

import (
	"sort"

	"github.com/antigravity/morocco-transport/internal/catalogue"
	"github.com/antigravity/morocco-transport/internal/geo"
	"github.com/antigravity/morocco-transport/internal/svg"
)

// Renderer holds immutable render settings; each Render call allocates and
// returns an independent document.
type Renderer struct {
	settings Settings
}

// New builds a Renderer over the given settings.
func New(settings Settings) *Renderer {
	return &Renderer{settings: settings}
}

// Render draws every non-empty bus and the stops it touches, in the
// contractual layer order: polylines, then bus labels, then stop dots,
// then stop labels.
func (r *Renderer) Render(buses []*catalogue.Bus) string {
	rendered := nonEmptyBusesSorted(buses)

	seen := make(map[*catalogue.Stop]struct{})
	var coordList []*catalogue.Stop
	for _, bus := range rendered {
		for _, s := range bus.Stops {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			coordList = append(coordList, s)
		}
	}

	coords := make([]geo.Coordinates, len(coordList))
	for i, s := range coordList {
		coords[i] = s.Coordinates
	}

	projector := NewProjector(coords, r.settings.Width, r.settings.Height, r.settings.Padding)

	doc := svg.NewDocument()
	busColor := make(map[*catalogue.Bus]svg.Color, len(rendered))

	// Layer 1: polylines.
	palette := r.settings.ColorPalette
	for i, bus := range rendered {
		color := palette[i%len(palette)]
		busColor[bus] = color

		line := svg.NewPolyline().
			SetFillColor(svg.None).
			SetStrokeColor(color).
			SetStrokeWidth(r.settings.LineWidth).
			SetStrokeLineCap(svg.LineCapRound).
			SetStrokeLineJoin(svg.LineJoinRound)
		for _, s := range bus.Stops {
			line.AddPoint(projector.Project(s.Coordinates))
		}
		doc.Add(line)
	}

	// Layer 2: bus labels.
	for _, bus := range rendered {
		color := busColor[bus]
		first := bus.Stops[0]
		r.addBusLabel(doc, first, bus.Name, color, projector)

		if !bus.IsRoundtrip {
			mid := bus.Stops[len(bus.Stops)/2]
			if mid != first {
				r.addBusLabel(doc, mid, bus.Name, color, projector)
			}
		}
	}

	// Layer 3: stop circles.
	stopsSorted := append([]*catalogue.Stop(nil), coordList...)
	sort.Slice(stopsSorted, func(i, j int) bool { return stopsSorted[i].Name < stopsSorted[j].Name })
	for _, s := range stopsSorted {
		circle := svg.NewCircle().
			SetCenter(projector.Project(s.Coordinates)).
			SetRadius(r.settings.StopRadius).
			SetFillColor(svg.Named("white"))
		doc.Add(circle)
	}

	// Layer 4: stop labels.
	for _, s := range stopsSorted {
		r.addStopLabel(doc, s, projector)
	}

	return doc.String()
}

func (r *Renderer) addBusLabel(doc *svg.Document, stop *catalogue.Stop, name string, color svg.Color, projector *Projector) {
	pos := projector.Project(stop.Coordinates)
	offset := svg.Point{X: r.settings.BusLabelOffsetX, Y: r.settings.BusLabelOffsetY}

	halo := svg.NewText().
		SetPosition(pos).
		SetOffset(offset).
		SetFontSize(uint32(r.settings.BusLabelFontSize)).
		SetFontFamily("Verdana").
		SetFontWeight("bold").
		SetData(name).
		SetFillColor(r.settings.UnderlayerColor).
		SetStrokeColor(r.settings.UnderlayerColor).
		SetStrokeWidth(r.settings.UnderlayerWidth)
	doc.Add(halo)

	glyph := svg.NewText().
		SetPosition(pos).
		SetOffset(offset).
		SetFontSize(uint32(r.settings.BusLabelFontSize)).
		SetFontFamily("Verdana").
		SetFontWeight("bold").
		SetData(name).
		SetFillColor(color)
	doc.Add(glyph)
}

func (r *Renderer) addStopLabel(doc *svg.Document, stop *catalogue.Stop, projector *Projector) {
	pos := projector.Project(stop.Coordinates)
	offset := svg.Point{X: r.settings.StopLabelOffsetX, Y: r.settings.StopLabelOffsetY}

	halo := svg.NewText().
		SetPosition(pos).
		SetOffset(offset).
		SetFontSize(uint32(r.settings.StopLabelFontSize)).
		SetFontFamily("Verdana").
		SetData(stop.Name).
		SetFillColor(r.settings.UnderlayerColor).
		SetStrokeColor(r.settings.UnderlayerColor).
		SetStrokeWidth(r.settings.UnderlayerWidth)
	doc.Add(halo)

	glyph := svg.NewText().
		SetPosition(pos).
		SetOffset(offset).
		SetFontSize(uint32(r.settings.StopLabelFontSize)).
		SetFontFamily("Verdana").
		SetData(stop.Name).
		SetFillColor(svg.Named("black"))
	doc.Add(glyph)
}

func nonEmptyBusesSorted(buses []*catalogue.Bus) []*catalogue.Bus {
	out := make([]*catalogue.Bus, 0, len(buses))
	for _, b := range buses {
		if len(b.Stops) == 0 {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
