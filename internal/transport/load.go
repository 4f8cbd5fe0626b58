package transport

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/antigravity/morocco-transport/internal/catalogue"
	"github.com/antigravity/morocco-transport/internal/geo"
	"github.com/antigravity/morocco-transport/internal/handler"
	"github.com/antigravity/morocco-transport/internal/render"
	"github.com/antigravity/morocco-transport/internal/routing"
	"github.com/antigravity/morocco-transport/internal/svg"
)

// Load populates a Catalogue, builds the Router and Renderer from doc, and
// returns the composed query Handler. Mirrors the teacher's main.go wiring
// order (loader -> raptor engine -> handler), replacing the Postgres load
// with a direct decode of the in-memory document.
func Load(doc *Document, logger *zap.Logger) (*handler.Handler, error) {
	cat := catalogue.New()

	// Stops first: buses and distances reference them by name.
	for _, req := range doc.BaseRequests {
		if req.Type != "Stop" {
			continue
		}
		if _, err := cat.AddStop(req.Name, geo.Coordinates{Lat: req.Latitude, Lng: req.Longitude}); err != nil {
			return nil, fmt.Errorf("load stops: %w", err)
		}
	}
	logger.Debug("stops loaded", zap.Int("count", countType(doc.BaseRequests, "Stop")))

	for _, req := range doc.BaseRequests {
		if req.Type != "Stop" {
			continue
		}
		for toName, meters := range req.RoadDistances {
			if err := cat.SetDistance(req.Name, toName, meters); err != nil {
				return nil, fmt.Errorf("load distances: %w", err)
			}
		}
	}

	for _, req := range doc.BaseRequests {
		if req.Type != "Bus" {
			continue
		}
		if _, err := cat.AddBus(req.Name, req.Stops, req.IsRoundtrip); err != nil {
			return nil, fmt.Errorf("load buses: %w", err)
		}
	}
	logger.Debug("buses loaded", zap.Int("count", countType(doc.BaseRequests, "Bus")))

	router, err := routing.Build(cat, float64(doc.RoutingSettings.BusWaitTime), doc.RoutingSettings.BusVelocity)
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}
	logger.Debug("router built", zap.Int("stops", len(cat.AllStops())))

	renderSettings, err := buildRenderSettings(doc.RenderSettings)
	if err != nil {
		return nil, fmt.Errorf("render settings: %w", err)
	}
	renderer := render.New(renderSettings)

	return handler.New(cat, router, renderer), nil
}

func countType(reqs []BaseRequest, t string) int {
	n := 0
	for _, r := range reqs {
		if r.Type == t {
			n++
		}
	}
	return n
}

func buildRenderSettings(rs RenderSettings) (render.Settings, error) {
	if len(rs.ColorPalette) == 0 {
		return render.Settings{}, render.ErrEmptyPalette
	}

	palette := make([]svg.Color, 0, len(rs.ColorPalette))
	for _, raw := range rs.ColorPalette {
		c, err := decodeColor(raw)
		if err != nil {
			return render.Settings{}, fmt.Errorf("color_palette: %w", err)
		}
		palette = append(palette, c)
	}

	underlayer, err := decodeColor(rs.UnderlayerColor)
	if err != nil {
		return render.Settings{}, fmt.Errorf("underlayer_color: %w", err)
	}

	return render.Settings{
		Width:             rs.Width,
		Height:            rs.Height,
		Padding:           rs.Padding,
		LineWidth:         rs.LineWidth,
		StopRadius:        rs.StopRadius,
		BusLabelFontSize:  rs.BusLabelFontSize,
		BusLabelOffsetX:   rs.BusLabelOffset[0],
		BusLabelOffsetY:   rs.BusLabelOffset[1],
		StopLabelFontSize: rs.StopLabelFontSize,
		StopLabelOffsetX:  rs.StopLabelOffset[0],
		StopLabelOffsetY:  rs.StopLabelOffset[1],
		UnderlayerColor:   underlayer,
		UnderlayerWidth:   rs.UnderlayerWidth,
		ColorPalette:      palette,
	}, nil
}
