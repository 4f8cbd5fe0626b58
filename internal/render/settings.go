package render

import (
	"errors"

	"github.com/antigravity/morocco-transport/internal/svg"
)

// ErrEmptyPalette is a referential-integrity error: an empty color palette
// leaves the renderer with no color to assign, so the input validator
// rejects it outright.
var ErrEmptyPalette = errors.New("render: color palette must not be empty")

// Settings mirrors the render_settings block of the input document.
// Colors are already resolved to svg.Color by the caller.
type Settings struct {
	Width  float64
	Height float64
	Padding float64

	LineWidth  float64
	StopRadius float64

	BusLabelFontSize int
	BusLabelOffsetX  float64
	BusLabelOffsetY  float64

	StopLabelFontSize int
	StopLabelOffsetX  float64
	StopLabelOffsetY  float64

	UnderlayerColor svg.Color
	UnderlayerWidth float64

	ColorPalette []svg.Color
}
