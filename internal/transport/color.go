package transport

import (
	"encoding/json"
	"fmt"

	"github.com/antigravity/morocco-transport/internal/svg"
)

// decodeColor resolves one render_settings color value, which is either a
// named/CSS string, a 3-element [r,g,b] array, or a 4-element [r,g,b,a]
// array.
func decodeColor(raw json.RawMessage) (svg.Color, error) {
	if len(raw) == 0 {
		return svg.Color{}, fmt.Errorf("color: empty value")
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return svg.Named(name), nil
	}

	var parts []float64
	if err := json.Unmarshal(raw, &parts); err != nil {
		return svg.Color{}, fmt.Errorf("color: neither a string nor a numeric array: %w", err)
	}

	switch len(parts) {
	case 3:
		return svg.RGB(uint8(parts[0]), uint8(parts[1]), uint8(parts[2])), nil
	case 4:
		return svg.RGBA(uint8(parts[0]), uint8(parts[1]), uint8(parts[2]), parts[3]), nil
	default:
		return svg.Color{}, fmt.Errorf("color: array must have 3 or 4 elements, got %d", len(parts))
	}
}
