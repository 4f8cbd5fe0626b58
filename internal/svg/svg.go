// Package svg is a small typed builder for the SVG primitives the map
// renderer emits: circles, polylines and text, with shared stroke/fill
// attributes and a document that serialises its children in insertion order.
package svg

import (
	"fmt"
	"strings"
)

// ColorKind tags which alternative of the Color union is populated.
type ColorKind int

const (
	ColorNone ColorKind = iota
	ColorNamed
	ColorRGB
	ColorRGBA
)

// Color is a closed sum type over SVG's "none" keyword, a named/CSS color
// string, an rgb() triple and an rgba() quadruple.
type Color struct {
	Kind    ColorKind
	Name    string
	R, G, B uint8
	A       float64
}

// None is the absence of a color ("none").
var None = Color{Kind: ColorNone}

// Named wraps a literal color keyword or hex string, e.g. "white", "black".
func Named(name string) Color { return Color{Kind: ColorNamed, Name: name} }

// RGB builds an rgb(r,g,b) color.
func RGB(r, g, b uint8) Color { return Color{Kind: ColorRGB, R: r, G: g, B: b} }

// RGBA builds an rgba(r,g,b,a) color.
func RGBA(r, g, b uint8, a float64) Color { return Color{Kind: ColorRGBA, R: r, G: g, B: b, A: a} }

func (c Color) String() string {
	switch c.Kind {
	case ColorNamed:
		return c.Name
	case ColorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	case ColorRGBA:
		return fmt.Sprintf("rgba(%d,%d,%d,%v)", c.R, c.G, c.B, c.A)
	default:
		return "none"
	}
}

// Point is a 2D coordinate in the SVG user-unit plane.
type Point struct {
	X, Y float64
}

type StrokeLineCap string

const (
	LineCapButt   StrokeLineCap = "butt"
	LineCapRound  StrokeLineCap = "round"
	LineCapSquare StrokeLineCap = "square"
)

type StrokeLineJoin string

const (
	LineJoinArcs       StrokeLineJoin = "arcs"
	LineJoinBevel      StrokeLineJoin = "bevel"
	LineJoinMiter      StrokeLineJoin = "miter"
	LineJoinMiterClip  StrokeLineJoin = "miter-clip"
	LineJoinRound      StrokeLineJoin = "round"
)

// pathProps holds the attributes common to every shape element, mirroring
// the teacher-style fluent setter pattern (each setter returns the owning
// pointer so calls chain) rather than free-standing field assignment.
type pathProps struct {
	fillColor      *Color
	strokeColor    *Color
	strokeWidth    *float64
	strokeLineCap  *StrokeLineCap
	strokeLineJoin *StrokeLineJoin
}

func (p *pathProps) renderAttrs(b *strings.Builder) {
	if p.fillColor != nil {
		fmt.Fprintf(b, ` fill="%s"`, p.fillColor.String())
	}
	if p.strokeColor != nil {
		fmt.Fprintf(b, ` stroke="%s"`, p.strokeColor.String())
	}
	if p.strokeWidth != nil {
		fmt.Fprintf(b, ` stroke-width="%s"`, formatFloat(*p.strokeWidth))
	}
	if p.strokeLineCap != nil {
		fmt.Fprintf(b, ` stroke-linecap="%s"`, *p.strokeLineCap)
	}
	if p.strokeLineJoin != nil {
		fmt.Fprintf(b, ` stroke-linejoin="%s"`, *p.strokeLineJoin)
	}
}

// Object is anything that can render itself as one SVG element.
type Object interface {
	render(b *strings.Builder)
}

// Circle models <circle>.
type Circle struct {
	pathProps
	Center Point
	Radius float64
}

func NewCircle() *Circle { return &Circle{Radius: 1.0} }

func (c *Circle) SetCenter(p Point) *Circle       { c.Center = p; return c }
func (c *Circle) SetRadius(r float64) *Circle     { c.Radius = r; return c }
func (c *Circle) SetFillColor(col Color) *Circle  { c.fillColor = &col; return c }
func (c *Circle) SetStrokeColor(col Color) *Circle { c.strokeColor = &col; return c }
func (c *Circle) SetStrokeWidth(w float64) *Circle { c.strokeWidth = &w; return c }

func (c *Circle) render(b *strings.Builder) {
	b.WriteString("<circle")
	fmt.Fprintf(b, ` cx="%s" cy="%s" r="%s"`, formatFloat(c.Center.X), formatFloat(c.Center.Y), formatFloat(c.Radius))
	c.renderAttrs(b)
	b.WriteString("/>")
}

// Polyline models <polyline>.
type Polyline struct {
	pathProps
	Points []Point
}

func NewPolyline() *Polyline { return &Polyline{} }

func (p *Polyline) AddPoint(pt Point) *Polyline { p.Points = append(p.Points, pt); return p }
func (p *Polyline) SetFillColor(c Color) *Polyline {
	p.fillColor = &c
	return p
}
func (p *Polyline) SetStrokeColor(c Color) *Polyline {
	p.strokeColor = &c
	return p
}
func (p *Polyline) SetStrokeWidth(w float64) *Polyline {
	p.strokeWidth = &w
	return p
}
func (p *Polyline) SetStrokeLineCap(v StrokeLineCap) *Polyline {
	p.strokeLineCap = &v
	return p
}
func (p *Polyline) SetStrokeLineJoin(v StrokeLineJoin) *Polyline {
	p.strokeLineJoin = &v
	return p
}

func (p *Polyline) render(b *strings.Builder) {
	b.WriteString(`<polyline points="`)
	for i, pt := range p.Points {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(b, "%s,%s", formatFloat(pt.X), formatFloat(pt.Y))
	}
	b.WriteString(`"`)
	p.renderAttrs(b)
	b.WriteString("/>")
}

// Text models <text>.
type Text struct {
	pathProps
	Position   Point
	Offset     Point
	FontSize   uint32
	FontFamily string
	FontWeight string
	Data       string
}

func NewText() *Text { return &Text{FontSize: 1} }

func (t *Text) SetPosition(p Point) *Text      { t.Position = p; return t }
func (t *Text) SetOffset(p Point) *Text        { t.Offset = p; return t }
func (t *Text) SetFontSize(s uint32) *Text     { t.FontSize = s; return t }
func (t *Text) SetFontFamily(f string) *Text   { t.FontFamily = f; return t }
func (t *Text) SetFontWeight(w string) *Text   { t.FontWeight = w; return t }
func (t *Text) SetData(d string) *Text         { t.Data = d; return t }
func (t *Text) SetFillColor(c Color) *Text     { t.fillColor = &c; return t }
func (t *Text) SetStrokeColor(c Color) *Text   { t.strokeColor = &c; return t }
func (t *Text) SetStrokeWidth(w float64) *Text { t.strokeWidth = &w; return t }

func (t *Text) render(b *strings.Builder) {
	b.WriteString("<text")
	fmt.Fprintf(b, ` x="%s" y="%s" dx="%s" dy="%s"`,
		formatFloat(t.Position.X), formatFloat(t.Position.Y),
		formatFloat(t.Offset.X), formatFloat(t.Offset.Y))
	fmt.Fprintf(b, ` font-size="%d"`, t.FontSize)
	if t.FontFamily != "" {
		fmt.Fprintf(b, ` font-family="%s"`, t.FontFamily)
	}
	if t.FontWeight != "" {
		fmt.Fprintf(b, ` font-weight="%s"`, t.FontWeight)
	}
	t.renderAttrs(b)
	b.WriteString(">")
	b.WriteString(EscapeText(t.Data))
	b.WriteString("</text>")
}

// EscapeText XML-escapes the five characters SVG text content requires.
func EscapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Document is an ordered sequence of SVG objects rendered under one <svg> root.
type Document struct {
	objects []Object
}

func NewDocument() *Document { return &Document{} }

// Add appends an object; order is preserved, no reordering by kind or id.
func (d *Document) Add(obj Object) { d.objects = append(d.objects, obj) }

// String renders the full XML-declared document.
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" ?>`)
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1">`)
	for _, obj := range d.objects {
		obj.render(&b)
	}
	b.WriteString("</svg>")
	return b.String()
}

// formatFloat renders a float the way the original renderer does: integral
// values print without a trailing ".0", fractional values are rounded to six
// decimal places with trailing zeros trimmed.
func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.6f", f), "0"), ".")
}
