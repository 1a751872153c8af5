package layout

import (
	"math"

	"github.com/tsawler/pagina/geom"
)

// Item is a single piece of page content handled by the analyzer. The
// concrete variants are Glyph, Marker, Curve, Image, Word, Line, Box,
// Group, Figure, and Page.
type Item interface {
	item()
}

// Bounded is implemented by items that occupy space on the page.
type Bounded interface {
	Item
	Bounds() geom.Rect
}

// TextItem is implemented by items that carry text.
type TextItem interface {
	Item
	GetText() string
}

// Orientation distinguishes horizontal from vertically written text.
type Orientation int

const (
	// Horizontal text reads left to right, lines stack top to bottom.
	Horizontal Orientation = iota
	// Vertical text reads top to bottom, lines stack right to left.
	Vertical
)

// String returns a string representation of the orientation
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Tag is the semantic label the classification pass assigns to text items.
type Tag int

const (
	TagNone Tag = iota
	TagDate
	TagHeader
)

// String returns a string representation of the tag
func (t Tag) String() string {
	switch t {
	case TagDate:
		return "date"
	case TagHeader:
		return "header"
	default:
		return ""
	}
}

// FormField marks text recognized as a statement form field.
type FormField int

const (
	FormFieldNone FormField = iota
	FormFieldClosingBalance
	FormFieldAccountNumber
)

// String returns a string representation of the form field
func (f FormField) String() string {
	switch f {
	case FormFieldClosingBalance:
		return "closing_balance"
	case FormFieldAccountNumber:
		return "account_number"
	default:
		return ""
	}
}

// Glyph is a single positioned character handed in by the upstream
// decoder. Glyphs are immutable: the analyzer groups them but never
// alters them.
type Glyph struct {
	bounds   geom.Rect
	text     string
	font     string
	size     float64
	vertical bool
}

// NewGlyph creates a glyph. Size is the nominal font size; passing a
// non-positive size derives it from the bounds (height for horizontal
// glyphs, width for vertical ones). Coordinates are snapped to a
// hundredth of a point, absorbing decoder rounding noise.
func NewGlyph(text string, bounds geom.Rect, font string, size float64, vertical bool) *Glyph {
	bounds = roundRect(bounds)
	if size <= 0 {
		if vertical {
			size = roundTo(bounds.Width(), 2)
		} else {
			size = roundTo(bounds.Height(), 2)
		}
	}
	return &Glyph{bounds: bounds, text: text, font: font, size: size, vertical: vertical}
}

func (g *Glyph) item() {}

// Bounds returns the glyph bounding box.
func (g *Glyph) Bounds() geom.Rect { return g.bounds }

// GetText returns the glyph's character.
func (g *Glyph) GetText() string { return g.text }

// Font returns the font name reported by the decoder.
func (g *Glyph) Font() string { return g.font }

// Size returns the nominal font size.
func (g *Glyph) Size() float64 { return g.size }

// Vertical reports whether the glyph belongs to vertically written text.
func (g *Glyph) Vertical() bool { return g.vertical }

// Marker is a synthetic, geometry-less text unit inserted by the grouping
// algorithm: an inter-word space or a line break. Upstream decoders never
// produce markers.
type Marker struct {
	text string
}

// NewSpaceMarker returns an inter-word space marker.
func NewSpaceMarker() *Marker { return &Marker{text: " "} }

// NewBreakMarker returns a line break marker.
func NewBreakMarker() *Marker { return &Marker{text: "\n"} }

func (m *Marker) item() {}

// GetText returns the marker text.
func (m *Marker) GetText() string { return m.text }

// Shape identifies the drawing primitive a Curve represents.
type Shape int

const (
	ShapePath Shape = iota
	ShapeSegment
	ShapeRectangle
)

// String returns a string representation of the shape
func (s Shape) String() string {
	switch s {
	case ShapeSegment:
		return "segment"
	case ShapeRectangle:
		return "rectangle"
	default:
		return "path"
	}
}

// Color holds a decoded color's components, in whatever color space the
// upstream decoder resolved.
type Color []float64

// PaintStyle carries the rendering attributes of a curve. The analyzer
// passes them through untouched.
type PaintStyle struct {
	LineWidth   float64
	Stroke      bool
	Fill        bool
	EvenOdd     bool
	StrokeColor Color
	FillColor   Color
}

// Curve is a vector drawing primitive: a free path, a straight segment,
// or an axis-aligned rectangle. Curves take no part in text grouping but
// do act as obstruction candidates during box clustering.
type Curve struct {
	bounds geom.Rect
	shape  Shape
	points []geom.Point
	style  PaintStyle
}

// NewCurve creates a free path primitive from its points.
func NewCurve(points []geom.Point, style PaintStyle) *Curve {
	return &Curve{
		bounds: roundRect(geom.Bound(points)),
		shape:  ShapePath,
		points: points,
		style:  style,
	}
}

// NewSegment creates a straight line primitive between two points.
func NewSegment(p0, p1 geom.Point, style PaintStyle) *Curve {
	c := NewCurve([]geom.Point{p0, p1}, style)
	c.shape = ShapeSegment
	return c
}

// NewRectShape creates an axis-aligned rectangle primitive.
func NewRectShape(r geom.Rect, style PaintStyle) *Curve {
	c := NewCurve([]geom.Point{
		{X: r.X0, Y: r.Y0},
		{X: r.X1, Y: r.Y0},
		{X: r.X1, Y: r.Y1},
		{X: r.X0, Y: r.Y1},
	}, style)
	c.shape = ShapeRectangle
	return c
}

func (c *Curve) item() {}

// Bounds returns the bounding box of the path points.
func (c *Curve) Bounds() geom.Rect { return c.bounds }

// Shape returns the drawing primitive kind.
func (c *Curve) Shape() Shape { return c.shape }

// Points returns the path points in page coordinates.
func (c *Curve) Points() []geom.Point { return c.points }

// Style returns the rendering attributes.
func (c *Curve) Style() PaintStyle { return c.style }

// ImageInfo describes an embedded image's source attributes. The analyzer
// never interprets them.
type ImageInfo struct {
	// Name is the image's resource name in the source document.
	Name string

	// Width and Height are the source dimensions in pixels.
	Width, Height int

	// Bits is the number of bits per color component.
	Bits int

	// ColorSpace names the decoded color space.
	ColorSpace string

	// Mask reports whether the image is a stencil mask.
	Mask bool

	// Data is the decoded sample data, if the caller chose to keep it.
	Data []byte
}

// Image is an embedded raster image primitive. Like curves, images only
// participate in layout as obstruction candidates.
type Image struct {
	bounds geom.Rect
	info   ImageInfo
}

// NewImage creates an image primitive placed at bounds.
func NewImage(bounds geom.Rect, info ImageInfo) *Image {
	return &Image{bounds: roundRect(bounds), info: info}
}

func (im *Image) item() {}

// Bounds returns the placed bounding box.
func (im *Image) Bounds() geom.Rect { return im.bounds }

// Info returns the source attributes.
func (im *Image) Info() ImageInfo { return im.info }

// isMarkerText reports whether text is one of the explicit separator
// characters that terminate a word and never join one.
func isMarkerText(text string) bool {
	return text == " " || text == "\n"
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

func roundRect(r geom.Rect) geom.Rect {
	return geom.Rect{
		X0: roundTo(r.X0, 2),
		Y0: roundTo(r.Y0, 2),
		X1: roundTo(r.X1, 2),
		Y1: roundTo(r.Y1, 2),
	}
}
