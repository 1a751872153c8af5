package layout

import "github.com/tsawler/pagina/geom"

// Page is the top-level container for one page's positioned content. It
// starts out holding raw items and, after analysis, holds text boxes in
// reading order followed by the page's non-text items.
type Page struct {
	bounds geom.Rect
	items  []Item
	groups []Bounded

	// PageID identifies the page within its document, usually 1-based.
	PageID int

	// Rotate is the page rotation in degrees clockwise.
	Rotate int
}

// NewPage creates an empty page with fixed bounds.
func NewPage(pageID int, bounds geom.Rect, rotate int) *Page {
	return &Page{
		bounds: bounds,
		PageID: pageID,
		Rotate: rotate,
	}
}

func (p *Page) item() {}

// Bounds returns the page media box. Adding items does not grow it.
func (p *Page) Bounds() geom.Rect { return p.bounds }

// Add appends an item to the page.
func (p *Page) Add(it Item) {
	p.items = append(p.items, it)
}

// Items returns the page children. Before analysis these are the raw
// items in insertion order; after analysis, text boxes in reading order,
// then non-text items, then any empty lines.
func (p *Page) Items() []Item { return p.items }

// TextBoxes returns the page's text boxes. After analysis with a flow
// weight they carry ascending reading indexes.
func (p *Page) TextBoxes() []*Box {
	var boxes []*Box
	for _, it := range p.items {
		if b, ok := it.(*Box); ok {
			boxes = append(boxes, b)
		}
	}
	return boxes
}

// Groups returns the roots of the layout hierarchy built during
// analysis, or nil when analysis ran without a flow weight.
func (p *Page) Groups() []Bounded { return p.groups }

// Figure is a container for content painted through a form XObject. Its
// bounds are the bounding box of the declared bounds transformed by the
// placement matrix.
type Figure struct {
	bounds geom.Rect
	items  []Item
	groups []Bounded

	// Name is the resource name the figure was invoked under.
	Name string

	// Matrix maps figure space onto page space.
	Matrix geom.Matrix
}

// NewFigure creates an empty figure from its declared bounds and
// placement matrix.
func NewFigure(name string, bounds geom.Rect, m geom.Matrix) *Figure {
	corners := []geom.Point{
		m.Transform(geom.Point{X: bounds.X0, Y: bounds.Y0}),
		m.Transform(geom.Point{X: bounds.X1, Y: bounds.Y0}),
		m.Transform(geom.Point{X: bounds.X0, Y: bounds.Y1}),
		m.Transform(geom.Point{X: bounds.X1, Y: bounds.Y1}),
	}
	return &Figure{
		bounds: geom.Bound(corners),
		Name:   name,
		Matrix: m,
	}
}

func (f *Figure) item() {}

// Bounds returns the transformed figure bounds. Adding items does not
// grow it.
func (f *Figure) Bounds() geom.Rect { return f.bounds }

// Add appends an item to the figure.
func (f *Figure) Add(it Item) {
	f.items = append(f.items, it)
}

// Items returns the figure children, reorganized the same way as page
// children once the figure has been analyzed.
func (f *Figure) Items() []Item { return f.items }

// TextBoxes returns the figure's text boxes, present once the figure has
// been analyzed with AllTexts set.
func (f *Figure) TextBoxes() []*Box {
	var boxes []*Box
	for _, it := range f.items {
		if b, ok := it.(*Box); ok {
			boxes = append(boxes, b)
		}
	}
	return boxes
}

// Groups returns the roots of the figure's layout hierarchy, if it was
// analyzed with a flow weight.
func (f *Figure) Groups() []Bounded { return f.groups }
