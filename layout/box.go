package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/pagina/geom"
	"github.com/tsawler/pagina/spatial"
)

// Box is a block of lines that belong together on the page, typically a
// paragraph, a table cell or a label/value pair.
type Box struct {
	bounds      geom.Rect
	lines       []*Line
	orientation Orientation

	// Index is the reading-order rank assigned during analysis, -1 before.
	Index int

	// Tag and Field are filled in by the classification pass.
	Tag   Tag
	Field FormField
}

// NewBox creates an empty box with the given writing direction.
func NewBox(o Orientation) *Box {
	return &Box{
		bounds:      geom.Empty(),
		orientation: o,
		Index:       -1,
	}
}

func (b *Box) item() {}

// Bounds returns the union of the member line boxes.
func (b *Box) Bounds() geom.Rect { return b.bounds }

// Orientation returns the writing direction of the box. A box takes the
// direction of the line that seeded it.
func (b *Box) Orientation() Orientation { return b.orientation }

// Lines returns the member lines.
func (b *Box) Lines() []*Line { return b.lines }

// Words returns the words of all member lines, in member order.
func (b *Box) Words() []*Word {
	var words []*Word
	for _, l := range b.lines {
		words = append(words, l.Words()...)
	}
	return words
}

// Add appends a line and grows the box bounds.
func (b *Box) Add(l *Line) {
	b.lines = append(b.lines, l)
	b.bounds = b.bounds.Union(l.Bounds())
}

// IsEmpty reports whether the box has no geometry.
func (b *Box) IsEmpty() bool { return b.bounds.IsEmpty() }

// GetText returns the concatenated text of the member lines.
func (b *Box) GetText() string {
	var sb strings.Builder
	for _, l := range b.lines {
		sb.WriteString(l.GetText())
	}
	return sb.String()
}

// sortLines orders member lines for reading: horizontal boxes top to
// bottom, vertical boxes right to left.
func (b *Box) sortLines() {
	if b.orientation == Vertical {
		sort.SliceStable(b.lines, func(i, j int) bool {
			return b.lines[i].Bounds().X1 > b.lines[j].Bounds().X1
		})
		return
	}
	sort.SliceStable(b.lines, func(i, j int) bool {
		return b.lines[i].Bounds().Y1 > b.lines[j].Bounds().Y1
	})
}

// BoxAggregator merges lines into boxes by expanding each line's bounds
// and absorbing aligned neighbors.
type BoxAggregator struct {
	params Params
}

// NewBoxAggregator creates a box aggregator with the given parameters.
func NewBoxAggregator(params Params) *BoxAggregator {
	return &BoxAggregator{params: params}
}

// neighbors finds the lines adjacent to l that read as part of the same
// block: same direction, similar extent, and sharing an edge or center
// within the expansion distance. The result includes l itself.
func (ba *BoxAggregator) neighbors(l *Line, plane spatial.Plane) []*Line {
	b := l.Bounds()

	var found []*Line
	if l.Orientation() == Vertical {
		d := ba.params.LineMargin * b.Width()
		for _, it := range plane.Find(geom.Rect{X0: b.X0 - d, Y0: b.Y0, X1: b.X1 + d, Y1: b.Y1}) {
			n, ok := it.(*Line)
			if !ok || n.Orientation() != Vertical {
				continue
			}
			nb := n.Bounds()
			if absFloat64(nb.Width()-b.Width()) <= d &&
				(absFloat64(nb.Y0-b.Y0) <= d ||
					absFloat64(nb.Y1-b.Y1) <= d ||
					absFloat64((nb.Y0+nb.Y1)/2-(b.Y0+b.Y1)/2) <= d) {
				found = append(found, n)
			}
		}
		return found
	}

	d := ba.params.LineMargin * b.Height()
	for _, it := range plane.Find(geom.Rect{X0: b.X0, Y0: b.Y0 - d, X1: b.X1, Y1: b.Y1 + d}) {
		n, ok := it.(*Line)
		if !ok || n.Orientation() != Horizontal {
			continue
		}
		nb := n.Bounds()
		if absFloat64(nb.Height()-b.Height()) <= d &&
			(absFloat64(nb.X0-b.X0) <= d ||
				absFloat64(nb.X1-b.X1) <= d ||
				absFloat64((nb.X0+nb.X1)/2-(b.X0+b.X1)/2) <= d) {
			found = append(found, n)
		}
	}
	return found
}

// Group merges lines into boxes. Lines claim their aligned neighbors, and
// boxes sharing a line fuse, so membership is transitive. Boxes come back
// in first-seen order over the input lines.
func (ba *BoxAggregator) Group(lines []*Line, plane spatial.Plane) []*Box {
	if len(lines) == 0 {
		return nil
	}
	for _, l := range lines {
		plane.Insert(l)
	}

	byLine := make(map[*Line]*Box, len(lines))
	for _, l := range lines {
		members := []*Line{l}
		for _, n := range ba.neighbors(l, plane) {
			members = append(members, n)
			if box, ok := byLine[n]; ok {
				delete(byLine, n)
				members = append(members, box.lines...)
			}
		}

		box := NewBox(l.Orientation())
		seen := make(map[*Line]bool, len(members))
		for _, m := range members {
			if seen[m] {
				continue
			}
			seen[m] = true
			box.Add(m)
			byLine[m] = box
		}
	}

	var boxes []*Box
	done := make(map[*Box]bool)
	for _, l := range lines {
		box, ok := byLine[l]
		if !ok || done[box] {
			continue
		}
		done[box] = true
		if !box.IsEmpty() {
			boxes = append(boxes, box)
		}
	}
	return boxes
}
