package layout

import (
	"strings"

	"github.com/tsawler/pagina/geom"
)

// Word is a run of glyphs forming one token of text. Words never contain
// explicit space or break characters; those terminate a word instead.
type Word struct {
	bounds      geom.Rect
	glyphs      []*Glyph
	orientation Orientation

	// Font is the first non-empty font name among the member glyphs.
	Font string

	// FontSize is fixed by the first two member glyphs, rounded to one
	// decimal.
	FontSize float64

	// IsForm is set when the word carries a ":" glyph, the usual sign of
	// a "label: value" form layout.
	IsForm bool

	// Tag and Field are filled in by the classification pass.
	Tag   Tag
	Field FormField
}

// NewWord creates an empty word of the given orientation.
func NewWord(o Orientation) *Word {
	return &Word{bounds: geom.Empty(), orientation: o}
}

func (w *Word) item() {}

// Bounds returns the union of the member glyphs' boxes.
func (w *Word) Bounds() geom.Rect { return w.bounds }

// Orientation returns the word's writing direction.
func (w *Word) Orientation() Orientation { return w.orientation }

// Glyphs returns the member glyphs in reading order.
func (w *Word) Glyphs() []*Glyph { return w.glyphs }

// Len returns the number of member glyphs.
func (w *Word) Len() int { return len(w.glyphs) }

// GetText returns the concatenated glyph text.
func (w *Word) GetText() string {
	var sb strings.Builder
	for _, g := range w.glyphs {
		sb.WriteString(g.GetText())
	}
	return sb.String()
}

// Add appends a glyph, growing the word's box and aggregating its font
// attributes. The first two glyphs fix the reported font size.
func (w *Word) Add(g *Glyph) {
	w.glyphs = append(w.glyphs, g)
	w.bounds = w.bounds.Union(g.Bounds())
	if len(w.glyphs) <= 2 {
		w.FontSize = roundTo(g.Size(), 1)
	}
	if w.Font == "" {
		w.Font = g.Font()
	}
	if g.GetText() == ":" {
		w.IsForm = true
	}
}

// WordGrouper merges an ordered run of glyphs into words.
type WordGrouper struct {
	params Params
}

// NewWordGrouper creates a word grouper with the given parameters.
func NewWordGrouper(params Params) *WordGrouper {
	return &WordGrouper{params: params}
}

// halign: prev and cur share a horizontal baseline and sit close enough
// to belong to the same word.
//
//	+------+ - - -
//	| prev | - - +------+   -
//	|      |     | cur  |   | (line overlap)
//	+------+ - - |      |   -
//	       - - - +------+
//
//	       |<--->|
//	    (char margin)
func (wg *WordGrouper) halign(prev, cur *Glyph) bool {
	a, b := prev.Bounds(), cur.Bounds()
	return a.VOverlaps(b) &&
		minFloat64(a.Height(), b.Height())*wg.params.LineOverlap < a.VOverlap(b) &&
		a.HDistance(b) < maxFloat64(a.Width(), b.Width())*wg.params.CharMarginForWord
}

// valign is the vertical-writing counterpart of halign. It never holds
// unless vertical detection is enabled.
func (wg *WordGrouper) valign(prev, cur *Glyph) bool {
	if !wg.params.DetectVertical {
		return false
	}
	a, b := prev.Bounds(), cur.Bounds()
	return a.HOverlaps(b) &&
		minFloat64(a.Width(), b.Width())*wg.params.LineOverlap < a.HOverlap(b) &&
		a.VDistance(b) < maxFloat64(a.Height(), b.Height())*wg.params.CharMarginForWord
}

// Group merges adjacent glyphs into words, preserving input order. A word
// extends while consecutive glyphs stay aligned in its own orientation;
// separator glyphs terminate it. A lone trailing glyph still yields a
// one-glyph word. Empty words are never emitted.
func (wg *WordGrouper) Group(glyphs []*Glyph) []*Word {
	if len(glyphs) == 0 {
		return nil
	}

	var words []*Word
	var word *Word

	emit := func() {
		if word != nil {
			if word.Len() > 0 {
				words = append(words, word)
			}
			word = nil
		}
	}

	prev := glyphs[0]
	for _, cur := range glyphs[1:] {
		halign := wg.halign(prev, cur)
		valign := wg.valign(prev, cur)

		switch {
		case word != nil &&
			((halign && word.orientation == Horizontal) || (valign && word.orientation == Vertical)) &&
			!isMarkerText(cur.GetText()):
			word.Add(cur)
		case word != nil:
			emit()
		case valign && !halign:
			word = startWord(Vertical, prev, cur)
		case halign && !valign:
			word = startWord(Horizontal, prev, cur)
		default:
			// Both directions align, or neither does: the earlier glyph
			// stands alone and the next pair starts fresh.
			word = startWord(Horizontal, prev)
			emit()
		}
		prev = cur
	}

	if word == nil {
		word = startWord(Horizontal, prev)
	}
	emit()

	return words
}

// startWord opens a word of the given orientation with the seed glyphs,
// skipping separators. It returns nil when every seed was a separator.
func startWord(o Orientation, seeds ...*Glyph) *Word {
	w := NewWord(o)
	for _, g := range seeds {
		if !isMarkerText(g.GetText()) {
			w.Add(g)
		}
	}
	if w.Len() == 0 {
		return nil
	}
	return w
}
