package layout

import (
	"math"
	"strings"

	"github.com/tsawler/pagina/geom"
)

// Line is an ordered sequence of words and synthetic markers aligned
// along one writing direction.
type Line struct {
	bounds      geom.Rect
	members     []Item // *Word and *Marker interleaved
	orientation Orientation
	wordMargin  float64

	// lastX1 is the trailing edge of the previous member for horizontal
	// lines; lastY0 the leading edge for vertical lines. They drive
	// synthetic space insertion.
	lastX1 float64
	lastY0 float64

	// Font is the first non-empty font name among the member words.
	Font string

	// FontSize is the largest font size among the member words.
	FontSize float64

	// IsForm is inherited from any member word carrying the colon hint.
	IsForm bool

	// Tag and Field are filled in by the classification pass.
	Tag   Tag
	Field FormField
}

// NewLine creates an empty line. wordMargin controls synthetic space
// insertion between distant members; 0 disables it.
func NewLine(o Orientation, wordMargin float64) *Line {
	return &Line{
		bounds:      geom.Empty(),
		orientation: o,
		wordMargin:  wordMargin,
		lastX1:      math.Inf(1),
		lastY0:      math.Inf(-1),
	}
}

func (l *Line) item() {}

// Bounds returns the union of the member boxes. Markers have no geometry
// and do not contribute.
func (l *Line) Bounds() geom.Rect { return l.bounds }

// Orientation returns the line's writing direction.
func (l *Line) Orientation() Orientation { return l.orientation }

// Members returns words and markers in reading order.
func (l *Line) Members() []Item { return l.members }

// Words returns only the member words, in reading order.
func (l *Line) Words() []*Word {
	var words []*Word
	for _, m := range l.members {
		if w, ok := m.(*Word); ok {
			words = append(words, w)
		}
	}
	return words
}

// GetText returns the concatenated member text, markers included.
func (l *Line) GetText() string {
	var sb strings.Builder
	for _, m := range l.members {
		if t, ok := m.(TextItem); ok {
			sb.WriteString(t.GetText())
		}
	}
	return sb.String()
}

// Add appends a word, inserting a synthetic space first when the gap from
// the previous member exceeds the word margin. Font attributes and the
// form hint aggregate as members arrive.
func (l *Line) Add(w *Word) {
	b := w.Bounds()
	if l.wordMargin > 0 {
		margin := l.wordMargin * maxFloat64(b.Width(), b.Height())
		if l.orientation == Horizontal && l.lastX1 < b.X0-margin {
			l.addMember(NewSpaceMarker())
		}
		if l.orientation == Vertical && b.Y1+margin < l.lastY0 {
			l.addMember(NewSpaceMarker())
		}
	}
	if l.orientation == Horizontal {
		l.lastX1 = b.X1
	} else {
		l.lastY0 = b.Y0
	}

	if !l.IsForm && w.IsForm {
		l.IsForm = true
	}
	if l.FontSize < w.FontSize {
		l.FontSize = w.FontSize
	}
	if l.Font == "" {
		l.Font = w.Font
	}
	l.addMember(w)
}

func (l *Line) addMember(it Item) {
	l.members = append(l.members, it)
	if b, ok := it.(Bounded); ok {
		l.bounds = l.bounds.Union(b.Bounds())
	}
}

// terminate closes the line with a break marker. Called once per line
// when analysis finishes it.
func (l *Line) terminate() {
	l.addMember(NewBreakMarker())
}

// LineGrouper merges an ordered run of words into lines.
type LineGrouper struct {
	params Params
}

// NewLineGrouper creates a line grouper with the given parameters.
func NewLineGrouper(params Params) *LineGrouper {
	return &LineGrouper{params: params}
}

// halign mirrors the word-level predicate with a third of the line
// tolerance: words merge into a line while they share a baseline and the
// gap stays under CharMargin/3 of the smaller width.
func (lg *LineGrouper) halign(prev, cur *Word) bool {
	a, b := prev.Bounds(), cur.Bounds()
	return a.VOverlaps(b) &&
		minFloat64(a.Height(), b.Height())*lg.params.LineOverlap < a.VOverlap(b) &&
		a.HDistance(b) < minFloat64(a.Width(), b.Width())*(lg.params.CharMargin/3)
}

// valign is the vertical-writing counterpart of halign.
func (lg *LineGrouper) valign(prev, cur *Word) bool {
	if !lg.params.DetectVertical {
		return false
	}
	a, b := prev.Bounds(), cur.Bounds()
	return a.HOverlaps(b) &&
		minFloat64(a.Width(), b.Width())*lg.params.LineOverlap < a.HOverlap(b) &&
		a.VDistance(b) < maxFloat64(a.Height(), b.Height())*(lg.params.CharMargin/3)
}

// Group merges adjacent words into lines, preserving input order. The
// direction of each line is decided by its first aligned pair; when both
// or neither direction aligns for a fresh pair, the earlier word is
// flushed as a one-word horizontal line.
func (lg *LineGrouper) Group(words []*Word) []*Line {
	if len(words) == 0 {
		return nil
	}

	var lines []*Line
	var line *Line

	emit := func() {
		if line != nil {
			lines = append(lines, line)
			line = nil
		}
	}

	prev := words[0]
	for _, cur := range words[1:] {
		halign := lg.halign(prev, cur)
		valign := lg.valign(prev, cur)

		switch {
		case line != nil &&
			((halign && line.orientation == Horizontal) || (valign && line.orientation == Vertical)):
			line.Add(cur)
		case line != nil:
			emit()
		case valign && !halign:
			line = NewLine(Vertical, lg.params.WordMargin)
			line.Add(prev)
			line.Add(cur)
		case halign && !valign:
			line = NewLine(Horizontal, lg.params.WordMargin)
			line.Add(prev)
			line.Add(cur)
		default:
			line = NewLine(Horizontal, lg.params.WordMargin)
			line.Add(prev)
			emit()
		}
		prev = cur
	}

	if line == nil {
		line = NewLine(Horizontal, lg.params.WordMargin)
		line.Add(prev)
	}
	emit()

	return lines
}
