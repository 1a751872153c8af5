package layout

import (
	"strings"
	"testing"

	"github.com/tsawler/pagina/geom"
)

// testWord builds a one-glyph word spanning the given rectangle.
func testWord(text string, x0, y0, x1, y1 float64) *Word {
	w := NewWord(Horizontal)
	w.Add(testGlyph(text, x0, y0, x1, y1))
	return w
}

func testVWord(text string, x0, y0, x1, y1 float64) *Word {
	w := NewWord(Vertical)
	w.Add(testVGlyph(text, x0, y0, x1, y1))
	return w
}

func lineTexts(lines []*Line) []string {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.GetText()
	}
	return texts
}

func TestLineGrouperMergesWordsWithSpace(t *testing.T) {
	glyphs := glyphRun("Date", 10, 100, 6, 10)
	glyphs = append(glyphs, glyphRun("15/03/2023", 44, 100, 6, 10)...)

	params := DefaultParams()
	words := NewWordGrouper(params).Group(glyphs)
	lines := NewLineGrouper(params).Group(words)

	if len(lines) != 1 {
		t.Fatalf("Group() returned %d lines %v, want 1", len(lines), lineTexts(lines))
	}
	got := lines[0].GetText()
	if got != "Date 15/03/2023" {
		t.Errorf("GetText() = %q, want %q", got, "Date 15/03/2023")
	}
	if n := strings.Count(got, " "); n != 1 {
		t.Errorf("GetText() contains %d spaces, want exactly 1", n)
	}
}

func TestLineGrouperNoSpaceForSmallGap(t *testing.T) {
	// The two words sit closer than the word margin allows, so they join
	// the same line without a synthetic space.
	words := []*Word{
		testWord("Over", 10, 100, 34, 110),
		testWord("draft", 34.2, 100, 64.2, 110),
	}

	lines := NewLineGrouper(DefaultParams()).Group(words)
	if len(lines) != 1 {
		t.Fatalf("Group() returned %d lines, want 1", len(lines))
	}
	if got := lines[0].GetText(); got != "Overdraft" {
		t.Errorf("GetText() = %q, want %q", got, "Overdraft")
	}
}

func TestLineGrouperSeparatesDistantWords(t *testing.T) {
	words := []*Word{
		testWord("ab", 10, 100, 22, 110),
		testWord("cd", 70, 100, 82, 110),
	}

	lines := NewLineGrouper(DefaultParams()).Group(words)
	got := lineTexts(lines)
	want := []string{"ab", "cd"}
	if len(got) != len(want) {
		t.Fatalf("Group() returned %d lines %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLineGrouperSeparatesBaselines(t *testing.T) {
	words := []*Word{
		testWord("above", 10, 112, 40, 122),
		testWord("below", 10, 100, 40, 110),
	}

	lines := NewLineGrouper(DefaultParams()).Group(words)
	if len(lines) != 2 {
		t.Fatalf("Group() returned %d lines %v, want 2", len(lines), lineTexts(lines))
	}
}

func TestLineGrouperVertical(t *testing.T) {
	params := DefaultParams()
	params.DetectVertical = true

	// The 2pt gap between X and Y exceeds the word margin (0.1 x 10pt),
	// so the line carries a synthetic space between them.
	words := []*Word{
		testVWord("X", 100, 90, 110, 100),
		testVWord("Y", 100, 78, 110, 88),
	}

	lines := NewLineGrouper(params).Group(words)
	if len(lines) != 1 {
		t.Fatalf("Group() returned %d lines, want 1", len(lines))
	}
	if got := lines[0].Orientation(); got != Vertical {
		t.Errorf("Orientation() = %v, want %v", got, Vertical)
	}
	if got := lines[0].GetText(); got != "X Y" {
		t.Errorf("GetText() = %q, want %q", got, "X Y")
	}
}

func TestLineGrouperVerticalNoSpaceForSmallGap(t *testing.T) {
	params := DefaultParams()
	params.DetectVertical = true

	words := []*Word{
		testVWord("X", 100, 90, 110, 100),
		testVWord("Y", 100, 79.5, 110, 89.5),
	}

	lines := NewLineGrouper(params).Group(words)
	if len(lines) != 1 {
		t.Fatalf("Group() returned %d lines, want 1", len(lines))
	}
	if got := lines[0].GetText(); got != "XY" {
		t.Errorf("GetText() = %q, want %q", got, "XY")
	}
}

func TestLineFontAggregation(t *testing.T) {
	l := NewLine(Horizontal, 0)

	small := NewWord(Horizontal)
	small.Add(NewGlyph("a", geom.Rect{X0: 10, Y0: 100, X1: 16, Y1: 110}, "", 10, false))
	large := NewWord(Horizontal)
	large.Add(NewGlyph("b", geom.Rect{X0: 16, Y0: 100, X1: 24, Y1: 114}, "Times-Roman", 14, false))

	l.Add(small)
	l.Add(large)

	if l.FontSize != 14 {
		t.Errorf("FontSize = %v, want 14", l.FontSize)
	}
	if l.Font != "Times-Roman" {
		t.Errorf("Font = %q, want %q", l.Font, "Times-Roman")
	}
}

func TestLineFormPropagation(t *testing.T) {
	l := NewLine(Horizontal, 0)
	l.Add(testWord("Amount", 10, 100, 46, 110))
	if l.IsForm {
		t.Error("IsForm = true before any form word, want false")
	}

	colon := NewWord(Horizontal)
	for _, g := range glyphRun("Due:", 46, 100, 6, 10) {
		colon.Add(g)
	}
	l.Add(colon)
	if !l.IsForm {
		t.Error("IsForm = false, want true after adding a form word")
	}
}

func TestLineTerminate(t *testing.T) {
	l := NewLine(Horizontal, 0)
	l.Add(testWord("total", 10, 100, 40, 110))
	l.terminate()

	if got := l.GetText(); got != "total\n" {
		t.Errorf("GetText() = %q, want %q", got, "total\n")
	}
	if got := l.Bounds(); got != (geom.Rect{X0: 10, Y0: 100, X1: 40, Y1: 110}) {
		t.Errorf("Bounds() = %+v changed by terminate, want unchanged", got)
	}
}

func TestLineWordsAccessor(t *testing.T) {
	l := NewLine(Horizontal, 0.1)
	l.Add(testWord("a", 10, 100, 16, 110))
	l.Add(testWord("b", 40, 100, 46, 110))

	words := l.Words()
	if len(words) != 2 {
		t.Fatalf("Words() returned %d words, want 2 with markers excluded", len(words))
	}
	if len(l.Members()) != 3 {
		t.Errorf("Members() returned %d items, want 3 including the space marker", len(l.Members()))
	}
}
