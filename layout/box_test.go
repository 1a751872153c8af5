package layout

import (
	"testing"

	"github.com/tsawler/pagina/geom"
	"github.com/tsawler/pagina/spatial"
)

func testHLine(text string, x0, y0, x1, y1 float64) *Line {
	l := NewLine(Horizontal, 0)
	l.Add(testWord(text, x0, y0, x1, y1))
	return l
}

func testVLine(text string, x0, y0, x1, y1 float64) *Line {
	l := NewLine(Vertical, 0)
	l.Add(testVWord(text, x0, y0, x1, y1))
	return l
}

func testPlane() spatial.Plane {
	return spatial.NewRTreePlane(geom.Rect{X0: 0, Y0: 0, X1: 612, Y1: 792})
}

func TestBoxAggregatorMergesAlignedLines(t *testing.T) {
	// Three left-aligned lines with 2pt leading between them, plus one
	// line far to the right that shares a baseline with the first.
	l1 := testHLine("first", 10, 100, 200, 110)
	l2 := testHLine("second", 10, 88, 200, 98)
	l3 := testHLine("third", 10, 76, 200, 86)
	l4 := testHLine("aside", 300, 100, 400, 110)

	boxes := NewBoxAggregator(DefaultParams()).Group([]*Line{l1, l2, l3, l4}, testPlane())
	if len(boxes) != 2 {
		t.Fatalf("Group() returned %d boxes, want 2", len(boxes))
	}

	para := boxes[0]
	if len(para.Lines()) != 3 {
		t.Fatalf("boxes[0] has %d lines, want 3", len(para.Lines()))
	}
	if got, want := para.Bounds(), geom.NewRect(10, 76, 200, 110); got != want {
		t.Errorf("boxes[0].Bounds() = %+v, want %+v", got, want)
	}

	aside := boxes[1]
	if len(aside.Lines()) != 1 || aside.Lines()[0] != l4 {
		t.Errorf("boxes[1] = %q, want the distant line on its own", aside.GetText())
	}
}

func TestBoxAggregatorTransitiveMembership(t *testing.T) {
	// l1 and l3 are too far apart to be direct neighbors but both adjoin
	// l2, so all three must end up in one box.
	l1 := testHLine("a", 10, 100, 200, 110)
	l2 := testHLine("b", 10, 88, 200, 98)
	l3 := testHLine("c", 10, 76, 200, 86)

	boxes := NewBoxAggregator(DefaultParams()).Group([]*Line{l1, l3, l2}, testPlane())
	if len(boxes) != 1 {
		t.Fatalf("Group() returned %d boxes, want 1", len(boxes))
	}
	if len(boxes[0].Lines()) != 3 {
		t.Errorf("box has %d lines, want 3", len(boxes[0].Lines()))
	}
}

func TestBoxAggregatorOrientationFilter(t *testing.T) {
	h := testHLine("across", 10, 100, 200, 110)
	v := testVLine("down", 10, 70, 20, 98)

	boxes := NewBoxAggregator(DefaultParams()).Group([]*Line{h, v}, testPlane())
	if len(boxes) != 2 {
		t.Fatalf("Group() returned %d boxes, want 2", len(boxes))
	}
	if got := boxes[0].Orientation(); got != Horizontal {
		t.Errorf("boxes[0].Orientation() = %v, want %v", got, Horizontal)
	}
	if got := boxes[1].Orientation(); got != Vertical {
		t.Errorf("boxes[1].Orientation() = %v, want %v", got, Vertical)
	}
}

func TestBoxAggregatorVerticalColumns(t *testing.T) {
	v1 := testVLine("left", 100, 50, 110, 100)
	v2 := testVLine("right", 112, 50, 122, 100)

	boxes := NewBoxAggregator(DefaultParams()).Group([]*Line{v1, v2}, testPlane())
	if len(boxes) != 1 {
		t.Fatalf("Group() returned %d boxes, want 1", len(boxes))
	}
	if len(boxes[0].Lines()) != 2 {
		t.Errorf("box has %d lines, want 2", len(boxes[0].Lines()))
	}
}

func TestBoxAggregatorEmptyInput(t *testing.T) {
	if boxes := NewBoxAggregator(DefaultParams()).Group(nil, testPlane()); boxes != nil {
		t.Errorf("Group(nil) = %v, want nil", boxes)
	}
}

func TestBoxSortLines(t *testing.T) {
	b := NewBox(Horizontal)
	bottom := testHLine("bottom", 10, 76, 200, 86)
	top := testHLine("top", 10, 100, 200, 110)
	middle := testHLine("middle", 10, 88, 200, 98)
	b.Add(bottom)
	b.Add(top)
	b.Add(middle)

	b.sortLines()
	want := []string{"top", "middle", "bottom"}
	for i, l := range b.Lines() {
		if l.GetText() != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, l.GetText(), want[i])
		}
	}
}

func TestBoxSortLinesVertical(t *testing.T) {
	b := NewBox(Vertical)
	left := testVLine("left", 100, 50, 110, 100)
	right := testVLine("right", 112, 50, 122, 100)
	b.Add(left)
	b.Add(right)

	b.sortLines()
	want := []string{"right", "left"}
	for i, l := range b.Lines() {
		if l.GetText() != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, l.GetText(), want[i])
		}
	}
}

func TestBoxGetText(t *testing.T) {
	b := NewBox(Horizontal)
	for _, l := range []*Line{
		testHLine("Opening", 10, 100, 60, 110),
		testHLine("Balance", 10, 88, 60, 98),
	} {
		l.terminate()
		b.Add(l)
	}

	if got, want := b.GetText(), "Opening\nBalance\n"; got != want {
		t.Errorf("GetText() = %q, want %q", got, want)
	}
}
