package layout

import (
	"sort"

	"github.com/tsawler/pagina/geom"
)

// Orderer determines the reading sequence of a page: it sorts the layout
// hierarchy by the flow weight and numbers boxes depth-first.
type Orderer struct {
	flow float64
}

// NewOrderer creates an orderer with the given flow weight. The weight
// trades horizontal position against vertical position when ordering
// siblings: -1 reads strictly by position on the line, +1 strictly by
// column.
func NewOrderer(flow float64) *Orderer {
	return &Orderer{flow: flow}
}

// Order sorts every group's children by the flow key, sorts each box's
// lines for reading, and assigns ascending reading indexes to boxes by a
// depth-first walk across the given roots.
func (o *Orderer) Order(roots []Bounded) {
	for _, root := range roots {
		o.sortTree(root)
	}
	next := 0
	for _, root := range roots {
		next = assignIndexes(root, next)
	}
}

// sortTree orders the children of obj and recurses. Boxes sort their
// member lines; groups sort their children by the flow key for their
// direction.
func (o *Orderer) sortTree(obj Bounded) {
	switch v := obj.(type) {
	case *Box:
		v.sortLines()
	case *Group:
		if v.orientation == Vertical {
			sort.SliceStable(v.children, func(i, j int) bool {
				return o.tbrlKey(v.children[i].Bounds()) < o.tbrlKey(v.children[j].Bounds())
			})
		} else {
			sort.SliceStable(v.children, func(i, j int) bool {
				return o.lrtbKey(v.children[i].Bounds()) < o.lrtbKey(v.children[j].Bounds())
			})
		}
		for _, child := range v.children {
			o.sortTree(child)
		}
	}
}

// lrtbKey ranks a child for left-to-right, top-to-bottom flow. A higher
// flow weight favors keeping columns together over strict row order.
func (o *Orderer) lrtbKey(r geom.Rect) float64 {
	return (1-o.flow)*r.X0 - (1+o.flow)*(r.Y0+r.Y1)
}

// tbrlKey ranks a child for top-to-bottom, right-to-left flow.
func (o *Orderer) tbrlKey(r geom.Rect) float64 {
	return -(1+o.flow)*(r.X0+r.X1) - (1-o.flow)*r.Y1
}

// assignIndexes numbers boxes in depth-first order starting at next and
// returns the index after the last assigned one.
func assignIndexes(obj Bounded, next int) int {
	switch v := obj.(type) {
	case *Box:
		v.Index = next
		next++
	case *Group:
		for _, child := range v.children {
			next = assignIndexes(child, next)
		}
	}
	return next
}

// SortBoxesByIndex orders boxes by their assigned reading index.
func SortBoxesByIndex(boxes []*Box) {
	sort.SliceStable(boxes, func(i, j int) bool {
		return boxes[i].Index < boxes[j].Index
	})
}

// SortBoxesByPosition orders boxes directly from their geometry, used
// when no flow weight is set: vertical boxes first, right to left, then
// horizontal boxes top to bottom with ties read left to right.
func SortBoxesByPosition(boxes []*Box) {
	sort.SliceStable(boxes, func(i, j int) bool {
		ki, kj := positionKey(boxes[i]), positionKey(boxes[j])
		for n := range ki {
			if ki[n] != kj[n] {
				return ki[n] < kj[n]
			}
		}
		return false
	})
}

func positionKey(b *Box) [3]float64 {
	r := b.Bounds()
	if b.Orientation() == Vertical {
		return [3]float64{0, -r.X1, -r.Y0}
	}
	return [3]float64{1, -r.Y1, r.X0}
}

// minFloat64 returns the smaller of two float64 values
func minFloat64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// maxFloat64 returns the larger of two float64 values
func maxFloat64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// absFloat64 returns the absolute value of a float64
func absFloat64(a float64) float64 {
	if a < 0 {
		return -a
	}
	return a
}
