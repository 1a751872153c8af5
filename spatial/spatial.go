// Package spatial provides the rectangle-range index used by layout
// analysis to find geometric neighbors and merge obstructions.
package spatial

import (
	"github.com/tidwall/rtree"

	"github.com/tsawler/pagina/geom"
)

// Item is anything that can be placed in a Plane. An item's bounds must
// not change while it is indexed.
type Item interface {
	Bounds() geom.Rect
}

// Plane is a container of placed items supporting rectangle-range queries.
//
// Implementations must tolerate interleaved removals and insertions: the
// clustering stage removes merged endpoints and inserts the merged group
// between queries.
type Plane interface {
	// Insert adds an item to the plane.
	Insert(item Item)

	// Remove removes a previously inserted item. Removing an item that is
	// not in the plane is a no-op.
	Remove(item Item)

	// Find returns the items whose bounds share interior area with r.
	// Items merely touching r's edge are not reported.
	Find(r geom.Rect) []Item

	// All returns every item currently in the plane, in no particular
	// order.
	All() []Item

	// Len returns the number of items in the plane.
	Len() int
}

// RTreePlane is the default Plane implementation, an R-tree offering
// logarithmic range queries.
type RTreePlane struct {
	tree rtree.RTreeG[Item]
}

// NewRTreePlane creates an empty plane covering bounds. The bounds are
// advisory: the underlying tree is unbounded, so items outside them are
// still indexed correctly.
func NewRTreePlane(bounds geom.Rect) *RTreePlane {
	_ = bounds
	return &RTreePlane{}
}

// Insert adds an item to the plane.
func (p *RTreePlane) Insert(item Item) {
	r := item.Bounds()
	p.tree.Insert([2]float64{r.X0, r.Y0}, [2]float64{r.X1, r.Y1}, item)
}

// Remove removes a previously inserted item.
func (p *RTreePlane) Remove(item Item) {
	r := item.Bounds()
	p.tree.Delete([2]float64{r.X0, r.Y0}, [2]float64{r.X1, r.Y1}, item)
}

// Find returns the items strictly overlapping r. The tree reports
// edge-touching rectangles as range hits, so results are filtered down to
// true interior overlap.
func (p *RTreePlane) Find(r geom.Rect) []Item {
	var found []Item
	p.tree.Search([2]float64{r.X0, r.Y0}, [2]float64{r.X1, r.Y1},
		func(_, _ [2]float64, item Item) bool {
			if item.Bounds().Overlaps(r) {
				found = append(found, item)
			}
			return true
		})
	return found
}

// All returns every item in the plane.
func (p *RTreePlane) All() []Item {
	items := make([]Item, 0, p.tree.Len())
	p.tree.Scan(func(_, _ [2]float64, item Item) bool {
		items = append(items, item)
		return true
	})
	return items
}

// Len returns the number of items in the plane.
func (p *RTreePlane) Len() int {
	return p.tree.Len()
}
