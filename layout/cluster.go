package layout

import (
	"container/heap"

	"github.com/tsawler/pagina/geom"
	"github.com/tsawler/pagina/spatial"
)

// Group is a node in the page's layout hierarchy. Its children are boxes
// and smaller groups; a fully analyzed page has a single root group
// covering every box.
type Group struct {
	bounds      geom.Rect
	children    []Bounded
	orientation Orientation
}

// NewGroup creates an empty group. Horizontal groups order their children
// left-to-right then top-to-bottom, vertical groups top-to-bottom then
// right-to-left.
func NewGroup(o Orientation) *Group {
	return &Group{
		bounds:      geom.Empty(),
		orientation: o,
	}
}

func (g *Group) item() {}

// Bounds returns the union of the child boxes.
func (g *Group) Bounds() geom.Rect { return g.bounds }

// Orientation returns the flow direction used to order the children.
func (g *Group) Orientation() Orientation { return g.orientation }

// Children returns the child boxes and groups.
func (g *Group) Children() []Bounded { return g.children }

// Add appends a child and grows the group bounds.
func (g *Group) Add(child Bounded) {
	g.children = append(g.children, child)
	g.bounds = g.bounds.Union(child.Bounds())
}

// mergeCost is the wasted area of joining two page objects: the area of
// the bounding box of the pair minus the areas of the pair itself.
// Overlapping objects yield a negative cost and merge first.
func mergeCost(a, b Bounded) float64 {
	ab, bb := a.Bounds(), b.Bounds()
	u := ab.Union(bb)
	return u.Area() - ab.Area() - bb.Area()
}

// mergeCandidate is a prospective pair in the clustering queue. Deferred
// candidates sort after all fresh ones, then by cost, then by the serial
// ids of the pair.
type mergeCandidate struct {
	deferred bool
	cost     float64
	id1, id2 int
	a, b     Bounded
}

type candidateQueue []*mergeCandidate

func (q candidateQueue) Len() int { return len(q) }

func (q candidateQueue) Less(i, j int) bool {
	if q[i].deferred != q[j].deferred {
		return !q[i].deferred
	}
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	if q[i].id1 != q[j].id1 {
		return q[i].id1 < q[j].id1
	}
	return q[i].id2 < q[j].id2
}

func (q candidateQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *candidateQueue) Push(x any) { *q = append(*q, x.(*mergeCandidate)) }

func (q *candidateQueue) Pop() any {
	old := *q
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return c
}

// Clusterer builds the layout hierarchy by repeatedly merging the pair of
// page objects with the lowest join cost.
type Clusterer struct {
	planeFactory PlaneFactory
}

// NewClusterer creates a clusterer that obtains its spatial index from
// the given factory.
func NewClusterer(f PlaneFactory) *Clusterer {
	return &Clusterer{planeFactory: f}
}

// Cluster merges boxes into a hierarchy of groups and returns the
// surviving roots in creation order. A pair whose joint bounds overlap
// any other object is deferred until every unobstructed pair has merged;
// obstacles take part in the obstruction test but never merge. With one
// box the box itself is the root; with none the result is nil.
func (c *Clusterer) Cluster(bounds geom.Rect, boxes []*Box, obstacles []Bounded) []Bounded {
	if len(boxes) == 0 {
		return nil
	}

	plane := c.planeFactory(bounds)
	for _, ob := range obstacles {
		// Hairline rules have zero-area bounds but still obstruct; skip
		// only items whose bounds were never set.
		b := ob.Bounds()
		if b.X0 > b.X1 || b.Y0 > b.Y1 {
			continue
		}
		plane.Insert(ob)
	}

	ids := make(map[Bounded]int, len(boxes))
	nextID := 0
	var live []Bounded
	removed := make(map[Bounded]bool)

	for _, b := range boxes {
		ids[b] = nextID
		nextID++
		live = append(live, b)
		plane.Insert(b)
	}

	pq := make(candidateQueue, 0, len(boxes)*(len(boxes)-1)/2)
	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			pq = append(pq, &mergeCandidate{
				cost: mergeCost(boxes[i], boxes[j]),
				id1:  ids[boxes[i]],
				id2:  ids[boxes[j]],
				a:    boxes[i],
				b:    boxes[j],
			})
		}
	}
	heap.Init(&pq)

	consumed := make(map[int]bool)
	for pq.Len() > 0 {
		cand := heap.Pop(&pq).(*mergeCandidate)
		if consumed[cand.id1] || consumed[cand.id2] {
			continue
		}
		if !cand.deferred && c.obstructed(plane, cand.a, cand.b) {
			cand.deferred = true
			heap.Push(&pq, cand)
			continue
		}

		o := Horizontal
		if isVerticalFlow(cand.a) || isVerticalFlow(cand.b) {
			o = Vertical
		}
		group := NewGroup(o)
		group.Add(cand.a)
		group.Add(cand.b)

		plane.Remove(cand.a)
		plane.Remove(cand.b)
		removed[cand.a] = true
		removed[cand.b] = true
		consumed[cand.id1] = true
		consumed[cand.id2] = true

		gid := nextID
		nextID++
		ids[group] = gid
		for _, other := range live {
			if removed[other] {
				continue
			}
			heap.Push(&pq, &mergeCandidate{
				cost: mergeCost(group, other),
				id1:  gid,
				id2:  ids[other],
				a:    group,
				b:    other,
			})
		}
		live = append(live, group)
		plane.Insert(group)
	}

	var roots []Bounded
	for _, obj := range live {
		if !removed[obj] {
			roots = append(roots, obj)
		}
	}
	return roots
}

// obstructed reports whether any indexed object other than the pair
// overlaps the joint bounds of the pair.
func (c *Clusterer) obstructed(plane spatial.Plane, a, b Bounded) bool {
	u := a.Bounds().Union(b.Bounds())
	for _, it := range plane.Find(u) {
		if it != spatial.Item(a) && it != spatial.Item(b) {
			return true
		}
	}
	return false
}

// isVerticalFlow reports whether a page object carries vertical writing,
// which makes any group containing it flow top-to-bottom right-to-left.
func isVerticalFlow(obj Bounded) bool {
	switch v := obj.(type) {
	case *Box:
		return v.Orientation() == Vertical
	case *Group:
		return v.Orientation() == Vertical
	}
	return false
}
