package layout

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/pagina/geom"
	"github.com/tsawler/pagina/spatial"
)

// maxFigureDepth caps recursion into nested figures so a malformed page
// cannot drive the analyzer into unbounded descent.
const maxFigureDepth = 64

// PlaneFactory builds the spatial index used during analysis. The bounds
// are the container being analyzed; an index may ignore them.
type PlaneFactory func(bounds geom.Rect) spatial.Plane

// AnalyzerConfig holds configuration options for the layout analyzer.
type AnalyzerConfig struct {
	// Params are the geometric grouping parameters.
	Params Params

	// Classifier tags words, lines and boxes once grouping is done.
	// Nil skips the classification pass.
	Classifier FieldClassifier

	// Logger receives analysis diagnostics. Nil disables logging.
	Logger *zap.Logger

	// PlaneFactory builds the spatial index for line aggregation and
	// clustering. Nil uses the r-tree plane.
	PlaneFactory PlaneFactory
}

// DefaultAnalyzerConfig returns a configuration with default grouping
// parameters, no classifier and no logging.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		Params: DefaultParams(),
	}
}

// Analyzer reconstructs the reading structure of pages. One Analyzer may
// be shared across goroutines as long as each call analyzes a different
// page: the analyzer itself holds no per-page state.
type Analyzer struct {
	params     Params
	classifier FieldClassifier
	logger     *zap.Logger
	planes     PlaneFactory
}

// NewAnalyzer creates an analyzer with the default configuration.
func NewAnalyzer() *Analyzer {
	a, _ := NewAnalyzerWithConfig(DefaultAnalyzerConfig())
	return a
}

// NewAnalyzerWithConfig creates an analyzer with a custom configuration.
// It fails when the grouping parameters do not validate.
func NewAnalyzerWithConfig(config AnalyzerConfig) (*Analyzer, error) {
	if err := config.Params.Validate(); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	a := &Analyzer{
		params:     config.Params,
		classifier: config.Classifier,
		logger:     config.Logger,
		planes:     config.PlaneFactory,
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	if a.planes == nil {
		a.planes = func(bounds geom.Rect) spatial.Plane {
			return spatial.NewRTreePlane(bounds)
		}
	}
	return a, nil
}

// Analyze reconstructs the reading structure of a page in place: glyphs
// merge into words, words into lines, lines into boxes, and boxes either
// cluster into a hierarchy ordered by the flow weight or, with no flow
// weight set, sort directly by position. Embedded figures are analyzed
// first when AllTexts is set. After the call the page's items are its
// text boxes in reading order, then its non-text items, then any empty
// lines.
func (a *Analyzer) Analyze(page *Page) {
	if page == nil {
		return
	}
	items, groups := a.analyze(page.items, page.Bounds(), 0)
	page.items = items
	page.groups = groups
	a.logger.Debug("page analyzed",
		zap.Int("page", page.PageID),
		zap.Int("boxes", len(page.TextBoxes())))
}

// analyze runs the grouping pipeline over one container's items and
// returns the reorganized items plus the hierarchy roots, if any.
func (a *Analyzer) analyze(items []Item, bounds geom.Rect, depth int) ([]Item, []Bounded) {
	var glyphs []*Glyph
	var others []Item
	for _, it := range items {
		if g, ok := it.(*Glyph); ok {
			glyphs = append(glyphs, g)
		} else {
			others = append(others, it)
		}
	}

	for _, it := range others {
		if f, ok := it.(*Figure); ok {
			a.analyzeFigure(f, depth+1)
		}
	}

	if len(glyphs) == 0 {
		return items, nil
	}

	words := NewWordGrouper(a.params).Group(glyphs)
	lines := NewLineGrouper(a.params).Group(words)

	var empties []*Line
	kept := lines[:0]
	for _, l := range lines {
		if l.Bounds().IsEmpty() {
			empties = append(empties, l)
		} else {
			kept = append(kept, l)
		}
	}
	lines = kept

	boxes := NewBoxAggregator(a.params).Group(lines, a.planes(bounds))

	if a.classifier != nil {
		for _, b := range boxes {
			classifyBox(a.classifier, b)
		}
	}

	for _, b := range boxes {
		for _, l := range b.lines {
			l.terminate()
		}
	}
	for _, l := range empties {
		l.terminate()
	}

	var groups []Bounded
	if a.params.BoxesFlow == nil {
		for _, b := range boxes {
			b.sortLines()
		}
		SortBoxesByPosition(boxes)
	} else {
		groups = NewClusterer(a.planes).Cluster(bounds, boxes, staticObstacles(others))
		NewOrderer(*a.params.BoxesFlow).Order(groups)
		SortBoxesByIndex(boxes)
	}

	a.logger.Debug("grouped container content",
		zap.Int("depth", depth),
		zap.Int("glyphs", len(glyphs)),
		zap.Int("words", len(words)),
		zap.Int("lines", len(lines)),
		zap.Int("boxes", len(boxes)))

	out := make([]Item, 0, len(boxes)+len(others)+len(empties))
	for _, b := range boxes {
		out = append(out, b)
	}
	out = append(out, others...)
	for _, l := range empties {
		out = append(out, l)
	}
	return out, groups
}

// analyzeFigure recurses into a figure's content. Figures are analyzed
// only when AllTexts is set; otherwise their items pass through raw.
func (a *Analyzer) analyzeFigure(f *Figure, depth int) {
	if !a.params.AllTexts {
		return
	}
	if depth > maxFigureDepth {
		a.logger.Warn("figure nesting too deep, leaving contents ungrouped",
			zap.String("figure", f.Name),
			zap.Int("depth", depth))
		return
	}
	items, groups := a.analyze(f.items, f.Bounds(), depth)
	f.items = items
	f.groups = groups
}

// staticObstacles filters the non-text items that should block a merge
// when they sit between two boxes.
func staticObstacles(items []Item) []Bounded {
	var obs []Bounded
	for _, it := range items {
		if b, ok := it.(Bounded); ok {
			obs = append(obs, b)
		}
	}
	return obs
}
