package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBoxesFlow reports a BoxesFlow value outside the accepted range.
var ErrInvalidBoxesFlow = errors.New("boxes flow must be nil or a number between -1 and +1")

// Params holds the geometric thresholds driving layout analysis.
//
// The defaults are tuned for typeset and scanned statement pages; start
// from DefaultParams and adjust rather than building a Params from scratch.
type Params struct {
	// LineOverlap is the fraction of the smaller of two items' heights
	// (widths, for vertical text) they must overlap across the reading
	// axis to count as aligned (default: 0.5)
	LineOverlap float64

	// CharMargin bounds the gap between words merged into one line, as a
	// multiple of the smaller word's width; the effective tolerance is
	// CharMargin/3 (default: 2.0)
	CharMargin float64

	// CharMarginForWord bounds the gap between glyphs merged into one
	// word, as a multiple of the larger glyph's width (default: 0.05)
	CharMarginForWord float64

	// WordMargin is the gap, as a multiple of the incoming member's larger
	// dimension, beyond which a synthetic space is inserted between line
	// members (default: 0.1)
	WordMargin float64

	// LineMargin is the neighbor search radius used to aggregate lines
	// into boxes, as a multiple of line height (default: 0.5)
	LineMargin float64

	// BoxesFlow biases reading order between horizontal (-1) and vertical
	// (+1) position during hierarchical clustering. A nil value disables
	// clustering entirely; boxes are then ordered by the fallback sort
	// (default: 0.5)
	BoxesFlow *float64

	// DetectVertical enables grouping of vertically written text
	// (default: false)
	DetectVertical bool

	// AllTexts enables layout analysis inside figure containers
	// (default: false)
	AllTexts bool
}

// DefaultParams returns sensible default parameters.
func DefaultParams() Params {
	flow := 0.5
	return Params{
		LineOverlap:       0.5,
		CharMargin:        2.0,
		CharMarginForWord: 0.05,
		WordMargin:        0.1,
		LineMargin:        0.5,
		BoxesFlow:         &flow,
	}
}

// Validate checks that the parameter set is usable. A nil BoxesFlow is
// valid and disables hierarchical clustering; a non-nil value must be a
// finite number in [-1, 1].
func (p Params) Validate() error {
	if p.BoxesFlow == nil {
		return nil
	}
	flow := *p.BoxesFlow
	if math.IsNaN(flow) || flow < -1 || flow > 1 {
		return fmt.Errorf("boxes flow %v: %w", flow, ErrInvalidBoxesFlow)
	}
	return nil
}
