// Package layout reconstructs the logical reading structure of a page
// from positioned primitives.
//
// This package groups glyphs into words, words into lines, lines into
// boxes, and boxes into a hierarchy that yields reading order, then tags
// the results with field classifications such as dates and account
// numbers.
//
// # Analysis
//
// The [Analyzer] runs the whole pipeline over a [Page]:
//
//	analyzer := layout.NewAnalyzer()
//	analyzer.Analyze(page)
//
// After the call the page's text boxes carry ascending reading indexes:
//
//	for _, box := range page.TextBoxes() {
//		fmt.Println(box.Index, box.GetText())
//	}
//
// # Content model
//
// Page content is a closed set of [Item] variants. [Glyph], [Curve] and
// [Image] arrive from upstream decoding; [Word], [Line], [Box], [Group]
// and [Marker] are produced by analysis. [Figure] and [Page] are the
// containers. Items with geometry implement [Bounded], items with text
// implement [TextItem].
//
// # Groupers
//
// Each pipeline stage is usable on its own:
//
//   - [WordGrouper] - merges adjacent glyphs into words
//   - [LineGrouper] - merges aligned words into lines
//   - [BoxAggregator] - merges neighboring lines into boxes
//   - [Clusterer] - merges boxes pairwise into a hierarchy of groups
//   - [Orderer] - sorts the hierarchy and numbers boxes for reading
//
// # Configuration
//
// Grouping is tuned through [Params]:
//
//	config := layout.DefaultAnalyzerConfig()
//	config.Params.DetectVertical = true
//	config.Classifier = classify.New()
//	analyzer, err := layout.NewAnalyzerWithConfig(config)
//
// Setting Params.BoxesFlow to nil skips hierarchical clustering and
// orders boxes directly by position.
//
// # Classification
//
// With a [FieldClassifier] configured, every word, line and box is
// tagged with a [Tag] (date, header) and a [FormField] (closing balance,
// account number) after grouping. Classification is advisory metadata;
// it never changes the grouping itself.
package layout
