// Package pagina reconstructs the visual reading structure of positioned
// page content. Glyphs decoded upstream merge into words, words into
// lines, lines into boxes, and boxes order into the sequence a person
// would read them in; an optional classification pass then tags dates,
// header labels, closing balances and account numbers the way bank
// statements print them.
//
// Basic usage:
//
//	page := layout.NewPage(1, geom.NewRect(0, 0, 612, 792), 0)
//	// add the glyphs, curves and images decoded from the page
//	pagina.Analyze(page)
//	for _, box := range page.TextBoxes() {
//	    fmt.Print(box.GetText())
//	}
//
// With field classification:
//
//	pagina.AnalyzeWithClassifier(page)
//	for _, box := range page.TextBoxes() {
//	    fmt.Println(box.Tag, box.Field)
//	}
//
// For custom thresholds, logging or classifier dictionaries, configure
// the layout and classify packages directly.
package pagina

import (
	"github.com/tsawler/pagina/classify"
	"github.com/tsawler/pagina/layout"
)

// Analyze reconstructs the reading structure of page with the default
// parameters and no field classification.
//
// Example:
//
//	pagina.Analyze(page)
//	fmt.Println(len(page.TextBoxes()), "boxes in reading order")
func Analyze(page *layout.Page) {
	layout.NewAnalyzer().Analyze(page)
}

// AnalyzeWithClassifier reconstructs the reading structure of page and
// tags words, lines and boxes using the built-in statement classifier.
func AnalyzeWithClassifier(page *layout.Page) {
	AnalyzeAndClassify(page, classify.New())
}

// AnalyzeAndClassify reconstructs the reading structure of page and tags
// it with the given classifier. A nil classifier skips tagging.
func AnalyzeAndClassify(page *layout.Page, c layout.FieldClassifier) {
	config := layout.DefaultAnalyzerConfig()
	config.Classifier = c
	a, _ := layout.NewAnalyzerWithConfig(config)
	a.Analyze(page)
}
