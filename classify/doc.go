// Package classify tags extracted text with the field meanings found on
// bank statements: dates, column header labels, closing-balance phrases
// and account numbers.
//
// # Classifier
//
// [New] returns a ready classifier backed by an embedded label
// dictionary:
//
//	c := classify.New()
//	c.LooksLikeDate("15/03/2023")        // true
//	c.MatchesClosingBalance("CLOSING BALANCE") // true
//
// It implements the layout package's FieldClassifier interface, so it
// plugs straight into layout analysis:
//
//	config := layout.DefaultAnalyzerConfig()
//	config.Classifier = classify.New()
//
// # Customization
//
// The label dictionary, phrase sets and match threshold come from
// [Config], loadable from YAML with [LoadConfig]. Custom label
// dictionaries in CSV form load with [LoadLabelsFile].
//
// All matching is case-insensitive and NFKC-normalized, so ligatures and
// width variants common in extracted text compare equal to their plain
// forms.
package classify
