package layout

import (
	"sort"
	"strings"
)

// FieldClassifier decides whether a piece of extracted text reads as one
// of the fields the engine tags. Implementations must be pure: the same
// text always classifies the same way.
type FieldClassifier interface {
	// LooksLikeDate reports whether the text parses as a calendar date.
	LooksLikeDate(text string) bool

	// IsHeaderLabel reports whether the text is a known column or field
	// label, compared case- and space-insensitively.
	IsHeaderLabel(text string) bool

	// MatchesClosingBalance reports whether the text closely matches a
	// closing-balance phrase.
	MatchesClosingBalance(text string) bool

	// MatchesAccountLabel reports whether the text closely matches an
	// account-number label phrase.
	MatchesAccountLabel(text string) bool

	// MatchesAccountNumber reports whether the text names an account
	// number, by label phrase or by digit pattern.
	MatchesAccountNumber(text string) bool
}

// classifyBox tags a box and its members. Words and lines classify on
// their own text; the box classifies on its words' text joined in
// top-to-bottom order.
func classifyBox(c FieldClassifier, box *Box) {
	for _, l := range box.Lines() {
		for _, w := range l.Words() {
			w.Tag, w.Field = classifyText(c, w.GetText())
		}
		l.Tag, l.Field = classifyText(c, l.GetText())
	}

	words := append([]*Word(nil), box.Words()...)
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Bounds().Y0 > words[j].Bounds().Y0
	})
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(w.GetText())
	}
	box.Tag, box.Field = classifyText(c, sb.String())
}

// classifyText resolves the two classification channels for one piece of
// text. The label tag prefers date over header; the form field prefers
// closing balance over account number.
func classifyText(c FieldClassifier, text string) (Tag, FormField) {
	tag := TagNone
	if c.LooksLikeDate(text) {
		tag = TagDate
	} else if c.IsHeaderLabel(text) {
		tag = TagHeader
	}

	field := FormFieldNone
	if c.MatchesClosingBalance(text) {
		field = FormFieldClosingBalance
	} else if c.MatchesAccountNumber(text) {
		field = FormFieldAccountNumber
	}
	return tag, field
}
