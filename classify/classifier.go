package classify

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"golang.org/x/text/unicode/norm"
)

//go:embed labels.csv
var defaultLabelData string

var (
	labelsOnce sync.Once
	labelSet   map[string]bool
)

// accountNumberPattern matches a 10 to 19 digit run that does not start
// with a zero, the shape of domestic account numbers.
var accountNumberPattern = regexp.MustCompile(`[1-9][0-9]{9,18}`)

// Classifier is the default field classifier. It tags text as dates,
// header labels, closing-balance phrases and account numbers. A
// Classifier is immutable and safe for concurrent use.
type Classifier struct {
	labels         map[string]bool
	closingPhrases []string
	accountPhrases []string
	threshold      int
}

// New creates a classifier with the embedded label dictionary, the
// default phrase sets and a match threshold of 95.
func New() *Classifier {
	c, _ := NewWithConfig(DefaultConfig())
	return c
}

// NewWithConfig creates a classifier from a configuration. Empty fields
// fall back to the embedded defaults.
func NewWithConfig(cfg Config) (*Classifier, error) {
	if cfg.MatchThreshold < 0 || cfg.MatchThreshold > 100 {
		return nil, fmt.Errorf("classify: match threshold %d outside [0, 100]", cfg.MatchThreshold)
	}

	c := &Classifier{
		labels:         defaultLabels(),
		closingPhrases: defaultClosingPhrases(),
		accountPhrases: defaultAccountPhrases(),
		threshold:      cfg.MatchThreshold,
	}
	if c.threshold == 0 {
		c.threshold = 95
	}
	if len(cfg.Labels) > 0 {
		set := make(map[string]bool, len(cfg.Labels))
		for _, label := range cfg.Labels {
			if key := normalizeLabel(label); key != "" {
				set[key] = true
			}
		}
		c.labels = set
	}
	if len(cfg.ClosingBalancePhrases) > 0 {
		c.closingPhrases = cfg.ClosingBalancePhrases
	}
	if len(cfg.AccountLabelPhrases) > 0 {
		c.accountPhrases = cfg.AccountLabelPhrases
	}
	return c, nil
}

// LooksLikeDate reports whether the text parses as a calendar date with
// day-first precedence. Credit/debit markers, leading punctuation, plain
// numbers, colons and texts outside 6 to 12 characters are rejected
// before parsing.
func (c *Classifier) LooksLikeDate(text string) bool {
	s := norm.NFKC.String(text)
	lower := strings.ToLower(s)

	if strings.Contains(lower, "cr") || strings.Contains(lower, "dr") {
		return false
	}
	if strings.IndexAny(lower, "/-:;,") == 0 {
		return false
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return false
	}
	if strings.Contains(s, ":") {
		return false
	}
	if n := utf8.RuneCountInString(s); n < 6 || n > 12 {
		return false
	}

	// dateparse reads slash-separated dates day-first but has no format
	// for dash-separated day-first dates, so fold dashes to slashes.
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "/")
	_, err := dateparse.ParseAny(s, dateparse.PreferMonthFirst(false))
	return err == nil
}

// IsHeaderLabel reports whether the text is one of the known field
// labels, compared case- and space-insensitively.
func (c *Classifier) IsHeaderLabel(text string) bool {
	key := normalizeLabel(text)
	if key == "" {
		return false
	}
	return c.labels[key]
}

// MatchesClosingBalance reports whether the text scores at or above the
// threshold against any closing-balance phrase.
func (c *Classifier) MatchesClosingBalance(text string) bool {
	return c.bestScore(text, c.closingPhrases) >= c.threshold
}

// MatchesAccountLabel reports whether the text scores at or above the
// threshold against any account-number label phrase.
func (c *Classifier) MatchesAccountLabel(text string) bool {
	return c.bestScore(text, c.accountPhrases) >= c.threshold
}

// MatchesAccountNumber reports whether the text names an account number,
// either by label phrase or by containing a 10 to 19 digit run that does
// not start with a zero.
func (c *Classifier) MatchesAccountNumber(text string) bool {
	if c.MatchesAccountLabel(text) {
		return true
	}
	s := strings.ReplaceAll(norm.NFKC.String(text), "\n", "")
	return accountNumberPattern.MatchString(s)
}

// bestScore returns the highest fuzzy score of the text against the
// phrases, or 0 when the text has nothing alphanumeric to match on.
func (c *Classifier) bestScore(text string, phrases []string) int {
	s := strings.ReplaceAll(norm.NFKC.String(text), "\n", "")
	if s == "" || !hasAlnum(s) {
		return 0
	}
	s = strings.ToLower(s)

	best := 0
	for _, p := range phrases {
		if score := fuzzy.WRatio(s, p); score > best {
			best = score
		}
	}
	return best
}

// defaultLabels parses the embedded label dictionary once.
func defaultLabels() map[string]bool {
	labelsOnce.Do(func() {
		set, err := parseLabels(strings.NewReader(defaultLabelData))
		if err != nil {
			panic("classify: embedded labels.csv: " + err.Error())
		}
		labelSet = set
	})
	return labelSet
}

// parseLabels reads a label dictionary in CSV form. The file must have a
// header row with a Key column; other columns are ignored.
func parseLabels(r io.Reader) (map[string]bool, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing label dictionary: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("label dictionary is empty")
	}

	keyCol := -1
	for i, name := range records[0] {
		if strings.EqualFold(strings.TrimSpace(name), "Key") {
			keyCol = i
			break
		}
	}
	if keyCol < 0 {
		return nil, fmt.Errorf("label dictionary has no Key column")
	}

	set := make(map[string]bool, len(records)-1)
	for _, record := range records[1:] {
		if keyCol >= len(record) {
			continue
		}
		if key := normalizeLabel(record[keyCol]); key != "" {
			set[key] = true
		}
	}
	return set, nil
}

// normalizeLabel folds a label for dictionary lookup: NFKC, lower case,
// spaces removed.
func normalizeLabel(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, " ", "")
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func defaultClosingPhrases() []string {
	return []string{"closingbalance", "closing bal", "clbal", "closing balance"}
}

func defaultAccountPhrases() []string {
	return []string{
		"account number", "account", "acc num", "acc no",
		"accountno", "a/c", "a/cno", "a/cnum", "a/cnumber",
	}
}
