package classify

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Config controls the classifier's dictionaries and matching threshold.
// The zero value selects the embedded defaults everywhere.
type Config struct {
	// Labels replaces the embedded label dictionary when non-empty.
	// Entries are folded case- and space-insensitively.
	Labels []string `yaml:"labels"`

	// ClosingBalancePhrases replaces the closing-balance phrase set
	// when non-empty.
	ClosingBalancePhrases []string `yaml:"closing_balance_phrases"`

	// AccountLabelPhrases replaces the account-number label phrase set
	// when non-empty.
	AccountLabelPhrases []string `yaml:"account_label_phrases"`

	// MatchThreshold is the minimum fuzzy score, 1 to 100, for a phrase
	// match. 0 selects the default of 95.
	MatchThreshold int `yaml:"match_threshold"`
}

// DefaultConfig returns the configuration New uses.
func DefaultConfig() Config {
	return Config{
		MatchThreshold: 95,
	}
}

// LoadConfig reads a classifier configuration from a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading classifier config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing classifier config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadLabelsFile reads a label dictionary from a CSV file with a Key
// column, for use as Config.Labels.
func LoadLabelsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading label dictionary: %w", err)
	}
	defer f.Close()

	set, err := parseLabels(f)
	if err != nil {
		return nil, fmt.Errorf("label dictionary %s: %w", path, err)
	}

	labels := make([]string, 0, len(set))
	for key := range set {
		labels = append(labels, key)
	}
	sort.Strings(labels)
	return labels, nil
}
