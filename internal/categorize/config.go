package categorize

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RulesFile is the on-disk shape of a category rule override file.
type RulesFile struct {
	Categories []CategoryRule `yaml:"categories"`
}

// LoadRules reads a YAML rule table from disk. Category order in the file is
// evaluation order, same as the built-in table. Merchant and keyword entries
// are matched against lowercased, punctuation-stripped descriptions, so they
// should be written in lowercase.
func LoadRules(path string) ([]CategoryRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var rf RulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}
	if len(rf.Categories) == 0 {
		return nil, fmt.Errorf("rules file %q defines no categories", path)
	}

	for i, rule := range rf.Categories {
		if rule.Category == "" {
			return nil, fmt.Errorf("rules file %q: category %d has no name", path, i+1)
		}
		if len(rule.Merchants) == 0 && len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("rules file %q: category %q has no merchants or keywords", path, rule.Category)
		}
	}
	return rf.Categories, nil
}
