package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/relforge/herald/internal/core"
)

var (
	ErrRulesNotFound = errors.New("rules file not found")
	ErrRulesParsing  = errors.New("rules parsing failed")
)

// LoadRules loads and parses the .herald.yml publishing rules. A missing
// file is not an error condition for callers: the defaults are returned
// alongside ErrRulesNotFound so they can log and continue.
func LoadRules(path string) (*core.Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return core.DefaultRules(), ErrRulesNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	rules := core.DefaultRules()
	if err := yaml.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRulesParsing, err)
	}
	return rules, nil
}
