// Package phone decides which interpretations look like phone numbers.
package phone

import (
	"strings"

	"go.uber.org/zap"
)

// Validator flags digit strings that look like phone numbers.
type Validator interface {
	// Name returns the unique identifier for this validator
	Name() string

	// IsValid reports whether digits is a phone number. It never fails.
	IsValid(digits string) bool
}

// Rule accepts numbers of one length starting with any of its prefixes.
type Rule struct {
	Length   int      `yaml:"length" json:"length"`
	Prefixes []string `yaml:"prefixes" json:"prefixes"`
}

// DefaultRules is the Greek numbering table: 10 digit national numbers and
// their 14 digit 0030 international form.
var DefaultRules = []Rule{
	{Length: 10, Prefixes: []string{"2", "69"}},
	{Length: 14, Prefixes: []string{"00302", "003069"}},
}

// PrefixValidator checks length and prefix against a fixed rule table.
type PrefixValidator struct {
	rules  []Rule
	logger *zap.Logger
}

// NewPrefixValidator creates a validator for the given rules, or DefaultRules when empty.
func NewPrefixValidator(rules []Rule, logger *zap.Logger) *PrefixValidator {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PrefixValidator{
		rules:  rules,
		logger: logger,
	}
}

func (v *PrefixValidator) Name() string {
	return "prefix"
}

// IsValid strips spaces and matches the remaining digits against the rules.
func (v *PrefixValidator) IsValid(digits string) bool {
	number := strings.ReplaceAll(digits, " ", "")
	if number == "" {
		v.logger.Debug("Phone number invalid", zap.String("number", number))
		return false
	}

	for _, rule := range v.rules {
		if len(number) != rule.Length {
			continue
		}
		for _, prefix := range rule.Prefixes {
			if strings.HasPrefix(number, prefix) {
				v.logger.Debug("Phone number valid", zap.String("number", number))
				return true
			}
		}
	}

	v.logger.Debug("Phone number invalid", zap.String("number", number))
	return false
}
