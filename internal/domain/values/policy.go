package values

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/reglet-dev/ketchlist/internal/domain"
)

// PasswordPolicy constrains which candidates are written.
// A zero field places no constraint on its dimension.
type PasswordPolicy struct {
	MinLength      int  `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	MaxLength      int  `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	RequireUpper   bool `json:"require_upper,omitempty" yaml:"require_upper,omitempty"`
	RequireLower   bool `json:"require_lower,omitempty" yaml:"require_lower,omitempty"`
	RequireDigit   bool `json:"require_digit,omitempty" yaml:"require_digit,omitempty"`
	RequireSpecial bool `json:"require_special,omitempty" yaml:"require_special,omitempty"`
}

// CharClasses records which character classes appear in a string.
type CharClasses struct {
	Upper   bool
	Lower   bool
	Digit   bool
	Special bool
}

// ClassifyChars scans s once and reports the character classes present.
// Letters and digits follow Unicode categories, so leetspeak symbols such
// as "Λ" count as letters while "€" counts as nothing.
func ClassifyChars(s string) CharClasses {
	var c CharClasses
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			c.Upper = true
		case unicode.IsLower(r):
			c.Lower = true
		case unicode.IsDigit(r):
			c.Digit = true
		}
		if domain.IsSpecial(r) {
			c.Special = true
		}
	}
	return c
}

// IsZero reports whether the policy sets no constraint at all.
func (p PasswordPolicy) IsZero() bool {
	return p == PasswordPolicy{}
}

// Validate checks the policy for contradictory or negative bounds.
func (p PasswordPolicy) Validate() error {
	var problems []string
	if p.MinLength < 0 {
		problems = append(problems, fmt.Sprintf("min_length must not be negative (got %d)", p.MinLength))
	}
	if p.MaxLength < 0 {
		problems = append(problems, fmt.Sprintf("max_length must not be negative (got %d)", p.MaxLength))
	}
	if p.MinLength > 0 && p.MaxLength > 0 && p.MinLength > p.MaxLength {
		problems = append(problems, fmt.Sprintf("min_length %d exceeds max_length %d", p.MinLength, p.MaxLength))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid password policy: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Satisfies reports whether candidate meets every constraint of the policy.
// Length is measured in characters, not bytes.
func (p PasswordPolicy) Satisfies(candidate string) bool {
	if p.MinLength > 0 || p.MaxLength > 0 {
		n := utf8.RuneCountInString(candidate)
		if p.MinLength > 0 && n < p.MinLength {
			return false
		}
		if p.MaxLength > 0 && n > p.MaxLength {
			return false
		}
	}

	if !p.RequireUpper && !p.RequireLower && !p.RequireDigit && !p.RequireSpecial {
		return true
	}

	c := ClassifyChars(candidate)
	switch {
	case p.RequireUpper && !c.Upper:
		return false
	case p.RequireLower && !c.Lower:
		return false
	case p.RequireDigit && !c.Digit:
		return false
	case p.RequireSpecial && !c.Special:
		return false
	}
	return true
}

// String summarizes the active constraints, e.g. "len 8-16, upper, digit".
func (p PasswordPolicy) String() string {
	if p.IsZero() {
		return "none"
	}

	var parts []string
	switch {
	case p.MinLength > 0 && p.MaxLength > 0:
		parts = append(parts, fmt.Sprintf("len %d-%d", p.MinLength, p.MaxLength))
	case p.MinLength > 0:
		parts = append(parts, fmt.Sprintf("len >= %d", p.MinLength))
	case p.MaxLength > 0:
		parts = append(parts, fmt.Sprintf("len <= %d", p.MaxLength))
	}
	if p.RequireUpper {
		parts = append(parts, "upper")
	}
	if p.RequireLower {
		parts = append(parts, "lower")
	}
	if p.RequireDigit {
		parts = append(parts, "digit")
	}
	if p.RequireSpecial {
		parts = append(parts, "special")
	}
	return strings.Join(parts, ", ")
}
