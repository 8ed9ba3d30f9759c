// Package entities contains domain entities for the ketchlist domain model.
// These are pure domain types with NO infrastructure dependencies.
package entities

import (
	"fmt"
	"slices"
	"strings"

	"github.com/reglet-dev/ketchlist/internal/domain"
	"github.com/reglet-dev/ketchlist/internal/domain/values"
)

// RecipeVersion is the recipe format written by this build.
const RecipeVersion = "1.0.0"

// DefaultOutput is the wordlist path used when none is given.
const DefaultOutput = "wordlist.txt"

// Recipe captures every input of a generation run.
//
// Invariants Enforced:
// - At least one company is required, and none may be blank
// - Years.Start must not be before Years.End
// - The policy must not contradict itself
type Recipe struct {
	Version         string                 `yaml:"version" json:"version"`
	Companies       []string               `yaml:"companies" json:"companies"`
	RelationNumbers []int                  `yaml:"relation_numbers" json:"relation_numbers"`
	Years           values.YearRange       `yaml:"years" json:"years"`
	IncludeMonths   bool                   `yaml:"include_months,omitempty" json:"include_months,omitempty"`
	ExcludeSeasons  bool                   `yaml:"exclude_seasons,omitempty" json:"exclude_seasons,omitempty"`
	ExcludeSpecials bool                   `yaml:"exclude_specials,omitempty" json:"exclude_specials,omitempty"`
	Policy          *values.PasswordPolicy `yaml:"policy,omitempty" json:"policy,omitempty"`
	Filter          string                 `yaml:"filter,omitempty" json:"filter,omitempty"`
	Output          string                 `yaml:"output,omitempty" json:"output,omitempty"`
}

// NewRecipe creates a recipe for companies with every default applied.
func NewRecipe(companies ...string) *Recipe {
	r := &Recipe{Companies: companies}
	r.ApplyDefaults()
	return r
}

// ApplyDefaults fills unset fields. Relation numbers default only when
// the field is absent; an explicit empty list stays empty.
func (r *Recipe) ApplyDefaults() {
	if r.Version == "" {
		r.Version = RecipeVersion
	}
	if r.RelationNumbers == nil {
		r.RelationNumbers = slices.Clone(domain.DefaultRelationNumbers)
	}
	if r.Years == (values.YearRange{}) {
		r.Years = values.YearRange{Start: domain.DefaultStartYear, End: domain.DefaultEndYear}
	}
	if r.Output == "" {
		r.Output = DefaultOutput
	}
	r.Filter = strings.TrimSpace(r.Filter)
	if r.Policy != nil && r.Policy.IsZero() {
		r.Policy = nil
	}
}

// Validate enforces the recipe invariants.
func (r *Recipe) Validate() error {
	if len(r.Companies) == 0 {
		return fmt.Errorf("at least one company is required")
	}
	for i, c := range r.Companies {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("company %d is blank", i)
		}
	}

	if err := r.Years.Validate(); err != nil {
		return fmt.Errorf("years: %w", err)
	}

	if r.Policy != nil {
		if err := r.Policy.Validate(); err != nil {
			return fmt.Errorf("policy: %w", err)
		}
	}

	return nil
}

// SeedWords returns companies, then seasons unless excluded, then months
// if included.
func (r *Recipe) SeedWords() []string {
	seeds := slices.Clone(r.Companies)
	if !r.ExcludeSeasons {
		seeds = append(seeds, domain.Seasons...)
	}
	if r.IncludeMonths {
		seeds = append(seeds, domain.Months...)
	}
	return seeds
}

// IncludeSpecials reports whether special character affixes are written.
func (r *Recipe) IncludeSpecials() bool {
	return !r.ExcludeSpecials
}
