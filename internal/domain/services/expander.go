// Package services contains domain services that encapsulate the
// generation rules. These services are stateless and safe to reuse
// across runs.
package services

import (
	"iter"
	"strconv"

	"github.com/reglet-dev/ketchlist/internal/domain/leetspeak"
	"github.com/reglet-dev/ketchlist/internal/domain/values"
)

// Expander crosses leetspeak spellings of seed words with years.
type Expander struct {
	table leetspeak.Table
}

// NewExpander creates an expander over the given substitution table.
// A nil table falls back to leetspeak.Default.
func NewExpander(table leetspeak.Table) *Expander {
	if table == nil {
		table = leetspeak.Default
	}
	return &Expander{table: table}
}

// YearedVariants expands seeds over years with the default table.
func YearedVariants(seeds []string, years values.YearRange) (iter.Seq[string], error) {
	return NewExpander(nil).YearedVariants(seeds, years)
}

// YearedVariants yields, for each year from Start down to End, the year
// forms of every spelling of every seed. The range is checked before
// anything is generated.
func (e *Expander) YearedVariants(seeds []string, years values.YearRange) (iter.Seq[string], error) {
	return e.YearedVariantsFunc(seeds, years, nil)
}

// YearedVariantsFunc is YearedVariants with a hook called after each year
// with the number of lines that year produced. A nil hook is skipped.
func (e *Expander) YearedVariantsFunc(seeds []string, years values.YearRange, onYear func(year, lines int)) (iter.Seq[string], error) {
	if err := years.Validate(); err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		for year := range years.Years() {
			lines := 0
			for s := range e.ExpandYear(seeds, year) {
				lines++
				if !yield(s) {
					return
				}
			}
			if onYear != nil {
				onYear(year, lines)
			}
		}
	}, nil
}

// ExpandYear yields three forms per spelling for a single year, in order:
// spelling+year, the bare spelling, spelling+short year. Seeds are
// expanded one after another in the order given.
func (e *Expander) ExpandYear(seeds []string, year int) iter.Seq[string] {
	full := strconv.Itoa(year)
	short := values.ShortYear(year)

	return func(yield func(string) bool) {
		for _, seed := range seeds {
			for v := range e.table.Variants(seed) {
				if !yield(v + full) {
					return
				}
				if !yield(v) {
					return
				}
				if !yield(v + short) {
					return
				}
			}
		}
	}
}

// VariantCount returns the number of spellings produced for all seeds.
// The result saturates at math.MaxUint64.
func (e *Expander) VariantCount(seeds []string) uint64 {
	var total uint64
	for _, seed := range seeds {
		total = addSaturating(total, e.table.VariantCount(seed))
	}
	return total
}
