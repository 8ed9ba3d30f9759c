package services

import (
	"math"
	"math/bits"
)

// Estimate is the exact number of lines a run writes before filtering.
type Estimate struct {
	Variants        uint64 `json:"variants" yaml:"variants"`
	Base            uint64 `json:"base" yaml:"base"`
	Specials        uint64 `json:"specials" yaml:"specials"`
	RelationNumbers uint64 `json:"relation_numbers" yaml:"relation_numbers"`
	Total           uint64 `json:"total" yaml:"total"`
}

// EstimateInput describes a run for estimation.
type EstimateInput struct {
	Seeds           []string
	Years           int
	RelationNumbers int
	SpecialChars    int
	IncludeSpecials bool
}

// Estimate computes line counts without generating anything. Counts
// saturate at math.MaxUint64.
func (e *Expander) Estimate(in EstimateInput) Estimate {
	var est Estimate
	est.Variants = e.VariantCount(in.Seeds)
	est.Base = mulSaturating(est.Variants, 3*uint64(max(in.Years, 0)))

	if in.IncludeSpecials {
		affixes := 2 * uint64(max(in.SpecialChars, 0))
		est.Specials = mulSaturating(est.Base, affixes)
		est.RelationNumbers = mulSaturating(uint64(max(in.RelationNumbers, 0)), affixes)
	}

	est.Total = addSaturating(addSaturating(est.Base, est.Specials), est.RelationNumbers)
	return est
}

func addSaturating(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

func mulSaturating(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
