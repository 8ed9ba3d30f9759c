package values

import (
	"fmt"
	"iter"
	"strconv"
)

// YearRange is an inclusive, descending range of years.
type YearRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// InvalidRangeError reports a range whose start lies before its end.
type InvalidRangeError struct {
	Start int
	End   int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("start year (%d) must be greater than or equal to end year (%d)", e.Start, e.End)
}

// NewYearRange creates a YearRange, rejecting start < end.
func NewYearRange(start, end int) (YearRange, error) {
	r := YearRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return YearRange{}, err
	}
	return r, nil
}

// Validate returns an *InvalidRangeError when start < end.
func (r YearRange) Validate() error {
	if r.Start < r.End {
		return &InvalidRangeError{Start: r.Start, End: r.End}
	}
	return nil
}

// Len returns the number of years in the range.
func (r YearRange) Len() int {
	if r.Start < r.End {
		return 0
	}
	return r.Start - r.End + 1
}

// Years yields Start down to End.
func (r YearRange) Years() iter.Seq[int] {
	return func(yield func(int) bool) {
		for y := r.Start; y >= r.End; y-- {
			if !yield(y) {
				return
			}
		}
	}
}

// String formats the range the way it is read, oldest first.
func (r YearRange) String() string {
	return fmt.Sprintf("%d-%d", r.End, r.Start)
}

// ShortYear returns the decimal year from its third character on, so
// 2016 becomes "16" and 12345 becomes "345". Years with fewer than three
// characters yield an empty string.
func ShortYear(year int) string {
	s := strconv.Itoa(year)
	if len(s) <= 2 {
		return ""
	}
	return s[2:]
}
