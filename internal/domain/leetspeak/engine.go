package leetspeak

import (
	"iter"
	"math"
	"math/bits"
	"strings"
)

// Variants yields every spelling of word under the default table.
func Variants(word string) iter.Seq[string] {
	return Default.Variants(word)
}

// Variants yields every spelling of word under t.
//
// Masks are visited in ascending order and, within a mask, substitution
// combinations are visited with the leftmost selected position varying
// slowest. The all-zero mask yields word unchanged, so word is always the
// first value. The sequence may be ranged over any number of times.
func (t Table) Variants(word string) iter.Seq[string] {
	return func(yield func(string) bool) {
		runes := []rune(word)
		for active := range Masks(len(runes)) {
			options := make([][]string, len(active))
			for i, pos := range active {
				options[i] = t.Options(runes[pos])
			}
			for tuple := range product(options) {
				if !yield(compose(runes, active, tuple)) {
					return
				}
			}
		}
	}
}

// VariantCount returns how many strings Variants yields for word. Each
// position contributes a factor of one (left alone) plus its option count.
// The result saturates at math.MaxUint64.
func (t Table) VariantCount(word string) uint64 {
	total := uint64(1)
	for _, r := range word {
		hi, lo := bits.Mul64(total, uint64(1+len(t.Options(r))))
		if hi != 0 {
			return math.MaxUint64
		}
		total = lo
	}
	return total
}

// Masks yields, for each of the 2^length position masks in ascending
// order, the indices of the selected positions in increasing order.
// Position 0 is the most significant bit. The yielded slice is reused
// between iterations.
func Masks(length int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		mask := make([]bool, length)
		active := make([]int, 0, length)
		for {
			active = active[:0]
			for i, on := range mask {
				if on {
					active = append(active, i)
				}
			}
			if !yield(active) {
				return
			}
			if !nextMask(mask) {
				return
			}
		}
	}
}

// nextMask advances mask by one in binary, reporting false once every
// mask has been visited.
func nextMask(mask []bool) bool {
	for i := len(mask) - 1; i >= 0; i-- {
		if !mask[i] {
			mask[i] = true
			return true
		}
		mask[i] = false
	}
	return false
}

// product yields the Cartesian product of options, last list varying
// fastest. An empty list anywhere yields nothing; no lists yields one
// empty tuple. The yielded slice is reused between iterations.
func product(options [][]string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for _, opts := range options {
			if len(opts) == 0 {
				return
			}
		}

		idx := make([]int, len(options))
		tuple := make([]string, len(options))
		for {
			for i, j := range idx {
				tuple[i] = options[i][j]
			}
			if !yield(tuple) {
				return
			}

			i := len(idx) - 1
			for ; i >= 0; i-- {
				idx[i]++
				if idx[i] < len(options[i]) {
					break
				}
				idx[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

// compose rebuilds word with tuple[k] placed at active[k]. Active
// positions past the end of tuple keep their original character.
func compose(word []rune, active []int, tuple []string) string {
	var b strings.Builder
	next := 0
	for i, r := range word {
		if next < len(active) && active[next] == i {
			if next < len(tuple) {
				b.WriteString(tuple[next])
			} else {
				b.WriteRune(r)
			}
			next++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
