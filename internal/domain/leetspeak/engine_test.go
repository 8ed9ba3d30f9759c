package leetspeak

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectMasks(length int) [][]int {
	var out [][]int
	for active := range Masks(length) {
		out = append(out, slices.Clone(active))
	}
	return out
}

func Test_Masks_Order(t *testing.T) {
	assert.Equal(t, [][]int{{}, {1}, {0}, {0, 1}}, collectMasks(2))
	assert.Equal(t, [][]int{{}}, collectMasks(0))
}

func Test_Masks_Completeness(t *testing.T) {
	for length := 0; length <= 10; length++ {
		masks := collectMasks(length)
		assert.Len(t, masks, 1<<length, "length %d", length)
		assert.Empty(t, masks[0], "first mask selects nothing")
		assert.Len(t, masks[len(masks)-1], length, "last mask selects everything")
	}
}

func Test_Variants_EmptyWord(t *testing.T) {
	assert.Equal(t, []string{""}, slices.Collect(Variants("")))
}

func Test_Variants_NoSubstitutions(t *testing.T) {
	// Digits have no entry, so both masks keep the character.
	assert.Equal(t, []string{"1", "1"}, slices.Collect(Variants("1")))
}

func Test_Variants_SinglePosition(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		{"t", []string{"t", "7"}},
		{"a", []string{"a", "4", "@", "^", "Λ"}},
		{"S", []string{"S", "5", "$", "z"}},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(Variants(tt.word)))
		})
	}
}

func Test_Variants_TwoPositions(t *testing.T) {
	got := slices.Collect(Variants("ab"))
	require.Len(t, got, 25)

	assert.Equal(t, "ab", got[0])
	assert.Equal(t, []string{"a8", "a|3", "a13", "a6"}, got[1:5])
	assert.Equal(t, []string{"4b", "@b", "^b", "Λb"}, got[5:9])
	assert.Equal(t, []string{"48", "4|3", "413", "46", "@8"}, got[9:14])
	assert.Equal(t, "Λ6", got[24])
}

func Test_Variants_PreservesCase(t *testing.T) {
	got := slices.Collect(Variants("Test"))
	require.Len(t, got, 80)

	assert.Equal(t, []string{
		"Test",
		"Tes7",
		"Te5t", "Te$t", "Tezt",
		"Te57", "Te$7", "Tez7",
		"T3st", "T€st", "T£st", "T&st",
	}, got[:12])
	assert.Equal(t, "7&z7", got[len(got)-1])
}

func Test_Variants_Restartable(t *testing.T) {
	seq := Variants("acme")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
}

func Test_Variants_StopsEarly(t *testing.T) {
	var got []string
	for v := range Variants("acme") {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	assert.Len(t, got, 3)
}

func Test_Variants_EmptyTableEntry(t *testing.T) {
	table := Table{'X': {}}
	assert.Equal(t, []string{"x"}, slices.Collect(table.Variants("x")))
	assert.Equal(t, uint64(1), table.VariantCount("x"))
}

func Test_Variants_ReplacementsNotRecased(t *testing.T) {
	table := Table{'K': {"X"}}
	assert.Equal(t, []string{"k", "X"}, slices.Collect(table.Variants("k")))
}

func Test_VariantCount_MatchesVariants(t *testing.T) {
	words := []string{"", "1", "Test", "Acme", "Summer", "Zürich", "a1b2"}
	for _, word := range words {
		t.Run(word, func(t *testing.T) {
			var n uint64
			for range Variants(word) {
				n++
			}
			assert.Equal(t, n, Default.VariantCount(word))
		})
	}
}

func Test_VariantCount_Saturates(t *testing.T) {
	word := ""
	for range 40 {
		word += "a"
	}
	assert.Equal(t, ^uint64(0), Default.VariantCount(word))
}

func Test_Compose_ShortTuple(t *testing.T) {
	got := compose([]rune("abc"), []int{0, 2}, []string{"4"})
	assert.Equal(t, "4bc", got)
}

func Test_Product_EmptyOptions(t *testing.T) {
	var n int
	for range product([][]string{{"a"}, {}}) {
		n++
	}
	assert.Zero(t, n)

	n = 0
	for tuple := range product(nil) {
		assert.Empty(t, tuple)
		n++
	}
	assert.Equal(t, 1, n)
}
