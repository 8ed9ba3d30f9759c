// Package leetspeak enumerates leetspeak spellings of a word.
//
// Every subset of character positions is visited (the position mask), and
// for each subset every combination of substitutions for the selected
// characters is produced. Output order is fully determined by the word and
// the substitution table.
package leetspeak

import "unicode"

// Table maps an uppercase letter to its ordered replacement strings.
// Tables are treated as read-only once built.
type Table map[rune][]string

// Default is the built-in substitution table.
var Default = Table{
	'A': {"4", "@", "^", "Λ"},
	'B': {"8", "|3", "13", "6"},
	'C': {"(", "{", "<"},
	'D': {"Ð"},
	'E': {"3", "€", "£", "&"},
	'F': {"ph"},
	'G': {"6", "9", "(&"},
	'H': {"#"},
	'I': {"1", "!", "|", "eye"},
	'J': {";", "]"},
	'K': {"X"},
	'L': {"1", "£", "7"},
	'M': {"^^", "(V)"},
	'N': {"И"},
	'O': {"0", "()", "*", "°"},
	'P': {"|*"},
	'Q': {"0_", "9"},
	'R': {"|2", "12"},
	'S': {"5", "$", "z"},
	'T': {"7"},
	'U': {"µ", "v"},
	'V': {"√"},
	'W': {"vv", "uu"},
	'X': {"><", "×"},
	'Y': {"¥", "`/", "j"},
	'Z': {"2"},
}

// Options returns the substitution options for r. A character with no
// table entry has a single option: itself. An entry with no replacements
// has no options, so any mask selecting that character yields nothing.
func (t Table) Options(r rune) []string {
	if opts, ok := t[unicode.ToUpper(r)]; ok {
		return opts
	}
	return []string{string(r)}
}
