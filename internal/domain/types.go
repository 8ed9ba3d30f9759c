// Package domain holds the fixed word tables and shared enums used
// throughout wordlist generation.
package domain

// Stage identifies a step of the generation pipeline that writes lines.
type Stage string

const (
	// StageBase covers yeared leetspeak variants
	StageBase Stage = "base"
	// StageSpecials covers variants with a special character affix
	StageSpecials Stage = "specials"
	// StageRelationNumbers covers relation numbers with a special character affix
	StageRelationNumbers Stage = "relation_numbers"
)

// Generation defaults.
const (
	DefaultStartYear = 2025
	DefaultEndYear   = 2015
)

// DefaultRelationNumbers are used when no relation numbers are supplied.
var DefaultRelationNumbers = []int{123, 1}

// Seasons are appended to the seed words unless disabled.
var Seasons = []string{"Summer", "Winter", "Spring", "Autumn"}

// Months are appended to the seed words when enabled.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// SpecialChars is the ordered affix set. It also defines what counts as a
// special character for password policies.
var SpecialChars = []string{
	"!", "\"", "#", "$", "%", "&", "'", "(", ")", "*",
	"+", ",", "-", ".", "/", ":", ";", "<", "=", ">", "?",
	"@", "[", "\\", "]", "^", "_", "`", "{", "|", "}", "~",
}

// IsSpecial reports whether r is a member of SpecialChars.
func IsSpecial(r rune) bool {
	for _, s := range SpecialChars {
		if len(s) == 1 && rune(s[0]) == r {
			return true
		}
	}
	return false
}
