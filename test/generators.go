package test

import (
	"strings"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// GenText generates texts mixing both letter cases with digits, punctuation
// and spaces.
func GenText() gopter.Gen {
	return gen.SliceOf(gen.OneGenOf(
		gen.AlphaLowerChar(),
		gen.AlphaUpperChar(),
		gen.NumChar(),
		gen.RuneRange(' ', '/'),
	)).Map(func(rs []rune) string {
		return string(rs)
	})
}

// GenLetters generates lowercase words over at least three distinct letters.
func GenLetters() gopter.Gen {
	return gen.AlphaString().Map(func(s string) string {
		return "abc" + strings.ToLower(s)
	})
}
