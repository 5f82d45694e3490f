// Package huffman builds prefix-free binary codes for lowercase ASCII text.
//
// A session goes text → Frequencies → Forest → composed tree → CodeTable.
// The tree and table are then used to encode text into a bitvector.BitVector
// and to decode it back. Only letters are coded: upper case is folded to lower
// case and every other character is dropped from the coded stream.
package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Symbol is a lowercase ASCII letter. NoSymbol labels internal nodes.
type Symbol byte

const NoSymbol Symbol = 0

// NormalizeSymbol folds r to lower case. It reports false for anything that is
// not an ASCII letter.
func NormalizeSymbol(r rune) (Symbol, bool) {
	switch {
	case 'a' <= r && r <= 'z':
		return Symbol(r), true
	case 'A' <= r && r <= 'Z':
		return Symbol(r - 'A' + 'a'), true
	}
	return NoSymbol, false
}

func (s Symbol) String() string {
	if s == NoSymbol {
		return "^"
	}
	return string(rune(s))
}

// Letters returns the lowercased letters of text, in order. This is what a
// round trip through Encode and Decode reproduces.
func Letters(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if s, ok := NormalizeSymbol(r); ok {
			sb.WriteByte(byte(s))
		}
	}
	return sb.String()
}

// Frequencies counts the occurrences of each symbol.
type Frequencies map[Symbol]int

// CountFrequencies scans text and counts its letters, see NormalizeSymbol.
func CountFrequencies(text string) Frequencies {
	freq := make(Frequencies)
	for _, r := range text {
		if s, ok := NormalizeSymbol(r); ok {
			freq[s]++
		}
	}
	return freq
}

// Symbols returns the counted symbols in ascending order.
func (f Frequencies) Symbols() []Symbol {
	symbs := maps.Keys(f)
	slices.Sort(symbs)
	return symbs
}

// Total returns the number of counted letters.
func (f Frequencies) Total() int {
	total := 0
	for _, c := range f {
		total += c
	}
	return total
}

// Dump writes the table in ascending symbol order.
func (f Frequencies) Dump(w io.Writer) (int64, error) {
	var bb bytes.Buffer
	bb.WriteString("Character Frequency Table:\n")
	for _, s := range f.Symbols() {
		fmt.Fprintf(&bb, "'%s': %d\n", s, f[s])
	}
	return bb.WriteTo(w)
}
