// Package test provides assertions and generators shared by the package tests.
package test

import (
	"strings"
	"testing"

	"github.com/elysia-999/DS2025/std/compress/huffman"
	"github.com/stretchr/testify/require"
)

// Assert is a helper to test codecs and the trees they build.
type Assert struct {
	t *testing.T
	*require.Assertions
}

// NewAssert returns an Assert helper embedding a testify/require object for convenience.
func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t, Assertions: require.New(t)}
}

// Run runs the test function fn as a subtest. The subtest is parametrized by
// the description strings descs.
func (a *Assert) Run(fn func(a *Assert), descs ...string) {
	desc := strings.Join(descs, "/")
	a.t.Run(desc, func(t *testing.T) {
		fn(NewAssert(t))
	})
}

// RoundTrip builds a tree for text with codec, encodes the text and checks that
// decoding gives back its letters. It returns the number of bits used.
func (a *Assert) RoundTrip(codec *huffman.Codec, text string) int {
	a.t.Helper()
	root, table := codec.BuildFromText(text)
	defer root.Release()

	bv, nbBits, err := codec.EncodeText(text, table)
	a.NoError(err, "encoding %q", text)
	defer bv.Release()

	decoded, err := codec.DecodeBits(bv, nbBits, root)
	a.NoError(err, "decoding %q", text)
	a.Equal(huffman.Letters(text), decoded)
	a.Equal(table.Cost(huffman.CountFrequencies(text)), nbBits)
	return nbBits
}

// PrefixFree checks pairwise that no code of table is a prefix of another.
func (a *Assert) PrefixFree(table huffman.CodeTable) {
	a.t.Helper()
	for s1, c1 := range table {
		a.NotEmpty(c1, "code of %s", s1)
		for s2, c2 := range table {
			if s1 != s2 {
				a.False(strings.HasPrefix(c2, c1), "code %s=%s is a prefix of %s=%s", s1, c1, s2, c2)
			}
		}
	}
	a.True(table.IsPrefixFree())
}

// StrictBinary checks that every node of the tree has zero or two children.
func (a *Assert) StrictBinary(root *huffman.Node) {
	a.t.Helper()
	root.PreOrder(func(n *huffman.Node) {
		a.Equal(n.Left == nil, n.Right == nil, "node of weight %d has a single child", n.Weight)
	})
}

// WeightInvariant checks that every internal node weighs the sum of its
// children and that only leaves carry a symbol.
func (a *Assert) WeightInvariant(root *huffman.Node) {
	a.t.Helper()
	a.StrictBinary(root)
	root.PreOrder(func(n *huffman.Node) {
		if n.IsLeaf() {
			a.NotEqual(huffman.NoSymbol, n.Symbol, "unlabelled leaf")
			return
		}
		a.Equal(huffman.NoSymbol, n.Symbol, "labelled internal node")
		a.Equal(n.Left.Weight+n.Right.Weight, n.Weight)
	})
	a.NoError(root.Validate())
}
