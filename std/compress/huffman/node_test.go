package huffman

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample:
//
//	    ^10
//	   /    \
//	  a4     ^6
//	        /  \
//	       b3   ^3
//	           /  \
//	          c1   d2
func sampleTree() *Node {
	return Merge(NewLeaf('a', 4), Merge(NewLeaf('b', 3), Merge(NewLeaf('c', 1), NewLeaf('d', 2))))
}

func collect(walk func(func(*Node))) string {
	var out []byte
	walk(func(n *Node) {
		out = append(out, Symbol.String(n.Symbol)...)
	})
	return string(out)
}

func TestTraversals(t *testing.T) {
	root := sampleTree()

	for name, tc := range map[string]struct {
		walk     func(func(*Node))
		expected string
	}{
		"pre":   {root.PreOrder, "^a^b^cd"},
		"in":    {root.InOrder, "a^b^c^d"},
		"post":  {root.PostOrder, "abcd^^^"},
		"level": {root.LevelOrder, "^a^b^cd"},
	} {
		if diff := cmp.Diff(tc.expected, collect(tc.walk)); diff != "" {
			t.Errorf("%s order mismatch (-want +got):\n%s", name, diff)
		}
	}

	balanced := Merge(Merge(NewLeaf('a', 1), NewLeaf('b', 1)), Merge(NewLeaf('c', 1), NewLeaf('d', 1)))
	assert.Equal(t, "^^^abcd", collect(balanced.LevelOrder))
	assert.Equal(t, "^^ab^cd", collect(balanced.PreOrder))
}

func TestNilTraversals(t *testing.T) {
	var root *Node
	visited := 0
	count := func(*Node) { visited++ }
	root.PreOrder(count)
	root.InOrder(count)
	root.PostOrder(count)
	root.LevelOrder(count)
	assert.Equal(t, 0, visited)
	assert.Equal(t, 0, root.Size())
	assert.Equal(t, -1, root.Height())
	assert.NoError(t, root.Validate())
}

func TestShape(t *testing.T) {
	root := sampleTree()
	assert.Equal(t, 7, root.Size())
	assert.Equal(t, 3, root.Height())
	assert.Equal(t, 10, root.Weight)
	require.NoError(t, root.Validate())

	_, ok := root.Label()
	assert.False(t, ok)
	s, ok := root.Left.Label()
	assert.True(t, ok)
	assert.Equal(t, Symbol('a'), s)

	leaf := NewLeaf('z', 5)
	assert.Equal(t, 0, leaf.Height())
	assert.Equal(t, 1, leaf.Size())
}

func TestValidate(t *testing.T) {
	for name, root := range map[string]*Node{
		"single child":      {Weight: 1, Left: NewLeaf('a', 1)},
		"unlabelled leaf":   {Weight: 1},
		"labelled internal": {Weight: 2, Symbol: 'x', Left: NewLeaf('a', 1), Right: NewLeaf('b', 1)},
		"weight mismatch":   {Weight: 3, Left: NewLeaf('a', 1), Right: NewLeaf('b', 1)},
		"negative weight":   NewLeaf('a', -1),
	} {
		assert.ErrorIs(t, root.Validate(), ErrInvalidTree, name)
	}
}

func TestMergeTransfersOwnership(t *testing.T) {
	a, b := NewLeaf('a', 2), NewLeaf('b', 5)
	root := Merge(a, b)
	assert.Same(t, a, root.Left)
	assert.Same(t, b, root.Right)
	assert.Equal(t, 7, root.Weight)
	assert.Equal(t, NoSymbol, root.Symbol)

	assert.Panics(t, func() { Merge(a, nil) })
}

func TestRelease(t *testing.T) {
	root := sampleTree()
	var nodes []*Node
	root.PreOrder(func(n *Node) { nodes = append(nodes, n) })

	root.Release()
	for _, n := range nodes {
		assert.Nil(t, n.Left)
		assert.Nil(t, n.Right)
		assert.Equal(t, 0, n.Weight)
	}
}

func TestReleaseDeepTree(t *testing.T) {
	// a degenerate chain deeper than any sane recursion budget
	const depth = 200_000
	root := NewLeaf('a', 1)
	for i := 0; i < depth; i++ {
		root = Merge(root, NewLeaf('b', 1))
	}
	assert.Equal(t, depth, root.Height())
	require.NoError(t, root.Validate())

	root.Release()
	assert.True(t, root.IsLeaf())
}
