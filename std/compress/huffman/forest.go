package huffman

import "golang.org/x/exp/slices"

// Forest is an ordered working set of disjoint trees. Order is arrival order.
type Forest struct {
	trees []*Node
}

// NewForest creates one leaf per symbol of freq, in ascending symbol order.
// Symbols with a zero count are skipped.
func NewForest(freq Frequencies) *Forest {
	f := &Forest{trees: make([]*Node, 0, len(freq))}
	for _, s := range freq.Symbols() {
		if freq[s] > 0 {
			f.Append(NewLeaf(s, freq[s]))
		}
	}
	return f
}

func (f *Forest) Len() int {
	return len(f.trees)
}

func (f *Forest) At(i int) *Node {
	return f.trees[i]
}

// Trees returns a copy of the current roots.
func (f *Forest) Trees() []*Node {
	return slices.Clone(f.trees)
}

func (f *Forest) Append(t *Node) {
	f.trees = append(f.trees, t)
}

// Remove takes the tree at position i out of the forest and returns it. The
// tree itself is left untouched; the caller becomes its owner.
func (f *Forest) Remove(i int) *Node {
	t := f.trees[i]
	n := len(f.trees) - 1
	f.trees = slices.Delete(f.trees, i, i+1)
	f.trees[:n+1][n] = nil // stale tail slot
	return t
}

// Weight returns the sum of the root weights.
func (f *Forest) Weight() int {
	w := 0
	for _, t := range f.trees {
		w += t.Weight
	}
	return w
}
