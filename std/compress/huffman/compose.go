package huffman

import (
	"fmt"
	"math/rand"
	"strings"
)

// Policy chooses which two trees are merged at each round.
type Policy uint8

const (
	// Greedy merges the two lightest trees and yields a weight-minimal code.
	Greedy Policy = iota
	// Random merges two trees picked uniformly at random. It is a baseline
	// for comparison only.
	Random
)

func (p Policy) String() string {
	switch p {
	case Greedy:
		return "greedy"
	case Random:
		return "random"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// ParsePolicy maps "greedy" or "random", in any case, to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "greedy":
		return Greedy, nil
	case "random":
		return Random, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
}

// Selector returns the positions of the two trees merged next. The tree at the
// first position becomes the left child. The forest holds at least two trees.
type Selector func(f *Forest) (int, int)

// Selector returns the selection function of p. rng is only used by Random.
func (p Policy) Selector(rng *rand.Rand) (Selector, error) {
	switch p {
	case Greedy:
		return SelectGreedy, nil
	case Random:
		if rng == nil {
			return nil, fmt.Errorf("%w: random policy without a source", ErrInvalidPolicy)
		}
		return SelectRandom(rng), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidPolicy, p)
}

// SelectGreedy returns the two lightest trees in a single scan. Among equal
// weights the earliest tree wins: a later tree only displaces a minimum when
// it is strictly lighter.
func SelectGreedy(f *Forest) (int, int) {
	min1, min2 := 0, 1
	if f.At(min2).Weight < f.At(min1).Weight {
		min1, min2 = min2, min1
	}
	for i := 2; i < f.Len(); i++ {
		w := f.At(i).Weight
		if w < f.At(min1).Weight {
			min2 = min1
			min1 = i
		} else if w < f.At(min2).Weight {
			min2 = i
		}
	}
	return min1, min2
}

// SelectRandom picks two distinct positions uniformly at random.
func SelectRandom(rng *rand.Rand) Selector {
	return func(f *Forest) (int, int) {
		n := f.Len()
		i := rng.Intn(n)
		j := rng.Intn(n - 1)
		if j >= i {
			j++
		}
		return i, j
	}
}

// Compose merges the forest down to a single tree and returns it with the
// number of merges performed. An empty forest yields a nil tree.
//
// The forest is consumed: the returned root owns every tree it held.
func Compose(f *Forest, selectPair Selector) (*Node, int) {
	merges := 0
	for f.Len() > 1 {
		i, j := selectPair(f)
		if i == j {
			panic("huffman: selector returned the same tree twice")
		}
		left, right := f.At(i), f.At(j)

		// higher position first so the lower one stays valid
		if i < j {
			i, j = j, i
		}
		f.Remove(i)
		f.Remove(j)

		f.Append(Merge(left, right))
		merges++
	}
	if f.Len() == 0 {
		return nil, 0
	}
	return f.Remove(0), merges
}
