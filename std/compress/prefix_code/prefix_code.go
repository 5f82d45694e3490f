package prefix_code

import (
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	ErrInvalidCode   = errors.New("prefix_code: code must be a non-empty string of '0' and '1'")
	ErrNotPrefixFree = errors.New("prefix_code: code set is not prefix-free")
	ErrTruncated     = errors.New("prefix_code: bit string ends inside a code")
)

// Node is a decoding trie node. Leaves carry the symbol in Val, inner nodes
// carry internalNodeVal.
type Node struct {
	Left  *Node
	Right *Node
	Val   uint64
}

const internalNodeVal = ^uint64(0)

// IsLeaf reports whether the node terminates a code.
func (n *Node) IsLeaf() bool {
	return n.Val != internalNodeVal
}

// NewTreeFromCodes builds the decoding trie of a symbol → bit string table.
// Symbols are inserted in ascending order so that the reported conflict is
// deterministic.
func NewTreeFromCodes(codes map[byte]string) (*Node, error) {
	root := Node{Val: internalNodeVal}

	for _, symb := range sortedSymbols(codes) {
		code := codes[symb]
		if code == "" {
			return nil, fmt.Errorf("%w: symbol %q has an empty code", ErrInvalidCode, symb)
		}
		curr := &root
		for d := 0; d < len(code); d++ {
			var next **Node
			switch code[d] {
			case '0':
				next = &curr.Left
			case '1':
				next = &curr.Right
			default:
				return nil, fmt.Errorf("%w: symbol %q has code %q", ErrInvalidCode, symb, code)
			}
			if *next == nil {
				*next = &Node{Val: internalNodeVal}
			} else if (*next).IsLeaf() {
				return nil, fmt.Errorf("%w: code of %q is a prefix of %q (%s)", ErrNotPrefixFree, byte((*next).Val), symb, code)
			}
			curr = *next
		}
		if curr.IsLeaf() || curr.Left != nil || curr.Right != nil {
			return nil, fmt.Errorf("%w: code %q of %q is a prefix of another code", ErrNotPrefixFree, code, symb)
		}
		curr.Val = uint64(symb)
	}

	return &root, nil
}

// IsPrefixFree reports whether no code of the table is a prefix of another.
func IsPrefixFree(codes map[byte]string) bool {
	_, err := NewTreeFromCodes(codes)
	return err == nil
}

// Decode walks the trie for each bit of s and returns the decoded symbols.
func (n *Node) Decode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	curr := n
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			curr = curr.Left
		case '1':
			curr = curr.Right
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidCode, s[i], i)
		}
		if curr == nil {
			return nil, fmt.Errorf("%w: no code matches the bits ending at offset %d", ErrInvalidCode, i)
		}
		if curr.IsLeaf() {
			out = append(out, byte(curr.Val))
			curr = n
		}
	}
	if curr != n {
		return nil, ErrTruncated
	}
	return out, nil
}

// Lengths returns the code length of every symbol.
func Lengths(codes map[byte]string) map[byte]int {
	lengths := make(map[byte]int, len(codes))
	for s, c := range codes {
		lengths[s] = len(c)
	}
	return lengths
}

// Cost returns Σ weights[s] × lengths[s], the number of bits needed to code a
// text with the given symbol weights. Symbols without a length cost nothing.
func Cost(lengths, weights map[byte]int) int {
	cost := 0
	for s, w := range weights {
		cost += w * lengths[s]
	}
	return cost
}

// KraftSum returns Σ 2^-length. A complete prefix code (one taken from a
// strict binary tree with at least two leaves) sums to exactly 1.
func KraftSum(lengths map[byte]int) *big.Rat {
	sum := new(big.Rat)
	for _, l := range lengths {
		denom := new(big.Int).Lsh(big.NewInt(1), uint(l))
		sum.Add(sum, new(big.Rat).SetFrac(big.NewInt(1), denom))
	}
	return sum
}

func sortedSymbols[V any](m map[byte]V) []byte {
	symbs := maps.Keys(m)
	slices.Sort(symbs)
	return symbs
}
