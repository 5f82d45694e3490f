package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/elysia-999/DS2025/std/compress/prefix_code"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CodeTable maps each symbol to its code, a string of '0' and '1'.
type CodeTable map[Symbol]string

// GenerateCodeTable walks the tree depth first: a left edge appends '0', a
// right edge '1', and every leaf records the path that led to it.
//
// A tree reduced to a single leaf gets the code "0" so that each occurrence
// still costs one bit. A nil tree gives an empty table.
func GenerateCodeTable(root *Node) CodeTable {
	table := make(CodeTable)
	if root == nil {
		return table
	}
	if root.IsLeaf() {
		table[root.Symbol] = "0"
		return table
	}
	path := make([]byte, 0, root.Height())
	table.traverse(root, path)
	return table
}

func (t CodeTable) traverse(node *Node, path []byte) {
	if node.IsLeaf() {
		t[node.Symbol] = string(path)
		return
	}
	t.traverse(node.Left, append(path, '0'))
	t.traverse(node.Right, append(path, '1'))
}

// Code returns the code of s.
func (t CodeTable) Code(s Symbol) (string, bool) {
	c, ok := t[s]
	return c, ok
}

// Symbols returns the coded symbols in ascending order.
func (t CodeTable) Symbols() []Symbol {
	symbs := maps.Keys(t)
	slices.Sort(symbs)
	return symbs
}

// Lengths returns the code length of every symbol.
func (t CodeTable) Lengths() map[Symbol]int {
	lengths := make(map[Symbol]int, len(t))
	for s, c := range t {
		lengths[s] = len(c)
	}
	return lengths
}

// Cost returns the encoded size in bits of a text with frequencies freq:
// Σ freq[s] × len(code(s)).
func (t CodeTable) Cost(freq Frequencies) int {
	lengths := make(map[byte]int, len(t))
	for s, c := range t {
		lengths[byte(s)] = len(c)
	}
	weights := make(map[byte]int, len(freq))
	for s, w := range freq {
		weights[byte(s)] = w
	}
	return prefix_code.Cost(lengths, weights)
}

// IsPrefixFree reports whether no code is a prefix of another one.
func (t CodeTable) IsPrefixFree() bool {
	return prefix_code.IsPrefixFree(t.bytes())
}

// DecodeTree rebuilds a decoding trie from the table alone.
func (t CodeTable) DecodeTree() (*prefix_code.Node, error) {
	return prefix_code.NewTreeFromCodes(t.bytes())
}

func (t CodeTable) bytes() map[byte]string {
	codes := make(map[byte]string, len(t))
	for s, c := range t {
		codes[byte(s)] = c
	}
	return codes
}

// Dump writes the table in ascending symbol order.
func (t CodeTable) Dump(w io.Writer) (int64, error) {
	var bb bytes.Buffer
	bb.WriteString("Huffman Code Table:\n")
	for _, s := range t.Symbols() {
		fmt.Fprintf(&bb, "'%s': %s\n", s, t[s])
	}
	return bb.WriteTo(w)
}
