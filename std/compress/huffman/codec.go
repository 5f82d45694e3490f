package huffman

import (
	"fmt"
	"strings"
	"time"

	"github.com/elysia-999/DS2025/std/compress/bitvector"
	"github.com/rs/zerolog"
)

// Codec runs build, encode and decode sessions under one configuration.
//
// A Codec using the Random policy draws from its own source and must not be
// shared between goroutines.
type Codec struct {
	policy     Policy
	selectPair Selector
	log        zerolog.Logger
}

// New returns a Codec configured by opts.
func New(opts ...Option) (*Codec, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	selectPair, err := cfg.Policy.Selector(cfg.Rand)
	if err != nil {
		return nil, err
	}
	return &Codec{
		policy:     cfg.Policy,
		selectPair: selectPair,
		log:        *cfg.Logger,
	}, nil
}

func (c *Codec) Policy() Policy {
	return c.policy
}

// BuildFromText counts the letters of text and builds the tree and code table
// for them. Text without letters yields a nil tree and an empty table.
func (c *Codec) BuildFromText(text string) (*Node, CodeTable) {
	start := time.Now()
	freq := CountFrequencies(text)

	forest := NewForest(freq)
	c.log.Debug().Int("nbSymbols", forest.Len()).Int("weight", forest.Weight()).Msg("forest built")

	root, merges := Compose(forest, c.selectPair)
	weight := 0
	if root != nil {
		weight = root.Weight
	}
	c.log.Debug().Int("nbMerges", merges).Int("weight", weight).Dur("took", time.Since(start)).Msg("tree composed")

	table := GenerateCodeTable(root)
	c.log.Debug().Int("nbCodes", len(table)).Msg("code table generated")

	return root, table
}

// EncodeText encodes the letters of text, see Encode.
func (c *Codec) EncodeText(text string, table CodeTable) (*bitvector.BitVector, int, error) {
	bv, nbBits, err := Encode(text, table)
	if err != nil {
		return nil, 0, err
	}
	c.log.Debug().Int("nbBits", nbBits).Msg("text encoded")
	return bv, nbBits, nil
}

// DecodeBits decodes the first bitCount bits of bv, see Decode.
func (c *Codec) DecodeBits(bv *bitvector.BitVector, bitCount int, root *Node) (string, error) {
	text, err := Decode(bv, bitCount, root)
	if err != nil {
		return "", err
	}
	c.log.Debug().Int("nbSymbols", len(text)).Msg("bits decoded")
	return text, nil
}

// EncodeWord returns the concatenated codes of the letters of word.
func (c *Codec) EncodeWord(word string, table CodeTable) (string, error) {
	var sb strings.Builder
	for i, r := range word {
		s, ok := NormalizeSymbol(r)
		if !ok {
			continue
		}
		code, ok := table[s]
		if !ok {
			return "", fmt.Errorf("%w: %q at offset %d", ErrUnknownSymbol, r, i)
		}
		sb.WriteString(code)
	}
	return sb.String(), nil
}

// Encode writes the code of every letter of text into a new bit vector and
// returns it with the number of bits written. Non-letters are skipped; a
// letter missing from table is an error.
func Encode(text string, table CodeTable) (*bitvector.BitVector, int, error) {
	bv := bitvector.New(len(text))
	nbBits := 0
	for i, r := range text {
		s, ok := NormalizeSymbol(r)
		if !ok {
			continue
		}
		code, ok := table[s]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %q at offset %d", ErrUnknownSymbol, r, i)
		}
		for j := 0; j < len(code); j++ {
			if code[j] == '1' {
				bv.Set(nbBits)
			} else {
				bv.Clear(nbBits)
			}
			nbBits++
		}
	}
	return bv, nbBits, nil
}

// Decode walks root for each of the first bitCount bits of bv: 0 goes left,
// 1 goes right, and reaching a leaf emits its symbol and restarts at root.
// Bits beyond the capacity of bv read as 0.
//
// The bits must split exactly into codes: running off the tree or stopping
// inside a code is ErrMalformedBitstream.
func Decode(bv *bitvector.BitVector, bitCount int, root *Node) (string, error) {
	switch {
	case bitCount < 0:
		return "", fmt.Errorf("%w: negative bit count %d", ErrMalformedBitstream, bitCount)
	case bitCount == 0:
		return "", nil
	case root == nil:
		return "", fmt.Errorf("%w: %d bits but an empty tree", ErrMalformedBitstream, bitCount)
	case bv == nil:
		return "", fmt.Errorf("%w: %d bits but no bit vector", ErrMalformedBitstream, bitCount)
	}

	var sb strings.Builder

	// a lone leaf is coded "0"
	if root.IsLeaf() {
		sb.Grow(bitCount)
		for i := 0; i < bitCount; i++ {
			if bv.Lookup(i) {
				return "", fmt.Errorf("%w: bit %d is set but the only code is 0", ErrMalformedBitstream, i)
			}
			sb.WriteByte(byte(root.Symbol))
		}
		return sb.String(), nil
	}

	curr, start := root, 0
	for i := 0; i < bitCount; i++ {
		if bv.Lookup(i) {
			curr = curr.Right
		} else {
			curr = curr.Left
		}
		if curr == nil {
			return "", fmt.Errorf("%w: bits %d..%d match no code", ErrMalformedBitstream, start, i)
		}
		if curr.IsLeaf() {
			sb.WriteByte(byte(curr.Symbol))
			curr, start = root, i+1
		}
	}
	if curr != root {
		return "", fmt.Errorf("%w: %d trailing bits do not complete a code", ErrMalformedBitstream, bitCount-start)
	}
	return sb.String(), nil
}
