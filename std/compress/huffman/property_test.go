package huffman_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/elysia-999/DS2025/std/compress/huffman"
	"github.com/elysia-999/DS2025/std/compress/prefix_code"
	"github.com/elysia-999/DS2025/test"
	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rs/zerolog"
)

func codec(t *testing.T, opts ...huffman.Option) *huffman.Codec {
	c, err := huffman.New(append(opts, huffman.WithLogger(zerolog.Nop()))...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCodecProperties(t *testing.T) {
	assert := test.NewAssert(t)
	greedy := codec(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("decode(encode(text)) gives back the letters of text", prop.ForAll(
		func(text string) bool {
			root, table := greedy.BuildFromText(text)
			bv, nbBits, err := greedy.EncodeText(text, table)
			if err != nil {
				return false
			}
			decoded, err := greedy.DecodeBits(bv, nbBits, root)
			return err == nil && decoded == huffman.Letters(text)
		},
		test.GenText(),
	))

	properties.Property("codes are prefix-free and match the trie decoder", prop.ForAll(
		func(text string) bool {
			_, table := greedy.BuildFromText(text)
			for s1, c1 := range table {
				for s2, c2 := range table {
					if s1 != s2 && strings.HasPrefix(c2, c1) {
						return false
					}
				}
			}
			if len(table) == 0 {
				return true
			}
			trie, err := table.DecodeTree()
			if err != nil {
				return false
			}
			word := huffman.Letters(text)
			bits, err := greedy.EncodeWord(word, table)
			if err != nil {
				return false
			}
			out, err := trie.Decode(bits)
			return err == nil && string(out) == word
		},
		test.GenText(),
	))

	properties.Property("greedy trees keep the weight invariant", prop.ForAll(
		func(text string) bool {
			root, _ := greedy.BuildFromText(text)
			return root.Validate() == nil
		},
		test.GenText(),
	))

	properties.Property("two greedy builds give the same tree", prop.ForAll(
		func(text string) bool {
			r1, t1 := greedy.BuildFromText(text)
			r2, t2 := greedy.BuildFromText(text)
			return cmp.Equal(t1, t2) && cmp.Equal(r1, r2)
		},
		test.GenText(),
	))

	properties.Property("complete codes have a Kraft sum of one", prop.ForAll(
		func(word string) bool {
			_, table := greedy.BuildFromText(word)
			lengths := make(map[byte]int, len(table))
			for s, l := range table.Lengths() {
				lengths[byte(s)] = l
			}
			return prefix_code.KraftSum(lengths).Cmp(big.NewRat(1, 1)) == 0
		},
		test.GenLetters(),
	))

	properties.Property("greedy never costs more than a random build", prop.ForAll(
		func(word string, seed int64) bool {
			freq := huffman.CountFrequencies(word)
			_, best := greedy.BuildFromText(word)
			_, table := codec(t, huffman.WithPolicy(huffman.Random), huffman.WithSeed(seed)).BuildFromText(word)
			return best.Cost(freq) <= table.Cost(freq)
		},
		test.GenLetters(),
		gen.Int64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))

	assert.RoundTrip(greedy, "aaab")
}

func TestRandomPolicyRoundTrip(t *testing.T) {
	assert := test.NewAssert(t)
	random := codec(t, huffman.WithPolicy(huffman.Random), huffman.WithSeed(2024))

	for _, text := range []string{
		"abracadabra",
		"The Quick Brown Fox Jumps Over The Lazy Dog",
		"aaaaaaaaaaaaaaaaaaaaaaab",
		"x",
	} {
		assert.Run(func(assert *test.Assert) {
			root, table := random.BuildFromText(text)
			assert.WeightInvariant(root)
			assert.PrefixFree(table)
			assert.RoundTrip(random, text)
		}, text)
	}
}

func TestGreedyBeatsRandomOnAverage(t *testing.T) {
	assert := test.NewAssert(t)
	text := "this is an example of a huffman tree built from skewed letter frequencies"
	freq := huffman.CountFrequencies(text)

	_, best := codec(t).BuildFromText(text)
	random := codec(t, huffman.WithPolicy(huffman.Random), huffman.WithSeed(5))

	const trials = 200
	total := 0
	for i := 0; i < trials; i++ {
		_, table := random.BuildFromText(text)
		total += table.Cost(freq)
	}
	assert.Less(best.Cost(freq)*trials, total)
}
