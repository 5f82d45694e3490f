package prefix_code

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTreeFromCodes(t *testing.T) {
	codes := map[byte]string{'a': "0", 'b': "10", 'c': "11"}
	root, err := NewTreeFromCodes(codes)
	require.NoError(t, err)

	require.NotNil(t, root.Left)
	assert.True(t, root.Left.IsLeaf())
	assert.Equal(t, uint64('a'), root.Left.Val)
	assert.False(t, root.Right.IsLeaf())
	assert.Equal(t, uint64('b'), root.Right.Left.Val)
	assert.Equal(t, uint64('c'), root.Right.Right.Val)
}

func TestNotPrefixFree(t *testing.T) {
	for name, codes := range map[string]map[byte]string{
		"leaf on path":  {'a': "0", 'b': "01"},
		"ends on inner": {'a': "01", 'b': "0"},
		"duplicate":     {'a': "10", 'b': "10"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewTreeFromCodes(codes)
			require.ErrorIs(t, err, ErrNotPrefixFree)
			assert.False(t, IsPrefixFree(codes))
		})
	}
}

func TestInvalidCode(t *testing.T) {
	_, err := NewTreeFromCodes(map[byte]string{'a': ""})
	require.ErrorIs(t, err, ErrInvalidCode)

	_, err = NewTreeFromCodes(map[byte]string{'a': "0x1"})
	require.ErrorIs(t, err, ErrInvalidCode)
}

func TestEmptyTableIsPrefixFree(t *testing.T) {
	assert.True(t, IsPrefixFree(nil))
	assert.True(t, IsPrefixFree(map[byte]string{'z': "0"}))
}

func TestDecode(t *testing.T) {
	root, err := NewTreeFromCodes(map[byte]string{'a': "1", 'b': "0"})
	require.NoError(t, err)

	out, err := root.Decode("1110")
	require.NoError(t, err)
	assert.Equal(t, "aaab", string(out))

	out, err = root.Decode("")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = root.Decode("12")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestDecodeTruncated(t *testing.T) {
	root, err := NewTreeFromCodes(map[byte]string{'a': "0", 'b': "10", 'c': "11"})
	require.NoError(t, err)

	_, err = root.Decode("011")
	require.NoError(t, err)

	_, err = root.Decode("01")
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeMissingBranch(t *testing.T) {
	// single code "0" leaves the right branch empty
	root, err := NewTreeFromCodes(map[byte]string{'x': "0"})
	require.NoError(t, err)

	out, err := root.Decode("000")
	require.NoError(t, err)
	assert.Equal(t, "xxx", string(out))

	_, err = root.Decode("01")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestCostAndKraft(t *testing.T) {
	codes := map[byte]string{'a': "0", 'b': "10", 'c': "11"}
	lengths := Lengths(codes)
	assert.Equal(t, map[byte]int{'a': 1, 'b': 2, 'c': 2}, lengths)

	assert.Equal(t, 5*1+2*2+1*2, Cost(lengths, map[byte]int{'a': 5, 'b': 2, 'c': 1}))
	assert.Equal(t, 0, Cost(lengths, nil))

	assert.Equal(t, 0, KraftSum(lengths).Cmp(big.NewRat(1, 1)))
	assert.Equal(t, 0, KraftSum(map[byte]int{'a': 1}).Cmp(big.NewRat(1, 2)))
	assert.Equal(t, 0, KraftSum(nil).Sign())
}
