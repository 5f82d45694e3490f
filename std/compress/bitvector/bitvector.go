// Package bitvector implements a growable, index-addressable bit store.
//
// Bits are numbered MSB-first inside each byte: bit k lives in byte k>>3 under
// mask 0x80>>(k&7). Writes past the current capacity never fail, the backing
// buffer is doubled (to at least 2*k bits) and previously written bits are kept.
package bitvector

import (
	"fmt"
	"io"
	"math/bits"
	"strings"

	"github.com/icza/bitio"
)

// minBits is the capacity of a vector created with a non-positive size hint.
const minBits = 8

// BitVector is a growable bit store. The zero value is an empty vector ready
// to use.
//
// A BitVector is not safe for concurrent use.
type BitVector struct {
	buf []byte

	// length is one past the highest index written by Set or Clear.
	length int

	// size counts Set calls minus Clear calls, see Size.
	size int
}

// New returns a zeroed vector able to hold at least n bits without growing.
func New(n int) *BitVector {
	if n < minBits {
		n = minBits
	}
	return &BitVector{buf: make([]byte, (n+7)/8)}
}

// Set marks bit i as 1, growing the vector if needed.
func (v *BitVector) Set(i int) {
	v.Expand(i)
	v.size++
	v.buf[i>>3] |= mask(i)
	v.touch(i)
}

// Clear marks bit i as 0, growing the vector if needed.
func (v *BitVector) Clear(i int) {
	v.Expand(i)
	v.size--
	v.buf[i>>3] &^= mask(i)
	v.touch(i)
}

// Test reports whether bit i is 1. Like Set and Clear it grows the vector when
// i is beyond the current capacity; use Lookup for a read that never mutates.
func (v *BitVector) Test(i int) bool {
	v.Expand(i)
	return v.buf[i>>3]&mask(i) != 0
}

// Lookup reports whether bit i is 1. Indices beyond the capacity read as 0 and
// the vector is left untouched.
func (v *BitVector) Lookup(i int) bool {
	checkIndex(i)
	if i >= v.Cap() {
		return false
	}
	return v.buf[i>>3]&mask(i) != 0
}

// Expand makes sure bit i is addressable. When it is not, the capacity is
// doubled to 2*i bits and the existing bytes are copied over.
func (v *BitVector) Expand(i int) {
	checkIndex(i)
	if i < v.Cap() {
		return
	}
	n := 2 * i
	if n < minBits {
		n = minBits
	}
	grown := make([]byte, (n+7)/8)
	copy(grown, v.buf)
	v.buf = grown
}

// Len returns the logical length: one past the highest bit index that was
// ever Set or Cleared.
func (v *BitVector) Len() int {
	return v.length
}

// Cap returns the number of addressable bits in the backing buffer.
func (v *BitVector) Cap() int {
	return 8 * len(v.buf)
}

// Size returns the number of Set calls minus the number of Clear calls.
//
// It is a call counter, not a population count: setting a bit that is already
// 1 still increments it. Use Count for the number of bits currently set.
func (v *BitVector) Size() int {
	return v.size
}

// Count returns the number of bits currently set to 1.
func (v *BitVector) Count() int {
	n := 0
	for _, b := range v.buf {
		n += bits.OnesCount8(b)
	}
	return n
}

// BitString renders the first n bits as '0' and '1' characters, growing the
// vector so that bit n-1 is addressable.
func (v *BitVector) BitString(n int) string {
	if n <= 0 {
		return ""
	}
	v.Expand(n - 1)
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		if v.buf[i>>3]&mask(i) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// String returns the first Len() bits, see BitString.
func (v *BitVector) String() string {
	return v.BitString(v.length)
}

// Release drops the backing buffer. The vector is empty afterwards and can be
// reused; the next write grows it again.
func (v *BitVector) Release() {
	v.buf = nil
	v.length = 0
	v.size = 0
}

// WriteTo writes the first Len() bits to w, packed MSB-first and zero-padded
// to a whole byte. It returns the number of bytes written.
func (v *BitVector) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bitio.NewWriter(cw)
	for i := 0; i < v.length; i++ {
		bw.TryWriteBool(v.buf[i>>3]&mask(i) != 0)
	}
	if bw.TryError != nil {
		return cw.n, bw.TryError
	}
	if err := bw.Close(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// Load reads n bits written by WriteTo. The returned vector has Len() == n and
// Size() equal to the number of 1 bits read.
func Load(r io.Reader, n int) (*BitVector, error) {
	if n < 0 {
		return nil, fmt.Errorf("bitvector: negative bit count %d", n)
	}
	v := New(n)
	br := bitio.NewReader(r)
	for i := 0; i < n; i++ {
		bit, err := br.ReadBool()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("bitvector: reading bit %d of %d: %w", i, n, err)
		}
		if bit {
			v.Set(i)
		}
	}
	v.length = n
	return v, nil
}

func (v *BitVector) touch(i int) {
	if i >= v.length {
		v.length = i + 1
	}
}

func mask(i int) byte {
	return 0x80 >> (uint(i) & 7)
}

func checkIndex(i int) {
	if i < 0 {
		panic(fmt.Sprintf("bitvector: negative index %d", i))
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
