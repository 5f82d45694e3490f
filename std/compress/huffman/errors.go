package huffman

import "errors"

var (
	ErrUnknownSymbol      = errors.New("huffman: symbol has no code")
	ErrMalformedBitstream = errors.New("huffman: malformed bitstream")
	ErrInvalidPolicy      = errors.New("huffman: invalid merge policy")
	ErrInvalidTree        = errors.New("huffman: invalid tree")
)
