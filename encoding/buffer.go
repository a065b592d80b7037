// Package encoding provides the byte-addressable buffers the WKB codec reads
// from and writes to. A RawBuffer holds the bytes themselves; a HexBuffer
// holds two upper-case hex digits per byte. Both are driven by the same
// order-aware accessors, so a codec is written once for both backends.
package encoding

import (
	"github.com/hangxie/citygeom/common"
)

// Buffer is a fixed-size, byte-addressable store. Index i addresses the
// i-th decoded byte regardless of the backing representation.
type Buffer interface {
	Len() int
	Get(i int) byte
	Put(i int, b byte)
}

type RawBuffer []byte

func (b RawBuffer) Len() int          { return len(b) }
func (b RawBuffer) Get(i int) byte    { return b[i] }
func (b RawBuffer) Put(i int, v byte) { b[i] = v }

// HexBuffer stores each byte as two ASCII hex digits.
type HexBuffer []byte

const hexDigits = "0123456789ABCDEF"

// NewHexBuffer validates s and wraps it. Upper- and lower-case digits are
// accepted.
func NewHexBuffer(s string) (HexBuffer, error) {
	if len(s)%2 != 0 {
		return nil, common.Malformed("hex string has odd length %d", len(s))
	}
	for i := 0; i < len(s); i++ {
		if _, ok := hexValue(s[i]); !ok {
			return nil, common.Malformed("invalid hex digit %q at offset %d", s[i], i)
		}
	}
	return HexBuffer(s), nil
}

// MakeHexBuffer allocates room for n bytes.
func MakeHexBuffer(n int) HexBuffer {
	return make(HexBuffer, 2*n)
}

func (h HexBuffer) Len() int { return len(h) / 2 }

func (h HexBuffer) Get(i int) byte {
	hi, _ := hexValue(h[2*i])
	lo, _ := hexValue(h[2*i+1])
	return hi<<4 | lo
}

func (h HexBuffer) Put(i int, v byte) {
	h[2*i] = hexDigits[v>>4]
	h[2*i+1] = hexDigits[v&0x0F]
}

func (h HexBuffer) String() string { return string(h) }

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
