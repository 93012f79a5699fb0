package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version     byte = 1
	kindSymbols byte = 1

	hdrLen = 4 + 1 + 1 + 4
)

var (
	ErrCorrupt = errors.New("mackay: corrupt entry")
	magic4     = [...]byte{'M', 'K', 'A', 'Y'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Symbols: magic(4) | ver(1) | kind(1=symbols) | count(u32 be) | bits(ceil(count/8))
//
// Bits are packed MSB first; unused low bits of the last byte are zero.
func EncodeSymbols(m []bool) []byte {
	var buf bytes.Buffer
	buf.Grow(hdrLen + packedLen(len(m)))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindSymbols)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(m)))
	buf.Write(u4[:])

	buf.Write(pack(m))
	return buf.Bytes()
}

func DecodeSymbols(b []byte) ([]bool, error) {
	if len(b) < hdrLen || !hasMagic(b) || b[4] != version || b[5] != kindSymbols {
		return nil, ErrCorrupt
	}

	off := 6

	// count
	n := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if n < 0 || packedLen(n) != len(b)-off { // exact length; trailing bytes are corrupt
		return nil, ErrCorrupt
	}

	bits := b[off:]
	if n%8 != 0 && bits[len(bits)-1]&(0xFF>>(n%8)) != 0 {
		return nil, ErrCorrupt
	}

	out := make([]bool, n)
	for i := range out {
		out[i] = bits[i/8]&(0x80>>(i%8)) != 0
	}
	return out, nil
}

func packedLen(n int) int { return (n + 7) / 8 }

func pack(m []bool) []byte {
	out := make([]byte, packedLen(len(m)))
	for i, s := range m {
		if s {
			out[i/8] |= 0x80 >> (i % 8)
		}
	}
	return out
}
