package codec

import (
	"errors"
	"fmt"
)

// ErrTooLarge is matched by LimitCodec size violations.
var ErrTooLarge = errors.New("codec: payload too large")

// LimitCodec bounds the size of payloads in both directions. A layout read from
// an untrusted store is rejected before Inner sees it; an oversized Encode result
// is rejected so it never gets stored. A limit <= 0 disables that direction.
type LimitCodec[V any] struct {
	Inner     Codec[V]
	MaxDecode int
	MaxEncode int
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) {
	b, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	if c.MaxEncode > 0 && len(b) > c.MaxEncode {
		return nil, fmt.Errorf("%w: encoded %d > %d", ErrTooLarge, len(b), c.MaxEncode)
	}
	return b, nil
}

func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("%w: %d > %d", ErrTooLarge, len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
