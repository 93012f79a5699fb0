package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

var errTrailing = errors.New("codec: trailing data after value")

// JSON is a Codec backed by encoding/json. The zero value is ready to use and
// rejects unknown fields; set AllowUnknown to relax that.
type JSON[V any] struct {
	AllowUnknown bool
}

var _ Codec[struct{}] = JSON[struct{}]{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }

func (c JSON[V]) Decode(b []byte) (V, error) {
	var v V
	dec := json.NewDecoder(bytes.NewReader(b))
	if !c.AllowUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&v); err != nil {
		return v, err
	}
	if _, err := dec.Token(); err != io.EOF {
		var zero V
		return zero, errTrailing
	}
	return v, nil
}
