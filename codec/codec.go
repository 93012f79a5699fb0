// Package codec serializes configuration values such as pipeline layouts.
//
// Decoders in this package are strict: unknown fields and trailing data are
// errors, so a typo in a stored layout fails loudly instead of building a
// different pipeline.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
