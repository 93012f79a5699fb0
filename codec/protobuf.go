package codec

import "google.golang.org/protobuf/proto"

// Protobuf is a Codec for a concrete proto message type. Encoding is
// deterministic so equal messages marshal to equal bytes.
type Protobuf[T proto.Message] struct {
	new func() T // e.g. func() *structpb.Struct { return &structpb.Struct{} }
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.UnmarshalOptions{DiscardUnknown: false}.Unmarshal(b, m)
	return m, err
}
