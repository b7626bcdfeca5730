// Package serde contains the generic serialization and deserialization
// contracts used to move event payloads between their typed, in-memory
// representation and their wire representation.
package serde

// Serializer maps a Src value into its Dst representation.
type Serializer[Src any, Dst any] interface {
	Serialize(src Src) (Dst, error)
}

// SerializerFunc is a functional adapter for the Serializer interface.
type SerializerFunc[Src any, Dst any] func(src Src) (Dst, error)

// Serialize implements the serde.Serializer interface.
func (fn SerializerFunc[Src, Dst]) Serialize(src Src) (Dst, error) { return fn(src) }

// AsSerializerFunc adapts a plain serialization function into a Serializer
// compatible type.
func AsSerializerFunc[Src, Dst any](f func(src Src) (Dst, error)) SerializerFunc[Src, Dst] {
	return SerializerFunc[Src, Dst](f)
}

// Deserializer maps a Dst representation back into its Src value.
type Deserializer[Src any, Dst any] interface {
	Deserialize(dst Dst) (Src, error)
}

// DeserializerFunc is a functional adapter for the Deserializer interface.
type DeserializerFunc[Src any, Dst any] func(dst Dst) (Src, error)

// Deserialize implements the serde.Deserializer interface.
func (fn DeserializerFunc[Src, Dst]) Deserialize(dst Dst) (Src, error) { return fn(dst) }

// AsDeserializerFunc adapts a plain deserialization function into a
// Deserializer compatible type.
func AsDeserializerFunc[Src, Dst any](f func(dst Dst) (Src, error)) DeserializerFunc[Src, Dst] {
	return DeserializerFunc[Src, Dst](f)
}

// Serde groups serialization and deserialization between a Src and
// a Dst type.
type Serde[Src any, Dst any] interface {
	Serializer[Src, Dst]
	Deserializer[Src, Dst]
}

// Fused glues together independent Serializer and Deserializer
// implementations into a Serde.
type Fused[Src any, Dst any] struct {
	Serializer[Src, Dst]
	Deserializer[Src, Dst]
}

// Fuse combines a Serializer and a Deserializer with compatible types into
// a single Serde value.
func Fuse[Src, Dst any](serializer Serializer[Src, Dst], deserializer Deserializer[Src, Dst]) Fused[Src, Dst] {
	return Fused[Src, Dst]{
		Serializer:   serializer,
		Deserializer: deserializer,
	}
}
