package serde

import (
	"encoding/json"
	"fmt"
)

// NewJSONSerializer returns a Serializer that encodes the input value
// to a JSON byte slice.
func NewJSONSerializer[T any]() SerializerFunc[T, []byte] {
	return func(t T) ([]byte, error) {
		data, err := json.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("serde.JSON: failed to serialize data, %w", err)
		}

		return data, nil
	}
}

// NewJSONDeserializer returns a Deserializer that decodes a JSON byte slice
// into a new instance of the target type.
//
// The factory function provides fresh instances to decode into, which is
// required when the target type uses pointer semantics or hides behind
// an interface.
func NewJSONDeserializer[T any](factory func() T) DeserializerFunc[T, []byte] {
	return func(data []byte) (T, error) {
		var zeroValue T

		model := factory()
		if err := json.Unmarshal(data, &model); err != nil {
			return zeroValue, fmt.Errorf("serde.JSON: failed to deserialize data, %w", err)
		}

		return model, nil
	}
}

// NewJSON returns a Serde that maps values of the given type to and from
// JSON byte slices.
func NewJSON[T any](factory func() T) Fused[T, []byte] {
	return Fuse(
		NewJSONSerializer[T](),
		NewJSONDeserializer(factory),
	)
}
