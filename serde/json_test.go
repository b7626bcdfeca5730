package serde_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evercart/eventschema/serde"
)

type stockLevel struct {
	ProductSKU string `json:"product_sku"`
	Quantity   int    `json:"quantity"`
}

func TestJSON(t *testing.T) {
	stockLevelSerde := serde.NewJSON(func() *stockLevel { return new(stockLevel) })

	t.Run("it round-trips a value through JSON", func(t *testing.T) {
		level := &stockLevel{ProductSKU: "SKU-001", Quantity: 42}

		expected, err := json.Marshal(level)
		require.NoError(t, err)

		serialized, err := stockLevelSerde.Serialize(level)
		assert.NoError(t, err)
		assert.Equal(t, expected, serialized)

		deserialized, err := stockLevelSerde.Deserialize(serialized)
		assert.NoError(t, err)
		assert.Equal(t, level, deserialized)
	})

	t.Run("it fails to deserialize invalid JSON", func(t *testing.T) {
		deserialized, err := stockLevelSerde.Deserialize([]byte("{"))
		assert.Error(t, err)
		assert.Zero(t, deserialized)
	})

	t.Run("it works with by-value semantics", func(t *testing.T) {
		byValueSerde := serde.NewJSON(func() stockLevel { return stockLevel{} })
		level := stockLevel{ProductSKU: "SKU-002", Quantity: 1}

		serialized, err := byValueSerde.Serialize(level)
		assert.NoError(t, err)
		assert.NotEmpty(t, serialized)

		deserialized, err := byValueSerde.Deserialize(serialized)
		assert.NoError(t, err)
		assert.Equal(t, level, deserialized)
	})
}

func TestFuse(t *testing.T) {
	uppercased := serde.Fuse[string, []byte](
		serde.AsSerializerFunc(func(s string) ([]byte, error) { return []byte(s), nil }),
		serde.AsDeserializerFunc(func(b []byte) (string, error) { return string(b), nil }),
	)

	serialized, err := uppercased.Serialize("payment.completed")
	require.NoError(t, err)

	deserialized, err := uppercased.Deserialize(serialized)
	require.NoError(t, err)
	assert.Equal(t, "payment.completed", deserialized)
}
