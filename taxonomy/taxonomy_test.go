package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evercart/eventschema/taxonomy"
)

func TestClassify(t *testing.T) {
	t.Run("it classifies a known event type by its prefix", func(t *testing.T) {
		category, ok := taxonomy.Classify(taxonomy.OrderCreated)
		assert.True(t, ok)
		assert.Equal(t, taxonomy.CategoryOrder, category)
	})

	t.Run("it classifies on the first dot only", func(t *testing.T) {
		category, ok := taxonomy.Classify("inventory.stock.received")
		assert.True(t, ok)
		assert.Equal(t, taxonomy.CategoryInventory, category)
	})

	t.Run("it returns no category for an empty string", func(t *testing.T) {
		_, ok := taxonomy.Classify("")
		assert.False(t, ok)
	})

	t.Run("it returns no category without a dot separator", func(t *testing.T) {
		_, ok := taxonomy.Classify("order")
		assert.False(t, ok)
	})

	t.Run("it returns no category for an unknown prefix", func(t *testing.T) {
		_, ok := taxonomy.Classify("warehouse.created")
		assert.False(t, ok)
	})
}

func TestIsValid(t *testing.T) {
	t.Run("it accepts every enumerated event type", func(t *testing.T) {
		for _, eventType := range taxonomy.All() {
			assert.True(t, taxonomy.IsValid(eventType), eventType)
		}
	})

	t.Run("it rejects a known category with an unknown action", func(t *testing.T) {
		assert.False(t, taxonomy.IsValid("order.teleported"))
	})

	t.Run("it rejects prefix matches that are not exact members", func(t *testing.T) {
		assert.False(t, taxonomy.IsValid("order.created.v2"))
	})

	t.Run("it rejects empty and separator-less strings", func(t *testing.T) {
		assert.False(t, taxonomy.IsValid(""))
		assert.False(t, taxonomy.IsValid("order"))
		assert.False(t, taxonomy.IsValid("."))
	})
}

func TestTypes(t *testing.T) {
	t.Run("it lists the event types of a category", func(t *testing.T) {
		types := taxonomy.Types(taxonomy.CategoryReview)
		assert.Len(t, types, 6)
		assert.Contains(t, types, taxonomy.ReviewSubmitted)
	})

	t.Run("it returns nil for an unknown category", func(t *testing.T) {
		assert.Nil(t, taxonomy.Types(taxonomy.Category("warehouse")))
	})

	t.Run("mutating the returned slice does not affect the vocabulary", func(t *testing.T) {
		types := taxonomy.Types(taxonomy.CategoryCart)
		types[0] = "cart.tampered"
		assert.True(t, taxonomy.IsValid(taxonomy.CartCreated))
	})
}
