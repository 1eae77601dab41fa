package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEntityName(t *testing.T) {
	t.Run("Trims and collapses whitespace", func(t *testing.T) {
		assert.Equal(t, "Marie Curie", NormalizeEntityName("  Marie   Curie "))
		assert.Equal(t, "Marie Curie", NormalizeEntityName("Marie\tCurie"))
		assert.Equal(t, "", NormalizeEntityName("   "))
	})
}

func TestIsValidEntity(t *testing.T) {
	t.Run("Accepts proper names", func(t *testing.T) {
		assert.True(t, IsValidEntity("Marie Curie", "PER"))
		assert.True(t, IsValidEntity("OpenAI", "ORG"))
		assert.True(t, IsValidEntity("Riyadh", "LOC"))
	})

	t.Run("Rejects short names", func(t *testing.T) {
		assert.False(t, IsValidEntity("IBM", "ORG"))
		assert.False(t, IsValidEntity("ab", "PER"))
		assert.False(t, IsValidEntity("", "PER"))
	})

	t.Run("Rejects measurement keywords", func(t *testing.T) {
		assert.False(t, IsValidEntity("velocity", "MISC"))
		assert.False(t, IsValidEntity("Length Error", "MISC"))
		assert.False(t, IsValidEntity("feedback signal", "MISC"))
	})

	t.Run("Rejects purely numeric names", func(t *testing.T) {
		assert.False(t, IsValidEntity("2024", "DATE"))
		assert.False(t, IsValidEntity("123456", "MISC"))
	})

	t.Run("Rejects blocked labels", func(t *testing.T) {
		assert.False(t, IsValidEntity("forty-two", "CARDINAL"))
		assert.False(t, IsValidEntity("first place", "ORDINAL"))
		assert.False(t, IsValidEntity("ten liters", "QUANTITY"))
		assert.False(t, IsValidEntity("fifty percent", "PERCENT"))
	})

	t.Run("Unknown labels are allowed", func(t *testing.T) {
		assert.True(t, IsValidEntity("Haber process", "SOMETHING_NEW"))
	})
}
