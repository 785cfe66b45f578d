package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogUpsert(t *testing.T) {
	c := NewCatalog("fr")
	assert.True(t, c.Upsert("Hello", "Bonjour"))
	assert.True(t, c.Upsert("Bye", "Salut"))
	assert.False(t, c.Upsert("Hello", "Coucou"))

	require.Equal(t, 2, c.Len())
	e, ok := c.Find("Hello")
	require.True(t, ok)
	assert.Equal(t, "Coucou", e.Translation)
	assert.Equal(t, "Hello", c.Entries[0].Original)
	assert.Equal(t, "Bye", c.Entries[1].Original)

	_, ok = c.Find("hello")
	assert.False(t, ok, "lookup is exact")
}

func TestCatalogDuplicatesFindFirst(t *testing.T) {
	c := NewCatalog("fr")
	c.Append(&Entry{Original: "Hello", Translation: "Bonjour"})
	c.Append(&Entry{Original: "Hello", Translation: "Salut"})

	assert.Equal(t, 2, c.Len())
	e, ok := c.Find("Hello")
	require.True(t, ok)
	assert.Equal(t, "Bonjour", e.Translation)
}

func TestCatalogZeroValue(t *testing.T) {
	c := &Catalog{Language: "de", Entries: []*Entry{{Original: "A", Translation: "a"}}}
	e, ok := c.Find("A")
	require.True(t, ok)
	assert.Equal(t, "a", e.Translation)

	c.Append(&Entry{Original: "B"})
	_, ok = c.Find("B")
	assert.True(t, ok)
}
