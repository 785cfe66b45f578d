package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableOrder(t *testing.T) {
	tb := NewTable("en")
	tb.SetCell("B", "en", "b")
	tb.SetCell("A", "fr", "a")
	tb.SetCell("B", "fr", "bb")

	assert.Equal(t, []string{"original", "en", "fr"}, tb.Header())
	assert.Equal(t, []string{"en", "fr"}, tb.Languages())

	rows := tb.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "B", rows[0].Original)
	assert.Equal(t, "A", rows[1].Original)
}

func TestTableCells(t *testing.T) {
	tb := NewTable()
	tb.SetCell("Hi", "fr", "Salut")

	v, ok := tb.GetCell("Hi", "fr")
	require.True(t, ok)
	assert.Equal(t, "Salut", v)

	_, ok = tb.GetCell("Hi", "en")
	assert.False(t, ok)
	_, ok = tb.GetCell("Nope", "fr")
	assert.False(t, ok)

	tb.ClearCell("Hi", "fr")
	_, ok = tb.GetCell("Hi", "fr")
	assert.False(t, ok)
	assert.Equal(t, 1, tb.Len(), "clearing a cell keeps the row")
}

func TestTableAddLanguage(t *testing.T) {
	tb := NewTable("en", "en", "fr")
	assert.Equal(t, []string{"en", "fr"}, tb.Languages())
	assert.False(t, tb.AddLanguage("fr"))
	assert.True(t, tb.AddLanguage("de"))
	assert.Equal(t, []string{"en", "fr", "de"}, tb.Languages())
}

func TestTableEnsureRow(t *testing.T) {
	tb := NewTable()
	r1 := tb.EnsureRow("A")
	r2 := tb.EnsureRow("A")
	assert.Same(t, r1, r2)

	assert.Empty(t, r1.Cells)
	assert.Equal(t, 1, tb.Len())
}
