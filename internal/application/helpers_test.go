package application

import (
	"testing"

	"github.com/stretchr/testify/require"

	"i18nsync/internal/domain/entities"
)

// catalog builds a catalog from original/translation pairs, duplicates kept.
func catalog(lang string, pairs ...string) *entities.Catalog {
	c := entities.NewCatalog(lang)
	for i := 0; i+1 < len(pairs); i += 2 {
		c.Append(&entities.Entry{Original: pairs[i], Translation: pairs[i+1]})
	}
	return c
}

// pairs flattens a catalog back to original/translation pairs.
func pairs(c *entities.Catalog) []string {
	out := make([]string, 0, 2*c.Len())
	for _, e := range c.Entries {
		out = append(out, e.Original, e.Translation)
	}
	return out
}

func cell(t *testing.T, table *entities.Table, original, lang string) string {
	t.Helper()
	v, ok := table.GetCell(original, lang)
	require.Truef(t, ok, "no cell for (%q, %s)", original, lang)
	return v
}
