package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"i18nsync/internal/adapters/resolver"
	"i18nsync/internal/domain"
	"i18nsync/internal/domain/entities"
	"i18nsync/internal/ports/output"
)

func TestImportEmptyCells(t *testing.T) {
	table := entities.NewTable("en", "es")
	table.SetCell("Goodbye", "es", "Adios")
	en := catalog("en")
	es := catalog("es")

	rep, err := NewImportService(resolver.NewSequence()).
		Merge(context.Background(), table, map[string]*entities.Catalog{"en": en, "es": es})
	require.NoError(t, err)

	assert.Zero(t, en.Len())
	assert.Equal(t, []string{"Goodbye", "Adios"}, pairs(es))
	assert.Equal(t, 1, rep.Added)
}

func TestImportFillsGapsWithoutConflict(t *testing.T) {
	table := entities.NewTable("fr")
	table.SetCell("Hello", "fr", "Bonjour")
	table.SetCell("Same", "fr", "Pareil")
	fr := catalog("fr", "Hello", "", "Same", "Pareil")
	seq := resolver.NewSequence()

	rep, err := NewImportService(seq).Merge(context.Background(), table, map[string]*entities.Catalog{"fr": fr})
	require.NoError(t, err)

	assert.Empty(t, seq.Seen)
	assert.Equal(t, []string{"Hello", "Bonjour", "Same", "Pareil"}, pairs(fr))
	assert.Equal(t, entities.Report{Languages: []string{"fr"}, Rows: 2, Updated: 1}, rep)
}

func TestImportConflicts(t *testing.T) {
	for _, tc := range []struct {
		name     string
		decision entities.Decision
		want     string
		updated  int
		skipped  int
	}{
		{name: "use new", decision: entities.UseNew(), want: "Salut", updated: 1},
		{name: "use old", decision: entities.UseOld(), want: "Bonjour"},
		{name: "skip", decision: entities.Skip(), want: "Bonjour", skipped: 1},
		{name: "replace", decision: entities.Replace("Coucou"), want: "Coucou", updated: 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			table := entities.NewTable("fr")
			table.SetCell("Hello", "fr", "Salut")
			fr := catalog("fr", "Hello", "Bonjour")
			seq := resolver.NewSequence(tc.decision)

			rep, err := NewImportService(seq).Merge(context.Background(), table, map[string]*entities.Catalog{"fr": fr})
			require.NoError(t, err)

			require.Len(t, seq.Seen, 1)
			assert.Equal(t, entities.Conflict{Original: "Hello", Language: "fr", Old: "Bonjour", New: "Salut"}, seq.Seen[0])
			assert.Equal(t, []string{"Hello", tc.want}, pairs(fr))
			assert.Equal(t, 1, rep.Conflicts)
			assert.Equal(t, tc.updated, rep.Updated)
			assert.Equal(t, tc.skipped, rep.Skipped)
		})
	}
}

func TestImportMissingCatalog(t *testing.T) {
	table := entities.NewTable("fr", "de")
	table.SetCell("Hello", "fr", "Bonjour")
	table.SetCell("Bye", "de", "Tschüss")

	_, err := NewImportService(resolver.NewSequence()).
		Merge(context.Background(), table, map[string]*entities.Catalog{"fr": catalog("fr")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingCatalog)

	var merr *domain.MissingCatalogError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "de", merr.Language)
}

func TestImportEmptyColumnNeedsNoCatalog(t *testing.T) {
	table := entities.NewTable("fr", "de")
	table.SetCell("Hello", "fr", "Bonjour")
	fr := catalog("fr")

	_, err := NewImportService(resolver.NewSequence()).
		Merge(context.Background(), table, map[string]*entities.Catalog{"fr": fr})
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", "Bonjour"}, pairs(fr))
}

func TestImportIdempotent(t *testing.T) {
	table := entities.NewTable("en", "fr")
	table.SetCell("Hi", "en", "Hi")
	table.SetCell("Hi", "fr", "Salut")
	table.SetCell("Bye", "fr", "Au revoir")
	catalogs := map[string]*entities.Catalog{
		"en": catalog("en", "Hi", "Hello there"),
		"fr": catalog("fr", "Bye", ""),
	}
	svc := NewImportService(resolver.AlwaysOld())

	_, err := svc.Merge(context.Background(), table, catalogs)
	require.NoError(t, err)
	en, fr := pairs(catalogs["en"]), pairs(catalogs["fr"])

	rep, err := svc.Merge(context.Background(), table, catalogs)
	require.NoError(t, err)
	assert.Equal(t, en, pairs(catalogs["en"]))
	assert.Equal(t, fr, pairs(catalogs["fr"]))
	assert.Zero(t, rep.Added)
	assert.Zero(t, rep.Updated)
}

func TestImportResolverFailure(t *testing.T) {
	boom := errors.New("stdin closed")
	table := entities.NewTable("fr")
	table.SetCell("Hello", "fr", "Salut")
	fr := catalog("fr", "Hello", "Bonjour")
	failing := output.ResolverFunc(func(context.Context, entities.Conflict) (entities.Decision, error) {
		return entities.Decision{}, boom
	})

	_, err := NewImportService(failing).Merge(context.Background(), table, map[string]*entities.Catalog{"fr": fr})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResolver)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"Hello", "Bonjour"}, pairs(fr))
}

func TestExportImportRoundTrip(t *testing.T) {
	en := catalog("en", "One", "One", "Two", "Two")
	fr := catalog("fr", "Three", "Trois", "Four", "Quatre")

	table, _, err := NewExportService(resolver.NewSequence()).Merge(context.Background(), []*entities.Catalog{en, fr})
	require.NoError(t, err)

	fresh := map[string]*entities.Catalog{"en": catalog("en"), "fr": catalog("fr")}
	_, err = NewImportService(resolver.NewSequence()).Merge(context.Background(), table, fresh)
	require.NoError(t, err)

	assert.ElementsMatch(t, pairs(en), pairs(fresh["en"]))
	assert.ElementsMatch(t, pairs(fr), pairs(fresh["fr"]))
}
