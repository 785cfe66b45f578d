package application

import (
	"context"

	log "github.com/sirupsen/logrus"

	"i18nsync/internal/domain"
	"i18nsync/internal/domain/entities"
	"i18nsync/internal/ports/output"
)

// ImportService folds the rows of a table back into per-language catalogs.
type ImportService struct {
	resolver output.Resolver
}

func NewImportService(resolver output.Resolver) *ImportService {
	return &ImportService{resolver: resolver}
}

// Merge updates catalogs in place from table. Empty cells carry no opinion and
// are ignored. A non-empty cell for a language without a catalog aborts the
// merge with a *domain.MissingCatalogError.
func (s *ImportService) Merge(ctx context.Context, table *entities.Table, catalogs map[string]*entities.Catalog) (entities.Report, error) {
	rep := entities.Report{Languages: table.Languages(), Rows: table.Len()}

	for _, row := range table.Rows() {
		for _, lang := range rep.Languages {
			value := row.Cells[lang]
			if value == "" {
				continue
			}
			catalog, ok := catalogs[lang]
			if !ok || catalog == nil {
				return rep, &domain.MissingCatalogError{Language: lang}
			}

			entry, found := catalog.Find(row.Original)
			switch {
			case !found:
				catalog.Append(&entities.Entry{Original: row.Original, Translation: value})
				rep.Added++
			case entry.Translation == "":
				entry.Translation = value
				rep.Updated++
			case entry.Translation != value:
				conflict := entities.Conflict{Original: row.Original, Language: lang, Old: entry.Translation, New: value}
				chosen, keep, err := resolveConflict(ctx, s.resolver, conflict, &rep)
				if err != nil {
					return rep, err
				}
				if keep && chosen != entry.Translation {
					entry.Translation = chosen
					rep.Updated++
				}
			}
		}
	}

	log.WithFields(log.Fields{
		"rows":      rep.Rows,
		"added":     rep.Added,
		"updated":   rep.Updated,
		"conflicts": rep.Conflicts,
	}).Info("table merged into catalogs")
	return rep, nil
}
