package application

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"i18nsync/internal/domain/entities"
	"i18nsync/internal/ports/output"
)

// ExportService folds catalogs into a single table.
type ExportService struct {
	resolver output.Resolver
}

func NewExportService(resolver output.Resolver) *ExportService {
	return &ExportService{resolver: resolver}
}

// Merge builds a table whose columns follow the order of catalogs and whose
// rows follow the first appearance of each original. Originals and
// translations are trimmed. A conflict can only come from one catalog holding
// the same original twice with different translations. Skip keeps the stored
// value; an empty replacement clears the cell.
func (s *ExportService) Merge(ctx context.Context, catalogs []*entities.Catalog) (*entities.Table, entities.Report, error) {
	table := entities.NewTable()
	var rep entities.Report

	for _, c := range catalogs {
		table.AddLanguage(c.Language)
		rep.Languages = append(rep.Languages, c.Language)
	}

	for _, c := range catalogs {
		lang := c.Language
		for _, e := range c.Entries {
			original := strings.TrimSpace(e.Original)
			translation := strings.TrimSpace(e.Translation)
			if original == "" {
				continue
			}

			table.EnsureRow(original)
			existing, ok := table.GetCell(original, lang)
			switch {
			case translation == "":
			case !ok || existing == "":
				table.SetCell(original, lang, translation)
				rep.Added++
			case existing != translation:
				conflict := entities.Conflict{Original: original, Language: lang, Old: existing, New: translation}
				value, keep, err := resolveConflict(ctx, s.resolver, conflict, &rep)
				if err != nil {
					return nil, rep, err
				}
				if !keep {
					break
				}
				if value == "" {
					table.ClearCell(original, lang)
				} else {
					table.SetCell(original, lang, value)
				}
				if value != existing {
					rep.Updated++
				}
			}
		}
	}

	rep.Rows = table.Len()
	log.WithFields(log.Fields{
		"languages": len(rep.Languages),
		"rows":      rep.Rows,
		"conflicts": rep.Conflicts,
	}).Info("catalogs merged")
	return table, rep, nil
}
