package application

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"i18nsync/internal/domain"
	"i18nsync/internal/domain/entities"
	"i18nsync/internal/ports/input"
	"i18nsync/internal/ports/output"
)

var _ input.ConvertUseCase = (*ConvertService)(nil)

// ConvertService runs a whole conversion: read through the store, decode,
// merge, encode, write through the store. Nothing is written unless every
// earlier step succeeded.
type ConvertService struct {
	store    output.TranslationStore
	catalogs output.CatalogCodec
	tables   output.TableCodec
	exporter *ExportService
	importer *ImportService
}

func NewConvertService(
	store output.TranslationStore,
	catalogs output.CatalogCodec,
	tables output.TableCodec,
	resolver output.Resolver,
) *ConvertService {
	return &ConvertService{
		store:    store,
		catalogs: catalogs,
		tables:   tables,
		exporter: NewExportService(resolver),
		importer: NewImportService(resolver),
	}
}

// PoToCsv merges every discovered catalog into one table and writes it.
func (s *ConvertService) PoToCsv(ctx context.Context) (entities.Report, error) {
	catalogs, err := s.loadCatalogs(ctx)
	if err != nil {
		return entities.Report{}, err
	}

	table, rep, err := s.exporter.Merge(ctx, catalogs)
	if err != nil {
		return rep, fmt.Errorf("merge catalogs: %w", err)
	}

	data, err := s.tables.Encode(table)
	if err != nil {
		return rep, fmt.Errorf("encode table: %w", err)
	}
	log.WithField("rows", table.Len()).Info("writing table")
	if err := s.store.WriteTable(ctx, data); err != nil {
		return rep, fmt.Errorf("write table: %w", err)
	}
	return rep, nil
}

// CsvToPo merges the discovered table into the discovered catalogs and writes
// every catalog back.
func (s *ConvertService) CsvToPo(ctx context.Context) (entities.Report, error) {
	raw, err := s.store.DiscoverTable(ctx)
	if err != nil {
		return entities.Report{}, fmt.Errorf("discover table: %w", err)
	}
	catalogs, err := s.loadCatalogs(ctx)
	if err != nil {
		return entities.Report{}, err
	}

	log.Info("reading table")
	table, err := s.tables.Decode(raw)
	if err != nil {
		return entities.Report{}, fmt.Errorf("decode table: %w", err)
	}

	byLang := make(map[string]*entities.Catalog, len(catalogs))
	for _, c := range catalogs {
		byLang[c.Language] = c
	}
	rep, err := s.importer.Merge(ctx, table, byLang)
	if err != nil {
		return rep, fmt.Errorf("merge table: %w", err)
	}

	encoded := make([][]byte, len(catalogs))
	for i, c := range catalogs {
		if encoded[i], err = s.catalogs.Encode(c); err != nil {
			return rep, fmt.Errorf("encode catalog %s: %w", c.Language, err)
		}
	}
	for i, c := range catalogs {
		log.WithFields(log.Fields{"language": c.Language, "entries": c.Len()}).Info("writing catalog")
		if err := s.store.WriteCatalog(ctx, c.Language, encoded[i]); err != nil {
			return rep, fmt.Errorf("write catalog %s: %w", c.Language, err)
		}
	}
	return rep, nil
}

// loadCatalogs decodes the discovered catalogs in discovery order.
func (s *ConvertService) loadCatalogs(ctx context.Context) ([]*entities.Catalog, error) {
	sources, err := s.store.DiscoverCatalogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("discover catalogs: %w", err)
	}
	if len(sources) == 0 {
		return nil, domain.ErrNoCatalogs
	}

	out := make([]*entities.Catalog, 0, len(sources))
	seen := make(map[string]string, len(sources))
	for _, src := range sources {
		if prev, ok := seen[src.Language]; ok {
			return nil, fmt.Errorf("catalogs %s and %s share language %q", prev, src.Name, src.Language)
		}
		seen[src.Language] = src.Name

		log.WithField("language", src.Language).Info("loading catalog")
		c, err := s.catalogs.Decode(src.Language, src.Data)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", src.Name, err)
		}
		out = append(out, c)
	}
	return out, nil
}
