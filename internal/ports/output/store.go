package output

import "context"

// CatalogSource is the raw text of one catalog and the language key derived
// from where it came from.
type CatalogSource struct {
	Language string
	Name     string // file name or other label used in messages
	Data     []byte
}

// TranslationStore finds the inputs of a conversion and persists its outputs.
// The mergers never see paths; only this collaborator does.
type TranslationStore interface {
	DiscoverCatalogs(ctx context.Context) ([]CatalogSource, error)
	DiscoverTable(ctx context.Context) ([]byte, error)
	WriteCatalog(ctx context.Context, language string, data []byte) error
	WriteTable(ctx context.Context, data []byte) error
}
