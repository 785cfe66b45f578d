package output

import "i18nsync/internal/domain/entities"

// CatalogCodec converts between catalog text and entities.Catalog.
type CatalogCodec interface {
	Decode(language string, data []byte) (*entities.Catalog, error)
	Encode(c *entities.Catalog) ([]byte, error)
}

// TableCodec converts between delimited text and entities.Table.
type TableCodec interface {
	Decode(data []byte) (*entities.Table, error)
	Encode(t *entities.Table) ([]byte, error)
}
