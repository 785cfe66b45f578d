package input

import (
	"context"

	"i18nsync/internal/domain/entities"
)

// ConvertUseCase runs one full conversion between catalogs and a table.
type ConvertUseCase interface {
	PoToCsv(ctx context.Context) (entities.Report, error)
	CsvToPo(ctx context.Context) (entities.Report, error)
}
