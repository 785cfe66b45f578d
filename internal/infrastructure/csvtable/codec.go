// Package csvtable reads and writes the delimited translation table: a header
// row "original;<lang>;<lang>..." followed by one row per original string.
package csvtable

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"i18nsync/internal/domain"
	"i18nsync/internal/domain/entities"
	"i18nsync/internal/ports/output"
)

// DefaultDelimiter is the column separator used when none is configured.
const DefaultDelimiter = ';'

var _ output.TableCodec = (*Codec)(nil)

// Codec implements output.TableCodec for a given delimiter.
type Codec struct {
	delimiter rune
}

// NewCodec returns a codec using delimiter, or DefaultDelimiter when it is 0.
func NewCodec(delimiter rune) *Codec {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &Codec{delimiter: delimiter}
}

// Decode parses data. The first cell of the header must be "original"; empty
// cells are not recorded, rows with an empty original are ignored.
func (c *Codec) Decode(data []byte) (*entities.Table, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = c.delimiter
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, &domain.ParseError{Reason: "empty table, header row missing"}
	}
	if err != nil {
		return nil, csvError(err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if header[0] != entities.OriginalColumn {
		return nil, &domain.ParseError{Line: 1, Reason: fmt.Sprintf("first column must be %q, got %q", entities.OriginalColumn, header[0])}
	}

	table := entities.NewTable()
	for i, lang := range header[1:] {
		if lang == "" || lang == entities.OriginalColumn {
			return nil, &domain.ParseError{Line: 1, Reason: fmt.Sprintf("invalid language name %q in column %d", lang, i+2)}
		}
		if !table.AddLanguage(lang) {
			return nil, &domain.ParseError{Line: 1, Reason: fmt.Sprintf("duplicate language column %q", lang)}
		}
	}

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		if len(record) > len(header) {
			line, _ := r.FieldPos(0)
			return nil, &domain.ParseError{Line: line, Reason: fmt.Sprintf("row has %d cells, header has %d", len(record), len(header))}
		}

		original := record[0]
		if original == "" {
			continue
		}
		table.EnsureRow(original)
		for j := 1; j < len(record); j++ {
			if record[j] == "" {
				continue
			}
			table.SetCell(original, header[j], record[j])
		}
	}
	return table, nil
}

// Encode writes the header and every row in table order. Missing cells are
// written as empty strings.
func (c *Codec) Encode(t *entities.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = c.delimiter

	languages := t.Languages()
	if err := w.Write(t.Header()); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	record := make([]string, len(languages)+1)
	for _, row := range t.Rows() {
		record[0] = row.Original
		for i, lang := range languages {
			record[i+1] = row.Cells[lang]
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write row %q: %w", row.Original, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func csvError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &domain.ParseError{Line: perr.Line, Reason: perr.Err.Error()}
	}
	return &domain.ParseError{Reason: err.Error()}
}
