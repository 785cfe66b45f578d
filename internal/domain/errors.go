package domain

import (
	"errors"
	"fmt"

	"i18nsync/internal/domain/entities"
)

// Domain errors.
var (
	ErrParse          = errors.New("malformed input")
	ErrMissingCatalog = errors.New("no catalog loaded for language")
	ErrResolver       = errors.New("conflict resolver failed")
	ErrNoCatalogs     = errors.New("no catalogs to process")
	ErrNoTable        = errors.New("no table to process")
)

// ParseError reports malformed PO or delimited text.
type ParseError struct {
	Source string // language key or file name, may be empty
	Line   int    // 1-based, 0 when unknown
	Reason string
}

func (e *ParseError) Error() string {
	switch {
	case e.Source != "" && e.Line > 0:
		return fmt.Sprintf("parse %s: line %d: %s", e.Source, e.Line, e.Reason)
	case e.Source != "":
		return fmt.Sprintf("parse %s: %s", e.Source, e.Reason)
	case e.Line > 0:
		return fmt.Sprintf("parse: line %d: %s", e.Line, e.Reason)
	default:
		return "parse: " + e.Reason
	}
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// MissingCatalogError is returned by an import when a table column has no
// matching catalog.
type MissingCatalogError struct {
	Language string
}

func (e *MissingCatalogError) Error() string {
	return fmt.Sprintf("no catalog loaded for language %q", e.Language)
}

func (e *MissingCatalogError) Is(target error) bool { return target == ErrMissingCatalog }

// ResolverError wraps a failure of the conflict resolver together with the
// conflict it was asked to decide.
type ResolverError struct {
	Conflict entities.Conflict
	Err      error
}

func (e *ResolverError) Error() string {
	return fmt.Sprintf("resolve conflict for %q (%s): %v", e.Conflict.Original, e.Conflict.Language, e.Err)
}

func (e *ResolverError) Unwrap() error { return e.Err }

func (e *ResolverError) Is(target error) bool { return target == ErrResolver }

// Code returns a stable identifier for a domain error, or "" when err is not
// one of ours.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrParse):
		return "parse_error"
	case errors.Is(err, ErrMissingCatalog):
		return "missing_catalog"
	case errors.Is(err, ErrResolver):
		return "resolver_error"
	case errors.Is(err, ErrNoCatalogs):
		return "no_catalogs"
	case errors.Is(err, ErrNoTable):
		return "no_table"
	default:
		return ""
	}
}
