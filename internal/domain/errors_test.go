package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"i18nsync/internal/domain/entities"
)

func TestCode(t *testing.T) {
	inner := errors.New("stdin closed")
	for _, tc := range []struct {
		name string
		err  error
		code string
	}{
		{name: "nil", err: nil, code: ""},
		{name: "parse", err: fmt.Errorf("load fr.po: %w", &ParseError{Source: "fr", Line: 3, Reason: "bad"}), code: "parse_error"},
		{name: "missing catalog", err: &MissingCatalogError{Language: "de"}, code: "missing_catalog"},
		{name: "resolver", err: fmt.Errorf("merge: %w", &ResolverError{Err: inner}), code: "resolver_error"},
		{name: "no catalogs", err: fmt.Errorf("%w: none", ErrNoCatalogs), code: "no_catalogs"},
		{name: "no table", err: ErrNoTable, code: "no_table"},
		{name: "other", err: errors.New("boom"), code: ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, Code(tc.err))
		})
	}
}

func TestResolverErrorUnwrap(t *testing.T) {
	inner := errors.New("stdin closed")
	c := entities.Conflict{Original: "Hello", Language: "fr"}
	err := fmt.Errorf("merge: %w", &ResolverError{Conflict: c, Err: inner})

	assert.ErrorIs(t, err, inner)
	assert.ErrorIs(t, err, ErrResolver)

	var rerr *ResolverError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, c, rerr.Conflict)
	assert.Contains(t, err.Error(), `"Hello" (fr)`)
}

func TestParseErrorMessage(t *testing.T) {
	assert.Equal(t, "parse fr: line 4: oops", (&ParseError{Source: "fr", Line: 4, Reason: "oops"}).Error())
	assert.Equal(t, "parse fr: oops", (&ParseError{Source: "fr", Reason: "oops"}).Error())
	assert.Equal(t, "parse: line 2: oops", (&ParseError{Line: 2, Reason: "oops"}).Error())
	assert.Equal(t, "parse: oops", (&ParseError{Reason: "oops"}).Error())
}
