package domain

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorMatchesBaseAndCause(t *testing.T) {
	err := NewQueryError(io.ErrUnexpectedEOF)

	assert.True(t, IsQueryError(err))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.False(t, IsConnectionError(err))
	assert.Equal(t, "query error: unexpected EOF", err.Error())
}

func TestRowMappingErrorMessage(t *testing.T) {
	err := NewRowMappingError(2, "id", errors.New("unexpected NULL"))

	assert.True(t, IsRowMappingError(err))
	assert.Equal(t, "row mapping error: row 2 (field: id): unexpected NULL", err.Error())
}

func TestQueryValidate(t *testing.T) {
	assert.NoError(t, Query(DefaultChoicesQuery).Validate())

	err := Query("  \n").Validate()
	assert.True(t, IsValidationError(err))

	var domainErr *DomainError
	if assert.ErrorAs(t, err, &domainErr) {
		assert.Equal(t, "query", domainErr.Field)
	}
}
