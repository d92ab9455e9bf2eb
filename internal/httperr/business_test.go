package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsBusinessUnwraps(t *testing.T) {
	err := fmt.Errorf("update: %w", ErrBusiness("invalid_transition"))

	assert.True(t, IsBusiness(err, "invalid_transition"))
	assert.False(t, IsBusiness(err, "invalid_time_range"))
	assert.False(t, IsBusiness(errors.New("invalid_transition"), "invalid_transition"))
}

func TestNotFound(t *testing.T) {
	err := fmt.Errorf("load: %w", ErrNotFound("product"))

	assert.True(t, IsNotFound(err))
	assert.Equal(t, "product_not_found", ErrNotFound("product").Error())
	assert.False(t, IsNotFound(ErrBusiness("product_not_found")))
}

func TestPgCodes(t *testing.T) {
	exclusion := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"})
	check := &pgconn.PgError{Code: "23514"}

	assert.True(t, IsExclusionConflict(exclusion))
	assert.False(t, IsExclusionConflict(check))
	assert.True(t, IsCheckViolation(check))
	assert.False(t, IsUniqueViolation(errors.New("duplicate")))
}
