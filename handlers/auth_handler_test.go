package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKey(fmt.Errorf("create failed: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, isDuplicateKey(&pgconn.PgError{Code: "23505"}))

	assert.False(t, isDuplicateKey(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isDuplicateKey(gorm.ErrRecordNotFound))
	assert.False(t, isDuplicateKey(errors.New("connection reset")))
}
