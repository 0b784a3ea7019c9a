package postgres

import (
	"testing"

	"chaski/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
		check      bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, unique: true},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{name: "gorm check", err: gorm.ErrCheckConstraintViolated, check: true},
		{name: "pg unique", err: &pgconn.PgError{Code: "23505"}, unique: true},
		{name: "pg foreign key", err: &pgconn.PgError{Code: "23503"}, foreignKey: true},
		{name: "pg not null", err: &pgconn.PgError{Code: "23502"}, notNull: true},
		{name: "pg check", err: &pgconn.PgError{Code: "23514"}, check: true},
		{name: "wrapped pg unique", err: errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert"), unique: true},
		{name: "unrelated", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}
