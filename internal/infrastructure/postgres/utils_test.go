package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMigrateURL_TraduceEsquemaAPgx5(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@db:5432/inv?sslmode=disable":   "pgx5://u:p@db:5432/inv?sslmode=disable",
		"postgresql://u:p@db:5432/inv?sslmode=disable": "pgx5://u:p@db:5432/inv?sslmode=disable",
		"pgx5://u:p@db/inv":                            "pgx5://u:p@db/inv",
	}
	for in, want := range cases {
		assert.Equal(t, want, migrateURL(in), in)
	}
}

func TestErrores_ClasificacionPorCodigoSQLState(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	check := fmt.Errorf("update: %w", &pgconn.PgError{Code: "23514"})

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isUniqueViolation(check))
	assert.True(t, isCheckViolation(check))
	assert.False(t, isCheckViolation(errors.New("otro")))
	assert.True(t, isNoRows(fmt.Errorf("get: %w", pgx.ErrNoRows)))
}

func TestLimitArg_CeroEsSinLimite(t *testing.T) {
	assert.Nil(t, limitArg(0))
	assert.Nil(t, limitArg(-1))
	assert.Equal(t, 10, limitArg(10))
}
