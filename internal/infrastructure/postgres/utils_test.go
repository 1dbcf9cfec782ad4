package postgres

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
)

// fakeQuerier responde a count(*) con un valor fijo y registra los Exec.
type fakeQuerier struct {
	count int
	execs []string
}

type countRow struct{ n int }

func (r countRow) Scan(dest ...any) error {
	*(dest[0].(*int)) = r.n
	return nil
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return pgconn.NewCommandTag("DELETE 1"), nil
}

func (f *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("no usado")
}

func (f *fakeQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return countRow{n: f.count}
}

func TestDeleteByIDs_FaltaUno_NoBorra(t *testing.T) {
	q := &fakeQuerier{count: 1}
	err := deleteByIDs(context.Background(), q, "products", "producto", []string{"a", "b"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Empty(t, q.execs)
}

func TestDeleteByIDs_TodosExisten(t *testing.T) {
	q := &fakeQuerier{count: 2}
	err := deleteByIDs(context.Background(), q, "products", "producto", []string{"a", "b", "a"})
	require.NoError(t, err)
	require.Len(t, q.execs, 1)
	assert.Contains(t, q.execs[0], "DELETE FROM products")
}

func TestNotFound_TraduceErrNoRows(t *testing.T) {
	err := notFound(pgx.ErrNoRows, "producto", "x")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	other := notFound(errors.New("conexión cerrada"), "producto", "x")
	assert.False(t, errors.Is(other, domain.ErrNotFound))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
}

func TestMigraciones_Embebidas(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	raw, err := fs.ReadFile(migrationsFS, files[0])
	require.NoError(t, err)
	sql := string(raw)
	assert.True(t, strings.Contains(sql, "-- +goose Up"))
	assert.True(t, strings.Contains(sql, "-- +goose Down"))
	assert.Contains(t, sql, "CHECK (current_stock >= 0)")
}
