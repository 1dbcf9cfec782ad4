package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
)

// Querier lo cumplen *pgxpool.Pool, *pgx.Conn y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// notFound traduce pgx.ErrNoRows al sentinel de dominio.
func notFound(err error, label, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", label, id, domain.ErrNotFound)
	}
	return fmt.Errorf("%s %s: %w", label, id, err)
}

// deleteByIDs borra todos los ids o ninguno; si falta alguno devuelve ErrNotFound.
func deleteByIDs(ctx context.Context, q Querier, table, label string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	uniq := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		uniq[id] = struct{}{}
	}
	var found int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM `+table+` WHERE id = ANY($1)`, ids).Scan(&found); err != nil {
		return fmt.Errorf("%s: contar: %w", label, err)
	}
	if found != len(uniq) {
		return fmt.Errorf("%s: %d de %d ids: %w", label, len(uniq)-found, len(uniq), domain.ErrNotFound)
	}
	if _, err := q.Exec(ctx, `DELETE FROM `+table+` WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("%s: eliminar: %w", label, err)
	}
	return nil
}
