package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, product_id, type, quantity, reason, notes, "timestamp", user_id, name, tags, owner`

// StockMovementRepo implementación del puerto StockMovementRepository sobre PostgreSQL.
type StockMovementRepo struct {
	q Querier
}

func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	if err := row.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Reason, &m.Notes,
		&m.Timestamp, &m.UserID, &m.Name, &m.Tags, &m.Owner); err != nil {
		return nil, err
	}
	return &m, nil
}

// List movimientos por producto y rango de fechas, más recientes primero.
func (r *StockMovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.StockMovement, error) {
	var (
		where []string
		args  []any
	)
	if f.ProductID != "" {
		args = append(args, f.ProductID)
		where = append(where, fmt.Sprintf("product_id = $%d", len(args)))
	}
	if f.From != nil {
		args = append(args, *f.From)
		where = append(where, fmt.Sprintf(`"timestamp" >= $%d`, len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		where = append(where, fmt.Sprintf(`"timestamp" <= $%d`, len(args)))
	}
	query := `SELECT ` + movementColumns + ` FROM stock_movements`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY "timestamp" DESC, id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("movimiento: listar: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("movimiento: scan: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *StockMovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, `SELECT `+movementColumns+` FROM stock_movements WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "movimiento", id)
	}
	return m, nil
}

func (r *StockMovementRepo) Create(ctx context.Context, in *entity.StockMovement) (*entity.StockMovement, error) {
	m := *in
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, now()), $8, $9, $10, $11)
		RETURNING ` + movementColumns
	var ts any
	if !m.Timestamp.IsZero() {
		ts = m.Timestamp
	}
	out, err := scanMovement(r.q.QueryRow(ctx, query,
		m.ID, m.ProductID, m.Type, m.Quantity, m.Reason, m.Notes, ts, m.UserID, m.Name, m.Tags, m.Owner,
	))
	if err != nil {
		return nil, fmt.Errorf("movimiento: crear: %w", err)
	}
	return out, nil
}

// Update corrección administrativa de un movimiento.
func (r *StockMovementRepo) Update(ctx context.Context, m *entity.StockMovement) (*entity.StockMovement, error) {
	query := `
		UPDATE stock_movements SET product_id = $2, type = $3, quantity = $4, reason = $5, notes = $6,
			"timestamp" = $7, user_id = $8, name = $9, tags = $10, owner = $11
		WHERE id = $1
		RETURNING ` + movementColumns
	out, err := scanMovement(r.q.QueryRow(ctx, query,
		m.ID, m.ProductID, m.Type, m.Quantity, m.Reason, m.Notes, m.Timestamp, m.UserID, m.Name, m.Tags, m.Owner,
	))
	if err != nil {
		return nil, notFound(err, "movimiento", m.ID)
	}
	return out, nil
}

func (r *StockMovementRepo) Delete(ctx context.Context, ids ...string) error {
	return deleteByIDs(ctx, r.q, "stock_movements", "movimiento", ids)
}
