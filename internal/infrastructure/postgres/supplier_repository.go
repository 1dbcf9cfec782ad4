package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, name, contact_name, email, phone, tags, owner, created_at, updated_at`

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := row.Scan(&s.ID, &s.Name, &s.ContactName, &s.Email, &s.Phone, &s.Tags, &s.Owner,
		&s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("proveedor: listar: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("proveedor: scan: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "proveedor", id)
	}
	return s, nil
}

func (r *SupplierRepo) Create(ctx context.Context, in *entity.Supplier) (*entity.Supplier, error) {
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	s, err := scanSupplier(r.q.QueryRow(ctx, `
		INSERT INTO suppliers (id, name, contact_name, email, phone, tags, owner)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+supplierColumns,
		id, in.Name, in.ContactName, in.Email, in.Phone, in.Tags, in.Owner))
	if err != nil {
		return nil, fmt.Errorf("proveedor: crear: %w", err)
	}
	return s, nil
}

func (r *SupplierRepo) Update(ctx context.Context, in *entity.Supplier) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, `
		UPDATE suppliers SET name = $2, contact_name = $3, email = $4, phone = $5, tags = $6, owner = $7,
			updated_at = now()
		WHERE id = $1
		RETURNING `+supplierColumns,
		in.ID, in.Name, in.ContactName, in.Email, in.Phone, in.Tags, in.Owner))
	if err != nil {
		return nil, notFound(err, "proveedor", in.ID)
	}
	return s, nil
}

func (r *SupplierRepo) Delete(ctx context.Context, ids ...string) error {
	return deleteByIDs(ctx, r.q, "suppliers", "proveedor", ids)
}
