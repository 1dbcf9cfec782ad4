package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, tags, owner, created_at, updated_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Tags, &c.Owner, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("cliente: listar: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("cliente: scan: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "cliente", id)
	}
	return c, nil
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, in *entity.Customer) (*entity.Customer, error) {
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	c, err := scanCustomer(r.q.QueryRow(ctx, `
		INSERT INTO customers (id, name, tags, owner) VALUES ($1, $2, $3, $4)
		RETURNING `+customerColumns, id, in.Name, in.Tags, in.Owner))
	if err != nil {
		return nil, fmt.Errorf("cliente: crear: %w", err)
	}
	return c, nil
}

func (r *CustomerRepo) Update(ctx context.Context, in *entity.Customer) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `
		UPDATE customers SET name = $2, tags = $3, owner = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+customerColumns, in.ID, in.Name, in.Tags, in.Owner))
	if err != nil {
		return nil, notFound(err, "cliente", in.ID)
	}
	return c, nil
}

func (r *CustomerRepo) Delete(ctx context.Context, ids ...string) error {
	return deleteByIDs(ctx, r.q, "customers", "cliente", ids)
}
