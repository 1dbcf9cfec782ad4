package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, sku, barcode, category, current_stock, reorder_point, unit_price, supplier_id, description, tags, owner, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Barcode, &p.Category, &p.CurrentStock, &p.ReorderPoint,
		&p.UnitPrice, &p.Supplier, &p.Description, &p.Tags, &p.Owner, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Normalize()
	return &p, nil
}

// List filtra por categoría y bajo stock en SQL.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	var (
		where []string
		args  []any
	)
	if f.Category != "" {
		args = append(args, f.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.LowStockOnly {
		where = append(where, "current_stock <= reorder_point")
	}
	query := `SELECT ` + productColumns + ` FROM products`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("producto: listar: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("producto: scan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "producto", id)
	}
	return p, nil
}

// Create persiste un nuevo producto; asigna id y marcas de tiempo si faltan.
func (r *ProductRepo) Create(ctx context.Context, in *entity.Product) (*entity.Product, error) {
	p := *in
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.Normalize()
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
		RETURNING ` + productColumns
	out, err := scanProduct(r.q.QueryRow(ctx, query,
		p.ID, p.Name, p.SKU, p.Barcode, p.Category, p.CurrentStock, p.ReorderPoint,
		p.UnitPrice, p.Supplier, p.Description, p.Tags, p.Owner,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("producto: sku %q: %w", p.SKU, domain.ErrDuplicate)
		}
		return nil, fmt.Errorf("producto: crear: %w", err)
	}
	return out, nil
}

// Update escribe la copia completa del producto (la última escritura gana).
func (r *ProductRepo) Update(ctx context.Context, in *entity.Product) (*entity.Product, error) {
	p := *in
	p.Normalize()
	query := `
		UPDATE products SET name = $2, sku = $3, barcode = $4, category = $5, current_stock = $6,
			reorder_point = $7, unit_price = $8, supplier_id = $9, description = $10, tags = $11, owner = $12,
			updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns
	out, err := scanProduct(r.q.QueryRow(ctx, query,
		p.ID, p.Name, p.SKU, p.Barcode, p.Category, p.CurrentStock, p.ReorderPoint,
		p.UnitPrice, p.Supplier, p.Description, p.Tags, p.Owner,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("producto: sku %q: %w", p.SKU, domain.ErrDuplicate)
		}
		return nil, notFound(err, "producto", p.ID)
	}
	return out, nil
}

// Delete elimina productos por ID. Los movimientos se conservan.
func (r *ProductRepo) Delete(ctx context.Context, ids ...string) error {
	return deleteByIDs(ctx, r.q, "products", "producto", ids)
}
