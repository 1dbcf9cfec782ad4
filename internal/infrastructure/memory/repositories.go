package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

var (
	_ repository.ProductRepository       = (*ProductRepository)(nil)
	_ repository.StockMovementRepository = (*MovementRepository)(nil)
	_ repository.SupplierRepository      = (*SupplierRepository)(nil)
	_ repository.CustomerRepository      = (*CustomerRepository)(nil)
	_ repository.UserRepository          = (*UserRepository)(nil)
)

// Store agrupa los repositorios en memoria que comparten la misma latencia.
type Store struct {
	Products  *ProductRepository
	Movements *MovementRepository
	Suppliers *SupplierRepository
	Customers *CustomerRepository
	Users     *UserRepository
}

// NewStore crea un almacén vacío.
func NewStore(latency time.Duration) *Store {
	return &Store{
		Products:  NewProductRepository(latency),
		Movements: NewMovementRepository(latency),
		Suppliers: NewSupplierRepository(latency),
		Customers: NewCustomerRepository(latency),
		Users:     NewUserRepository(latency),
	}
}

// ── Product ─────────────────────────────────────────────────────────────────

type ProductRepository struct{ c *collection[entity.Product] }

func NewProductRepository(latency time.Duration) *ProductRepository {
	return &ProductRepository{c: newCollection(latency, accessor[entity.Product]{
		label: "producto",
		id:    func(p *entity.Product) string { return p.ID },
		setID: func(p *entity.Product, id string) { p.ID = id },
		touch: func(p *entity.Product, now time.Time, created bool) {
			p.Normalize()
			if created && p.CreatedAt.IsZero() {
				p.CreatedAt = now
			}
			p.UpdatedAt = now
		},
	})}
}

func (r *ProductRepository) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	return r.c.list(ctx, func(p *entity.Product) bool {
		if f.Category != "" && p.Category != f.Category {
			return false
		}
		return !f.LowStockOnly || p.IsLowStock()
	})
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.c.get(ctx, id)
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	return r.c.create(ctx, p)
}

func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	return r.c.update(ctx, p)
}

func (r *ProductRepository) Delete(ctx context.Context, ids ...string) error {
	return r.c.delete(ctx, ids)
}

// ── StockMovement ───────────────────────────────────────────────────────────

type MovementRepository struct{ c *collection[entity.StockMovement] }

func NewMovementRepository(latency time.Duration) *MovementRepository {
	return &MovementRepository{c: newCollection(latency, accessor[entity.StockMovement]{
		label: "movimiento",
		id:    func(m *entity.StockMovement) string { return m.ID },
		setID: func(m *entity.StockMovement, id string) { m.ID = id },
		touch: func(m *entity.StockMovement, now time.Time, created bool) {
			if created && m.Timestamp.IsZero() {
				m.Timestamp = now
			}
		},
	})}
}

// List devuelve los movimientos más recientes primero.
func (r *MovementRepository) List(ctx context.Context, f repository.MovementFilter) ([]*entity.StockMovement, error) {
	out, err := r.c.list(ctx, func(m *entity.StockMovement) bool {
		if f.ProductID != "" && m.ProductID != f.ProductID {
			return false
		}
		if f.From != nil && m.Timestamp.Before(*f.From) {
			return false
		}
		if f.To != nil && m.Timestamp.After(*f.To) {
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *MovementRepository) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	return r.c.get(ctx, id)
}

func (r *MovementRepository) Create(ctx context.Context, m *entity.StockMovement) (*entity.StockMovement, error) {
	return r.c.create(ctx, m)
}

func (r *MovementRepository) Update(ctx context.Context, m *entity.StockMovement) (*entity.StockMovement, error) {
	return r.c.update(ctx, m)
}

func (r *MovementRepository) Delete(ctx context.Context, ids ...string) error {
	return r.c.delete(ctx, ids)
}

// ── Supplier / Customer / User ──────────────────────────────────────────────

type SupplierRepository struct{ c *collection[entity.Supplier] }

func NewSupplierRepository(latency time.Duration) *SupplierRepository {
	return &SupplierRepository{c: newCollection(latency, accessor[entity.Supplier]{
		label: "proveedor",
		id:    func(s *entity.Supplier) string { return s.ID },
		setID: func(s *entity.Supplier, id string) { s.ID = id },
		touch: func(s *entity.Supplier, now time.Time, created bool) {
			stamp(&s.CreatedAt, &s.UpdatedAt, now, created)
		},
	})}
}

func (r *SupplierRepository) List(ctx context.Context) ([]*entity.Supplier, error) {
	return r.c.list(ctx, nil)
}
func (r *SupplierRepository) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	return r.c.get(ctx, id)
}
func (r *SupplierRepository) Create(ctx context.Context, s *entity.Supplier) (*entity.Supplier, error) {
	return r.c.create(ctx, s)
}
func (r *SupplierRepository) Update(ctx context.Context, s *entity.Supplier) (*entity.Supplier, error) {
	return r.c.update(ctx, s)
}
func (r *SupplierRepository) Delete(ctx context.Context, ids ...string) error {
	return r.c.delete(ctx, ids)
}

type CustomerRepository struct{ c *collection[entity.Customer] }

func NewCustomerRepository(latency time.Duration) *CustomerRepository {
	return &CustomerRepository{c: newCollection(latency, accessor[entity.Customer]{
		label: "cliente",
		id:    func(c *entity.Customer) string { return c.ID },
		setID: func(c *entity.Customer, id string) { c.ID = id },
		touch: func(c *entity.Customer, now time.Time, created bool) {
			stamp(&c.CreatedAt, &c.UpdatedAt, now, created)
		},
	})}
}

func (r *CustomerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	return r.c.list(ctx, nil)
}
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	return r.c.get(ctx, id)
}
func (r *CustomerRepository) Create(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	return r.c.create(ctx, c)
}
func (r *CustomerRepository) Update(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	return r.c.update(ctx, c)
}
func (r *CustomerRepository) Delete(ctx context.Context, ids ...string) error {
	return r.c.delete(ctx, ids)
}

type UserRepository struct{ c *collection[entity.User] }

func NewUserRepository(latency time.Duration) *UserRepository {
	return &UserRepository{c: newCollection(latency, accessor[entity.User]{
		label: "usuario",
		id:    func(u *entity.User) string { return u.ID },
		setID: func(u *entity.User, id string) { u.ID = id },
		touch: func(u *entity.User, now time.Time, created bool) {
			stamp(&u.CreatedAt, &u.UpdatedAt, now, created)
		},
	})}
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	return r.c.list(ctx, nil)
}
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.c.get(ctx, id)
}
func (r *UserRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	return r.c.create(ctx, u)
}
func (r *UserRepository) Update(ctx context.Context, u *entity.User) (*entity.User, error) {
	return r.c.update(ctx, u)
}
func (r *UserRepository) Delete(ctx context.Context, ids ...string) error {
	return r.c.delete(ctx, ids)
}

func stamp(created, updated *time.Time, now time.Time, isNew bool) {
	if isNew && created.IsZero() {
		*created = now
	}
	*updated = now
}
