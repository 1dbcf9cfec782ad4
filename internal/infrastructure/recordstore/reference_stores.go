package recordstore

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

var (
	_ repository.SupplierRepository = (*SupplierStore)(nil)
	_ repository.CustomerRepository = (*CustomerStore)(nil)
	_ repository.UserRepository     = (*UserStore)(nil)
)

// ── Supplier ────────────────────────────────────────────────────────────────

// SupplierStore implementa SupplierRepository sobre la tabla supplier.
type SupplierStore struct {
	tableStore[entity.Supplier]
}

func NewSupplierStore(c *Client) *SupplierStore {
	return &SupplierStore{tableStore[entity.Supplier]{client: c, codec: codec[entity.Supplier]{
		spec:  SupplierTable,
		label: "proveedor",
		decode: func(r Record) (*entity.Supplier, error) {
			created, modified, err := auditTimes(r)
			if err != nil {
				return nil, err
			}
			return &entity.Supplier{
				ID:          asString(r["Id"]),
				Name:        asString(r["Name"]),
				ContactName: asString(r["contact_name"]),
				Email:       asString(r["email"]),
				Phone:       asString(r["phone"]),
				Tags:        asString(r["Tags"]),
				Owner:       asString(r["Owner"]),
				CreatedAt:   created,
				UpdatedAt:   modified,
			}, nil
		},
		encode: func(s *entity.Supplier) Record {
			return Record{
				"Name":         s.Name,
				"Tags":         s.Tags,
				"Owner":        IDValue(s.Owner),
				"contact_name": s.ContactName,
				"email":        s.Email,
				"phone":        s.Phone,
			}
		},
		id: func(s *entity.Supplier) string { return s.ID },
	}}}
}

func (s *SupplierStore) List(ctx context.Context) ([]*entity.Supplier, error) {
	return s.fetch(ctx, FetchParams{})
}

func (s *SupplierStore) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	return s.get(ctx, id)
}

func (s *SupplierStore) Create(ctx context.Context, e *entity.Supplier) (*entity.Supplier, error) {
	return s.create(ctx, e)
}

func (s *SupplierStore) Update(ctx context.Context, e *entity.Supplier) (*entity.Supplier, error) {
	return s.update(ctx, e)
}

func (s *SupplierStore) Delete(ctx context.Context, ids ...string) error {
	return s.delete(ctx, ids)
}

// ── Customer ────────────────────────────────────────────────────────────────

// CustomerStore implementa CustomerRepository sobre la tabla Customer.
type CustomerStore struct {
	tableStore[entity.Customer]
}

func NewCustomerStore(c *Client) *CustomerStore {
	return &CustomerStore{tableStore[entity.Customer]{client: c, codec: codec[entity.Customer]{
		spec:  CustomerTable,
		label: "cliente",
		decode: func(r Record) (*entity.Customer, error) {
			created, modified, err := auditTimes(r)
			if err != nil {
				return nil, err
			}
			return &entity.Customer{
				ID:        asString(r["Id"]),
				Name:      asString(r["Name"]),
				Tags:      asString(r["Tags"]),
				Owner:     asString(r["Owner"]),
				CreatedAt: created,
				UpdatedAt: modified,
			}, nil
		},
		encode: func(c *entity.Customer) Record {
			return Record{"Name": c.Name, "Tags": c.Tags, "Owner": IDValue(c.Owner)}
		},
		id: func(c *entity.Customer) string { return c.ID },
	}}}
}

func (s *CustomerStore) List(ctx context.Context) ([]*entity.Customer, error) {
	return s.fetch(ctx, FetchParams{})
}

func (s *CustomerStore) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	return s.get(ctx, id)
}

func (s *CustomerStore) Create(ctx context.Context, e *entity.Customer) (*entity.Customer, error) {
	return s.create(ctx, e)
}

func (s *CustomerStore) Update(ctx context.Context, e *entity.Customer) (*entity.Customer, error) {
	return s.update(ctx, e)
}

func (s *CustomerStore) Delete(ctx context.Context, ids ...string) error {
	return s.delete(ctx, ids)
}

// ── User ────────────────────────────────────────────────────────────────────

// UserStore implementa UserRepository sobre la tabla User.
type UserStore struct {
	tableStore[entity.User]
}

func NewUserStore(c *Client) *UserStore {
	return &UserStore{tableStore[entity.User]{client: c, codec: codec[entity.User]{
		spec:  UserTable,
		label: "usuario",
		decode: func(r Record) (*entity.User, error) {
			created, modified, err := auditTimes(r)
			if err != nil {
				return nil, err
			}
			return &entity.User{
				ID:        asString(r["Id"]),
				Name:      asString(r["Name"]),
				FirstName: asString(r["FirstName"]),
				LastName:  asString(r["LastName"]),
				AvatarURL: asString(r["AvatarUrl"]),
				ProfileID: asString(r["ProfileId"]),
				Tags:      asString(r["Tags"]),
				Owner:     asString(r["Owner"]),
				CreatedAt: created,
				UpdatedAt: modified,
			}, nil
		},
		encode: func(u *entity.User) Record {
			return Record{
				"Name":      u.Name,
				"Tags":      u.Tags,
				"Owner":     IDValue(u.Owner),
				"FirstName": u.FirstName,
				"LastName":  u.LastName,
				"AvatarUrl": u.AvatarURL,
				"ProfileId": u.ProfileID,
			}
		},
		id: func(u *entity.User) string { return u.ID },
	}}}
}

func (s *UserStore) List(ctx context.Context) ([]*entity.User, error) {
	return s.fetch(ctx, FetchParams{})
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return s.get(ctx, id)
}

func (s *UserStore) Create(ctx context.Context, e *entity.User) (*entity.User, error) {
	return s.create(ctx, e)
}

func (s *UserStore) Update(ctx context.Context, e *entity.User) (*entity.User, error) {
	return s.update(ctx, e)
}

func (s *UserStore) Delete(ctx context.Context, ids ...string) error {
	return s.delete(ctx, ids)
}

func auditTimes(r Record) (created, modified time.Time, err error) {
	if created, err = asTime("CreatedOn", r["CreatedOn"]); err != nil {
		return
	}
	modified, err = asTime("ModifiedOn", r["ModifiedOn"])
	return
}
