package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, first_name, last_name, avatar_url, profile_id, tags, owner, created_at, updated_at`

// UserRepo implementación de UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Name, &u.FirstName, &u.LastName, &u.AvatarURL, &u.ProfileID,
		&u.Tags, &u.Owner, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("usuario: listar: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("usuario: scan: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "usuario", id)
	}
	return u, nil
}

func (r *UserRepo) Create(ctx context.Context, in *entity.User) (*entity.User, error) {
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	u, err := scanUser(r.q.QueryRow(ctx, `
		INSERT INTO users (id, name, first_name, last_name, avatar_url, profile_id, tags, owner)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+userColumns,
		id, in.Name, in.FirstName, in.LastName, in.AvatarURL, in.ProfileID, in.Tags, in.Owner))
	if err != nil {
		return nil, fmt.Errorf("usuario: crear: %w", err)
	}
	return u, nil
}

func (r *UserRepo) Update(ctx context.Context, in *entity.User) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `
		UPDATE users SET name = $2, first_name = $3, last_name = $4, avatar_url = $5, profile_id = $6,
			tags = $7, owner = $8, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns,
		in.ID, in.Name, in.FirstName, in.LastName, in.AvatarURL, in.ProfileID, in.Tags, in.Owner))
	if err != nil {
		return nil, notFound(err, "usuario", in.ID)
	}
	return u, nil
}

func (r *UserRepo) Delete(ctx context.Context, ids ...string) error {
	return deleteByIDs(ctx, r.q, "users", "usuario", ids)
}
