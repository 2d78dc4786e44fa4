package repositories

import (
	"context"
	"database/sql"
)

type RoleRepository interface {
	FindIDByName(ctx context.Context, name string) (int64, error)
}

type roleRepository struct {
	db *sql.DB
}

func NewRoleRepository(db *sql.DB) RoleRepository {
	return &roleRepository{db: db}
}

// FindIDByName возвращает 0 без ошибки, если роли нет.
func (r *roleRepository) FindIDByName(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM roles WHERE name = $1`, name).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return id, nil
}
