package repositories

import (
	"context"
	"database/sql"
	"time"

	"tasktracker/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User, roleID int64) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// refresh helpers
	UpdateRefresh(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	RotateRefresh(ctx context.Context, oldToken, newToken string, newExpiresAt time.Time) (*models.User, error)
	GetByRefreshToken(ctx context.Context, token string) (*models.User, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

// Create вставляет пользователя и его стартовую роль одной транзакцией.
func (r *userRepository) Create(ctx context.Context, user *models.User, roleID int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const q = `
		INSERT INTO users (email, username, password_hash, refresh_token, refresh_expires_at, refresh_revoked)
		VALUES ($1, $2, $3, NULL, NULL, FALSE)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, q, user.Email, user.Username, user.PasswordHash).Scan(&user.ID); err != nil {
		return err
	}
	if roleID != 0 {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`, user.ID, roleID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getByKey(ctx, `WHERE email = $1`, email)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getByKey(ctx, `WHERE username = $1`, username)
}

func (r *userRepository) GetByRefreshToken(ctx context.Context, token string) (*models.User, error) {
	return r.getByKey(ctx, `WHERE refresh_token = $1`, token)
}

// getByKey возвращает (nil, nil), если пользователя нет — вид ошибки решает сервис.
func (r *userRepository) getByKey(ctx context.Context, where string, arg interface{}) (*models.User, error) {
	q := `
		SELECT id, email, username, password_hash,
		       refresh_token, refresh_expires_at, refresh_revoked
		FROM users ` + where
	u := &models.User{}
	var (
		rt  sql.NullString
		rte sql.NullTime
		rr  sql.NullBool
	)
	err := r.DB.QueryRowContext(ctx, q, arg).Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &rt, &rte, &rr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if rt.Valid {
		s := rt.String
		u.RefreshToken = &s
	}
	if rte.Valid {
		t := rte.Time
		u.RefreshExpiresAt = &t
	}
	if rr.Valid {
		u.RefreshRevoked = rr.Bool
	}
	if err := r.loadRoles(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) loadRoles(ctx context.Context, u *models.User) error {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.name
	`, u.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		u.Roles = append(u.Roles, name)
	}
	return rows.Err()
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	return exists, err
}

// ===== refresh helpers =====

func (r *userRepository) UpdateRefresh(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE users
		SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=FALSE
		WHERE id=$3
	`, token, expiresAt, userID)
	return err
}

func (r *userRepository) RotateRefresh(ctx context.Context, oldToken, newToken string, newExpiresAt time.Time) (*models.User, error) {
	const q = `
		UPDATE users
		SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=FALSE
		WHERE refresh_token=$3
		RETURNING id, email, username, password_hash
	`
	u := &models.User{}
	err := r.DB.QueryRowContext(ctx, q, newToken, newExpiresAt, oldToken).Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := r.loadRoles(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
