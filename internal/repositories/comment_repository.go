package repositories

import (
	"context"
	"database/sql"

	"tasktracker/internal/models"
)

type CommentRepository interface {
	Store(ctx context.Context, comment *models.Comment) error
	ListByTask(ctx context.Context, taskID int64) ([]models.Comment, error)
}

type commentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Store(ctx context.Context, comment *models.Comment) error {
	const q = `
		INSERT INTO comments (task_id, author_id, date, text)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	return r.db.QueryRowContext(ctx, q,
		comment.TaskID, comment.AuthorID, comment.Date, comment.Text,
	).Scan(&comment.ID)
}

// ListByTask возвращает комментарии в порядке добавления.
func (r *commentRepository) ListByTask(ctx context.Context, taskID int64) ([]models.Comment, error) {
	const q = `
		SELECT c.id, c.task_id, c.author_id, u.username, c.date, c.text
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.task_id = $1
		ORDER BY c.id`
	rows, err := r.db.QueryContext(ctx, q, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.AuthorUsername, &c.Date, &c.Text); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
