package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"tasktracker/internal/models"
)

type TaskRepository interface {
	Store(ctx context.Context, task *models.Task) error
	FindByTitle(ctx context.Context, title string) (*models.Task, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	Delete(ctx context.Context, id int64) error

	UpdateStatus(ctx context.Context, id int64, to models.TaskStatus) error
	UpdatePriority(ctx context.Context, id int64, to models.TaskPriority) error
	UpdateExecutor(ctx context.Context, id int64, executorID int64) error

	FindByExecutor(ctx context.Context, executorID int64, limit, offset int) ([]models.Task, error)
	FindAll(ctx context.Context, limit, offset int) ([]models.Task, error)
	FindByCriteria(ctx context.Context, criteria models.TaskCriteria, limit, offset int) ([]models.Task, error)
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Базовый SELECT с юзернеймами автора и исполнителя. Алиасы согласованы
// с BuildTaskSpec.
const taskSelect = `
SELECT t.id, t.title, t.description, t.status, t.priority,
       t.author_id, t.executor_id, au.username, ex.username
FROM tasks t
JOIN users au ON au.id = t.author_id
JOIN users ex ON ex.id = t.executor_id`

func (r *taskRepository) Store(ctx context.Context, task *models.Task) error {
	const q = `
		INSERT INTO tasks (title, description, status, priority, author_id, executor_id)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id`
	return r.db.QueryRowContext(ctx, q,
		task.Title, task.Description, task.Status, task.Priority,
		task.AuthorID, task.ExecutorID,
	).Scan(&task.ID)
}

// FindByTitle возвращает (nil, nil), если задачи нет.
func (r *taskRepository) FindByTitle(ctx context.Context, title string) (*models.Task, error) {
	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, taskSelect+` WHERE t.title = $1`, title).Scan(
		&task.ID, &task.Title, &task.Description, &task.Status, &task.Priority,
		&task.AuthorID, &task.ExecutorID, &task.AuthorUsername, &task.ExecutorUsername,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM tasks WHERE title = $1)`, title).Scan(&exists)
	return exists, err
}

// Delete удаляет задачу вместе с её комментариями.
func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE task_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id int64, to models.TaskStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status=$1 WHERE id=$2`, to, id)
	return err
}

func (r *taskRepository) UpdatePriority(ctx context.Context, id int64, to models.TaskPriority) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET priority=$1 WHERE id=$2`, to, id)
	return err
}

func (r *taskRepository) UpdateExecutor(ctx context.Context, id int64, executorID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET executor_id=$1 WHERE id=$2`, executorID, id)
	return err
}

// appendPaging довешивает к запросу сортировку и страницу. offset — номер
// страницы (с нуля), смещение по строкам считается как offset*limit.
func appendPaging(q string, args []interface{}, limit, offset int) (string, []interface{}) {
	q += fmt.Sprintf(" ORDER BY t.id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	return q, append(args, limit, offset*limit)
}

// FindByExecutor — страница задач исполнителя; offset — номер страницы.
func (r *taskRepository) FindByExecutor(ctx context.Context, executorID int64, limit, offset int) ([]models.Task, error) {
	q, args := appendPaging(taskSelect+` WHERE t.executor_id = $1`, []interface{}{executorID}, limit, offset)
	return r.queryTasks(ctx, q, args...)
}

func (r *taskRepository) FindAll(ctx context.Context, limit, offset int) ([]models.Task, error) {
	q, args := appendPaging(taskSelect, nil, limit, offset)
	return r.queryTasks(ctx, q, args...)
}

func (r *taskRepository) FindByCriteria(ctx context.Context, criteria models.TaskCriteria, limit, offset int) ([]models.Task, error) {
	conditions, args := BuildTaskSpec(criteria)
	q, args := appendPaging(taskSelect+whereClause(conditions), args, limit, offset)
	return r.queryTasks(ctx, q, args...)
}

func (r *taskRepository) queryTasks(ctx context.Context, q string, args ...interface{}) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority,
			&t.AuthorID, &t.ExecutorID, &t.AuthorUsername, &t.ExecutorUsername,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
