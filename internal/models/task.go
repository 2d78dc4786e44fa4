// internal/models/task.go
package models

// TaskStatus defines the possible statuses for a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

// IsValidStatus reports whether s is a member of the status enum.
func IsValidStatus(s TaskStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

func IsValidPriority(p TaskPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents the structure of a task in the system.
// AuthorUsername/ExecutorUsername приходят из JOIN на users; комментарии
// подгружаются отдельно репозиторием комментариев.
type Task struct {
	ID               int64        `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Status           TaskStatus   `json:"status"`
	Priority         TaskPriority `json:"priority"`
	AuthorID         int64        `json:"author_id"`
	ExecutorID       int64        `json:"executor_id"`
	AuthorUsername   string       `json:"author"`
	ExecutorUsername string       `json:"executor"`
}

// TaskCriteria defines the available parameters for the flexible task search.
// Каждое поле опционально: nil — измерение не фильтруется. Всё объединяется по AND.
type TaskCriteria struct {
	Status               *TaskStatus   `json:"status"`
	NonStatus            *TaskStatus   `json:"nonStatus"`
	Priority             *TaskPriority `json:"priority"`
	NonPriority          *TaskPriority `json:"nonPriority"`
	Author               *string       `json:"author"`
	Executor             *string       `json:"executor"`
	CountCommentsLess    *int          `json:"countCommentsLess"`
	CountCommentsGreater *int          `json:"countCommentsGreater"`
	CountCommentsEqual   *int          `json:"countCommentsEqual"`
}

// CreateTaskRequest — тело POST /api/task/admin/create.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required,max=255"`
	Status      string `json:"status" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
	Executor    string `json:"executor" binding:"required,max=30"`
}

// CommentCreateRequest — тело POST /api/task/comment.
type CommentCreateRequest struct {
	TaskTitle string `json:"taskTitle" binding:"required,max=255"`
	Text      string `json:"text" binding:"required,max=255"`
}

// TaskResponse is the projection returned by all read operations.
type TaskResponse struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      TaskStatus        `json:"status"`
	Priority    TaskPriority      `json:"priority"`
	Author      string            `json:"author"`
	Executor    string            `json:"executor"`
	Comments    []CommentResponse `json:"comments"`
}
