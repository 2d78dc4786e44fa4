// internal/services/task_service.go
package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"

	"tasktracker/internal/apperrors"
	"tasktracker/internal/authz"
	"tasktracker/internal/cache"
	"tasktracker/internal/models"
	"tasktracker/internal/repositories"
)

// TaskService defines the interface for task-related business logic.
// Заголовок задачи — естественный ключ: все операции ищут по title.
type TaskService interface {
	Create(ctx context.Context, req models.CreateTaskRequest, authorEmail string) error
	Delete(ctx context.Context, title string) error
	EditStatus(ctx context.Context, title string, newStatus models.TaskStatus, callerEmail string) error
	EditPriority(ctx context.Context, title string, newPriority models.TaskPriority) error
	EditExecutor(ctx context.Context, title, newExecutor string) error
	AddComment(ctx context.Context, req models.CommentCreateRequest, callerEmail string) error

	GetByTitle(ctx context.Context, title string) (*models.TaskResponse, error)
	ListByExecutorUsername(ctx context.Context, username string, limit, offset int) ([]models.TaskResponse, error)
	ListByExecutorEmail(ctx context.Context, email string, limit, offset int) ([]models.TaskResponse, error)
	ListAll(ctx context.Context, limit, offset int) ([]models.TaskResponse, error)
	Search(ctx context.Context, criteria models.TaskCriteria, limit, offset int) ([]models.TaskResponse, error)
}

type taskService struct {
	tasks    repositories.TaskRepository
	users    repositories.UserRepository
	comments repositories.CommentRepository
	cache    *cache.TaskCache
	tg       *TelegramService // может быть nil
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(
	tasks repositories.TaskRepository,
	users repositories.UserRepository,
	comments repositories.CommentRepository,
	taskCache *cache.TaskCache,
	tg *TelegramService,
) TaskService {
	return &taskService{
		tasks:    tasks,
		users:    users,
		comments: comments,
		cache:    taskCache,
		tg:       tg,
	}
}

func (s *taskService) Create(ctx context.Context, req models.CreateTaskRequest, authorEmail string) error {
	status := models.TaskStatus(req.Status)
	priority := models.TaskPriority(req.Priority)
	if !models.IsValidStatus(status) {
		return fmt.Errorf("%w: status %q", apperrors.ErrInvalidArgument, req.Status)
	}
	if !models.IsValidPriority(priority) {
		return fmt.Errorf("%w: priority %q", apperrors.ErrInvalidArgument, req.Priority)
	}

	exists, err := s.tasks.ExistsByTitle(ctx, req.Title)
	if err != nil {
		return err
	}
	if exists {
		log.Printf("[task][create][err] title=%q already exists", req.Title)
		return fmt.Errorf("%w: task %q", apperrors.ErrDuplicateTitle, req.Title)
	}

	executor, err := s.findUserByUsername(ctx, req.Executor)
	if err != nil {
		return err
	}
	author, err := s.findUserByEmail(ctx, authorEmail)
	if err != nil {
		return err
	}

	task := &models.Task{
		Title:            req.Title,
		Description:      req.Description,
		Status:           status,
		Priority:         priority,
		AuthorID:         author.ID,
		ExecutorID:       executor.ID,
		AuthorUsername:   author.Username,
		ExecutorUsername: executor.Username,
	}
	if err := s.tasks.Store(ctx, task); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return fmt.Errorf("%w: task %q", apperrors.ErrDuplicateTitle, req.Title)
		}
		return err
	}

	log.Printf("[task][create][ok] id=%d title=%q executor=%q", task.ID, task.Title, executor.Username)
	if s.tg != nil {
		s.tg.NotifyTaskCreated(task)
	}
	return nil
}

func (s *taskService) Delete(ctx context.Context, title string) error {
	task, err := s.findTaskByTitle(ctx, title)
	if err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, task.ID); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Evict(title)
	}
	log.Printf("[task][delete][ok] title=%q", title)
	return nil
}

func (s *taskService) EditStatus(ctx context.Context, title string, newStatus models.TaskStatus, callerEmail string) error {
	if !models.IsValidStatus(newStatus) {
		return fmt.Errorf("%w: status %q", apperrors.ErrInvalidArgument, newStatus)
	}
	task, err := s.taskIfCallerHasPermission(ctx, title, callerEmail)
	if err != nil {
		return err
	}
	if err := s.tasks.UpdateStatus(ctx, task.ID, newStatus); err != nil {
		return err
	}
	s.refreshCache(ctx, title)
	log.Printf("[task][status][ok] title=%q new=%q by=%q", title, newStatus, callerEmail)
	return nil
}

func (s *taskService) EditPriority(ctx context.Context, title string, newPriority models.TaskPriority) error {
	if !models.IsValidPriority(newPriority) {
		return fmt.Errorf("%w: priority %q", apperrors.ErrInvalidArgument, newPriority)
	}
	task, err := s.findTaskByTitle(ctx, title)
	if err != nil {
		return err
	}
	if err := s.tasks.UpdatePriority(ctx, task.ID, newPriority); err != nil {
		return err
	}
	s.refreshCache(ctx, title)
	log.Printf("[task][priority][ok] title=%q new=%q", title, newPriority)
	return nil
}

func (s *taskService) EditExecutor(ctx context.Context, title, newExecutor string) error {
	task, err := s.findTaskByTitle(ctx, title)
	if err != nil {
		return err
	}
	executor, err := s.findUserByUsername(ctx, newExecutor)
	if err != nil {
		return err
	}
	if err := s.tasks.UpdateExecutor(ctx, task.ID, executor.ID); err != nil {
		return err
	}
	s.refreshCache(ctx, title)
	log.Printf("[task][executor][ok] title=%q new=%q", title, newExecutor)

	if s.tg != nil {
		task.ExecutorID = executor.ID
		task.ExecutorUsername = executor.Username
		s.tg.NotifyExecutorChanged(task)
	}
	return nil
}

func (s *taskService) AddComment(ctx context.Context, req models.CommentCreateRequest, callerEmail string) error {
	task, err := s.taskIfCallerHasPermission(ctx, req.TaskTitle, callerEmail)
	if err != nil {
		return err
	}
	caller, err := s.findUserByEmail(ctx, callerEmail)
	if err != nil {
		return err
	}

	// дата комментария — день вставки, без времени
	now := time.Now()
	comment := &models.Comment{
		TaskID:   task.ID,
		AuthorID: caller.ID,
		Date:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Text:     req.Text,
	}
	if err := s.comments.Store(ctx, comment); err != nil {
		return err
	}
	s.refreshCache(ctx, req.TaskTitle)
	log.Printf("[task][comment][ok] title=%q by=%q", req.TaskTitle, callerEmail)
	return nil
}

func (s *taskService) GetByTitle(ctx context.Context, title string) (*models.TaskResponse, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(title); ok {
			return cached, nil
		}
	}
	task, err := s.findTaskByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	resp, err := s.toResponse(ctx, task)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(title, resp)
	}
	return resp, nil
}

func (s *taskService) ListByExecutorUsername(ctx context.Context, username string, limit, offset int) ([]models.TaskResponse, error) {
	executor, err := s.findUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.listByExecutor(ctx, executor, limit, offset)
}

func (s *taskService) ListByExecutorEmail(ctx context.Context, email string, limit, offset int) ([]models.TaskResponse, error) {
	executor, err := s.findUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.listByExecutor(ctx, executor, limit, offset)
}

func (s *taskService) listByExecutor(ctx context.Context, executor *models.User, limit, offset int) ([]models.TaskResponse, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}
	tasks, err := s.tasks.FindByExecutor(ctx, executor.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.toResponseList(ctx, tasks)
}

func (s *taskService) ListAll(ctx context.Context, limit, offset int) ([]models.TaskResponse, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}
	tasks, err := s.tasks.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.toResponseList(ctx, tasks)
}

func (s *taskService) Search(ctx context.Context, criteria models.TaskCriteria, limit, offset int) ([]models.TaskResponse, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}
	tasks, err := s.tasks.FindByCriteria(ctx, criteria, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.toResponseList(ctx, tasks)
}

// ---- helpers ----

// validatePage: offset — номер страницы (с нуля), limit — её размер.
func validatePage(limit, offset int) error {
	if limit < 1 || limit > 100 {
		return fmt.Errorf("%w: limit %d out of range [1,100]", apperrors.ErrInvalidArgument, limit)
	}
	if offset < 0 {
		return fmt.Errorf("%w: offset %d must be >= 0", apperrors.ErrInvalidArgument, offset)
	}
	return nil
}

// validateCriteria отбрасывает только битые значения enum; противоречивые
// комбинации критериев допустимы и дают пустую страницу.
func validateCriteria(criteria models.TaskCriteria) error {
	if criteria.Status != nil && !models.IsValidStatus(*criteria.Status) {
		return fmt.Errorf("%w: status %q", apperrors.ErrInvalidArgument, *criteria.Status)
	}
	if criteria.NonStatus != nil && !models.IsValidStatus(*criteria.NonStatus) {
		return fmt.Errorf("%w: nonStatus %q", apperrors.ErrInvalidArgument, *criteria.NonStatus)
	}
	if criteria.Priority != nil && !models.IsValidPriority(*criteria.Priority) {
		return fmt.Errorf("%w: priority %q", apperrors.ErrInvalidArgument, *criteria.Priority)
	}
	if criteria.NonPriority != nil && !models.IsValidPriority(*criteria.NonPriority) {
		return fmt.Errorf("%w: nonPriority %q", apperrors.ErrInvalidArgument, *criteria.NonPriority)
	}
	return nil
}

// taskIfCallerHasPermission отдаёт задачу, если вызывающий админ или её
// исполнитель. Гейтит только смену статуса и комментарии.
func (s *taskService) taskIfCallerHasPermission(ctx context.Context, title, email string) (*models.Task, error) {
	caller, err := s.findUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	task, err := s.findTaskByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if !authz.CanModifyTask(caller, task) {
		log.Printf("[task][deny] user=%q has no permission to modify task=%q", email, title)
		return nil, fmt.Errorf("%w: you do not have permission to change task", apperrors.ErrPermissionDenied)
	}
	return task, nil
}

func (s *taskService) findUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// личность вызывающего не разрешилась — это сбой аутентификации
		log.Printf("[task][err] caller email=%q not found", email)
		return nil, fmt.Errorf("%w: user with email %q not found", apperrors.ErrUnauthenticated, email)
	}
	return user, nil
}

func (s *taskService) findUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user with username %q not found", apperrors.ErrNotFound, username)
	}
	return user, nil
}

func (s *taskService) findTaskByTitle(ctx context.Context, title string) (*models.Task, error) {
	task, err := s.tasks.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("%w: task with title %q not found", apperrors.ErrNotFound, title)
	}
	return task, nil
}

func (s *taskService) toResponse(ctx context.Context, task *models.Task) (*models.TaskResponse, error) {
	comments, err := s.comments.ListByTask(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	resp := &models.TaskResponse{
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		Author:      task.AuthorUsername,
		Executor:    task.ExecutorUsername,
		Comments:    make([]models.CommentResponse, 0, len(comments)),
	}
	for _, c := range comments {
		resp.Comments = append(resp.Comments, models.CommentResponse{
			Author: c.AuthorUsername,
			Date:   c.Date.Format("2006-01-02"),
			Text:   c.Text,
		})
	}
	return resp, nil
}

func (s *taskService) toResponseList(ctx context.Context, tasks []models.Task) ([]models.TaskResponse, error) {
	out := make([]models.TaskResponse, 0, len(tasks))
	for i := range tasks {
		resp, err := s.toResponse(ctx, &tasks[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// refreshCache перезаписывает кэш свежей проекцией; чтение после записи не
// должно видеть устаревшее значение.
func (s *taskService) refreshCache(ctx context.Context, title string) {
	if s.cache == nil {
		return
	}
	task, err := s.tasks.FindByTitle(ctx, title)
	if err != nil || task == nil {
		s.cache.Evict(title)
		return
	}
	resp, err := s.toResponse(ctx, task)
	if err != nil {
		s.cache.Evict(title)
		return
	}
	s.cache.Set(title, resp)
}
