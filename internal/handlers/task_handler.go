package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/models"
	"tasktracker/internal/services"
)

// TaskHandler обслуживает пользовательские операции над задачами: смена
// статуса и комментарии гейтятся проверкой доступа в ядре, список "моих"
// задач строится по email вызывающего.
type TaskHandler struct {
	service services.TaskService
}

func NewTaskHandler(service services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// @Summary      Создать комментарий к задаче
// @Description  Доступно администратору или исполнителю задачи
// @Tags         User Tasks
// @Accept       json
// @Produce      json
// @Param        comment  body      models.CommentCreateRequest  true  "Комментарий"
// @Success      201    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /api/task/comment [post]
func (h *TaskHandler) CreateComment(c *gin.Context) {
	email := getCallerEmail(c)
	log.Printf("[task][comment] call by email=%q", email)

	var req models.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][comment][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.AddComment(c.Request.Context(), req, email); err != nil {
		respondError(c, "task.comment", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Comment created!"})
}

// @Summary      Сменить статус задачи
// @Description  Доступно администратору или исполнителю задачи
// @Tags         User Tasks
// @Produce      json
// @Param        title      path   string  true  "Заголовок задачи"
// @Param        newStatus  query  string  true  "Новый статус {PENDING, IN_PROGRESS, COMPLETED}"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /api/task/edit/{title}/status [patch]
func (h *TaskHandler) EditStatus(c *gin.Context) {
	email := getCallerEmail(c)
	title := c.Param("title")
	newStatus := models.TaskStatus(c.Query("newStatus"))
	log.Printf("[task][status] call by email=%q title=%q new=%q", email, title, newStatus)

	if !models.IsValidStatus(newStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "newStatus must be one of {PENDING, IN_PROGRESS, COMPLETED}"})
		return
	}

	if err := h.service.EditStatus(c.Request.Context(), title, newStatus, email); err != nil {
		respondError(c, "task.status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status has been changed!"})
}

// @Summary      Мои задачи
// @Description  Страница задач, где вызывающий — исполнитель
// @Tags         User Tasks
// @Produce      json
// @Param        limit   query  int  false  "Размер страницы (1..100)"  default(20)
// @Param        offset  query  int  false  "Номер страницы (с нуля)"   default(0)
// @Success      200    {array}   models.TaskResponse
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /api/task/show/myTasks [get]
func (h *TaskHandler) ShowMyTasks(c *gin.Context) {
	email := getCallerEmail(c)
	limit, offset, ok := getPagination(c)
	if !ok {
		return
	}
	log.Printf("[task][myTasks] call by email=%q limit=%d offset=%d", email, limit, offset)

	tasks, err := h.service.ListByExecutorEmail(c.Request.Context(), email, limit, offset)
	if err != nil {
		respondError(c, "task.myTasks", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}
