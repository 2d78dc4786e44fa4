package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/models"
	"tasktracker/internal/pdf"
	"tasktracker/internal/services"
)

// AdminTaskHandler обслуживает админские операции: create/delete, правки
// приоритета и исполнителя, выборки и гибкий поиск. Гейт по роли ADMIN
// стоит на маршрутах, в ядро эти операции приходят уже разрешёнными.
type AdminTaskHandler struct {
	service services.TaskService
	reports pdf.ReportGenerator // может быть nil
}

func NewAdminTaskHandler(service services.TaskService, reports pdf.ReportGenerator) *AdminTaskHandler {
	return &AdminTaskHandler{service: service, reports: reports}
}

// @Summary      Создать задачу
// @Tags         Admin Tasks
// @Accept       json
// @Produce      json
// @Param        task  body      models.CreateTaskRequest  true  "Задача"
// @Success      201    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /api/task/admin/create [post]
func (h *AdminTaskHandler) Create(c *gin.Context) {
	email := getCallerEmail(c)
	log.Printf("[task][create] call by email=%q", email)

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Create(c.Request.Context(), req, email); err != nil {
		respondError(c, "task.create", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Task created!"})
}

// @Summary      Все задачи
// @Tags         Admin Tasks
// @Produce      json
// @Param        limit   query  int  false  "Размер страницы (1..100)"  default(20)
// @Param        offset  query  int  false  "Номер страницы (с нуля)"   default(0)
// @Success      200    {array}   models.TaskResponse
// @Failure      400    {object}  map[string]string
// @Router       /api/task/admin/showAll [get]
func (h *AdminTaskHandler) ShowAll(c *gin.Context) {
	limit, offset, ok := getPagination(c)
	if !ok {
		return
	}
	tasks, err := h.service.ListAll(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, "task.showAll", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// @Summary      Удалить задачу
// @Tags         Admin Tasks
// @Produce      json
// @Param        title  path  string  true  "Заголовок задачи"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Router       /api/task/admin/delete/{title} [delete]
func (h *AdminTaskHandler) Delete(c *gin.Context) {
	title := c.Param("title")
	log.Printf("[task][delete] call title=%q", title)

	if err := h.service.Delete(c.Request.Context(), title); err != nil {
		respondError(c, "task.delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted!"})
}

// @Summary      Сменить приоритет
// @Tags         Admin Tasks
// @Produce      json
// @Param        title        path   string  true  "Заголовок задачи"
// @Param        newPriority  query  string  true  "Новый приоритет {LOW, MEDIUM, HIGH}"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Router       /api/task/admin/edit/{title}/priority [patch]
func (h *AdminTaskHandler) EditPriority(c *gin.Context) {
	title := c.Param("title")
	newPriority := models.TaskPriority(c.Query("newPriority"))
	log.Printf("[task][priority] call title=%q new=%q", title, newPriority)

	if !models.IsValidPriority(newPriority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "newPriority must be one of {LOW, MEDIUM, HIGH}"})
		return
	}

	if err := h.service.EditPriority(c.Request.Context(), title, newPriority); err != nil {
		respondError(c, "task.priority", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Priority has been changed!"})
}

// @Summary      Сменить исполнителя
// @Tags         Admin Tasks
// @Produce      json
// @Param        title        path   string  true  "Заголовок задачи"
// @Param        newExecutor  query  string  true  "Username нового исполнителя"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Router       /api/task/admin/edit/{title}/executor [patch]
func (h *AdminTaskHandler) EditExecutor(c *gin.Context) {
	title := c.Param("title")
	newExecutor := c.Query("newExecutor")
	log.Printf("[task][executor] call title=%q new=%q", title, newExecutor)

	if newExecutor == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "newExecutor is required"})
		return
	}

	if err := h.service.EditExecutor(c.Request.Context(), title, newExecutor); err != nil {
		respondError(c, "task.executor", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Executor has been changed!"})
}

// @Summary      Найти по заголовку
// @Tags         Admin Tasks
// @Produce      json
// @Param        title  query  string  true  "Заголовок задачи"
// @Success      200    {object}  models.TaskResponse
// @Failure      400    {object}  map[string]string
// @Router       /api/task/admin/show/byTitle [get]
func (h *AdminTaskHandler) ShowByTitle(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	task, err := h.service.GetByTitle(c.Request.Context(), title)
	if err != nil {
		respondError(c, "task.byTitle", err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// @Summary      Задачи исполнителя
// @Tags         Admin Tasks
// @Produce      json
// @Param        executor  query  string  true  "Username исполнителя"
// @Param        limit     query  int     false  "Размер страницы (1..100)"  default(20)
// @Param        offset    query  int     false  "Номер страницы (с нуля)"   default(0)
// @Success      200    {array}   models.TaskResponse
// @Failure      400    {object}  map[string]string
// @Router       /api/task/admin/show/byExecutor [get]
func (h *AdminTaskHandler) ShowByExecutor(c *gin.Context) {
	executor := c.Query("executor")
	if executor == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "executor is required"})
		return
	}
	limit, offset, ok := getPagination(c)
	if !ok {
		return
	}

	tasks, err := h.service.ListByExecutorUsername(c.Request.Context(), executor, limit, offset)
	if err != nil {
		respondError(c, "task.byExecutor", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// @Summary      Поиск по параметрам
// @Description  Гибкий поиск: каждый критерий опционален, всё соединяется по AND
// @Tags         Admin Tasks
// @Accept       json
// @Produce      json
// @Param        criteria  body   models.TaskCriteria  true  "Критерии"
// @Param        limit     query  int  false  "Размер страницы (1..100)"  default(20)
// @Param        offset    query  int  false  "Номер страницы (с нуля)"   default(0)
// @Success      200    {array}   models.TaskResponse
// @Failure      400    {object}  map[string]string
// @Router       /api/task/admin/find [post]
func (h *AdminTaskHandler) Find(c *gin.Context) {
	var criteria models.TaskCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		log.Printf("[task][find][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	limit, offset, ok := getPagination(c)
	if !ok {
		return
	}

	tasks, err := h.service.Search(c.Request.Context(), criteria, limit, offset)
	if err != nil {
		respondError(c, "task.find", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// @Summary      Экспорт карточки задачи в PDF
// @Tags         Admin Tasks
// @Produce      application/pdf
// @Param        title  path  string  true  "Заголовок задачи"
// @Success      200    {file}    file
// @Failure      400    {object}  map[string]string
// @Router       /api/task/admin/export/{title} [get]
func (h *AdminTaskHandler) ExportPDF(c *gin.Context) {
	if h.reports == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pdf export is not configured"})
		return
	}
	title := c.Param("title")

	task, err := h.service.GetByTitle(c.Request.Context(), title)
	if err != nil {
		respondError(c, "task.export", err)
		return
	}
	data, err := h.reports.TaskCard(task)
	if err != nil {
		log.Printf("[task][export][err] title=%q: %v", title, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render pdf"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="task.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
