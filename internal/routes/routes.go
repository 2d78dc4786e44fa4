package routes

import (
	"github.com/gin-gonic/gin"

	"tasktracker/internal/authz"
	"tasktracker/internal/handlers"
	"tasktracker/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	adminTaskHandler *handlers.AdminTaskHandler,
) *gin.Engine {

	// ---- public
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)
	}

	// ---- protected
	r.Use(middleware.AuthMiddleware())

	// USER TASKS (проверка доступа к конкретной задаче — в ядре)
	task := r.Group("/api/task")
	{
		task.POST("/comment", taskHandler.CreateComment)
		task.PATCH("/edit/:title/status", taskHandler.EditStatus)
		task.GET("/show/myTasks", taskHandler.ShowMyTasks)
	}

	// ADMIN TASKS
	admin := r.Group("/api/task/admin", middleware.RequireRoles(authz.RoleAdmin))
	{
		admin.POST("/create", adminTaskHandler.Create)
		admin.GET("/showAll", adminTaskHandler.ShowAll)
		admin.DELETE("/delete/:title", adminTaskHandler.Delete)
		admin.PATCH("/edit/:title/priority", adminTaskHandler.EditPriority)
		admin.PATCH("/edit/:title/executor", adminTaskHandler.EditExecutor)
		admin.GET("/show/byTitle", adminTaskHandler.ShowByTitle)
		admin.GET("/show/byExecutor", adminTaskHandler.ShowByExecutor)
		admin.POST("/find", adminTaskHandler.Find)
		admin.GET("/export/:title", adminTaskHandler.ExportPDF)
	}

	return r
}
