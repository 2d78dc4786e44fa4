package app

import (
	"database/sql"
	"fmt"
	"log"

	"tasktracker/internal/cache"
	"tasktracker/internal/config"
	"tasktracker/internal/handlers"
	"tasktracker/internal/middleware"
	"tasktracker/internal/pdf"
	"tasktracker/internal/repositories"
	"tasktracker/internal/routes"
	"tasktracker/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "tasktracker/docs"
)

func Run() {
	cfg := config.LoadConfig()
	middleware.SetJWTKey(cfg.JWT.Secret)

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Ошибка подключения к БД: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка закрытия БД: %v", err)
		}
	}()

	// === Repos ===
	roleRepo := repositories.NewRoleRepository(db)
	userRepo := repositories.NewUserRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// === Services ===
	authService := services.NewAuthService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	userService := services.NewUserService(userRepo, roleRepo, authService, emailService)

	// Telegram-уведомления опциональны: без токена просто не шлём
	var tg *services.TelegramService
	if cfg.Telegram.Enabled && cfg.Telegram.BotToken != "" {
		tg, err = services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			log.Printf("Telegram отключён: %v", err)
			tg = nil
		}
	}

	taskCache := cache.NewTaskCache()
	taskService := services.NewTaskService(taskRepo, userRepo, commentRepo, taskCache, tg)

	reportGen := pdf.NewTaskReportGenerator("")

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	taskHandler := handlers.NewTaskHandler(taskService)
	adminTaskHandler := handlers.NewAdminTaskHandler(taskService, reportGen)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Роуты (JWT/RBAC — внутри SetupRoutes)
	routes.SetupRoutes(router, authHandler, taskHandler, adminTaskHandler)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Сервер запущен на %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Ошибка запуска сервера: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
