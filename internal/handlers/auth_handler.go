package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/models"
	"tasktracker/internal/services"
	"tasktracker/internal/utils"
)

type AuthHandler struct {
	userService services.UserService
	authService services.AuthService
	accessTTL   time.Duration
	refreshTTL  time.Duration
}

func NewAuthHandler(userService services.UserService, authService services.AuthService, accessTTL, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
	}
}

// @Summary      Регистрация
// @Description  Создаёт пользователя с ролью USER
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        register  body      models.RegisterRequest  true  "Данные для регистрации"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][register][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.userService.Register(c.Request.Context(), req); err != nil {
		respondError(c, "auth.register", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User registered success!"})
}

// @Summary      Вход в систему
// @Description  Аутентифицирует пользователя и возвращает токены доступа
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Данные для входа"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][login] bad request: bind json failed: err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	email := strings.TrimSpace(req.Email)
	log.Printf("[auth][login] attempt email=%q", email)

	user, err := h.userService.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		log.Printf("[auth][login] lookup failed email=%q: err=%v", email, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if user == nil {
		log.Printf("[auth][login] user not found email=%q", email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := h.authService.CheckPassword(user.PasswordHash, strings.TrimSpace(req.Password)); err != nil {
		log.Printf("[auth][login] password mismatch userID=%d email=%q", user.ID, email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	accessToken, err := h.authService.GenerateAccessToken(user, h.accessTTL)
	if err != nil {
		log.Printf("[auth][login] sign access token failed userID=%d: err=%v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate access token"})
		return
	}

	// Refresh (opaque) -> хранится в БД
	rt, err := utils.NewRefreshToken()
	if err != nil {
		log.Printf("[auth][login] new refresh token failed userID=%d: err=%v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate refresh token"})
		return
	}
	rtExp := time.Now().Add(h.refreshTTL)
	if err := h.userService.UpdateRefresh(c.Request.Context(), user.ID, rt, rtExp); err != nil {
		log.Printf("[auth][login] store refresh token failed userID=%d: err=%v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token"})
		return
	}

	log.Printf("[auth][login] success userID=%d roles=%v took=%s", user.ID, user.Roles, time.Since(start).Truncate(time.Millisecond))

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user, // PasswordHash помечен json:"-", наружу не уйдёт
		"tokens": gin.H{
			"access_token":  accessToken,
			"refresh_token": rt, // значение отдаём клиенту, но не логируем
		},
	})
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	old := strings.TrimSpace(req.RefreshToken)
	user, err := h.userService.GetByRefreshToken(c.Request.Context(), old)
	if err != nil || user == nil || user.RefreshToken == nil || user.RefreshExpiresAt == nil || user.RefreshRevoked {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}
	if time.Now().After(*user.RefreshExpiresAt) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token expired"})
		return
	}

	// rotate refresh
	newRT, err := utils.NewRefreshToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rotate refresh token"})
		return
	}
	newExp := time.Now().Add(h.refreshTTL)
	rotatedUser, err := h.userService.RotateRefresh(c.Request.Context(), old, newRT, newExp)
	if err != nil || rotatedUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	accessToken, err := h.authService.GenerateAccessToken(rotatedUser, h.accessTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": newRT, // возвращаем новый (ротация)
	})
}
