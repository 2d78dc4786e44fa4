package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/api/task/show/myTasks", func(c *gin.Context) {
		email, _ := c.Get("email")
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	r.POST("/api/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	r.GET("/api/task/admin/showAll", RequireRoles("ADMIN"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func signToken(t *testing.T, key string, roles []string, expiresIn time.Duration) string {
	t.Helper()
	claims := &Claims{
		UserID: 1,
		Email:  "admin@mail.ru",
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(key))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestAuthMiddleware(t *testing.T) {
	SetJWTKey("test-secret")
	r := newRouter()

	cases := []struct {
		name       string
		path       string
		method     string
		authHeader string
		wantStatus int
	}{
		{"public path without token", "/api/auth/login", http.MethodPost, "", http.StatusOK},
		{"missing header", "/api/task/show/myTasks", http.MethodGet, "", http.StatusUnauthorized},
		{"malformed header", "/api/task/show/myTasks", http.MethodGet, "Token abc", http.StatusUnauthorized},
		{"garbage token", "/api/task/show/myTasks", http.MethodGet, "Bearer not-a-jwt", http.StatusUnauthorized},
		{"valid token", "/api/task/show/myTasks", http.MethodGet, "Bearer " + signToken(t, "test-secret", []string{"USER"}, time.Hour), http.StatusOK},
		{"wrong key", "/api/task/show/myTasks", http.MethodGet, "Bearer " + signToken(t, "other-secret", []string{"USER"}, time.Hour), http.StatusUnauthorized},
		{"expired beyond leeway", "/api/task/show/myTasks", http.MethodGet, "Bearer " + signToken(t, "test-secret", []string{"USER"}, -time.Hour), http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	SetJWTKey("test-secret")
	r := newRouter()

	cases := []struct {
		name       string
		roles      []string
		wantStatus int
	}{
		{"admin allowed", []string{"ADMIN"}, http.StatusOK},
		{"admin among others", []string{"USER", "ADMIN"}, http.StatusOK},
		{"user forbidden", []string{"USER"}, http.StatusForbidden},
		{"no roles forbidden", nil, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/task/admin/showAll", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", tc.roles, time.Hour))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}
