package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/apperrors"
)

func getCallerEmail(c *gin.Context) string {
	v, ok := c.Get("email")
	if !ok {
		return ""
	}
	email, _ := v.(string)
	return email
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

// getPagination читает limit/offset из query; offset — номер страницы.
func getPagination(c *gin.Context) (limit, offset int, ok bool) {
	limit, offset = defaultLimit, 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer in [1,100]"})
			return 0, 0, false
		}
		limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
			return 0, 0, false
		}
		offset = n
	}
	return limit, offset, true
}

// respondError переводит вид ошибки ядра в HTTP-статус. Отсутствующая
// задача/пользователь — это 400 (битые входные данные), не 404.
func respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrDuplicateTitle),
		errors.Is(err, apperrors.ErrInvalidArgument):
		log.Printf("[%s][400] %v", op, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthenticated):
		log.Printf("[%s][401] %v", op, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		log.Printf("[%s][403] %v", op, err)
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.Printf("[%s][500] %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
