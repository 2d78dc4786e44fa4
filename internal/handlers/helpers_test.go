package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/apperrors"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found maps to 400", fmt.Errorf("%w: task %q not found", apperrors.ErrNotFound, "x"), http.StatusBadRequest},
		{"duplicate", apperrors.ErrDuplicateTitle, http.StatusBadRequest},
		{"invalid argument", apperrors.ErrInvalidArgument, http.StatusBadRequest},
		{"unauthenticated", apperrors.ErrUnauthenticated, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"unknown is 500", errors.New("pq: connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, "test", tc.err)
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			// внутренние ошибки не протекают в ответ
			if tc.wantStatus == http.StatusInternalServerError && strings.Contains(w.Body.String(), "connection refused") {
				t.Error("internal error details must not leak to the client")
			}
		})
	}
}

func TestGetPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name                  string
		query                 string
		wantLimit, wantOffset int
		wantOK                bool
	}{
		{"defaults", "", 20, 0, true},
		{"explicit", "limit=50&offset=2", 50, 2, true},
		{"limit bound", "limit=100", 100, 0, true},
		{"limit too big", "limit=101", 0, 0, false},
		{"limit zero", "limit=0", 0, 0, false},
		{"limit not a number", "limit=abc", 0, 0, false},
		{"negative offset", "offset=-1", 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/task/admin/showAll?"+tc.query, nil)

			limit, offset, ok := getPagination(c)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if !tc.wantOK {
				if w.Code != http.StatusBadRequest {
					t.Errorf("status = %d, want 400", w.Code)
				}
				return
			}
			if limit != tc.wantLimit || offset != tc.wantOffset {
				t.Errorf("limit/offset = %d/%d, want %d/%d", limit, offset, tc.wantLimit, tc.wantOffset)
			}
		})
	}
}
