package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func TestHandleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown user", util.ErrUserNotFound, http.StatusUnauthorized},
		{"email taken", util.ErrEmailRegistered, http.StatusConflict},
		{"permission denied", util.ErrPermissionDenied, http.StatusForbidden},
		{"quiz not found", util.ErrQuizNotFound, http.StatusNotFound},
		{"quiz not accessible", util.ErrQuizNotAccessible, http.StatusForbidden},
		{"quiz already taken", util.ErrQuizAlreadyTaken, http.StatusConflict},
		{"quiz closed", util.ErrQuizClosed, http.StatusConflict},
		{"question in use", util.ErrQuestionInUse, http.StatusBadRequest},
		{"no correct option", util.ErrNoCorrectOption, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			handleServiceError(c, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "page=3&limit=25", 3, 25},
		{"page below one", "page=0&limit=5", 1, 5},
		{"limit over cap", "page=2&limit=500", 2, 10},
		{"garbage", "page=abc&limit=xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			page, limit := pagination(c)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("pagination() = (%d, %d), want (%d, %d)",
					page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}
