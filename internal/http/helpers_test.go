package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AFCVentura/Bookstore/internal/database"
	"github.com/AFCVentura/Bookstore/internal/format"
)

func TestWantsJSON(t *testing.T) {
	tests := []struct {
		name        string
		accept      string
		contentType string
		want        bool
	}{
		{"json accept", "application/json", "", true},
		{"browser accept", "text/html,application/xhtml+xml,application/json;q=0.9", "", false},
		{"no headers", "", "", false},
		{"json body", "", "application/json", true},
		{"form body", "*/*", "application/x-www-form-urlencoded", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.accept != "" {
				c.Request.Header.Set("Accept", tt.accept)
			}
			if tt.contentType != "" {
				c.Request.Header.Set("Content-Type", tt.contentType)
			}

			assert.Equal(t, tt.want, wantsJSON(c))
		})
	}
}

func TestParseIDParam(t *testing.T) {
	tests := []struct {
		value  string
		wantID uint
		wantOK bool
	}{
		{"123", 123, true},
		{"abc", 0, false},
		{"-1", 0, false},
		{"0", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.Header.Set("Accept", "application/json")
			c.Params = gin.Params{{Key: "id", Value: tt.value}}

			id, ok := responder{}.parseIDParam(c, "id")

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
			if !ok {
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Contains(t, w.Body.String(), msgInvalidID)
			}
		})
	}
}

func TestRepositoryError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"not found", database.NotFound("genre", 1), http.StatusNotFound, CodeNotFound},
		{"integrity", &database.IntegrityError{Message: "FOREIGN KEY constraint failed"}, http.StatusConflict, "still referenced"},
		{"concurrency", &database.ConcurrencyError{Message: "stale"}, http.StatusConflict, CodeConcurrencyConflict},
		{"other", errors.New("disk I/O error"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
			c.Request.Header.Set("Accept", "application/json")

			responder{}.repositoryError(c, tt.err, "still referenced")

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotContains(t, w.Body.String(), "disk I/O")
			assert.True(t, c.IsAborted())
		})
	}
}

func newFlashRouter(t *testing.T, flash *memoryFlash) *gin.Engine {
	t.Helper()
	formatter, err := format.New("en-US", "$")
	require.NoError(t, err)
	tmpl, err := LoadTemplates(templatesDir, formatter)
	require.NoError(t, err)

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.SetHTMLTemplate(tmpl)

	home := NewHomeController(flash, "1.2.3")
	router.GET("/", home.Index)
	router.GET("/error", home.Error)

	r := responder{flash: flash}
	router.POST("/ok", func(c *gin.Context) {
		r.done(c, http.StatusOK, SuccessResponse{Message: "saved"}, "/", "Genre created")
	})
	router.POST("/broken", func(c *gin.Context) {
		r.fail(c, http.StatusConflict, CodeIntegrityViolation, "Can't delete this genre")
	})
	return router
}

func TestResponder_FlashAcrossRedirect(t *testing.T) {
	flash := &memoryFlash{}
	router := newFlashRouter(t, flash)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ok", nil))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, w.Body.String(), "Genre created")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotContains(t, w.Body.String(), "Genre created")
}

func TestResponder_ErrorPageAfterRedirect(t *testing.T) {
	flash := &memoryFlash{}
	router := newFlashRouter(t, flash)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/broken", nil))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/error", w.Header().Get("Location"))
	failedID := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, failedID)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/error", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Can&#39;t delete this genre")
	assert.Contains(t, w.Body.String(), failedID)
}

func TestHomeController_ErrorWithoutStoredFailure(t *testing.T) {
	router := newFlashRouter(t, &memoryFlash{})

	req := httptest.NewRequest(http.MethodGet, "/error", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decode[ErrorResponse](t, w)
	assert.Equal(t, msgUnknownError, response.Error)
	assert.Equal(t, w.Header().Get(RequestIDHeader), response.RequestID)
}

func TestValidationDetails(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want map[string]string
	}{
		{
			name: "binding errors use posted names",
			err:  binding.Validator.ValidateStruct(&sellerForm{Name: "Maria", Email: "m@example.com", BaseSalary: -1}),
			want: map[string]string{"birth_date": "required", "base_salary": "gte"},
		},
		{
			name: "field error",
			err:  &fieldError{field: "date", message: msgBadDate},
			want: map[string]string{"date": msgBadDate},
		},
		{
			name: "anything else",
			err:  errors.New("unexpected EOF"),
			want: map[string]string{"form": "unexpected EOF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validationDetails(tt.err))
		})
	}
}
