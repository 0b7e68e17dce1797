package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"aimlaw-web/internal/domain"
	"aimlaw-web/pkg/apperror"
	"aimlaw-web/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var fromCtx string
	r.GET("/", func(c *gin.Context) {
		fromCtx, _ = c.Request.Context().Value(domain.KeyRequestID).(string)
		c.Status(http.StatusNoContent)
	})

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, fromCtx)
	})

	t.Run("Incoming uuid is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "6f1c2a52-3f43-4c1e-9a59-0d6b2d4c8e11")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "6f1c2a52-3f43-4c1e-9a59-0d6b2d4c8e11", w.Header().Get(RequestIDHeader))
	})

	t.Run("Garbage is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "<script>")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
	})
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/validation", func(c *gin.Context) {
		_ = c.Error(apperror.Validation("bad input", validation.FieldErrors{
			{Field: "email", Rule: "email", Message: "Please enter a valid email address"},
		}))
	})
	r.GET("/gateway", func(c *gin.Context) {
		_ = c.Error(apperror.BadGateway("Failed to send email. Please try again later.", errors.New("smtp: 535 auth failed")))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("db password leaked"))
	})

	decode := func(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return body
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/validation", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "bad input", body["message"])
	assert.Equal(t, map[string]any{"email": []any{"Please enter a valid email address"}}, body["error"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gateway", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "535")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plain", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotEmpty(t, decode(t, w)["request_id"])
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeadersMiddleware(true))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "form-action 'self'")
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}
