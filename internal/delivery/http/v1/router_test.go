package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"aimlaw-web/config"
	v1 "aimlaw-web/internal/delivery/http/v1"
	"aimlaw-web/internal/domain"
	"aimlaw-web/internal/repository/content"
	"aimlaw-web/internal/usecase"
	"aimlaw-web/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) IsConfigured() bool {
	return m.Called().Bool(0)
}

func (m *MockEmailSender) Send(ctx context.Context, msg *domain.EmailMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Error     json.RawMessage `json:"error"`
	RequestID string          `json:"request_id"`
}

func newTestRouter(t *testing.T, sender domain.EmailSender) *gin.Engine {
	t.Helper()
	catalog, err := content.LoadCatalog()
	require.NoError(t, err)
	bundles, err := content.LoadBundles()
	require.NoError(t, err)
	localeUC, err := usecase.NewLocaleUsecase(bundles)
	require.NoError(t, err)

	cfg := &config.Config{
		GinMode:            gin.TestMode,
		SiteURL:            "https://aim-law.ca",
		CORSAllowedOrigins: []string{"https://aim-law.ca"},
	}
	router, err := v1.NewRouter(v1.RouterDeps{
		ContactUC: usecase.NewContactUsecase(catalog, localeUC, sender, validation.New(), usecase.ContactConfig{}),
		LocaleUC:  localeUC,
		HealthUC:  usecase.NewHealthUsecase(sender, localeUC),
		Catalog:   catalog,
		Config:    cfg,
	})
	require.NoError(t, err)
	return router
}

func do(t *testing.T, r http.Handler, method, target string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") != "" && bytes.HasPrefix(bytes.TrimSpace(w.Body.Bytes()), []byte("{")) {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func validSubmission() map[string]any {
	return map[string]any{
		"firstName":   "John",
		"lastName":    "Doe",
		"email":       "john@example.com",
		"phone":       "4165550123",
		"service":     "immigration",
		"message":     "I need help with a work permit application.",
		"caslConsent": true,
	}
}

func TestHealth(t *testing.T) {
	sender := new(MockEmailSender)
	sender.On("IsConfigured").Return(false)
	r := newTestRouter(t, sender)

	w, env := do(t, r, http.MethodGet, "/v1/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "log-only", data["email"])
	assert.Equal(t, "en,zh", data["locales"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, w.Header().Get("X-Request-ID"), env.RequestID)
}

func TestSubmitContact(t *testing.T) {
	t.Run("Success sends notification and confirmation", func(t *testing.T) {
		sender := new(MockEmailSender)
		sender.On("IsConfigured").Return(true)
		sender.On("Send", mock.Anything, mock.Anything).Return(nil).Twice()
		r := newTestRouter(t, sender)

		w, env := do(t, r, http.MethodPost, "/v1/contact", validSubmission())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
		sender.AssertNumberOfCalls(t, "Send", 2)
	})

	t.Run("Invalid data returns field errors without sending", func(t *testing.T) {
		sender := new(MockEmailSender)
		sender.On("IsConfigured").Return(true)
		r := newTestRouter(t, sender)

		body := validSubmission()
		body["firstName"] = ""
		body["caslConsent"] = false

		w, env := do(t, r, http.MethodPost, "/v1/contact", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, domain.ErrMsgInvalidForm, env.Message)

		var fields map[string][]string
		require.NoError(t, json.Unmarshal(env.Error, &fields))
		assert.Equal(t, []string{"First name is required"}, fields["firstName"])
		assert.Contains(t, fields, "caslConsent")
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Field errors follow the locale query", func(t *testing.T) {
		sender := new(MockEmailSender)
		r := newTestRouter(t, sender)

		body := validSubmission()
		body["firstName"] = ""

		w, env := do(t, r, http.MethodPost, "/v1/contact?locale=zh", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var fields map[string][]string
		require.NoError(t, json.Unmarshal(env.Error, &fields))
		assert.Equal(t, []string{"名为必填项"}, fields["firstName"])
	})

	t.Run("Unsupported locale falls back to English", func(t *testing.T) {
		sender := new(MockEmailSender)
		r := newTestRouter(t, sender)

		body := validSubmission()
		body["firstName"] = ""

		_, env := do(t, r, http.MethodPost, "/v1/contact?locale=fr", body)

		var fields map[string][]string
		require.NoError(t, json.Unmarshal(env.Error, &fields))
		assert.Equal(t, []string{"First name is required"}, fields["firstName"])
	})

	t.Run("Send failure maps to bad gateway", func(t *testing.T) {
		sender := new(MockEmailSender)
		sender.On("IsConfigured").Return(true)
		sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("provider down"))
		r := newTestRouter(t, sender)

		w, env := do(t, r, http.MethodPost, "/v1/contact", validSubmission())

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, domain.ErrMsgSendFailed, env.Message)
		assert.NotContains(t, w.Body.String(), "provider down")
	})

	t.Run("Malformed body", func(t *testing.T) {
		sender := new(MockEmailSender)
		r := newTestRouter(t, sender)

		req := httptest.NewRequest(http.MethodPost, "/v1/contact", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestContactSchema(t *testing.T) {
	r := newTestRouter(t, new(MockEmailSender))

	w, env := do(t, r, http.MethodGet, "/v1/contact/schema", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var schema []validation.FieldSchema
	require.NoError(t, json.Unmarshal(env.Data, &schema))

	msg, ok := validation.Lookup(schema, "message")
	require.True(t, ok)
	require.NotNil(t, msg.Max)
	assert.Equal(t, 1000, *msg.Max)

	consent, ok := validation.Lookup(schema, "caslConsent")
	require.True(t, ok)
	assert.True(t, consent.MustBeTrue)
}

func TestServicesAndLocales(t *testing.T) {
	r := newTestRouter(t, new(MockEmailSender))

	t.Run("Services", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/v1/services", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var data v1.SiteOverview
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "AIM Law", data.Site.Name)
		assert.Len(t, data.Services, 5)
	})

	t.Run("Locales", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/v1/locales", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var data []v1.LocaleSummary
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Len(t, data, 2)
		assert.Equal(t, domain.LocaleEN, data[0].Locale)
		assert.True(t, data[0].Default)
		assert.Equal(t, "zh_CN", data[1].OGLocale)
	})

	t.Run("Locale bundle", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/v1/locales/zh", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var data v1.LocaleDetail
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "名", data.Messages["form.firstName"])
	})

	t.Run("Unknown locale", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/v1/locales/fr", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, env.Success)
	})

	t.Run("Unknown API path", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/v1/nothing-here", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, env.Success)
	})
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t, new(MockEmailSender))

	req := httptest.NewRequest(http.MethodOptions, "/v1/contact", nil)
	req.Header.Set("Origin", "https://aim-law.ca")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://aim-law.ca", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/v1/contact", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
