package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenFieldName is the hidden form field that must echo the cookie
	CSRFTokenFieldName = "csrf_token"
	// CSRFTokenHeaderName is accepted instead of the form field for script submissions
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenLength is the length of the generated token in bytes (32 bytes = 64 hex chars)
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token is valid
	CSRFTokenExpiry = 24 * time.Hour

	csrfContextKey = "CSRFToken"
)

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFMiddleware implements the double-submit cookie pattern for server-rendered forms.
// Pages read the token with CSRFToken(c) and embed it in a hidden field; unsafe
// methods must send the same value back in the field or the X-CSRF-Token header.
// onReject renders the refusal so HTML pages can answer with a page instead of JSON.
func CSRFMiddleware(secure bool, onReject func(c *gin.Context, status int)) gin.HandlerFunc {
	return func(c *gin.Context) {
		csrfCookie, err := c.Cookie(CSRFTokenCookieName)

		// Generate new token if none exists
		if err != nil || csrfCookie == "" {
			newToken, err := generateCSRFToken()
			if err != nil {
				_ = c.Error(err)
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}

			// SameSite=Lax keeps the cookie on top-level navigations only
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(
				CSRFTokenCookieName,
				newToken,
				int(CSRFTokenExpiry.Seconds()),
				"/",
				"",     // Domain (empty = current domain)
				secure, // Secure (HTTPS only)
				true,   // HttpOnly, the token reaches the page through the template
			)
			csrfCookie = newToken
		}
		c.Set(csrfContextKey, csrfCookie)

		// For safe methods, no validation needed
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		submitted := c.PostForm(CSRFTokenFieldName)
		if submitted == "" {
			submitted = c.GetHeader(CSRFTokenHeaderName)
		}

		if submitted == "" || subtle.ConstantTimeCompare([]byte(submitted), []byte(csrfCookie)) != 1 {
			onReject(c, http.StatusForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

// CSRFToken returns the token set by CSRFMiddleware for the current request
func CSRFToken(c *gin.Context) string {
	return c.GetString(csrfContextKey)
}
