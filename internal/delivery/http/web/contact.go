package web

import (
	"net/http"

	"aimlaw-web/internal/domain"
	"aimlaw-web/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Contact shows the empty form, preselecting ?service= when it names a known service
func (h *Handler) Contact(c *gin.Context) {
	b := h.bundle(c)
	form := &contactForm{schema: h.schema}
	if id := c.Query("service"); id != "" {
		if svc, ok := h.catalog.FindByID(id); ok {
			form.Values.Service = svc.ID
		}
	}
	h.renderContact(c, http.StatusOK, b, form)
}

// SubmitContact validates the posted form and hands it to the contact processor.
// Field errors re-render the form with the submitted values.
func (h *Handler) SubmitContact(c *gin.Context) {
	b := h.bundle(c)
	form := &contactForm{schema: h.schema}

	var sub domain.ContactSubmission
	if err := c.ShouldBindWith(&sub, binding.Form); err != nil {
		logger.Log.Info("Unreadable contact form post",
			"request_id", c.GetString(string(domain.KeyRequestID)),
			"error", err,
		)
		form.Values = sub
		form.Failed = true
		h.renderContact(c, http.StatusBadRequest, b, form)
		return
	}
	sub.Locale = b.Locale
	form.Values = sub

	if fields := h.contactUC.Validate(c.Request.Context(), &sub, b); len(fields) > 0 {
		form.Errors = fields.ByField()
		h.renderContact(c, http.StatusBadRequest, b, form)
		return
	}

	result := h.contactUC.Submit(c.Request.Context(), &sub)
	if !result.Success {
		form.Failed = true
		h.renderContact(c, StatusForResult(result), b, form)
		return
	}

	h.renderContact(c, http.StatusOK, b, &contactForm{Sent: true, schema: h.schema})
}

func (h *Handler) renderContact(c *gin.Context, status int, b *domain.Bundle, form *contactForm) {
	p := h.newPage(c, b, "/contact", b.T("contact.title"))
	p.Description = b.T("contact.description")
	p.Form = form
	h.render(c, status, pageContact, p)
}

// StatusForResult maps a failed submission to the HTTP status reported to the client
func StatusForResult(result domain.SubmissionResult) int {
	switch {
	case result.Success:
		return http.StatusOK
	case result.Error == domain.ErrMsgInvalidForm:
		return http.StatusBadRequest
	case result.Error == domain.ErrMsgSendFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
