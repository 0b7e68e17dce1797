package v1

import (
	"net/http"

	"aimlaw-web/internal/delivery/http/response"
	"aimlaw-web/internal/domain"
	"aimlaw-web/pkg/apperror"
	"aimlaw-web/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	localeUC  domain.LocaleUsecase
	schema    []validation.FieldSchema
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, localeUC domain.LocaleUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
		localeUC:  localeUC,
		schema:    validation.Describe(domain.ContactSubmission{}),
	}

	public.POST("/contact", handler.SubmitContact)
	public.GET("/contact/schema", handler.GetSchema)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate a consultation request and email it to the firm. A confirmation is sent to the submitter in the chosen locale.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        locale   query     string                    false  "Locale for messages and confirmation (en, zh)"
// @Param        contact  body      domain.ContactSubmission  true   "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	bundle := h.bundleFor(c.Query("locale"))

	var req domain.ContactSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest(domain.ErrMsgInvalidForm))
		return
	}
	req.Locale = bundle.Locale

	if fields := h.contactUC.Validate(c.Request.Context(), &req, bundle); len(fields) > 0 {
		_ = c.Error(apperror.Validation(domain.ErrMsgInvalidForm, fields))
		return
	}

	result := h.contactUC.Submit(c.Request.Context(), &req)
	if !result.Success {
		_ = c.Error(submissionError(result))
		return
	}

	response.Success(c, http.StatusOK, bundle.TOr("form.successBody", "Your message has been sent."), nil)
}

// GetSchema godoc
// @Summary      Contact form schema
// @Description  Field constraints enforced on contact submissions
// @Tags         contact
// @Produce      json
// @Success      200  {object}  response.Response{data=[]validation.FieldSchema}
// @Router       /contact/schema [get]
func (h *ContactHandler) GetSchema(c *gin.Context) {
	response.Success(c, http.StatusOK, "Contact form schema", h.schema)
}

// bundleFor falls back to the default locale; the API never 404s on a message language.
func (h *ContactHandler) bundleFor(locale string) *domain.Bundle {
	if locale == "" {
		return h.localeUC.Default()
	}
	bundle, err := h.localeUC.Resolve(locale)
	if err != nil {
		return h.localeUC.Default()
	}
	return bundle
}

func submissionError(result domain.SubmissionResult) *apperror.AppError {
	switch result.Error {
	case domain.ErrMsgInvalidForm:
		return apperror.BadRequest(result.Error)
	case domain.ErrMsgSendFailed:
		return apperror.BadGateway(result.Error, nil)
	default:
		return apperror.New(http.StatusInternalServerError, domain.ErrMsgUnexpected, nil)
	}
}
