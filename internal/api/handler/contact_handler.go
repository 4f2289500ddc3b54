package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pastelpay/landing-api/internal/api/metrics"
	"github.com/pastelpay/landing-api/internal/core/ports"
)

const contactAck = "Thanks for reaching out! We'll get back to you soon."

// ContactHandler accepts contact-form submissions.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type contactRequest struct {
	Name    string  `json:"name"    validate:"required"`
	Email   string  `json:"email"   validate:"required,email"`
	Subject *string `json:"subject"`
	Message string  `json:"message" validate:"required"`
}

type contactResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// Submit stores a contact message.
//
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact message"
// @Success      200   {object}  contactResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	id, err := h.service.Submit(c.Request().Context(), ports.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	metrics.ContactMessagesTotal.Inc()
	return c.JSON(http.StatusOK, contactResponse{OK: true, Message: contactAck, ID: id})
}
