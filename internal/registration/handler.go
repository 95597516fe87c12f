package registration

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlearnhq/education-platform-backend/internal/event"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

func respondError(c *gin.Context, err error) {
	switch {
	case event.IsValidation(err),
		errors.Is(err, event.ErrPastEvent),
		errors.Is(err, event.ErrDuplicateRegistration),
		errors.Is(err, event.ErrCapacityExceeded):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, event.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Register - POST /events/:id/register
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	conf, err := h.Service.Register(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, conf)
}

// CheckRegistration - GET /events/:id/check-registration/:email
func (h *Handler) CheckRegistration(c *gin.Context) {
	registered, err := h.Service.CheckRegistration(c.Param("id"), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isRegistered": registered})
}

// AddAttendee - POST /events/:id/attendees
// Administrative add; runs through the same invariant checks as Register.
func (h *Handler) AddAttendee(c *gin.Context) {
	h.Register(c)
}

// RemoveAttendee - DELETE /events/:id/attendees/:attendeeId
func (h *Handler) RemoveAttendee(c *gin.Context) {
	err := h.Service.RemoveAttendee(c.Param("id"), c.Param("attendeeId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "attendee removed"})
}

// ExportAttendees - GET /export/:id?format=xlsx|csv|pdf
func (h *Handler) ExportAttendees(c *gin.Context) {
	format := c.DefaultQuery("format", FormatExcel)

	data, filename, contentType, err := h.Service.ExportAttendees(c.Param("id"), format)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
