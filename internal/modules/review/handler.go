package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"glowsalon/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/stylists/:id/reviews", h.ListByStylist)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/reviews", h.Create)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound):
			response.Error(c, http.StatusNotFound, "APPOINTMENT_NOT_FOUND", "Appointment does not exist")
		case errors.Is(err, ErrNotYourAppointment):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only review your own appointments")
		case errors.Is(err, ErrAppointmentNotDone):
			response.Error(c, http.StatusConflict, "APPOINTMENT_NOT_COMPLETED", "Only completed appointments can be reviewed")
		case errors.Is(err, ErrAppointmentUnstaffed):
			response.Error(c, http.StatusConflict, "APPOINTMENT_UNSTAFFED", "Appointment has no stylist to review")
		case errors.Is(err, ErrAlreadyReviewed):
			response.Error(c, http.StatusConflict, "ALREADY_REVIEWED", "This appointment already has a review")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create review")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": rv})
}

func (h *Handler) ListByStylist(c *gin.Context) {
	stylistID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || stylistID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid stylist id")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, avg, count, err := h.service.ListByStylist(c.Request.Context(), stylistID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reviews")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"reviews":        reviews,
		"average_rating": avg,
		"review_count":   count,
	})
}
