package scheduling

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"glowsalon/internal/domain"
	"glowsalon/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the appointment endpoints. The availability route
// is registered before the :id routes; both shapes coexist under gin's
// tree but the explicit order keeps the intent readable.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup, staff *gin.RouterGroup) {
	appts := protected.Group("/appointments")
	{
		appts.GET("/availability", h.Availability)
		appts.GET("", h.List)
		appts.POST("", h.Create)
		appts.GET("/:id", h.Get)
		appts.PUT("/:id", h.Reschedule)
		appts.POST("/:id/cancel", h.Cancel)
	}

	staff.PATCH("/appointments/:id/status", h.UpdateStatus)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.CreateAppointment(c.Request.Context(), actorID(c), req)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"appointment": a})
}

func (h *Handler) List(c *gin.Context) {
	appts, err := h.service.ListForActor(c.Request.Context(), actorID(c), actorRole(c))
	if err != nil {
		writeSchedulingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointments": appts})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, err := h.service.Get(c.Request.Context(), actorID(c), actorRole(c), id)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointment": a})
}

func (h *Handler) Reschedule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.Reschedule(c.Request.Context(), actorID(c), actorRole(c), id, req)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointment": a})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, err := h.service.CancelByCustomer(c.Request.Context(), actorID(c), id)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointment": a})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointment": a})
}

// Availability expects service_ids (comma separated), date (2006-01-02)
// and an optional stylist_id.
func (h *Handler) Availability(c *gin.Context) {
	serviceIDs, err := parseIDList(c.Query("service_ids"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service_ids")
		return
	}

	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date")
		return
	}

	var onlyStylist *int64
	if raw := c.Query("stylist_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid stylist_id")
			return
		}
		onlyStylist = &id
	}

	slots, err := h.service.ListOpenSlots(c.Request.Context(), serviceIDs, date, onlyStylist)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"date":     c.Query("date"),
		"stylists": slots,
	})
}

func writeSchedulingError(c *gin.Context, err error) {
	var missing *MissingSpecialtyError
	if errors.As(err, &missing) {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "MISSING_SPECIALTY",
			"Stylist does not cover the requested services", gin.H{"categories": missing.Categories})
		return
	}

	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrEmptySelection):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid appointment request")
	case errors.Is(err, ErrServiceNotFound):
		response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "One or more services do not exist")
	case errors.Is(err, ErrStylistNotFound):
		response.Error(c, http.StatusNotFound, "STYLIST_NOT_FOUND", "Stylist does not exist")
	case errors.Is(err, ErrAppointmentNotFound):
		response.Error(c, http.StatusNotFound, "APPOINTMENT_NOT_FOUND", "Appointment does not exist")
	case errors.Is(err, ErrStylistUnavailable):
		response.Error(c, http.StatusConflict, "STYLIST_UNAVAILABLE", "Stylist is not taking appointments")
	case errors.Is(err, ErrOutsideWorkingHours):
		response.Error(c, http.StatusConflict, "OUTSIDE_WORKING_HOURS", "Requested time is outside the stylist's working hours")
	case errors.Is(err, ErrSlotConflict):
		response.Error(c, http.StatusConflict, "SLOT_CONFLICT", "The requested time overlaps an existing appointment")
	case errors.Is(err, ErrNoQualifiedStylist):
		response.Error(c, http.StatusConflict, "NO_QUALIFIED_STYLIST", "No stylist covers the requested services")
	case errors.Is(err, ErrNoAvailableSlot):
		response.Error(c, http.StatusConflict, "NO_AVAILABLE_SLOT", "No qualified stylist is free at the requested time")
	case errors.Is(err, ErrAppointmentInPast):
		response.Error(c, http.StatusBadRequest, "APPOINTMENT_IN_PAST", "Appointment time is in the past")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Status change is not allowed from the current status")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have access to this appointment")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process appointment request")
	}
}

func actorID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}

func actorRole(c *gin.Context) domain.Role {
	return domain.Role(c.GetString("role"))
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}

func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
