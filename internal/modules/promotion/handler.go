package promotion

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"glowsalon/internal/pkg/response"
	"glowsalon/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/promotions", h.ListActive)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/promotions", h.ListAll)
	admin.POST("/promotions", h.Create)
	admin.PUT("/promotions/:id", h.Update)
	admin.DELETE("/promotions/:id", h.Delete)
}

func (h *Handler) ListActive(c *gin.Context) {
	promos, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list promotions")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"promotions": promos})
}

func (h *Handler) ListAll(c *gin.Context) {
	promos, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list promotions")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"promotions": promos})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if fields := validator.Validate(&req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid promotion payload", fields)
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writePromotionError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"promotion": p})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		writePromotionError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"promotion": p})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writePromotionError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func writePromotionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPromotionNotFound):
		response.Error(c, http.StatusNotFound, "PROMOTION_NOT_FOUND", "Promotion does not exist")
	case errors.Is(err, ErrInvalidPromoType):
		response.Error(c, http.StatusBadRequest, "INVALID_PROMO_TYPE", "Unknown promotion type")
	case errors.Is(err, ErrInvalidWindow):
		response.Error(c, http.StatusBadRequest, "INVALID_WINDOW", "valid_until must be after valid_from")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process promotion request")
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
