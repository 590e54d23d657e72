package recommendation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glowsalon/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/recommendations", h.Recommend)
}

type recommendRequest struct {
	Preferences string `json:"preferences" binding:"required"`
}

func (h *Handler) Recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	suggestions, err := h.service.Recommend(c.Request.Context(), req.Preferences)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build recommendations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"recommendations": suggestions})
}
