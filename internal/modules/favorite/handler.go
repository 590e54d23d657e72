package favorite

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

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	grp := protected.Group("/favorites")
	{
		grp.GET("", h.List)
		grp.POST("/:stylistID", h.Add)
		grp.DELETE("/:stylistID", h.Remove)
	}
}

func (h *Handler) List(c *gin.Context) {
	favs, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list favorites")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"favorites": favs})
}

func (h *Handler) Add(c *gin.Context) {
	stylistID, ok := stylistParam(c)
	if !ok {
		return
	}

	err := h.service.Add(c.Request.Context(), c.GetInt64("user_id"), stylistID)
	if err != nil {
		switch {
		case errors.Is(err, ErrStylistNotFound):
			response.Error(c, http.StatusNotFound, "STYLIST_NOT_FOUND", "Stylist does not exist")
		case errors.Is(err, ErrAlreadyFavorite):
			response.Error(c, http.StatusConflict, "ALREADY_FAVORITE", "Stylist is already in favorites")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add favorite")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"added": true})
}

func (h *Handler) Remove(c *gin.Context) {
	stylistID, ok := stylistParam(c)
	if !ok {
		return
	}

	err := h.service.Remove(c.Request.Context(), c.GetInt64("user_id"), stylistID)
	if err != nil {
		if errors.Is(err, ErrFavoriteNotFound) {
			response.Error(c, http.StatusNotFound, "FAVORITE_NOT_FOUND", "Stylist is not in favorites")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove favorite")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

func stylistParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("stylistID"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid stylist id")
		return 0, false
	}
	return id, true
}
