package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"glowsalon/internal/pkg/response"
	"glowsalon/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/statistics", h.Statistics)
	admin.GET("/users", h.ListUsers)
	admin.POST("/users/:id/block", h.BlockUser)
	admin.POST("/users/:id/unblock", h.UnblockUser)
	admin.GET("/settings", h.ListSettings)
	admin.PUT("/settings/:key", h.PutSetting)
	admin.DELETE("/settings/:key", h.DeleteSetting)
}

func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build statistics")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"statistics": stats})
}

func (h *Handler) ListUsers(c *gin.Context) {
	var blocked *bool
	if raw := c.Query("blocked"); raw != "" {
		b := raw == "true"
		blocked = &b
	}
	filter := repository.UserFilter{
		Role:    c.Query("role"),
		Blocked: blocked,
		Query:   c.Query("q"),
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, total, err := h.service.ListUsers(c.Request.Context(), filter, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users, "total": total})
}

func (h *Handler) BlockUser(c *gin.Context) {
	h.setBlocked(c, true)
}

func (h *Handler) UnblockUser(c *gin.Context) {
	h.setBlocked(c, false)
}

func (h *Handler) setBlocked(c *gin.Context, blocked bool) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user id")
		return
	}

	user, err := h.service.SetUserBlocked(c.Request.Context(), c.GetInt64("user_id"), userID, blocked)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User does not exist")
		case errors.Is(err, ErrCannotBlockSelf):
			response.Error(c, http.StatusConflict, "CANNOT_BLOCK_SELF", "You cannot block your own account")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update user")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) ListSettings(c *gin.Context) {
	settings, err := h.service.ListSettings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list settings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"settings": settings})
}

type putSettingRequest struct {
	Value       string `json:"value" binding:"required"`
	Description string `json:"description"`
}

func (h *Handler) PutSetting(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid setting key")
		return
	}

	var req putSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	setting, err := h.service.PutSetting(c.Request.Context(), key, req.Value, req.Description)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save setting")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"setting": setting})
}

func (h *Handler) DeleteSetting(c *gin.Context) {
	err := h.service.DeleteSetting(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			response.Error(c, http.StatusNotFound, "SETTING_NOT_FOUND", "Setting does not exist")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete setting")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
