package loyalty

import (
	"errors"
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
	grp := protected.Group("/loyalty")
	{
		grp.GET("/me", h.GetMyAccount)
		grp.POST("/me/redeem", h.Redeem)
		grp.GET("/me/transactions", h.ListMyTransactions)
	}
}

type redeemRequest struct {
	Points int64  `json:"points" binding:"required,gt=0"`
	Note   string `json:"note"`
}

func (h *Handler) GetMyAccount(c *gin.Context) {
	account, err := h.service.GetOrCreateAccount(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load loyalty account")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"account": account})
}

func (h *Handler) Redeem(c *gin.Context) {
	var req redeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	account, err := h.service.Redeem(c.Request.Context(), c.GetInt64("user_id"), req.Points, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPoints):
			response.Error(c, http.StatusBadRequest, "INVALID_POINTS", "Points must be positive")
		case errors.Is(err, ErrInsufficientPoints):
			response.Error(c, http.StatusConflict, "INSUFFICIENT_POINTS", "Not enough points to redeem")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to redeem points")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"account": account})
}

func (h *Handler) ListMyTransactions(c *gin.Context) {
	txns, err := h.service.ListTransactions(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list transactions")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"transactions": txns})
}
