package notification

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	jwtsvc "glowsalon/internal/pkg/jwt"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// TODO: restrict origins once the frontend host is fixed.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades stylist connections. Browsers cannot set headers on a
// websocket handshake, so the token rides in the query string.
type Handler struct {
	hub    *Hub
	jwt    *jwtsvc.Service
	logger *zap.Logger
}

func NewHandler(hub *Hub, jwt *jwtsvc.Service, logger *zap.Logger) *Handler {
	return &Handler{hub: hub, jwt: jwt, logger: logger}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/ws/notifications", h.HandleWebSocket)
}

func (h *Handler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token query parameter is required"})
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil || claims.TokenType != jwtsvc.TokenAccess {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.Register(claims.UserID, conn)
	h.logger.Info("websocket connected", zap.Int64("user_id", claims.UserID))

	defer func() {
		h.hub.Unregister(claims.UserID)
		h.logger.Info("websocket disconnected", zap.Int64("user_id", claims.UserID))
	}()

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})
	go h.pingLoop(conn)

	h.readLoop(conn, claims.UserID)
}

func (h *Handler) pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			return
		}
	}
}

// readLoop drains client frames. The channel is push-only; anything the
// client sends is discarded, and a close error ends the connection.
func (h *Handler) readLoop(conn *websocket.Conn, userID int64) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				h.logger.Debug("websocket read error",
					zap.Int64("user_id", userID),
					zap.Error(err),
				)
			}
			return
		}
	}
}
