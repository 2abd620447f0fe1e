package game

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/EbukaAmadiObi/drawn-together/shared/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// origin is enforced by the allow-list middleware upstream
		return true
	},
}

type Handler struct {
	session *Session
}

func NewHandler(session *Session) *Handler {
	return &Handler{session: session}
}

// PlayHandler upgrades the connection, registers the player with the
// session and starts the socket pumps. The display name travels in the
// query string; identity is a fresh uuid per connection, never reused.
func (h *Handler) PlayHandler(ctx *gin.Context) {
	name := strings.TrimSpace(ctx.Query("name"))
	if name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing-name"})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		logger.Warningf("Websocket upgrade failed: %v", err)
		return
	}

	socket := NewWebsocketConnection(conn)
	player := NewPlayer(uuid.NewString(), name)
	player.sessionInbox = h.session.inbox
	player.removeMe = h.session.removals

	joinCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.session.RequestJoin(joinCtx, player); err != nil {
		logger.Infof("Join rejected for %s: %v", name, err)
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, err.Error()))
		conn.Close()
		return
	}

	go player.ReadPump(socket)
	go player.WritePump(socket)
}

func RegisterRoute(engine *gin.Engine, session *Session) {
	h := NewHandler(session)
	engine.GET("/play", h.PlayHandler)
}
