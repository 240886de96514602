package realtime

import (
	"net/http"

	"caremind-service/internal/app/config"
	"caremind-service/internal/app/contracts"
	"caremind-service/internal/pkg/constvars"
	"caremind-service/internal/pkg/exceptions"
	"caremind-service/internal/pkg/utils"

	gorillawebsocket "github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = gorillawebsocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins; tighten in production.
	},
}

// Handler upgrades HTTP connections to WebSockets. The client authenticates
// the upgrade with the same session JWT the REST API uses, passed as a
// `token` query parameter since browsers cannot set headers on WebSocket
// dials. Reconnecting clients re-authenticate; there is no event replay for
// the gap, the durable notification rows cover it.
type Handler struct {
	Log            *zap.Logger
	Hub            *Hub
	RedisRepo      contracts.RedisRepository
	InternalConfig *config.InternalConfig
}

func NewHandler(log *zap.Logger, hub *Hub, redisRepo contracts.RedisRepository, internalConfig *config.InternalConfig) *Handler {
	return &Handler{
		Log:            log,
		Hub:            hub,
		RedisRepo:      redisRepo,
		InternalConfig: internalConfig,
	}
}

func (h *Handler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		utils.BuildErrorResponse(h.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	sessionID, err := utils.ParseSessionJWT(token, h.InternalConfig.JWT.Secret)
	if err != nil {
		utils.BuildErrorResponse(h.Log, w, err)
		return
	}

	session, err := h.RedisRepo.GetSession(r.Context(), sessionID)
	if err != nil {
		utils.BuildErrorResponse(h.Log, w, err)
		return
	}
	if session == nil {
		utils.BuildErrorResponse(h.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		h.Log.Error("realtime handler failed to upgrade connection", zap.Error(err))
		return
	}

	client := &Client{
		UserID: session.UserID,
		Send:   make(chan []byte, 256),
		hub:    h.Hub,
		conn:   &gorillaConnAdapter{ws},
	}

	h.Hub.Register(client)
	h.Log.Info("realtime client connected",
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	go h.writePump(client)
	go h.readPump(client)
}

// readPump drains inbound frames so pings and close frames are processed; the
// protocol is server-to-client only.
func (h *Handler) readPump(client *Client) {
	defer func() {
		h.Hub.Unregister(client)
		client.conn.Close()
	}()

	for {
		_, _, err := client.conn.ReadMessage()
		if err != nil {
			return
		}
	}
}

func (h *Handler) writePump(client *Client) {
	defer client.conn.Close()

	for message := range client.Send {
		if err := client.conn.WriteMessage(gorillawebsocket.TextMessage, message); err != nil {
			return
		}
	}
}

// gorillaConnAdapter wraps a gorilla/websocket.Conn to satisfy the Conn interface.
type gorillaConnAdapter struct {
	conn *gorillawebsocket.Conn
}

func (a *gorillaConnAdapter) ReadMessage() (int, []byte, error) {
	return a.conn.ReadMessage()
}

func (a *gorillaConnAdapter) WriteMessage(messageType int, data []byte) error {
	return a.conn.WriteMessage(messageType, data)
}

func (a *gorillaConnAdapter) Close() error {
	return a.conn.Close()
}
