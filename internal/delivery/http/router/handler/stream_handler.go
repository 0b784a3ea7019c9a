package handler

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"chaski/config"
	"chaski/internal/domain/entity"
	"chaski/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = (streamPongWait * 9) / 10
	streamBuffer     = 64
)

// StreamHandler pushes live messages of the open conversation over a websocket.
type StreamHandler struct {
	messaging usecase.MessagingUsecase
	upgrader  websocket.Upgrader
	logger    *slog.Logger
}

// NewStreamHandler is the constructor for StreamHandler, injected by Fx.
func NewStreamHandler(messaging usecase.MessagingUsecase, cfg *config.Config, logger *slog.Logger) *StreamHandler {
	origins := cfg.HTTP.AllowOrigins

	return &StreamHandler{
		messaging: messaging,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get(echo.HeaderOrigin)

				return origin == "" || slices.Contains(origins, "*") || slices.Contains(origins, origin)
			},
		},
		logger: logger,
	}
}

// Messages upgrades the request and streams until the peer goes away.
func (h *StreamHandler) Messages(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader already wrote the failure.
		return nil
	}
	defer conn.Close()

	// Slow peers lose messages rather than block the feed.
	outbound := make(chan entity.Message, streamBuffer)
	cancel := h.messaging.Watch(func(msg entity.Message) {
		select {
		case outbound <- msg:
		default:
			h.logger.Warn("Stream buffer full, dropping message", slog.String("message_id", msg.ID.String()))
		}
	})
	defer cancel()

	closed := make(chan struct{})
	go h.readLoop(conn, closed)

	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return nil
		case msg := <-outbound:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteJSON(msg); err != nil {
				h.logger.Debug("Stream write failed", slog.Any("error", err))

				return nil
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		}
	}
}

// readLoop drains control frames and signals closed once the peer disconnects.
func (h *StreamHandler) readLoop(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("Stream closed unexpectedly", slog.Any("error", err))
			}

			return
		}
	}
}
