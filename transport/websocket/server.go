package websocket

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	ws "github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/config"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/protocol"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/session"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/usecase"
)

type roomManager interface {
	Acquire(ctx context.Context, name string) (*usecase.RoomInstance, error)
	Release(name string)
}

// Handler serves GET /api/game/{name}: it upgrades the request and attaches the connection to the room.
type Handler struct {
	logger   *slog.Logger
	manager  roomManager
	conf     config.Websocket
	upgrader ws.Upgrader
}

func NewHandler(logger *slog.Logger, manager roomManager, conf config.Websocket) *Handler {
	return &Handler{
		logger:  logger.With("component", "websocket"),
		manager: manager,
		conf:    conf,
		upgrader: ws.Upgrader{
			HandshakeTimeout: conf.WriteTimeout,
			CheckOrigin:      func(*http.Request) bool { return true },
		},
	}
}

func (that *Handler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	name := req.PathValue("name")
	if !usecase.ValidRoomName(name) {
		http.Error(writer, apperror.ErrInvalidRoomName.Error(), http.StatusBadRequest)
		return
	}

	if !ws.IsWebSocketUpgrade(req) {
		http.Error(writer, "Expected Upgrade: websocket", http.StatusUpgradeRequired)
		return
	}

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		// the upgrader has already answered the request
		log.Warn("failed to upgrade connection", "error", err)
		return
	}

	that.serve(req.Context(), conn, name)
}

// serve - runs one connection until it closes or ctx is done.
func (that *Handler) serve(ctx context.Context, conn *ws.Conn, name string) {
	log := that.logger.With("room", name, "remote", conn.RemoteAddr().String())

	c := newClient(log, conn, that.conf)

	defer c.close()
	defer func() {
		if rec := recover(); rec != nil {
			log.Error("recovered from panic in connection", "panic", rec)
			that.closeWith(conn, ws.CloseInternalServerErr, protocol.InternalErrorText)
		}
	}()

	stop := context.AfterFunc(ctx, c.close)
	defer stop()

	room, err := that.manager.Acquire(ctx, name)
	if err != nil {
		log.Error("failed to acquire room", "error", err)
		that.closeWith(conn, ws.CloseInternalServerErr, protocol.InternalErrorText)
		return
	}
	defer that.manager.Release(name)

	go c.writeLoop()

	s, err := room.Connect(ctx, c)
	if err != nil {
		log.Error("failed to join room", "error", err)
		return
	}

	log = log.With("session", s.ID())

	defer func() {
		if err = room.Disconnect(context.WithoutCancel(ctx), s); err != nil && !errors.Is(err, apperror.ErrRoomClosed) {
			log.Warn("failed to leave room", "error", err)
		}
	}()

	that.readLoop(ctx, log, c, room, s)
}

func (that *Handler) readLoop(ctx context.Context, log *slog.Logger, c *client, room *usecase.RoomInstance, s *session.Session) {
	_ = c.conn.SetReadDeadline(time.Now().Add(c.pongWait()))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.pongWait()))
	})

	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			if ws.IsUnexpectedCloseError(err, ws.CloseNormalClosure, ws.CloseGoingAway, ws.CloseNoStatusReceived) {
				log.Debug("connection closed unexpectedly", "error", err)
			}

			return
		}

		_ = c.conn.SetReadDeadline(time.Now().Add(c.pongWait()))

		if msgType != ws.TextMessage {
			if err = s.SendError(protocol.ErrNotString.Message); err != nil {
				return
			}

			continue
		}

		if err = room.HandleMessage(ctx, s, data); err != nil {
			if errors.Is(err, apperror.ErrRoomClosed) || errors.Is(err, context.Canceled) {
				return
			}

			log.Error("failed to handle message", "error", err)
		}
	}
}

func (that *Handler) closeWith(conn *ws.Conn, code int, text string) {
	deadline := time.Now().Add(that.conf.WriteTimeout)
	if err := conn.WriteControl(ws.CloseMessage, ws.FormatCloseMessage(code, text), deadline); err != nil {
		that.logger.Debug("failed to write close frame", "error", err)
	}
}
