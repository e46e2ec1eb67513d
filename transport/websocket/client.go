package websocket

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	ws "github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/config"
)

// client is the write side of one connection. Frames are queued in order and written by writeLoop.
type client struct {
	logger *slog.Logger
	conn   *ws.Conn

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once

	pingInterval time.Duration
	writeTimeout time.Duration
}

func newClient(logger *slog.Logger, conn *ws.Conn, conf config.Websocket) *client {
	conn.SetReadLimit(conf.ReadLimit)

	return &client{
		logger:       logger,
		conn:         conn,
		send:         make(chan []byte, conf.SendBuffer),
		done:         make(chan struct{}),
		pingInterval: conf.PingInterval,
		writeTimeout: conf.WriteTimeout,
	}
}

// Enqueue - queues a frame without blocking. A client whose buffer is full is too slow and gets dropped.
func (that *client) Enqueue(data []byte) error {
	select {
	case <-that.done:
		return apperror.ErrOutboundClosed
	default:
	}

	select {
	case that.send <- data:
		return nil
	default:
		that.logger.Warn("send buffer full, dropping client", "buffer", cap(that.send))
		that.close()

		return fmt.Errorf("%w: send buffer full", apperror.ErrOutboundClosed)
	}
}

// close - stops the writer and unblocks the reader. Safe to call more than once.
func (that *client) close() {
	that.closeOnce.Do(func() {
		close(that.done)
		that.conn.Close()
	})
}

// pongWait - how long the reader waits for any frame, pongs included.
func (that *client) pongWait() time.Duration {
	return 2 * that.pingInterval
}

func (that *client) writeLoop() {
	log := that.logger.With("method", "writeLoop")

	ticker := time.NewTicker(that.pingInterval)
	defer func() {
		ticker.Stop()
		that.close()
	}()

	for {
		select {
		case <-that.done:
			return
		case data := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(that.writeTimeout))
			if err := that.conn.WriteMessage(ws.TextMessage, data); err != nil {
				log.Debug("failed to write message", "error", err)
				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(that.writeTimeout))
			if err := that.conn.WriteMessage(ws.PingMessage, nil); err != nil {
				log.Debug("failed to write ping", "error", err)
				return
			}
		}
	}
}
