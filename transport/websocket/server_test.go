package websocket

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/config"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/protocol"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/usecase"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-rooms/mocks/usecase"
)

var testConf = config.Websocket{
	SendBuffer:   16,
	ReadLimit:    4096,
	PingInterval: time.Minute,
	WriteTimeout: 5 * time.Second,
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo := mockedUseCase.NewMocksnapshotRepo(t)
	repo.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, apperror.ErrSnapshotNotFound).Maybe()
	repo.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewRoomManager(logger, repo)

	mux := http.NewServeMux()
	mux.Handle("GET /api/game/{name}", NewHandler(logger, manager, testConf))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		manager.Close()
	})

	return server
}

func dial(t *testing.T, server *httptest.Server, room string) *ws.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/game/" + room

	conn, resp, err := ws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })

	return conn
}

func read(t *testing.T, conn *ws.Conn) map[string]any {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg map[string]any
	require.NoError(t, conn.ReadJSON(&msg))

	return msg
}

// join - dials a room and consumes the color, state and players greeting.
func join(t *testing.T, server *httptest.Server, room string) (*ws.Conn, string) {
	t.Helper()

	conn := dial(t, server, room)

	color := read(t, conn)
	require.Equal(t, protocol.TypeColor, color["type"])
	require.Equal(t, protocol.TypeState, read(t, conn)["type"])
	require.Equal(t, protocol.TypePlayers, read(t, conn)["type"])

	return conn, color["color"].(string)
}

func TestHandler_Handshake(t *testing.T) {
	server := newTestServer(t)

	t.Run("Plain HTTP requests need an upgrade", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/game/lobby1")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
		assert.Equal(t, "Expected Upgrade: websocket\n", string(body))
	})

	t.Run("Invalid room names are refused before the upgrade check", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/game/bad-name")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Invalid room names are refused on upgrade", func(t *testing.T) {
		url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/game/bad-name"

		_, resp, err := ws.DefaultDialer.Dial(url, nil)
		require.ErrorIs(t, err, ws.ErrBadHandshake)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_Game(t *testing.T) {
	t.Run("Greets each client with its seat and the room state", func(t *testing.T) {
		// Given: a running server
		server := newTestServer(t)

		// When: the first client connects
		red := dial(t, server, "lobby1")

		// Then: it is red, sees an empty board and is alone
		assert.Equal(t, map[string]any{"type": "color", "color": "red"}, read(t, red))
		state := read(t, red)
		assert.Equal(t, "state", state["type"])
		assert.Equal(t, "red", state["turn"])
		assert.Nil(t, state["winner"])
		assert.Equal(t, map[string]any{"type": "players", "playerCount": float64(1)}, read(t, red))

		// When: a second client connects
		_, color := join(t, server, "lobby1")

		// Then: it is blue and red learns about it
		assert.Equal(t, "blue", color)
		assert.Equal(t, map[string]any{"type": "players", "playerCount": float64(2)}, read(t, red))
	})

	t.Run("Broadcasts moves to every client in the room", func(t *testing.T) {
		// Given: two players in one room
		server := newTestServer(t)
		red, _ := join(t, server, "lobby1")
		blue, _ := join(t, server, "lobby1")
		read(t, red) // players: 2

		// When: red plays the center
		require.NoError(t, red.WriteMessage(ws.TextMessage, []byte(`{"type":"move","row":1,"col":1}`)))

		// Then: both receive the new board with blue on turn
		for _, conn := range []*ws.Conn{red, blue} {
			state := read(t, conn)
			assert.Equal(t, "state", state["type"])
			assert.Equal(t, "blue", state["turn"])

			fields, ok := state["fields"].([]any)
			require.True(t, ok)
			assert.Equal(t, "red", fields[1].([]any)[1])
		}
	})

	t.Run("Answers binary frames with an error", func(t *testing.T) {
		// Given: a connected client
		server := newTestServer(t)
		conn, _ := join(t, server, "lobby1")

		// When: it sends a binary frame
		require.NoError(t, conn.WriteMessage(ws.BinaryMessage, []byte{0x01}))

		// Then: it is told to send strings
		msg := read(t, conn)
		assert.Equal(t, "error", msg["type"])
		assert.Equal(t, protocol.ErrNotString.Message, msg["message"])
	})

	t.Run("Promotes a spectator when a player leaves", func(t *testing.T) {
		// Given: red, blue and a spectator
		server := newTestServer(t)
		red, _ := join(t, server, "lobby1")
		blue, _ := join(t, server, "lobby1")
		spectator, color := join(t, server, "lobby1")
		require.Equal(t, "none", color)
		read(t, red)  // players: 2
		read(t, red)  // players: 3
		read(t, blue) // players: 3

		// When: red disconnects
		require.NoError(t, red.Close())

		// Then: the spectator takes red and everybody sees two clients
		assert.Equal(t, map[string]any{"type": "color", "color": "red"}, read(t, spectator))
		assert.Equal(t, "state", read(t, spectator)["type"])
		assert.Equal(t, map[string]any{"type": "players", "playerCount": float64(2)}, read(t, spectator))
		assert.Equal(t, map[string]any{"type": "players", "playerCount": float64(2)}, read(t, blue))
	})
}

func TestClient_Enqueue(t *testing.T) {
	// Given: a client whose writer is not running and whose buffer holds one frame
	conf := testConf
	conf.SendBuffer = 1

	upgraded := make(chan *client, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := (&ws.Upgrader{}).Upgrade(w, r, nil)
		if !assert.NoError(t, err) {
			return
		}
		upgraded <- newClient(slog.New(slog.NewTextHandler(io.Discard, nil)), conn, conf)
	}))
	defer server.Close()

	conn, resp, err := ws.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	resp.Body.Close()
	defer conn.Close()

	c := <-upgraded

	// When: two frames are queued
	require.NoError(t, c.Enqueue([]byte(`{}`)))
	err = c.Enqueue([]byte(`{}`))

	// Then: the second overflows and the client stays closed
	require.ErrorIs(t, err, apperror.ErrOutboundClosed)
	require.ErrorIs(t, c.Enqueue([]byte(`{}`)), apperror.ErrOutboundClosed)
}
