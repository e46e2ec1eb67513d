package rest

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

	return recorder
}

func TestNewRouter(t *testing.T) {
	var gotName string
	game := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotName = r.PathValue("name")
		w.WriteHeader(http.StatusTeapot)
	})
	router := NewRouter(testLogger(), game)

	t.Run("Ping answers pong", func(t *testing.T) {
		resp := get(t, router, "/ping")

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "pong", resp.Body.String())
	})

	t.Run("Game route passes the room name", func(t *testing.T) {
		resp := get(t, router, "/api/game/lobby1")

		assert.Equal(t, http.StatusTeapot, resp.Code)
		assert.Equal(t, "lobby1", gotName)
	})

	t.Run("Unknown routes are not found", func(t *testing.T) {
		resp := get(t, router, "/api/games")

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestRecovery(t *testing.T) {
	// Given: a handler that panics
	handler := recovery(testLogger(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	// When: it is called
	resp := get(t, handler, "/")

	// Then: the client gets a 500
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func freePort(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	return strconv.Itoa(port)
}

func TestStart(t *testing.T) {
	// Given: a server running on a free port
	ctx, cancel := context.WithCancel(context.Background())
	port := freePort(t)

	done := make(chan error, 1)
	go func() {
		done <- Start(ctx, testLogger(), port, NewRouter(testLogger(), http.NotFoundHandler()), time.Second)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + port + "/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()

		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	// When: the context is canceled
	cancel()

	// Then: the server shuts down cleanly
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
