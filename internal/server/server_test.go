package server

import (
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbiddy/recipe-to-notion/config"
)

func testConfig(port int) *config.Config {
	return &config.Config{
		Host:     "127.0.0.1",
		Port:     port,
		LogLevel: "info",
	}
}

func TestNew(t *testing.T) {
	srv := New(testConfig(config.DefaultPort), log.New(io.Discard))
	require.NotNil(t, srv)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestListenScansForward(t *testing.T) {
	// occupy a port so the scan has to move past it
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()
	basePort := taken.Addr().(*net.TCPAddr).Port

	srv := New(testConfig(basePort), log.New(io.Discard))
	ln, port, err := srv.Listen()
	require.NoError(t, err)
	defer ln.Close()

	assert.Greater(t, port, basePort)
	assert.Less(t, port, basePort+10)
}

func TestListenUsesConfiguredPort(t *testing.T) {
	// port 0 is invalid for the scan, so grab a free one first
	probe, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	freePort := probe.Addr().(*net.TCPAddr).Port
	probe.Close()

	srv := New(testConfig(freePort), log.New(io.Discard))
	ln, port, err := srv.Listen()
	require.NoError(t, err)
	defer ln.Close()

	assert.Equal(t, freePort, port)
}
