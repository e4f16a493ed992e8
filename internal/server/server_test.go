package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/game-stats/internal/config"
	"github.com/MKhiriev/game-stats/internal/envconfig"
	"github.com/MKhiriev/game-stats/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freePort reserves and releases a local TCP port.
func freePort(t *testing.T) envconfig.Port {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := lis.Addr().(*net.TCPAddr).Port
	require.NoError(t, lis.Close())
	return envconfig.Port(port)
}

func TestNewServer_NilHandler(t *testing.T) {
	s, err := NewServer(nil, config.HTTPConfig{Host: "127.0.0.1", Port: 8080}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunWithoutServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestServer_ServesUntilContextDone(t *testing.T) {
	cfg := config.HTTPConfig{Host: "127.0.0.1", Port: freePort(t)}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv, err := NewServer(handler, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	url := fmt.Sprintf("http://%s/", cfg.Address())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get(url)
	assert.Error(t, err, "server must not accept connections after shutdown")
}

func TestServer_ListenError(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	cfg := config.HTTPConfig{Host: "127.0.0.1", Port: envconfig.Port(lis.Addr().(*net.TCPAddr).Port)}
	srv, err := NewServer(http.NotFoundHandler(), cfg, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, srv.(*server).run(context.Background()))
}
