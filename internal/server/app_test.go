package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_InMemoryWithoutMetrics(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	assert.NotNil(t, app.authService)
	assert.NotNil(t, app.repos.Users())
	assert.Nil(t, app.metricsServer)
	assert.Nil(t, app.rpcMetrics)
}

func TestNewApp_MetricsEnabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.MetricsAddr = "127.0.0.1:0"

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	require.NotNil(t, app.metricsServer)
	require.NotNil(t, app.rpcMetrics)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.EndpointAddrGRPC = "127.0.0.1:0"
	cfg.MetricsAddr = "127.0.0.1:0"

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(150 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}

func TestRun_StopsWhenServerFails(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.EndpointAddrGRPC = "127.0.0.1:99999"

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		app.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after server failure")
	}
}
