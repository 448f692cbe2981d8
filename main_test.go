package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"welcome-app/config"
)

func TestRun_ServesAndShutsDownGracefully(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port

	cfg := &config.Config{
		Port:            strconv.Itoa(port),
		Env:             "test",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     5 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}

	core, logs := observer.New(zapcore.InfoLevel)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, ln, cfg, zap.New(core))
	}()

	res, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, `{"status":"ok"}`, string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("run did not return after cancellation")
	}

	startup := "App running on http://localhost:" + strconv.Itoa(port)
	assert.Equal(t, 1, logs.FilterMessage(startup).Len(), "missing startup line")
	assert.Equal(t, 1, logs.FilterMessage("server stopped cleanly").Len())

	_, err = http.Get("http://" + ln.Addr().String() + "/health")
	assert.Error(t, err, "listener should be closed after shutdown")
}

func TestRun_ReturnsServeError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	cfg := &config.Config{Port: "3000", ShutdownTimeout: time.Second}
	err = run(context.Background(), ln, cfg, zap.NewNop())
	assert.Error(t, err)
}
