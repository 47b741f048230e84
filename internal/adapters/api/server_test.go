// internal/adapters/api/server_test.go
package api

import (
	"context"
	"testing"
	"time"

	"laelaps/internal/platform/logx"
)

func TestNewServer_Defaults(t *testing.T) {
	srv := newTestServer(t, ServerOptions{})

	if srv.httpServer.Addr != ":8000" {
		t.Errorf("addr = %q, want :8000", srv.httpServer.Addr)
	}
	if srv.httpServer.Handler == nil {
		t.Error("handler should be mounted")
	}
	if srv.httpServer.ReadHeaderTimeout != readHeaderTimeout {
		t.Errorf("read header timeout = %v, want %v", srv.httpServer.ReadHeaderTimeout, readHeaderTimeout)
	}
}

func TestServer_StartShutdown(t *testing.T) {
	srv := newTestServer(t, ServerOptions{
		Addr:   "127.0.0.1:0",
		Logger: logx.NewWithLevel(logx.LevelError),
	})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	// Give the listener a moment to come up before cancelling.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Start returned error after shutdown: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestServer_Start_BadAddr(t *testing.T) {
	srv := newTestServer(t, ServerOptions{
		Addr:   "256.256.256.256:99999",
		Logger: logx.NewWithLevel(logx.LevelError),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := srv.Start(ctx); err == nil {
		t.Fatal("expected listen error for invalid address")
	}
}
