package httpserver_test

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ridehail/pkg/httpserver"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
}

func startServer(t *testing.T, ctx context.Context, opts ...httpserver.Option) (*httpserver.Server, string, <-chan error) {
	t.Helper()
	started := make(chan string, 1)
	opts = append([]httpserver.Option{
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(200 * time.Millisecond),
		httpserver.WithStartHook(func(addr string) { started <- addr }),
	}, opts...)
	srv := httpserver.New(opts...)

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, okHandler()) }()

	select {
	case addr := <-started:
		return srv, addr, done
	case err := <-done:
		require.FailNow(t, "server exited early", "%v", err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "server did not start")
	}
	return nil, "", nil
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		require.FailNow(t, "run did not return")
	}
	return nil
}

func TestRunServesUntilContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var stopped atomic.Bool
	_, addr, done := startServer(t, ctx, httpserver.WithStopHook(func() { stopped.Store(true) }))

	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	require.NoError(t, waitDone(t, done))
	assert.True(t, stopped.Load())
}

func TestShutdown(t *testing.T) {
	t.Parallel()

	t.Run("manual shutdown stops run", func(t *testing.T) {
		t.Parallel()
		srv, _, done := startServer(t, context.Background())
		require.NoError(t, srv.Shutdown(context.Background()))
		require.NoError(t, waitDone(t, done))
	})

	t.Run("repeated shutdown is a no-op", func(t *testing.T) {
		t.Parallel()
		srv, _, done := startServer(t, context.Background())
		require.NoError(t, srv.Shutdown(context.Background()))
		require.NoError(t, srv.Shutdown(context.Background()))
		require.NoError(t, waitDone(t, done))
	})

	t.Run("shutdown before run", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, httpserver.New().Shutdown(context.Background()))
	})
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	t.Run("address in use", func(t *testing.T) {
		t.Parallel()
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer ln.Close()

		srv := httpserver.New(httpserver.WithAddr(ln.Addr().String()))
		err = srv.Run(context.Background(), okHandler())
		require.ErrorIs(t, err, httpserver.ErrStart)
	})

	t.Run("already running", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		srv, _, done := startServer(t, ctx)

		err := srv.Run(ctx, okHandler())
		require.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

		cancel()
		require.NoError(t, waitDone(t, done))
	})
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"empty addr", func() { httpserver.WithAddr("") }},
		{"zero read timeout", func() { httpserver.WithReadTimeout(0) }},
		{"negative write timeout", func() { httpserver.WithWriteTimeout(-time.Second) }},
		{"zero idle timeout", func() { httpserver.WithIdleTimeout(0) }},
		{"zero header timeout", func() { httpserver.WithReadHeaderTimeout(0) }},
		{"zero shutdown timeout", func() { httpserver.WithShutdownTimeout(0) }},
		{"nil start hook", func() { httpserver.WithStartHook(nil) }},
		{"nil stop hook", func() { httpserver.WithStopHook(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tt.fn)
		})
	}

	assert.NotPanics(t, func() { httpserver.New(httpserver.WithLogger(nil)) })
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan string, 1)
	srv := httpserver.NewFromConfig(
		httpserver.Config{Addr: "127.0.0.1:0", ReadTimeout: time.Second},
		httpserver.WithStartHook(func(addr string) { started <- addr }),
	)
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, okHandler()) }()

	select {
	case addr := <-started:
		assert.NotEqual(t, "127.0.0.1:0", addr)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "server did not start")
	}
	cancel()
	require.NoError(t, waitDone(t, done))
}
