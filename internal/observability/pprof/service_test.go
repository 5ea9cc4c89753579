package pprof

import (
	"context"
	"net/http"
	"testing"
	"time"

	"loopsmith/pkg/logx"
)

func waitForHTTP(ctx context.Context, url string) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		reqCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, http.NoBody)
		if err != nil {
			cancel()
			return err
		}
		resp, err := http.DefaultClient.Do(req)
		cancel()
		if err == nil && resp != nil {
			_ = resp.Body.Close()
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func TestServiceStartStop(t *testing.T) {
	srv := New("127.0.0.1:0", logx.Nop())
	t.Cleanup(func() {
		srv.Stop(context.Background())
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := srv.Start(); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	addr := srv.Addr()
	if addr == "" {
		t.Fatal("expected the service to expose an address")
	}
	if err := waitForHTTP(ctx, "http://"+addr+"/debug/pprof/"); err != nil {
		t.Fatalf("pprof endpoint not reachable: %v", err)
	}

	// Starting again must keep the same listener.
	if err := srv.Start(); err != nil {
		t.Fatalf("second Start error: %v", err)
	}
	if got := srv.Addr(); got != addr {
		t.Fatalf("Addr = %s, want %s", got, addr)
	}

	srv.Stop(ctx)
	if got := srv.Addr(); got != "" {
		t.Fatalf("expected the service to stop, still at %s", got)
	}
	srv.Stop(ctx)
}
