package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/iho/ledgerpost/internal/definition"
	"github.com/iho/ledgerpost/internal/infrastructure/config"
)

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{
		HTTPPort:         "9090",
		HTTPReadTimeout:  5 * time.Second,
		HTTPWriteTimeout: 10 * time.Second,
		HTTPIdleTimeout:  30 * time.Second,
	}

	handler := http.NewServeMux()
	server := newHTTPServer(cfg, handler)

	if server.Addr != ":9090" {
		t.Fatalf("expected addr :9090, got %s", server.Addr)
	}
	if server.ReadTimeout != 5*time.Second {
		t.Fatalf("expected read timeout 5s, got %s", server.ReadTimeout)
	}
	if server.WriteTimeout != 10*time.Second {
		t.Fatalf("expected write timeout 10s, got %s", server.WriteTimeout)
	}
	if server.IdleTimeout != 30*time.Second {
		t.Fatalf("expected idle timeout 30s, got %s", server.IdleTimeout)
	}
	if server.Handler == nil {
		t.Fatal("expected handler to be set")
	}
}

func TestDefaultChartLoads(t *testing.T) {
	registry, err := definition.LoadFile("../../chart.yaml")
	if err != nil {
		t.Fatalf("default chart failed to load: %v", err)
	}

	tenant, ok := registry.FindTenant("portfolio")
	if !ok {
		t.Fatal("expected portfolio tenant in default chart")
	}
	if _, ok := tenant.FindEntry("user_deposit"); !ok {
		t.Fatal("expected user_deposit entry in default chart")
	}
	if _, ok := tenant.FindEntry("user_withdrawal"); !ok {
		t.Fatal("expected user_withdrawal entry in default chart")
	}
}
