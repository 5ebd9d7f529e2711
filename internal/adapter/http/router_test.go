package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/ledgerpost/internal/adapter/http/handler"
	apimiddleware "github.com/iho/ledgerpost/internal/adapter/http/middleware"
	"github.com/iho/ledgerpost/internal/definition"
	"github.com/iho/ledgerpost/internal/usecase"
	"github.com/iho/ledgerpost/internal/usecase/mocks"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(t, func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(t, func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"tenant":{"type":"company","id":"1"},"code":"sale","document":{"type":"invoice","id":"7"},"entry_date":"2024-03-01","movements":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/postings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig(t))

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"GET /metrics",
		"POST /api/v1/postings",
		"GET /api/v1/ledger/entries",
		"GET /api/v1/ledger/lines",
		"GET /api/v1/ledger/position",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func TestNewRouter_PostingEndToEnd(t *testing.T) {
	router := NewRouter(newRouterConfig(t))

	body := `{
		"tenant": {"type": "company", "id": "1"},
		"code": "sale",
		"document": {"type": "invoice", "id": "7"},
		"entry_date": "2024-03-01",
		"movements": [
			{"kind": "debit", "account": "cash", "accountable": {"type": "customer", "id": "42"}, "amount": "100.00", "currency": "USD"},
			{"kind": "credit", "account": "revenue", "accountable": {"type": "customer", "id": "42"}, "amount": "100.00", "currency": "USD"}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/postings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if !strings.Contains(rec.Body.String(), `"status":"posted"`) {
		t.Fatalf("expected posted status, got %s", rec.Body.String())
	}
}

func TestNewRouter_PositionRequiresTriple(t *testing.T) {
	router := NewRouter(newRouterConfig(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/position?tenant_type=company", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for incomplete triple, got %d", rec.Code)
	}
}

func newRouterConfig(t *testing.T, opts ...func(*RouterConfig)) RouterConfig {
	t.Helper()

	registry := newTestRegistry(t)

	store := mocks.NewMockStore()
	entryRepo := mocks.NewMockEntryRepository(store)
	lineRepo := mocks.NewMockLineRepository(store)
	txManager := mocks.NewMockTransactionManager(store)

	executor := usecase.NewEntryExecutor(txManager, entryRepo, lineRepo, mocks.NewMockIDGenerator(), nil)
	ledgerUC := usecase.NewLedgerUseCase(registry, entryRepo, lineRepo)

	cfg := RouterConfig{
		PostingHandler: handler.NewPostingHandler(registry, executor, nil, nil),
		LedgerHandler:  handler.NewLedgerHandler(ledgerUC, nil),
		HealthHandler:  &handler.HealthHandler{},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func newTestRegistry(t *testing.T) *definition.Registry {
	t.Helper()

	registry, err := definition.NewBuilder().
		Tenant("company").
		Accounts("USD").
		Asset("cash").
		Income("revenue").
		EndAccounts().
		Entry("sale", "invoice").
		Debit("cash", "customer").
		Credit("revenue", "customer").
		EndTenant().
		Build()
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}

	return registry
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
