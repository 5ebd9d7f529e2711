package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/iho/ledgerpost/internal/adapter/http/dto"
	"github.com/iho/ledgerpost/internal/definition"
	"github.com/iho/ledgerpost/internal/domain"
	"github.com/iho/ledgerpost/internal/infrastructure/metrics"
	"github.com/iho/ledgerpost/internal/usecase"
)

// PostingHandler handles posting requests.
type PostingHandler struct {
	registry *definition.Registry
	executor *usecase.EntryExecutor
	cache    usecase.Cache
	metrics  *metrics.Metrics
}

// NewPostingHandler creates a new PostingHandler. cache and m may be
// nil.
func NewPostingHandler(registry *definition.Registry, executor *usecase.EntryExecutor, cache usecase.Cache, m *metrics.Metrics) *PostingHandler {
	return &PostingHandler{
		registry: registry,
		executor: executor,
		cache:    cache,
		metrics:  m,
	}
}

// Create executes a posting request against the ledger.
func (h *PostingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entryDate, err := req.ParsedDate()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry date", err.Error())
		return
	}

	entry, err := usecase.NewExecutableEntry(
		h.registry,
		req.Tenant.TenantRef(),
		req.Document.DocumentRef(),
		req.Code,
		entryDate,
	)
	if err != nil {
		h.countError(err)
		writeError(w, mapDomainError(err), "invalid posting", err.Error())
		return
	}

	for _, m := range req.Movements {
		kind, err := m.MovementKind()
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid movement", err.Error())
			return
		}

		amount := domain.Money{Amount: m.Amount, Currency: m.Currency}
		if _, err := entry.AddMovement(kind, m.Account, m.Accountable.AccountableRef(), amount); err != nil {
			h.countError(err)
			writeError(w, mapDomainError(err), "invalid movement", err.Error())
			return
		}
	}

	start := time.Now()
	result, err := h.executor.Execute(r.Context(), entry)
	if err != nil {
		h.countError(err)
		writeError(w, mapDomainError(err), "failed to execute posting", err.Error())
		return
	}

	h.observe(result, time.Since(start))
	h.invalidatePosition(r, req)

	status := http.StatusCreated
	if result.Status == usecase.StatusNoop {
		status = http.StatusOK
	}

	writeJSON(w, status, dto.PostingFromResult(result))
}

// invalidatePosition drops the cached position for the posted triple.
func (h *PostingHandler) invalidatePosition(r *http.Request, req dto.PostingRequest) {
	if h.cache == nil {
		return
	}

	key := positionCacheKey(req.Tenant.TenantRef(), req.Code, req.Document.DocumentRef())
	// Best effort: a stale cache entry expires on its own TTL.
	_ = h.cache.Delete(r.Context(), key)
}

func (h *PostingHandler) observe(result *usecase.ExecutionResult, elapsed time.Duration) {
	if h.metrics == nil {
		return
	}

	h.metrics.PostingDuration.Observe(elapsed.Seconds())

	switch result.Status {
	case usecase.StatusPosted:
		h.metrics.EntriesPosted.Inc()
	case usecase.StatusAdjusted:
		h.metrics.EntriesAdjusted.Inc()
	case usecase.StatusNoop:
		h.metrics.EntriesNoop.Inc()
	}
}

func (h *PostingHandler) countError(err error) {
	if h.metrics == nil {
		return
	}

	h.metrics.PostingErrors.WithLabelValues(errorType(err)).Inc()
}

func errorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownTenant):
		return "unknown_tenant"
	case errors.Is(err, domain.ErrUnknownEntry):
		return "unknown_entry"
	case errors.Is(err, domain.ErrUnknownMovement):
		return "unknown_movement"
	case errors.Is(err, domain.ErrInvalidDocument):
		return "invalid_document"
	case errors.Is(err, domain.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, domain.ErrSchemaMismatch):
		return "schema_mismatch"
	case errors.Is(err, domain.ErrEmptyPosting):
		return "empty_posting"
	case errors.Is(err, domain.ErrUnbalancedEntry):
		return "unbalanced_entry"
	case errors.Is(err, domain.ErrUnbalancedAdjustment):
		return "unbalanced_adjustment"
	case errors.Is(err, domain.ErrNonMonotonicAdjustment):
		return "non_monotonic_adjustment"
	default:
		return "internal"
	}
}
