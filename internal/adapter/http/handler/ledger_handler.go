package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/iho/ledgerpost/internal/adapter/http/dto"
	"github.com/iho/ledgerpost/internal/domain"
	"github.com/iho/ledgerpost/internal/usecase"
)

// positionCacheTTL bounds staleness of cached position reads when
// invalidation is missed.
const positionCacheTTL = 30 * time.Second

// LedgerHandler serves the read side: the audit trail and net position
// of a (tenant, entry code, document) triple.
type LedgerHandler struct {
	ledgerUC *usecase.LedgerUseCase
	cache    usecase.Cache
}

// NewLedgerHandler creates a new LedgerHandler. cache may be nil to
// disable position caching.
func NewLedgerHandler(ledgerUC *usecase.LedgerUseCase, cache usecase.Cache) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: ledgerUC,
		cache:    cache,
	}
}

// Entries lists the posted entries of a triple in creation order.
func (h *LedgerHandler) Entries(w http.ResponseWriter, r *http.Request) {
	tenant, code, document, ok := tripleFromQuery(w, r)
	if !ok {
		return
	}

	entries, err := h.ledgerUC.Entries(r.Context(), tenant, code, document)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
}

// Lines lists the posted lines of a triple.
func (h *LedgerHandler) Lines(w http.ResponseWriter, r *http.Request) {
	tenant, code, document, ok := tripleFromQuery(w, r)
	if !ok {
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	lines, err := h.ledgerUC.Lines(r.Context(), tenant, code, document, limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list lines", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LinesFromDomain(lines))
}

// Position returns the net posted movement per account leg of a triple.
func (h *LedgerHandler) Position(w http.ResponseWriter, r *http.Request) {
	tenant, code, document, ok := tripleFromQuery(w, r)
	if !ok {
		return
	}

	key := positionCacheKey(tenant, code, document)
	if h.cache != nil {
		if cached, err := h.cache.Get(r.Context(), key); err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "hit")
			w.Write([]byte(cached))
			return
		}
	}

	movements, err := h.ledgerUC.Position(r.Context(), tenant, code, document)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute position", err.Error())
		return
	}

	resp := dto.PositionFromMovements(movements)

	if h.cache != nil {
		if body, err := json.Marshal(resp); err == nil {
			_ = h.cache.Set(r.Context(), key, string(body), positionCacheTTL)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// tripleFromQuery extracts the triple from query parameters, writing a
// 400 when a part is missing.
func tripleFromQuery(w http.ResponseWriter, r *http.Request) (domain.TenantRef, string, domain.Document, bool) {
	q := r.URL.Query()

	tenant := domain.TenantRef{Type: q.Get("tenant_type"), ID: q.Get("tenant_id")}
	code := q.Get("code")
	document := domain.Document{Type: q.Get("document_type"), ID: q.Get("document_id")}

	if tenant.Type == "" || tenant.ID == "" || code == "" || document.Type == "" || document.ID == "" {
		writeError(w, http.StatusBadRequest, "missing triple",
			"tenant_type, tenant_id, code, document_type and document_id are required")
		return domain.TenantRef{}, "", domain.Document{}, false
	}

	return tenant, code, document, true
}

// positionCacheKey builds a stable cache key for one triple's position.
func positionCacheKey(tenant domain.TenantRef, code string, document domain.Document) string {
	return fmt.Sprintf("position:%s:%s:%s:%s:%s", tenant.Type, tenant.ID, code, document.Type, document.ID)
}
