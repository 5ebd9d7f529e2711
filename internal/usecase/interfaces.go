package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerpost/internal/domain"
)

// LineGroupQuery selects the posted lines of one account leg under a
// (tenant, entry code, document) triple.
type LineGroupQuery struct {
	Tenant          domain.TenantRef
	EntryCode       string
	Document        domain.Document
	AccountName     string
	AccountableType string
}

// LineGroup is the net posted amount for one (accountable, currency)
// group of an account leg.
type LineGroup struct {
	AccountableID string
	Currency      string
	Amount        decimal.Decimal
}

// EntryRepository defines data access for posted entries.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.Entry) error
	// FindLatest returns the most recent entry for the triple by creation
	// order, or domain.ErrEntryNotFound.
	FindLatest(ctx context.Context, tx Transaction, tenant domain.TenantRef, code string, document domain.Document) (*domain.Entry, error)
	// LockTriple serializes concurrent executions for one triple within
	// the given transaction. The lock must be released on commit or
	// rollback.
	LockTriple(ctx context.Context, tx Transaction, tenant domain.TenantRef, code string, document domain.Document) error
	ListByTriple(ctx context.Context, tenant domain.TenantRef, code string, document domain.Document) ([]*domain.Entry, error)
}

// LineRepository defines data access for posted lines.
type LineRepository interface {
	Create(ctx context.Context, tx Transaction, line *domain.Line) error
	// SumGrouped sums line amounts for one account leg, grouped by
	// accountable ID and currency. A nil tx reads outside any transaction.
	SumGrouped(ctx context.Context, tx Transaction, q LineGroupQuery) ([]LineGroup, error)
	ListByTriple(ctx context.Context, tenant domain.TenantRef, code string, document domain.Document, limit, offset int) ([]*domain.Line, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache handles short-lived response caching.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
