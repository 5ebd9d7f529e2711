package postgres

import (
	"context"
	"errors"
	"hash/fnv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/ledgerpost/internal/domain"
	"github.com/iho/ledgerpost/internal/infrastructure/postgres/generated"
	"github.com/iho/ledgerpost/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create persists a new entry row.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateLedgerEntry(ctx, generated.CreateLedgerEntryParams{
		ID:           entry.ID,
		TenantType:   entry.TenantType,
		TenantID:     entry.TenantID,
		Code:         entry.Code,
		DocumentType: entry.DocumentType,
		DocumentID:   entry.DocumentID,
		EntryDate:    timeToPgDate(entry.EntryDate),
		CreatedAt:    timeToPgTimestamptz(entry.CreatedAt),
	})

	return err
}

// FindLatest returns the most recently created entry for the triple, or
// domain.ErrEntryNotFound.
func (r *EntryRepository) FindLatest(ctx context.Context, tx usecase.Transaction, tenant domain.TenantRef, code string, document domain.Document) (*domain.Entry, error) {
	queries := r.queries
	if tx != nil {
		queries = generated.New(tx.(*Tx).PgxTx())
	}

	row, err := queries.GetLatestLedgerEntry(ctx, generated.GetLatestLedgerEntryParams{
		TenantType:   tenant.Type,
		TenantID:     tenant.ID,
		Code:         code,
		DocumentType: document.Type,
		DocumentID:   document.ID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}

	return rowToEntry(row), nil
}

// LockTriple takes a transaction-scoped advisory lock keyed on the
// triple. The lock is released when the transaction ends.
func (r *EntryRepository) LockTriple(ctx context.Context, tx usecase.Transaction, tenant domain.TenantRef, code string, document domain.Document) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.LockLedgerTriple(ctx, tripleLockKey(tenant, code, document))
}

// ListByTriple returns all entries for the triple in creation order.
func (r *EntryRepository) ListByTriple(ctx context.Context, tenant domain.TenantRef, code string, document domain.Document) ([]*domain.Entry, error) {
	rows, err := r.queries.ListLedgerEntriesByTriple(ctx, generated.ListLedgerEntriesByTripleParams{
		TenantType:   tenant.Type,
		TenantID:     tenant.ID,
		Code:         code,
		DocumentType: document.Type,
		DocumentID:   document.ID,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries, nil
}

func rowToEntry(row generated.LedgerEntry) *domain.Entry {
	return &domain.Entry{
		ID:           row.ID,
		TenantType:   row.TenantType,
		TenantID:     row.TenantID,
		Code:         row.Code,
		DocumentType: row.DocumentType,
		DocumentID:   row.DocumentID,
		EntryDate:    row.EntryDate.Time,
		CreatedAt:    row.CreatedAt.Time,
	}
}

// tripleLockKey hashes the triple into the bigint keyspace of
// pg_advisory_xact_lock. Distinct triples may collide; a collision only
// costs extra serialization, never correctness.
func tripleLockKey(tenant domain.TenantRef, code string, document domain.Document) int64 {
	h := fnv.New64a()
	for _, part := range []string{tenant.Type, tenant.ID, code, document.Type, document.ID} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return int64(h.Sum64())
}
