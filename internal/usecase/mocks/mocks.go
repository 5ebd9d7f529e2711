package mocks

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerpost/internal/domain"
	"github.com/iho/ledgerpost/internal/usecase"
)

// MockStore is an in-memory ledger store shared by the mock repositories.
// Writes made through a transaction stay staged until Commit, so tests
// observe the same atomicity the real store guarantees.
type MockStore struct {
	mu      sync.RWMutex
	entries []*domain.Entry
	lines   []*domain.Line
}

// NewMockStore creates an empty store.
func NewMockStore() *MockStore {
	return &MockStore{}
}

// Entries returns all committed entries in creation order.
func (s *MockStore) Entries() []*domain.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Entry, len(s.entries))
	copy(out, s.entries)

	return out
}

// Lines returns all committed lines in creation order.
func (s *MockStore) Lines() []*domain.Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Line, len(s.lines))
	copy(out, s.lines)

	return out
}

// MockTx stages writes until Commit.
type MockTx struct {
	store      *MockStore
	entries    []*domain.Entry
	lines      []*domain.Line
	Committed  bool
	RolledBack bool

	CommitFunc func(ctx context.Context) error
}

func (t *MockTx) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.entries = append(t.store.entries, t.entries...)
	t.store.lines = append(t.store.lines, t.lines...)
	t.Committed = true

	return nil
}

func (t *MockTx) Rollback(ctx context.Context) error {
	if !t.Committed {
		t.entries = nil
		t.lines = nil
		t.RolledBack = true
	}

	return nil
}

// MockTransactionManager hands out staging transactions over one store.
type MockTransactionManager struct {
	Store *MockStore

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
	LastTx    *MockTx
}

func NewMockTransactionManager(store *MockStore) *MockTransactionManager {
	return &MockTransactionManager{Store: store}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}

	tx := &MockTx{store: m.Store}
	m.LastTx = tx

	return tx, nil
}

// MockEntryRepository is a mock implementation of EntryRepository.
type MockEntryRepository struct {
	Store *MockStore

	CreateFunc     func(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error
	FindLatestFunc func(ctx context.Context, tx usecase.Transaction, tenant domain.TenantRef, code string, document domain.Document) (*domain.Entry, error)
	LockTripleFunc func(ctx context.Context, tx usecase.Transaction, tenant domain.TenantRef, code string, document domain.Document) error
	LockCalls      int
}

func NewMockEntryRepository(store *MockStore) *MockEntryRepository {
	return &MockEntryRepository{Store: store}
}

func (m *MockEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}

	mtx, ok := tx.(*MockTx)
	if !ok {
		return errors.New("mock entry repository needs a MockTx")
	}
	mtx.entries = append(mtx.entries, entry)

	return nil
}

func (m *MockEntryRepository) FindLatest(ctx context.Context, tx usecase.Transaction, tenant domain.TenantRef, code string, document domain.Document) (*domain.Entry, error) {
	if m.FindLatestFunc != nil {
		return m.FindLatestFunc(ctx, tx, tenant, code, document)
	}

	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()

	for i := len(m.Store.entries) - 1; i >= 0; i-- {
		e := m.Store.entries[i]
		if matchesTriple(e.TenantType, e.TenantID, e.Code, e.DocumentType, e.DocumentID, tenant, code, document) {
			return e, nil
		}
	}

	return nil, domain.ErrEntryNotFound
}

func (m *MockEntryRepository) LockTriple(ctx context.Context, tx usecase.Transaction, tenant domain.TenantRef, code string, document domain.Document) error {
	m.LockCalls++
	if m.LockTripleFunc != nil {
		return m.LockTripleFunc(ctx, tx, tenant, code, document)
	}

	return nil
}

func (m *MockEntryRepository) ListByTriple(ctx context.Context, tenant domain.TenantRef, code string, document domain.Document) ([]*domain.Entry, error) {
	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()

	var out []*domain.Entry
	for _, e := range m.Store.entries {
		if matchesTriple(e.TenantType, e.TenantID, e.Code, e.DocumentType, e.DocumentID, tenant, code, document) {
			out = append(out, e)
		}
	}

	return out, nil
}

// MockLineRepository is a mock implementation of LineRepository.
type MockLineRepository struct {
	Store *MockStore

	CreateFunc     func(ctx context.Context, tx usecase.Transaction, line *domain.Line) error
	SumGroupedFunc func(ctx context.Context, tx usecase.Transaction, q usecase.LineGroupQuery) ([]usecase.LineGroup, error)
}

func NewMockLineRepository(store *MockStore) *MockLineRepository {
	return &MockLineRepository{Store: store}
}

func (m *MockLineRepository) Create(ctx context.Context, tx usecase.Transaction, line *domain.Line) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, line)
	}

	mtx, ok := tx.(*MockTx)
	if !ok {
		return errors.New("mock line repository needs a MockTx")
	}
	mtx.lines = append(mtx.lines, line)

	return nil
}

func (m *MockLineRepository) SumGrouped(ctx context.Context, tx usecase.Transaction, q usecase.LineGroupQuery) ([]usecase.LineGroup, error) {
	if m.SumGroupedFunc != nil {
		return m.SumGroupedFunc(ctx, tx, q)
	}

	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()

	type key struct {
		accountableID string
		currency      string
	}

	sums := make(map[key]decimal.Decimal)
	var order []key
	for _, l := range m.Store.lines {
		if !matchesTriple(l.TenantType, l.TenantID, l.EntryCode, l.DocumentType, l.DocumentID, q.Tenant, q.EntryCode, q.Document) {
			continue
		}

		if l.AccountName != q.AccountName || l.AccountableType != q.AccountableType {
			continue
		}

		k := key{accountableID: l.AccountableID, currency: l.Currency}
		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		sums[k] = sums[k].Add(l.Amount)
	}

	groups := make([]usecase.LineGroup, 0, len(order))
	for _, k := range order {
		groups = append(groups, usecase.LineGroup{
			AccountableID: k.accountableID,
			Currency:      k.currency,
			Amount:        sums[k],
		})
	}

	return groups, nil
}

func (m *MockLineRepository) ListByTriple(ctx context.Context, tenant domain.TenantRef, code string, document domain.Document, limit, offset int) ([]*domain.Line, error) {
	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()

	var matched []*domain.Line
	for i := len(m.Store.lines) - 1; i >= 0; i-- {
		l := m.Store.lines[i]
		if matchesTriple(l.TenantType, l.TenantID, l.EntryCode, l.DocumentType, l.DocumentID, tenant, code, document) {
			matched = append(matched, l)
		}
	}

	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}

	return matched, nil
}

// MockIDGenerator generates sequential IDs.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++

	return "id-" + strconv.Itoa(m.next)
}

// MockRetrier runs the operation once without retrying.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
	Calls     int
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	m.Calls++
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}

	return operation()
}

func matchesTriple(tenantType, tenantID, code, docType, docID string, tenant domain.TenantRef, wantCode string, document domain.Document) bool {
	return tenantType == tenant.Type &&
		tenantID == tenant.ID &&
		code == wantCode &&
		docType == document.Type &&
		docID == document.ID
}
