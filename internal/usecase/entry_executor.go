package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerpost/internal/domain"
)

// ExecutionStatus reports what Execute committed.
type ExecutionStatus string

const (
	// StatusPosted means a fresh entry was committed for the triple.
	StatusPosted ExecutionStatus = "posted"
	// StatusAdjusted means an adjustment entry reconciling prior state
	// was committed.
	StatusAdjusted ExecutionStatus = "adjusted"
	// StatusNoop means the request matched what is already posted and
	// nothing was written.
	StatusNoop ExecutionStatus = "noop"
)

// ExecutionResult is the outcome of a successful Execute call.
type ExecutionResult struct {
	Entry  *domain.Entry
	Status ExecutionStatus
	Lines  int
}

// EntryExecutor posts executable entries: it validates the proposed
// movement set, reconciles it against what is already posted for the
// triple and commits the result in one transaction. History is
// append-only; re-posting a triple emits a delta entry instead of
// touching prior lines.
type EntryExecutor struct {
	txManager TransactionManager
	entryRepo EntryRepository
	lineRepo  LineRepository
	idGen     IDGenerator
	retrier   Retrier
}

// NewEntryExecutor creates a new EntryExecutor. retrier may be nil to
// disable retries on transient storage failures.
func NewEntryExecutor(
	txManager TransactionManager,
	entryRepo EntryRepository,
	lineRepo LineRepository,
	idGen IDGenerator,
	retrier Retrier,
) *EntryExecutor {
	return &EntryExecutor{
		txManager: txManager,
		entryRepo: entryRepo,
		lineRepo:  lineRepo,
		idGen:     idGen,
		retrier:   retrier,
	}
}

// Execute runs the posting pipeline for one executable entry. It is the
// only side-effecting operation of the engine. Validation failures and
// rolled-back transactions leave no persisted state.
func (ex *EntryExecutor) Execute(ctx context.Context, entry *ExecutableEntry) (*ExecutionResult, error) {
	movements := entry.Movements()
	if len(movements) == 0 {
		return nil, domain.ErrEmptyPosting
	}

	if err := validateTrialBalance(movements, domain.ErrUnbalancedEntry); err != nil {
		return nil, err
	}

	if ex.retrier == nil {
		return ex.executeOnce(ctx, entry, movements)
	}

	var result *ExecutionResult
	err := ex.retrier.Retry(ctx, func() error {
		r, err := ex.executeOnce(ctx, entry, movements)
		if err != nil {
			return err
		}

		result = r

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (ex *EntryExecutor) executeOnce(ctx context.Context, entry *ExecutableEntry, movements []domain.Movement) (*ExecutionResult, error) {
	tx, err := ex.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	tenant, code, document := entry.Tenant(), entry.Code(), entry.Document()

	// Serialize concurrent postings for this triple: the read-latest plus
	// write-new-entry sequence below must not interleave.
	if err := ex.entryRepo.LockTriple(ctx, tx, tenant, code, document); err != nil {
		return nil, err
	}

	existing, err := ex.entryRepo.FindLatest(ctx, tx, tenant, code, document)
	if err != nil && !errors.Is(err, domain.ErrEntryNotFound) {
		return nil, err
	}

	if existing == nil {
		committed, err := ex.commitEntry(ctx, tx, entry, movements)
		if err != nil {
			return nil, err
		}

		return &ExecutionResult{Entry: committed, Status: StatusPosted, Lines: len(movements)}, nil
	}

	old, err := entry.OldMovements(ctx, tx, ex.lineRepo)
	if err != nil {
		return nil, err
	}

	adjusted := reconcile(old, movements)
	if len(adjusted) == 0 {
		// Exact re-submission: already posted, nothing to write.
		return &ExecutionResult{Status: StatusNoop}, nil
	}

	if err := validateTrialBalance(adjusted, domain.ErrUnbalancedAdjustment); err != nil {
		return nil, err
	}

	if entry.EntryDate().Before(existing.EntryDate) {
		return nil, fmt.Errorf("%w: adjustment dated %s corrects an entry dated %s",
			domain.ErrNonMonotonicAdjustment,
			entry.EntryDate().Format(time.DateOnly),
			existing.EntryDate.Format(time.DateOnly))
	}

	committed, err := ex.commitEntry(ctx, tx, entry, adjusted)
	if err != nil {
		return nil, err
	}

	return &ExecutionResult{Entry: committed, Status: StatusAdjusted, Lines: len(adjusted)}, nil
}

// commitEntry writes the entry row and one line per movement, then
// commits the transaction.
func (ex *EntryExecutor) commitEntry(ctx context.Context, tx Transaction, entry *ExecutableEntry, movements []domain.Movement) (*domain.Entry, error) {
	now := time.Now().UTC()
	tenant, document := entry.Tenant(), entry.Document()

	row := &domain.Entry{
		ID:           ex.idGen.Generate(),
		TenantType:   tenant.Type,
		TenantID:     tenant.ID,
		Code:         entry.Code(),
		DocumentType: document.Type,
		DocumentID:   document.ID,
		EntryDate:    entry.EntryDate(),
		CreatedAt:    now,
	}

	if err := ex.entryRepo.Create(ctx, tx, row); err != nil {
		return nil, err
	}

	for _, m := range movements {
		line := &domain.Line{
			ID:           ex.idGen.Generate(),
			EntryID:      row.ID,
			TenantType:   tenant.Type,
			TenantID:     tenant.ID,
			EntryCode:    row.Code,
			DocumentType: document.Type,
			DocumentID:   document.ID,
			AccountName:  m.AccountName,
			Amount:       m.Amount.Amount,
			Currency:     m.Currency(),
			CreatedAt:    now,
		}
		if m.Accountable != nil {
			line.AccountableType = m.Accountable.Type
			line.AccountableID = m.Accountable.ID
		}

		if err := ex.lineRepo.Create(ctx, tx, line); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return row, nil
}

// reconcile computes the adjustment set between the net posted movements
// and the newly proposed ones. Matched legs contribute their amount
// delta, legs that vanished from the proposal are reversed, and proposed
// legs with no history are carried as-is. An empty result means the
// proposal matches the posted state exactly.
func reconcile(old, proposed []domain.Movement) []domain.Movement {
	pool := make([]domain.Movement, len(proposed))
	copy(pool, proposed)

	var adjusted []domain.Movement
	for _, o := range old {
		newAmount := domain.NewMoney(decimal.Zero, o.Currency())

		for i, n := range pool {
			if o.SameLeg(n) {
				newAmount = n.Amount
				pool = append(pool[:i], pool[i+1:]...)

				break
			}
		}

		delta := newAmount.Sub(o.Amount)
		if delta.IsZero() {
			continue
		}

		adjusted = append(adjusted, domain.NewMovement(o.Kind, o.AccountName, o.Accountable, delta))
	}

	return append(adjusted, pool...)
}

// validateTrialBalance checks that signed amounts sum to zero within
// each currency. Balancing is per currency: amounts in different
// currencies never cancel each other.
func validateTrialBalance(movements []domain.Movement, sentinel error) error {
	sums := make(map[string]decimal.Decimal)
	for _, m := range movements {
		sums[m.Currency()] = sums[m.Currency()].Add(m.SignedAmount())
	}

	for currency, sum := range sums {
		if !sum.IsZero() {
			return fmt.Errorf("%w: %s is off by %s", sentinel, currency, sum)
		}
	}

	return nil
}
