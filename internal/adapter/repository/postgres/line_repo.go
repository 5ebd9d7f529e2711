package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/ledgerpost/internal/domain"
	"github.com/iho/ledgerpost/internal/infrastructure/postgres/generated"
	"github.com/iho/ledgerpost/internal/usecase"
)

// LineRepository implements usecase.LineRepository.
type LineRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewLineRepository creates a new LineRepository.
func NewLineRepository(pool *pgxpool.Pool) *LineRepository {
	return &LineRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create persists a new line row.
func (r *LineRepository) Create(ctx context.Context, tx usecase.Transaction, line *domain.Line) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateLedgerLine(ctx, generated.CreateLedgerLineParams{
		ID:              line.ID,
		EntryID:         line.EntryID,
		TenantType:      line.TenantType,
		TenantID:        line.TenantID,
		EntryCode:       line.EntryCode,
		DocumentType:    line.DocumentType,
		DocumentID:      line.DocumentID,
		AccountName:     line.AccountName,
		AccountableType: line.AccountableType,
		AccountableID:   line.AccountableID,
		Currency:        line.Currency,
		Amount:          decimalToNumeric(line.Amount),
		CreatedAt:       timeToPgTimestamptz(line.CreatedAt),
	})

	return err
}

// SumGrouped sums line amounts for one account leg grouped by
// accountable ID and currency. A nil tx reads at pool level.
func (r *LineRepository) SumGrouped(ctx context.Context, tx usecase.Transaction, q usecase.LineGroupQuery) ([]usecase.LineGroup, error) {
	queries := r.queries
	if tx != nil {
		queries = generated.New(tx.(*Tx).PgxTx())
	}

	rows, err := queries.SumLedgerLinesByLeg(ctx, generated.SumLedgerLinesByLegParams{
		TenantType:      q.Tenant.Type,
		TenantID:        q.Tenant.ID,
		EntryCode:       q.EntryCode,
		DocumentType:    q.Document.Type,
		DocumentID:      q.Document.ID,
		AccountName:     q.AccountName,
		AccountableType: q.AccountableType,
	})
	if err != nil {
		return nil, err
	}

	groups := make([]usecase.LineGroup, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, usecase.LineGroup{
			AccountableID: row.AccountableID,
			Currency:      row.Currency,
			Amount:        numericToDecimal(row.Amount),
		})
	}

	return groups, nil
}

// ListByTriple returns lines for the triple in creation order.
func (r *LineRepository) ListByTriple(ctx context.Context, tenant domain.TenantRef, code string, document domain.Document, limit, offset int) ([]*domain.Line, error) {
	rows, err := r.queries.ListLedgerLinesByTriple(ctx, generated.ListLedgerLinesByTripleParams{
		TenantType:   tenant.Type,
		TenantID:     tenant.ID,
		EntryCode:    code,
		DocumentType: document.Type,
		DocumentID:   document.ID,
		Limit:        int32(limit),
		Offset:       int32(offset),
	})
	if err != nil {
		return nil, err
	}

	lines := make([]*domain.Line, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, &domain.Line{
			ID:              row.ID,
			EntryID:         row.EntryID,
			TenantType:      row.TenantType,
			TenantID:        row.TenantID,
			EntryCode:       row.EntryCode,
			DocumentType:    row.DocumentType,
			DocumentID:      row.DocumentID,
			AccountName:     row.AccountName,
			AccountableType: row.AccountableType,
			AccountableID:   row.AccountableID,
			Currency:        row.Currency,
			Amount:          numericToDecimal(row.Amount),
			CreatedAt:       row.CreatedAt.Time,
		})
	}

	return lines, nil
}
