package usecase

import (
	"context"
	"fmt"

	"github.com/iho/ledgerpost/internal/definition"
	"github.com/iho/ledgerpost/internal/domain"
)

// LedgerUseCase serves the read side of the ledger: the audit trail and
// the net position of a (tenant, entry code, document) triple. It never
// writes.
type LedgerUseCase struct {
	registry  *definition.Registry
	entryRepo EntryRepository
	lineRepo  LineRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(registry *definition.Registry, entryRepo EntryRepository, lineRepo LineRepository) *LedgerUseCase {
	return &LedgerUseCase{
		registry:  registry,
		entryRepo: entryRepo,
		lineRepo:  lineRepo,
	}
}

// Entries lists every posted entry for a triple in creation order: the
// original posting plus any adjustments.
func (uc *LedgerUseCase) Entries(ctx context.Context, tenant domain.TenantRef, code string, document domain.Document) ([]*domain.Entry, error) {
	if _, _, err := uc.resolve(tenant, code); err != nil {
		return nil, err
	}

	return uc.entryRepo.ListByTriple(ctx, tenant, code, document)
}

// Lines lists the posted lines for a triple, newest first.
func (uc *LedgerUseCase) Lines(ctx context.Context, tenant domain.TenantRef, code string, document domain.Document, limit, offset int) ([]*domain.Line, error) {
	if _, _, err := uc.resolve(tenant, code); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 20
	}

	if limit > 100 {
		limit = 100
	}

	if offset < 0 {
		offset = 0
	}

	return uc.lineRepo.ListByTriple(ctx, tenant, code, document, limit, offset)
}

// Position returns the net posted movement per account leg for a triple:
// the same reduction the posting engine reconciles against.
func (uc *LedgerUseCase) Position(ctx context.Context, tenant domain.TenantRef, code string, document domain.Document) ([]domain.Movement, error) {
	_, entryDef, err := uc.resolve(tenant, code)
	if err != nil {
		return nil, err
	}

	return netMovements(ctx, nil, uc.lineRepo, tenant, entryDef, document)
}

func (uc *LedgerUseCase) resolve(tenant domain.TenantRef, code string) (*definition.TenantDef, *definition.EntryDef, error) {
	tenantDef, ok := uc.registry.FindTenant(tenant.Type)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnknownTenant, tenant.Type)
	}

	entryDef, ok := tenantDef.FindEntry(code)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s for tenant %s", domain.ErrUnknownEntry, code, tenant.Type)
	}

	return tenantDef, entryDef, nil
}
