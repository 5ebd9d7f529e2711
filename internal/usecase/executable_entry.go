package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/iho/ledgerpost/internal/definition"
	"github.com/iho/ledgerpost/internal/domain"
)

// ExecutableEntry aggregates the movements proposed for one
// (tenant, entry code, document) triple. It is scoped to a single
// posting call: build it, add movements, hand it to the EntryExecutor
// and discard it. It performs no I/O of its own except reconstructing
// the previously posted movement set on demand.
type ExecutableEntry struct {
	tenant    domain.TenantRef
	tenantDef *definition.TenantDef
	entryDef  *definition.EntryDef
	document  domain.Document
	entryDate time.Time
	movements []domain.Movement
}

// NewExecutableEntry resolves the tenant and entry definitions for a
// posting and validates the document and date against them.
func NewExecutableEntry(
	reg *definition.Registry,
	tenant domain.TenantRef,
	document domain.Document,
	entryCode string,
	entryDate time.Time,
) (*ExecutableEntry, error) {
	tenantDef, ok := reg.FindTenant(tenant.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTenant, tenant.Type)
	}

	entryDef, ok := tenantDef.FindEntry(entryCode)
	if !ok {
		return nil, fmt.Errorf("%w: %s for tenant %s", domain.ErrUnknownEntry, entryCode, tenant.Type)
	}

	if document.Type != entryDef.DocumentType {
		return nil, fmt.Errorf("%w: %s entry expects a %s document, got %s",
			domain.ErrInvalidDocument, entryCode, entryDef.DocumentType, document.Type)
	}

	if entryDate.IsZero() {
		return nil, fmt.Errorf("%w: zero entry date", domain.ErrInvalidDate)
	}

	return &ExecutableEntry{
		tenant:    tenant,
		tenantDef: tenantDef,
		entryDef:  entryDef,
		document:  document,
		entryDate: truncateToDate(entryDate),
	}, nil
}

// AddMovement resolves the movement definition matching the leg and
// appends a new movement. Pure in-memory accumulation; repeatable.
func (e *ExecutableEntry) AddMovement(
	kind domain.MovementKind,
	accountName string,
	accountable *domain.Accountable,
	amount domain.Money,
) (domain.Movement, error) {
	var accountableType string
	if accountable != nil {
		accountableType = accountable.Type
	}

	def, ok := e.entryDef.FindMovement(kind, accountName, accountableType)
	if !ok {
		return domain.Movement{}, fmt.Errorf("%w: %s %s with accountable %q for entry %s",
			domain.ErrUnknownMovement, kind, accountName, accountableType, e.entryDef.Code)
	}

	movement, err := def.Movement(accountable, amount)
	if err != nil {
		return domain.Movement{}, err
	}

	e.movements = append(e.movements, movement)

	return movement, nil
}

// Movements returns a copy of the proposed movement set.
func (e *ExecutableEntry) Movements() []domain.Movement {
	out := make([]domain.Movement, len(e.movements))
	copy(out, e.movements)

	return out
}

// Code returns the entry code.
func (e *ExecutableEntry) Code() string {
	return e.entryDef.Code
}

// Tenant returns the tenant reference.
func (e *ExecutableEntry) Tenant() domain.TenantRef {
	return e.tenant
}

// Document returns the source document reference.
func (e *ExecutableEntry) Document() domain.Document {
	return e.document
}

// EntryDate returns the posting date, truncated to a calendar day.
func (e *ExecutableEntry) EntryDate() time.Time {
	return e.entryDate
}

// OldMovements reconstructs the movements currently posted for this
// triple: for each declared leg it sums existing line amounts grouped by
// accountable and currency, yielding one synthetic movement per group
// with the net historical amount. The result is independent of how many
// prior entries contributed. Empty when nothing was posted before.
func (e *ExecutableEntry) OldMovements(ctx context.Context, tx Transaction, lines LineRepository) ([]domain.Movement, error) {
	return netMovements(ctx, tx, lines, e.tenant, e.entryDef, e.document)
}

// netMovements reduces the posted lines of a triple to one synthetic
// movement per (leg, accountable, currency) group, carrying the summed
// amount. Groups that net to zero are kept: a zeroed leg still needs a
// matching new movement during reconciliation.
func netMovements(
	ctx context.Context,
	tx Transaction,
	lines LineRepository,
	tenant domain.TenantRef,
	entryDef *definition.EntryDef,
	document domain.Document,
) ([]domain.Movement, error) {
	var found []domain.Movement

	for _, def := range entryDef.Movements {
		groups, err := lines.SumGrouped(ctx, tx, LineGroupQuery{
			Tenant:          tenant,
			EntryCode:       entryDef.Code,
			Document:        document,
			AccountName:     def.AccountName,
			AccountableType: def.AccountableType,
		})
		if err != nil {
			return nil, fmt.Errorf("sum posted lines for %s: %w", def.AccountName, err)
		}

		for _, g := range groups {
			var accountable *domain.Accountable
			if def.AccountableType != "" {
				accountable = &domain.Accountable{Type: def.AccountableType, ID: g.AccountableID}
			}

			found = append(found, domain.NewMovement(
				def.Kind,
				def.AccountName,
				accountable,
				domain.NewMoney(g.Amount, g.Currency),
			))
		}
	}

	return found, nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
