// Package definition holds the chart-of-accounts and entry schemas the
// posting engine validates against. A Registry is built once at startup,
// validated eagerly, and is immutable afterwards; the engine only reads
// from it.
package definition

import (
	"fmt"
	"sort"

	"github.com/iho/ledgerpost/internal/domain"
)

// AccountType classifies an account in the chart of accounts.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Income    AccountType = "income"
	Expense   AccountType = "expense"
	Equity    AccountType = "equity"
)

// Valid reports whether the account type is one of the declared kinds.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Income, Expense, Equity:
		return true
	}

	return false
}

// AccountDef declares one account under a tenant. Type and Contra are
// chart metadata carried for reporting consumers; the posting engine
// derives signs from the movement kind alone and attaches no
// sign-convention behavior to them.
type AccountDef struct {
	Name     string
	Type     AccountType
	Currency string
	Contra   bool
}

// MovementDef declares one allowed account leg under an entry: the side,
// the account and the accountable type a movement on that leg must carry.
type MovementDef struct {
	Kind            domain.MovementKind
	AccountName     string
	AccountType     AccountType
	AccountableType string
	Currency        string
}

// Movement constructs a movement from this definition, validating the
// accountable reference and the amount currency against the schema.
func (d *MovementDef) Movement(accountable *domain.Accountable, amount domain.Money) (domain.Movement, error) {
	switch {
	case d.AccountableType == "" && accountable != nil:
		return domain.Movement{}, fmt.Errorf(
			"%w: account %s takes no accountable, got %s",
			domain.ErrSchemaMismatch, d.AccountName, accountable.Type)
	case d.AccountableType != "" && accountable == nil:
		return domain.Movement{}, fmt.Errorf(
			"%w: account %s requires a %s accountable",
			domain.ErrSchemaMismatch, d.AccountName, d.AccountableType)
	case accountable != nil && accountable.Type != d.AccountableType:
		return domain.Movement{}, fmt.Errorf(
			"%w: account %s requires a %s accountable, got %s",
			domain.ErrSchemaMismatch, d.AccountName, d.AccountableType, accountable.Type)
	}

	if amount.Currency != d.Currency {
		return domain.Movement{}, fmt.Errorf(
			"%w: account %s is denominated in %s, got %s",
			domain.ErrSchemaMismatch, d.AccountName, d.Currency, amount.Currency)
	}

	return domain.NewMovement(d.Kind, d.AccountName, accountable, amount), nil
}

// EntryDef declares one entry schema: a code, the document type postings
// must reference and the movement legs the entry allows.
type EntryDef struct {
	Code         string
	DocumentType string
	Movements    []MovementDef
}

// FindMovement resolves the movement definition matching kind, account
// name and accountable type. accountableType is empty for movements
// without an accountable reference.
func (e *EntryDef) FindMovement(kind domain.MovementKind, accountName, accountableType string) (*MovementDef, bool) {
	for i := range e.Movements {
		m := &e.Movements[i]
		if m.Kind == kind && m.AccountName == accountName && m.AccountableType == accountableType {
			return m, true
		}
	}

	return nil, false
}

// TenantDef declares one tenant: its base currency, chart of accounts and
// entry schemas.
type TenantDef struct {
	Type     string
	Currency string
	accounts map[string]*AccountDef
	entries  map[string]*EntryDef
}

// FindAccount resolves an account by name.
func (t *TenantDef) FindAccount(name string) (*AccountDef, bool) {
	a, ok := t.accounts[name]
	return a, ok
}

// FindEntry resolves an entry definition by code.
func (t *TenantDef) FindEntry(code string) (*EntryDef, bool) {
	e, ok := t.entries[code]
	return e, ok
}

// Accounts returns the number of declared accounts.
func (t *TenantDef) Accounts() int {
	return len(t.accounts)
}

// Entries returns the number of declared entry schemas.
func (t *TenantDef) Entries() int {
	return len(t.entries)
}

// Registry is the immutable set of tenant definitions the engine resolves
// against. Build one with a Builder or the YAML loader and share it
// freely; it is safe for concurrent reads.
type Registry struct {
	tenants map[string]*TenantDef
}

// FindTenant resolves a tenant definition by tenant type.
func (r *Registry) FindTenant(tenantType string) (*TenantDef, bool) {
	t, ok := r.tenants[tenantType]
	return t, ok
}

// Tenants returns the number of registered tenant definitions.
func (r *Registry) Tenants() int {
	return len(r.tenants)
}

// TenantTypes returns the registered tenant types in sorted order.
func (r *Registry) TenantTypes() []string {
	types := make([]string, 0, len(r.tenants))
	for t := range r.tenants {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
