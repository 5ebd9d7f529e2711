package definition

import (
	"errors"
	"fmt"

	"github.com/iho/ledgerpost/internal/domain"
)

// ErrDefinition reports an invalid chart-of-accounts declaration. All
// builder failures wrap it, so callers can detect configuration errors
// with a single errors.Is check.
var ErrDefinition = errors.New("invalid ledger definition")

// builderState tracks where the builder is in the declaration sequence.
type builderState int

const (
	stateIdle builderState = iota
	stateTenant
	stateAccounts
)

func (s builderState) String() string {
	switch s {
	case stateTenant:
		return "tenant"
	case stateAccounts:
		return "accounts"
	default:
		return "idle"
	}
}

// AccountOption customizes an account declaration.
type AccountOption func(*AccountDef)

// Contra marks the account as a contra account.
func Contra() AccountOption {
	return func(a *AccountDef) {
		a.Contra = true
	}
}

// InCurrency overrides the tenant base currency for one account.
func InCurrency(currency string) AccountOption {
	return func(a *AccountDef) {
		a.Currency = currency
	}
}

// Builder assembles a Registry through an explicit state machine:
// Tenant opens a tenant scope, Accounts opens the chart declaration,
// EndAccounts returns to the tenant scope where Entry/Debit/Credit
// declare entry schemas, and EndTenant closes the scope. Calls made in
// the wrong state fail; the first failure sticks and is returned from
// Build. All validation happens here so a bad configuration can never
// reach posting time.
type Builder struct {
	err     error
	state   builderState
	tenants map[string]*TenantDef

	current      *TenantDef
	currentEntry *EntryDef
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		state:   stateIdle,
		tenants: make(map[string]*TenantDef),
	}
}

// Tenant opens the declaration scope for one tenant type.
func (b *Builder) Tenant(tenantType string) *Builder {
	if !b.inState(stateIdle, "tenant") {
		return b
	}

	if tenantType == "" {
		return b.fail("tenant type cannot be empty")
	}

	if _, ok := b.tenants[tenantType]; ok {
		return b.fail("tenant %s is already defined", tenantType)
	}

	b.current = &TenantDef{
		Type:     tenantType,
		accounts: make(map[string]*AccountDef),
		entries:  make(map[string]*EntryDef),
	}
	b.tenants[tenantType] = b.current
	b.state = stateTenant

	return b
}

// Accounts opens the chart-of-accounts declaration and sets the tenant
// base currency. An empty currency defaults to DefaultCurrency.
func (b *Builder) Accounts(currency string) *Builder {
	if !b.inState(stateTenant, "accounts") {
		return b
	}

	if b.current.Accounts() > 0 {
		return b.fail("accounts for tenant %s are already defined", b.current.Type)
	}

	normalized, err := NormalizeCurrency(currency)
	if err != nil {
		b.err = fmt.Errorf("%w: %v", ErrDefinition, err)
		return b
	}

	b.current.Currency = normalized
	b.state = stateAccounts

	return b
}

// Asset declares an asset account.
func (b *Builder) Asset(name string, opts ...AccountOption) *Builder {
	return b.account(name, Asset, opts...)
}

// Liability declares a liability account.
func (b *Builder) Liability(name string, opts ...AccountOption) *Builder {
	return b.account(name, Liability, opts...)
}

// Income declares an income account.
func (b *Builder) Income(name string, opts ...AccountOption) *Builder {
	return b.account(name, Income, opts...)
}

// Expense declares an expense account.
func (b *Builder) Expense(name string, opts ...AccountOption) *Builder {
	return b.account(name, Expense, opts...)
}

// Equity declares an equity account.
func (b *Builder) Equity(name string, opts ...AccountOption) *Builder {
	return b.account(name, Equity, opts...)
}

func (b *Builder) account(name string, accountType AccountType, opts ...AccountOption) *Builder {
	if !b.inState(stateAccounts, string(accountType)) {
		return b
	}

	if name == "" {
		return b.fail("account name cannot be empty")
	}

	if _, ok := b.current.accounts[name]; ok {
		return b.fail("account %s is already defined for tenant %s", name, b.current.Type)
	}

	account := &AccountDef{
		Name:     name,
		Type:     accountType,
		Currency: b.current.Currency,
	}

	for _, opt := range opts {
		opt(account)
	}

	if account.Currency != b.current.Currency {
		normalized, err := NormalizeCurrency(account.Currency)
		if err != nil {
			b.err = fmt.Errorf("%w: account %s: %v", ErrDefinition, name, err)
			return b
		}
		account.Currency = normalized
	}

	b.current.accounts[name] = account

	return b
}

// EndAccounts closes the chart-of-accounts declaration.
func (b *Builder) EndAccounts() *Builder {
	if !b.inState(stateAccounts, "end accounts") {
		return b
	}

	if b.current.Accounts() == 0 {
		return b.fail("tenant %s declares no accounts", b.current.Type)
	}

	b.state = stateTenant

	return b
}

// Entry opens an entry schema declaration under the current tenant.
func (b *Builder) Entry(code, documentType string) *Builder {
	if !b.inState(stateTenant, "entry") {
		return b
	}

	if b.current.Accounts() == 0 {
		return b.fail("entry %s declared before any accounts", code)
	}

	if code == "" || documentType == "" {
		return b.fail("entry code and document type cannot be empty")
	}

	if _, ok := b.current.entries[code]; ok {
		return b.fail("entry %s is already defined for tenant %s", code, b.current.Type)
	}

	b.currentEntry = &EntryDef{Code: code, DocumentType: documentType}
	b.current.entries[code] = b.currentEntry

	return b
}

// Debit declares a debit leg on the current entry. accountableType is
// empty for legs that track no specific entity.
func (b *Builder) Debit(accountName, accountableType string) *Builder {
	return b.movement(domain.Debit, accountName, accountableType)
}

// Credit declares a credit leg on the current entry.
func (b *Builder) Credit(accountName, accountableType string) *Builder {
	return b.movement(domain.Credit, accountName, accountableType)
}

func (b *Builder) movement(kind domain.MovementKind, accountName, accountableType string) *Builder {
	if !b.inState(stateTenant, string(kind)) {
		return b
	}

	if b.currentEntry == nil {
		return b.fail("%s of %s declared outside an entry", kind, accountName)
	}

	account, ok := b.current.FindAccount(accountName)
	if !ok {
		return b.fail("entry %s references undeclared account %s", b.currentEntry.Code, accountName)
	}

	// Lines do not record a side, so one entry cannot reuse an
	// (account, accountable) pair on either side without making the
	// posted history ambiguous.
	for _, m := range b.currentEntry.Movements {
		if m.AccountName == accountName && m.AccountableType == accountableType {
			return b.fail("entry %s already declares a %s on %s for accountable %q",
				b.currentEntry.Code, m.Kind, accountName, accountableType)
		}
	}

	b.currentEntry.Movements = append(b.currentEntry.Movements, MovementDef{
		Kind:            kind,
		AccountName:     accountName,
		AccountType:     account.Type,
		AccountableType: accountableType,
		Currency:        account.Currency,
	})

	return b
}

// EndTenant closes the current tenant scope.
func (b *Builder) EndTenant() *Builder {
	if !b.inState(stateTenant, "end tenant") {
		return b
	}

	for code, entry := range b.current.entries {
		var debits, credits int
		for _, m := range entry.Movements {
			if m.Kind == domain.Debit {
				debits++
			} else {
				credits++
			}
		}

		if debits == 0 || credits == 0 {
			return b.fail("entry %s must declare at least one debit and one credit", code)
		}
	}

	b.current = nil
	b.currentEntry = nil
	b.state = stateIdle

	return b
}

// Build finalizes the registry. It fails if any declaration failed or a
// scope was left open.
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.state != stateIdle {
		return nil, fmt.Errorf("%w: unterminated %s block", ErrDefinition, b.state)
	}

	if len(b.tenants) == 0 {
		return nil, fmt.Errorf("%w: no tenants defined", ErrDefinition)
	}

	return &Registry{tenants: b.tenants}, nil
}

func (b *Builder) inState(want builderState, op string) bool {
	if b.err != nil {
		return false
	}

	if b.state != want {
		b.err = fmt.Errorf("%w: %q cannot run inside %q block", ErrDefinition, op, b.state)
		return false
	}

	return true
}

func (b *Builder) fail(format string, args ...any) *Builder {
	b.err = fmt.Errorf("%w: %s", ErrDefinition, fmt.Sprintf(format, args...))
	return b
}
