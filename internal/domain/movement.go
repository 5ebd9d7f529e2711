package domain

import (
	"github.com/shopspring/decimal"
)

// MovementKind is the side of an account leg.
type MovementKind string

const (
	Debit  MovementKind = "debit"
	Credit MovementKind = "credit"
)

// Valid reports whether the kind is one of the two declared sides.
func (k MovementKind) Valid() bool {
	return k == Debit || k == Credit
}

// Movement is one account leg of a posting: a signed monetary amount
// attached to an account, optionally scoped to an accountable entity.
// Movements are immutable once constructed.
type Movement struct {
	Kind        MovementKind
	AccountName string
	Accountable *Accountable
	Amount      Money
}

// NewMovement creates a movement for one account leg.
func NewMovement(kind MovementKind, accountName string, accountable *Accountable, amount Money) Movement {
	return Movement{
		Kind:        kind,
		AccountName: accountName,
		Accountable: accountable,
		Amount:      amount,
	}
}

// SignedAmount returns the amount adjusted by kind: debits are positive,
// credits are negative. Trial balance sums these per currency.
func (m Movement) SignedAmount() decimal.Decimal {
	if m.Kind == Credit {
		return m.Amount.Amount.Neg()
	}

	return m.Amount.Amount
}

// IsCredit reports whether the movement sits on the credit side.
func (m Movement) IsCredit() bool {
	return m.Kind == Credit
}

// IsDebit reports whether the movement sits on the debit side.
func (m Movement) IsDebit() bool {
	return m.Kind == Debit
}

// Currency returns the movement's currency code.
func (m Movement) Currency() string {
	return m.Amount.Currency
}

// SameLeg reports whether two movements address the same account leg:
// account name, kind, accountable identity and currency all match.
// Amounts are deliberately excluded; reconciliation measures the
// difference between amounts on matching legs.
func (m Movement) SameLeg(other Movement) bool {
	return m.AccountName == other.AccountName &&
		m.Kind == other.Kind &&
		m.Currency() == other.Currency() &&
		AccountableEqual(m.Accountable, other.Accountable)
}
