package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerpost/internal/domain"
)

func usd(minorUnits int64) domain.Money {
	return domain.NewMoneyFromInt(minorUnits, "USD")
}

func clp(minorUnits int64) domain.Money {
	return domain.NewMoneyFromInt(minorUnits, "CLP")
}

func TestReconcile(t *testing.T) {
	customer := &domain.Accountable{Type: "customer", ID: "1"}
	other := &domain.Accountable{Type: "customer", ID: "2"}

	tests := []struct {
		name     string
		old      []domain.Movement
		proposed []domain.Movement
		expected []domain.Movement
	}{
		{
			name: "identical sets produce nothing",
			old: []domain.Movement{
				domain.NewMovement(domain.Debit, "cash", customer, usd(1000)),
				domain.NewMovement(domain.Credit, "revenue", customer, usd(1000)),
			},
			proposed: []domain.Movement{
				domain.NewMovement(domain.Debit, "cash", customer, usd(1000)),
				domain.NewMovement(domain.Credit, "revenue", customer, usd(1000)),
			},
			expected: nil,
		},
		{
			name: "amount change yields delta per leg",
			old: []domain.Movement{
				domain.NewMovement(domain.Debit, "cash", customer, usd(1000)),
				domain.NewMovement(domain.Credit, "revenue", customer, usd(1000)),
			},
			proposed: []domain.Movement{
				domain.NewMovement(domain.Debit, "cash", customer, usd(1500)),
				domain.NewMovement(domain.Credit, "revenue", customer, usd(1500)),
			},
			expected: []domain.Movement{
				domain.NewMovement(domain.Debit, "cash", customer, usd(500)),
				domain.NewMovement(domain.Credit, "revenue", customer, usd(500)),
			},
		},
		{
			name: "vanished leg is reversed",
			old: []domain.Movement{
				domain.NewMovement(domain.Debit, "cash", customer, usd(1000)),
			},
			proposed: []domain.Movement{
				domain.NewMovement(domain.Debit, "cash", other, usd(1000)),
			},
			expected: []domain.Movement{
				domain.NewMovement(domain.Debit, "cash", customer, usd(-1000)),
				domain.NewMovement(domain.Debit, "cash", other, usd(1000)),
			},
		},
		{
			name: "brand new leg carried as-is",
			old:  nil,
			proposed: []domain.Movement{
				domain.NewMovement(domain.Credit, "revenue", customer, usd(700)),
			},
			expected: []domain.Movement{
				domain.NewMovement(domain.Credit, "revenue", customer, usd(700)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reconcile(tt.old, tt.proposed)

			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d adjustments, got %d", len(tt.expected), len(got))
			}

			for i, want := range tt.expected {
				if !got[i].SameLeg(want) {
					t.Errorf("adjustment %d addresses the wrong leg: %+v", i, got[i])
				}
				if !got[i].Amount.Amount.Equal(want.Amount.Amount) {
					t.Errorf("adjustment %d: expected amount %s, got %s", i, want.Amount.Amount, got[i].Amount.Amount)
				}
			}
		})
	}
}

func TestReconcile_DoesNotMutateProposal(t *testing.T) {
	customer := &domain.Accountable{Type: "customer", ID: "1"}
	old := []domain.Movement{
		domain.NewMovement(domain.Debit, "cash", customer, usd(1000)),
	}
	proposed := []domain.Movement{
		domain.NewMovement(domain.Debit, "cash", customer, usd(1500)),
		domain.NewMovement(domain.Credit, "revenue", customer, usd(1500)),
	}

	reconcile(old, proposed)

	if len(proposed) != 2 {
		t.Fatal("reconcile must work on its own pool copy")
	}
	if !proposed[0].Amount.Amount.Equal(decimal.NewFromInt(1500)) {
		t.Error("proposed movement amounts must stay untouched")
	}
}

func TestValidateTrialBalance(t *testing.T) {
	customer := &domain.Accountable{Type: "customer", ID: "1"}

	tests := []struct {
		name      string
		movements []domain.Movement
		wantErr   error
	}{
		{
			name: "balanced single currency",
			movements: []domain.Movement{
				domain.NewMovement(domain.Debit, "cash", customer, usd(1000)),
				domain.NewMovement(domain.Credit, "revenue", customer, usd(1000)),
			},
		},
		{
			name: "unbalanced single currency",
			movements: []domain.Movement{
				domain.NewMovement(domain.Debit, "cash", customer, usd(1000)),
				domain.NewMovement(domain.Credit, "revenue", customer, usd(900)),
			},
			wantErr: domain.ErrUnbalancedEntry,
		},
		{
			name: "balanced within each currency",
			movements: []domain.Movement{
				domain.NewMovement(domain.Debit, "cash", customer, usd(1000)),
				domain.NewMovement(domain.Credit, "revenue", customer, usd(1000)),
				domain.NewMovement(domain.Debit, "clp_cash", customer, clp(800)),
				domain.NewMovement(domain.Credit, "clp_revenue", customer, clp(800)),
			},
		},
		{
			name: "currencies must not cancel each other",
			movements: []domain.Movement{
				domain.NewMovement(domain.Debit, "cash", customer, usd(1000)),
				domain.NewMovement(domain.Credit, "clp_revenue", customer, clp(1000)),
			},
			wantErr: domain.ErrUnbalancedEntry,
		},
		{
			name: "signed deltas balance in an adjustment",
			movements: []domain.Movement{
				domain.NewMovement(domain.Debit, "cash", customer, usd(-400)),
				domain.NewMovement(domain.Credit, "revenue", customer, usd(-400)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTrialBalance(tt.movements, domain.ErrUnbalancedEntry)

			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
