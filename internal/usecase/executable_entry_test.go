package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerpost/internal/domain"
	"github.com/iho/ledgerpost/internal/usecase"
)

func TestNewExecutableEntry(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		name     string
		tenant   domain.TenantRef
		document domain.Document
		code     string
		date     time.Time
		wantErr  error
	}{
		{
			name:     "valid posting context",
			tenant:   testTenant,
			document: invoice7,
			code:     "sale",
			date:     date(1),
		},
		{
			name:     "unknown tenant",
			tenant:   domain.TenantRef{Type: "franchise", ID: "1"},
			document: invoice7,
			code:     "sale",
			date:     date(1),
			wantErr:  domain.ErrUnknownTenant,
		},
		{
			name:     "unknown entry code",
			tenant:   testTenant,
			document: invoice7,
			code:     "refund",
			date:     date(1),
			wantErr:  domain.ErrUnknownEntry,
		},
		{
			name:     "wrong document type",
			tenant:   testTenant,
			document: domain.Document{Type: "receipt", ID: "7"},
			code:     "sale",
			date:     date(1),
			wantErr:  domain.ErrInvalidDocument,
		},
		{
			name:     "zero date",
			tenant:   testTenant,
			document: invoice7,
			code:     "sale",
			wantErr:  domain.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := usecase.NewExecutableEntry(reg, tt.tenant, tt.document, tt.code, tt.date)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if entry.Code() != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, entry.Code())
			}
		})
	}
}

func TestNewExecutableEntry_TruncatesDate(t *testing.T) {
	reg := newTestRegistry(t)

	stamp := time.Date(2024, time.March, 1, 15, 42, 7, 0, time.FixedZone("CLT", -4*3600))
	entry, err := usecase.NewExecutableEntry(reg, testTenant, invoice7, "sale", stamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !entry.EntryDate().Equal(want) {
		t.Errorf("expected entry date %s, got %s", want, entry.EntryDate())
	}
}

func TestExecutableEntry_AddMovement(t *testing.T) {
	reg := newTestRegistry(t)
	entry, err := usecase.NewExecutableEntry(reg, testTenant, invoice7, "sale", date(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("unknown movement", func(t *testing.T) {
		_, err := entry.AddMovement(domain.Credit, "cash", customer1, domain.NewMoneyFromInt(100, "USD"))
		if !errors.Is(err, domain.ErrUnknownMovement) {
			t.Errorf("expected ErrUnknownMovement, got %v", err)
		}
	})

	t.Run("schema mismatch on currency", func(t *testing.T) {
		_, err := entry.AddMovement(domain.Debit, "cash", customer1, domain.NewMoneyFromInt(100, "EUR"))
		if !errors.Is(err, domain.ErrSchemaMismatch) {
			t.Errorf("expected ErrSchemaMismatch, got %v", err)
		}
	})

	t.Run("accumulates movements in memory", func(t *testing.T) {
		if len(entry.Movements()) != 0 {
			t.Fatal("failed additions must not accumulate")
		}

		m, err := entry.AddMovement(domain.Debit, "cash", customer1, domain.NewMoneyFromInt(100, "USD"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !m.IsDebit() {
			t.Error("expected a debit movement")
		}
		if len(entry.Movements()) != 1 {
			t.Errorf("expected 1 movement, got %d", len(entry.Movements()))
		}
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		movements := entry.Movements()
		movements[0] = domain.Movement{}

		if entry.Movements()[0].AccountName != "cash" {
			t.Error("mutating the returned slice must not affect the entry")
		}
	})
}

func TestExecutableEntry_OldMovements(t *testing.T) {
	f := newExecutorFixture(t)

	// Two postings against the same leg; old movements must surface the
	// net amount per group, not one movement per line.
	f.postSale(t, 1, 1000, 1000)
	f.postSale(t, 2, 1500, 1500)

	entry := f.saleEntry(t, 3)
	old, err := entry.OldMovements(context.Background(), nil, f.lineRepo)
	if err != nil {
		t.Fatalf("old movements: %v", err)
	}

	if len(old) != 2 {
		t.Fatalf("expected 2 net movements, got %d", len(old))
	}

	for _, m := range old {
		if !m.Amount.Amount.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("leg %s: expected net 1500, got %s", m.AccountName, m.Amount.Amount)
		}
		if m.Accountable == nil || m.Accountable.ID != "1" {
			t.Errorf("leg %s: expected customer 1 accountable", m.AccountName)
		}
	}
}

func TestExecutableEntry_OldMovements_EmptyHistory(t *testing.T) {
	f := newExecutorFixture(t)

	entry := f.saleEntry(t, 1)
	old, err := entry.OldMovements(context.Background(), nil, f.lineRepo)
	if err != nil {
		t.Fatalf("old movements: %v", err)
	}
	if len(old) != 0 {
		t.Errorf("expected no old movements, got %d", len(old))
	}
}
