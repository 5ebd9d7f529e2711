package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/ledgerpost/internal/domain"
	"github.com/iho/ledgerpost/internal/usecase"
)

func TestLedgerUseCase_Entries(t *testing.T) {
	f := newExecutorFixture(t)
	ledger := usecase.NewLedgerUseCase(f.registry, f.entryRepo, f.lineRepo)

	f.postSale(t, 1, 1000, 1000)
	f.postSale(t, 2, 1500, 1500)

	entries, err := ledger.Entries(context.Background(), testTenant, "sale", invoice7)
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected the posting and its adjustment, got %d entries", len(entries))
	}
	if entries[0].CreatedAt.After(entries[1].CreatedAt) {
		t.Error("entries must come back in creation order")
	}
}

func TestLedgerUseCase_Lines(t *testing.T) {
	f := newExecutorFixture(t)
	ledger := usecase.NewLedgerUseCase(f.registry, f.entryRepo, f.lineRepo)

	f.postSale(t, 1, 1000, 1000)

	t.Run("lists posted lines", func(t *testing.T) {
		lines, err := ledger.Lines(context.Background(), testTenant, "sale", invoice7, 0, 0)
		if err != nil {
			t.Fatalf("lines: %v", err)
		}
		if len(lines) != 2 {
			t.Errorf("expected 2 lines, got %d", len(lines))
		}
	})

	t.Run("clamps limit", func(t *testing.T) {
		lines, err := ledger.Lines(context.Background(), testTenant, "sale", invoice7, 1, 0)
		if err != nil {
			t.Fatalf("lines: %v", err)
		}
		if len(lines) != 1 {
			t.Errorf("expected 1 line, got %d", len(lines))
		}
	})

	t.Run("unknown entry code", func(t *testing.T) {
		_, err := ledger.Lines(context.Background(), testTenant, "refund", invoice7, 0, 0)
		if !errors.Is(err, domain.ErrUnknownEntry) {
			t.Errorf("expected ErrUnknownEntry, got %v", err)
		}
	})

	t.Run("unknown tenant", func(t *testing.T) {
		_, err := ledger.Lines(context.Background(), domain.TenantRef{Type: "franchise"}, "sale", invoice7, 0, 0)
		if !errors.Is(err, domain.ErrUnknownTenant) {
			t.Errorf("expected ErrUnknownTenant, got %v", err)
		}
	})
}

func TestLedgerUseCase_Position(t *testing.T) {
	f := newExecutorFixture(t)
	ledger := usecase.NewLedgerUseCase(f.registry, f.entryRepo, f.lineRepo)

	position, err := ledger.Position(context.Background(), testTenant, "sale", invoice7)
	if err != nil {
		t.Fatalf("position: %v", err)
	}
	if len(position) != 0 {
		t.Errorf("expected empty position before any posting, got %d legs", len(position))
	}

	f.postSale(t, 1, 1000, 1000)

	position, err = ledger.Position(context.Background(), testTenant, "sale", invoice7)
	if err != nil {
		t.Fatalf("position: %v", err)
	}
	if len(position) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(position))
	}
}
