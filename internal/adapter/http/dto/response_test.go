package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerpost/internal/domain"
	"github.com/iho/ledgerpost/internal/usecase"
)

func TestEntryFromDomain(t *testing.T) {
	now := time.Now()
	entry := &domain.Entry{
		ID:           "entry-1",
		TenantType:   "company",
		TenantID:     "1",
		Code:         "sale",
		DocumentType: "invoice",
		DocumentID:   "7",
		EntryDate:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:    now,
	}

	resp := EntryFromDomain(entry)
	if resp.ID != "entry-1" || resp.Code != "sale" || resp.EntryDate != "2024-03-01" {
		t.Fatalf("unexpected entry response: %+v", resp)
	}
}

func TestPostingFromResult(t *testing.T) {
	result := &usecase.ExecutionResult{
		Entry:  &domain.Entry{ID: "entry-1"},
		Status: usecase.StatusAdjusted,
		Lines:  2,
	}

	resp := PostingFromResult(result)
	if resp.Status != "adjusted" || resp.Lines != 2 || resp.Entry == nil || resp.Entry.ID != "entry-1" {
		t.Fatalf("unexpected posting response: %+v", resp)
	}
}

func TestPostingFromResultNoop(t *testing.T) {
	resp := PostingFromResult(&usecase.ExecutionResult{Status: usecase.StatusNoop})
	if resp.Status != "noop" || resp.Entry != nil || resp.Lines != 0 {
		t.Fatalf("unexpected noop response: %+v", resp)
	}
}

func TestPositionFromMovements(t *testing.T) {
	movements := []domain.Movement{
		domain.NewMovement(domain.Debit, "cash",
			&domain.Accountable{Type: "customer", ID: "42"},
			domain.Money{Amount: decimal.RequireFromString("150.00"), Currency: "USD"}),
		domain.NewMovement(domain.Credit, "revenue", nil,
			domain.Money{Amount: decimal.RequireFromString("150.00"), Currency: "USD"}),
	}

	resp := PositionFromMovements(movements)
	if len(resp.Legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(resp.Legs))
	}

	first := resp.Legs[0]
	if first.Kind != "debit" || first.Account != "cash" || first.AccountableID != "42" || first.Currency != "USD" {
		t.Fatalf("unexpected first leg: %+v", first)
	}

	second := resp.Legs[1]
	if second.AccountableType != "" || second.AccountableID != "" {
		t.Fatalf("expected empty accountable on second leg: %+v", second)
	}
}
