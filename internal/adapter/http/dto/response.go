package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerpost/internal/domain"
	"github.com/iho/ledgerpost/internal/usecase"
)

// EntryResponse represents a posted entry in API responses.
type EntryResponse struct {
	ID           string    `json:"id"`
	TenantType   string    `json:"tenant_type"`
	TenantID     string    `json:"tenant_id"`
	Code         string    `json:"code"`
	DocumentType string    `json:"document_type"`
	DocumentID   string    `json:"document_id"`
	EntryDate    string    `json:"entry_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:           e.ID,
		TenantType:   e.TenantType,
		TenantID:     e.TenantID,
		Code:         e.Code,
		DocumentType: e.DocumentType,
		DocumentID:   e.DocumentID,
		EntryDate:    e.EntryDate.Format(entryDateLayout),
		CreatedAt:    e.CreatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// LineResponse represents a posted line in API responses.
type LineResponse struct {
	ID              string          `json:"id"`
	EntryID         string          `json:"entry_id"`
	AccountName     string          `json:"account_name"`
	AccountableType string          `json:"accountable_type,omitempty"`
	AccountableID   string          `json:"accountable_id,omitempty"`
	Currency        string          `json:"currency"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       time.Time       `json:"created_at"`
}

// LineFromDomain converts a domain line to a response.
func LineFromDomain(l *domain.Line) *LineResponse {
	return &LineResponse{
		ID:              l.ID,
		EntryID:         l.EntryID,
		AccountName:     l.AccountName,
		AccountableType: l.AccountableType,
		AccountableID:   l.AccountableID,
		Currency:        l.Currency,
		Amount:          l.Amount,
		CreatedAt:       l.CreatedAt,
	}
}

// LinesFromDomain converts domain lines to responses.
func LinesFromDomain(lines []*domain.Line) []*LineResponse {
	result := make([]*LineResponse, len(lines))
	for i, l := range lines {
		result[i] = LineFromDomain(l)
	}
	return result
}

// PostingResponse is the outcome of a posting request.
type PostingResponse struct {
	Status string         `json:"status"`
	Entry  *EntryResponse `json:"entry,omitempty"`
	Lines  int            `json:"lines"`
}

// PostingFromResult converts an execution result to a response. No-op
// executions carry no entry.
func PostingFromResult(result *usecase.ExecutionResult) *PostingResponse {
	resp := &PostingResponse{
		Status: string(result.Status),
		Lines:  result.Lines,
	}
	if result.Entry != nil {
		resp.Entry = EntryFromDomain(result.Entry)
	}
	return resp
}

// PositionLeg is one net account leg of a triple's position.
type PositionLeg struct {
	Kind            string          `json:"kind"`
	Account         string          `json:"account"`
	AccountableType string          `json:"accountable_type,omitempty"`
	AccountableID   string          `json:"accountable_id,omitempty"`
	Currency        string          `json:"currency"`
	Amount          decimal.Decimal `json:"amount"`
}

// PositionResponse is the net posted state of a triple.
type PositionResponse struct {
	Legs []PositionLeg `json:"legs"`
}

// PositionFromMovements converts net movements to a response.
func PositionFromMovements(movements []domain.Movement) *PositionResponse {
	legs := make([]PositionLeg, len(movements))
	for i, m := range movements {
		leg := PositionLeg{
			Kind:     string(m.Kind),
			Account:  m.AccountName,
			Currency: m.Currency(),
			Amount:   m.Amount.Amount,
		}
		if m.Accountable != nil {
			leg.AccountableType = m.Accountable.Type
			leg.AccountableID = m.Accountable.ID
		}
		legs[i] = leg
	}
	return &PositionResponse{Legs: legs}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
