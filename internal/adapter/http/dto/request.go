package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerpost/internal/domain"
)

// entryDateLayout is the wire format for entry dates. Postings carry a
// date, not an instant.
const entryDateLayout = "2006-01-02"

// TenantPayload identifies the tenant instance a posting belongs to.
type TenantPayload struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// DocumentPayload identifies the business document backing a posting.
type DocumentPayload struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// AccountablePayload identifies the subject a movement is booked under.
type AccountablePayload struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// MovementPayload is one debit or credit leg of a posting request.
type MovementPayload struct {
	Kind        string              `json:"kind"`
	Account     string              `json:"account"`
	Accountable *AccountablePayload `json:"accountable,omitempty"`
	Amount      decimal.Decimal     `json:"amount"`
	Currency    string              `json:"currency"`
}

// PostingRequest represents a request to execute an entry.
type PostingRequest struct {
	Tenant    TenantPayload     `json:"tenant"`
	Code      string            `json:"code"`
	Document  DocumentPayload   `json:"document"`
	EntryDate string            `json:"entry_date"`
	Movements []MovementPayload `json:"movements"`
}

// ParsedDate parses the entry date from its wire format.
func (r *PostingRequest) ParsedDate() (time.Time, error) {
	t, err := time.Parse(entryDateLayout, r.EntryDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("entry_date must be %s: %w", entryDateLayout, err)
	}
	return t, nil
}

// TenantRef converts the payload to its domain reference.
func (p TenantPayload) TenantRef() domain.TenantRef {
	return domain.TenantRef{Type: p.Type, ID: p.ID}
}

// DocumentRef converts the payload to its domain reference.
func (p DocumentPayload) DocumentRef() domain.Document {
	return domain.Document{Type: p.Type, ID: p.ID}
}

// AccountableRef converts the payload to its domain reference. A nil
// payload maps to a nil accountable.
func (p *AccountablePayload) AccountableRef() *domain.Accountable {
	if p == nil {
		return nil
	}
	return &domain.Accountable{Type: p.Type, ID: p.ID}
}

// MovementKind parses the leg kind.
func (m MovementPayload) MovementKind() (domain.MovementKind, error) {
	switch m.Kind {
	case string(domain.Debit):
		return domain.Debit, nil
	case string(domain.Credit):
		return domain.Credit, nil
	default:
		return "", fmt.Errorf("kind must be %q or %q, got %q", domain.Debit, domain.Credit, m.Kind)
	}
}
