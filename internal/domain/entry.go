package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one committed posting event for a (tenant, code, document)
// triple. Several entries may share a triple; the latest by creation
// order is current, the rest are the audit trail.
type Entry struct {
	CreatedAt    time.Time
	EntryDate    time.Time
	ID           string
	TenantType   string
	TenantID     string
	Code         string
	DocumentType string
	DocumentID   string
}

// Line is the durable record of a single committed movement. Lines are
// append-only: corrections are new lines under a new entry, never
// updates of existing rows.
type Line struct {
	CreatedAt       time.Time
	ID              string
	EntryID         string
	TenantType      string
	TenantID        string
	EntryCode       string
	DocumentType    string
	DocumentID      string
	AccountName     string
	AccountableType string
	AccountableID   string
	Currency        string
	Amount          decimal.Decimal
}
