package domain

// TenantRef identifies one tenant instance: the kind registered in the
// definition registry plus the instance ID that scopes its ledger.
type TenantRef struct {
	Type string
	ID   string
}

// Document identifies the source document a posting is attached to.
type Document struct {
	Type string
	ID   string
}

// Accountable is a tagged reference to the external entity a balance leg
// is tracked against. A nil *Accountable means the account leg tracks no
// specific entity.
type Accountable struct {
	Type string
	ID   string
}

// AccountableEqual reports whether two accountable references identify the
// same entity. Two nil references are equal.
func AccountableEqual(a, b *Accountable) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Type == b.Type && a.ID == b.ID
}
