package domain

import "time"

// Entity is the capability set the generic repository requires from a
// document type. Any struct embedding Audit satisfies it through a pointer.
type Entity interface {
	DocID() string
	SetDocID(id string)
	StampCreated(at time.Time, by string)
	StampUpdated(at time.Time, by string)
	Deactivate()
}

// Audit carries the identifier and audit stamps shared by every indexed
// document. The engine stores the identifier outside the document body, so
// ID is never serialized; the repository restores it from each hit.
type Audit struct {
	ID        string     `json:"-"`
	CreatedAt *time.Time `json:"createddate,omitempty"`
	CreatedBy string     `json:"createdby,omitempty"`
	UpdatedAt *time.Time `json:"updateddate,omitempty"`
	UpdatedBy string     `json:"updatedby,omitempty"`
	IsActive  bool       `json:"isactive"`
}

// DocID returns the document identifier.
func (a *Audit) DocID() string { return a.ID }

// SetDocID sets the document identifier.
func (a *Audit) SetDocID(id string) { a.ID = id }

// StampCreated records the creation stamps and activates the document.
// Called exactly once, when the document is first indexed.
func (a *Audit) StampCreated(at time.Time, by string) {
	a.CreatedAt = &at
	a.CreatedBy = by
	a.IsActive = true
}

// StampUpdated records the update stamps. Creation stamps are untouched.
func (a *Audit) StampUpdated(at time.Time, by string) {
	a.UpdatedAt = &at
	a.UpdatedBy = by
}

// Deactivate flips the soft-delete flag.
func (a *Audit) Deactivate() { a.IsActive = false }
