package domain

import "github.com/google/uuid"

// Entity is the capability contract every persisted domain object
// satisfies: an opaque 128-bit identifier plus a concurrency stamp that is
// regenerated on every successful create or update. There is no mandatory
// base type; embedding EntityFields is the common way to satisfy it.
type Entity interface {
	GetID() uuid.UUID
	SetID(id uuid.UUID)
	GetConcurrencyStamp() uuid.UUID
	SetConcurrencyStamp(stamp uuid.UUID)
}

// EntityFields carries the invariant entity attributes. Embed it in a
// domain struct and use a pointer receiver type with the generic pipelines.
type EntityFields struct {
	ID               uuid.UUID `json:"id"`
	ConcurrencyStamp uuid.UUID `json:"concurrencyStamp"`
}

func (e *EntityFields) GetID() uuid.UUID                    { return e.ID }
func (e *EntityFields) SetID(id uuid.UUID)                  { e.ID = id }
func (e *EntityFields) GetConcurrencyStamp() uuid.UUID      { return e.ConcurrencyStamp }
func (e *EntityFields) SetConcurrencyStamp(stamp uuid.UUID) { e.ConcurrencyStamp = stamp }
