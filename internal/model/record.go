package model

import (
	"time"

	"github.com/google/uuid"
)

// Record carries the identity and lifecycle fields shared by every entity.
// It is embedded, so both encoding/json and GORM flatten it into the parent
// record (id, created_at, updated_at).
type Record struct {
	ID        string    `json:"id" gorm:"primaryKey;size:60"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;precision:6"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;precision:6"`
}

func newRecord() Record {
	t := now()
	return Record{ID: uuid.NewString(), CreatedAt: t, UpdatedAt: t}
}

// Key returns the record id.
func (r Record) Key() string { return r.ID }

// Timestamps returns created_at and updated_at.
func (r Record) Timestamps() (time.Time, time.Time) { return r.CreatedAt, r.UpdatedAt }

func (r Record) lookup(field string) (string, bool) {
	if field == "id" {
		return r.ID, true
	}
	return "", false
}
