// Package repository contains the storage adapter shared by every entity.
// Two backends implement Store: FileStore keeps keyed collections in memory
// and mirrors them to a JSON file, GormStore persists them in a relational
// database through GORM.  Exactly one is constructed at startup and injected
// into the services; nothing above this package knows which one it got.
package repository

import (
	"context"
	"sort"

	"github.com/iliyamo/hbnb-api/internal/model"
)

// Store is the uniform persistence contract.
//
// Get fails with ErrNotFound for an unknown id.  Add and Update verify every
// reference of the record and every unique constraint in the same critical
// section (FileStore) or transaction (GormStore) as the write, so a failed
// call never leaves a partial record behind.
type Store interface {
	Get(ctx context.Context, kind model.Kind, id string) (model.Entity, error)
	All(ctx context.Context, kind model.Kind) ([]model.Entity, error)
	// FindBy returns the records whose field equals value exactly.
	FindBy(ctx context.Context, kind model.Kind, field, value string) ([]model.Entity, error)
	Add(ctx context.Context, e model.Entity) (model.Entity, error)
	// Update applies the allowed subset of changes to the stored record,
	// refreshes updated_at and returns the new version.
	Update(ctx context.Context, kind model.Kind, id string, changes model.Attrs, allowed []string) (model.Entity, error)
	Close() error
}

// sortRecords orders records by creation time, then id, so that both
// backends list collections in the same order.
func sortRecords(out []model.Entity) {
	sort.SliceStable(out, func(i, j int) bool {
		ci, _ := out[i].Timestamps()
		cj, _ := out[j].Timestamps()
		if !ci.Equal(cj) {
			return ci.Before(cj)
		}
		return out[i].Key() < out[j].Key()
	})
}

// sameConstraint reports whether e carries every field/value pair of c.
func sameConstraint(e model.Entity, c model.Constraint) bool {
	for field, want := range c {
		got, ok := e.Lookup(field)
		if !ok || got != want {
			return false
		}
	}
	return true
}
