// Package model holds the domain records served by the API together with the
// validation rules each record enforces.  Records are built through their
// New* constructors and changed through Patch; both return a fully validated
// value or a *ValidationError, so a record that exists is always valid.
package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Kind names a collection of records (e.g. "City").  It doubles as the
// top-level key of the file store and selects the table in the database.
type Kind string

const (
	KindUser         Kind = "User"
	KindCountry      Kind = "Country"
	KindCity         Kind = "City"
	KindAmenity      Kind = "Amenity"
	KindPlace        Kind = "Place"
	KindReview       Kind = "Review"
	KindPlaceAmenity Kind = "PlaceAmenity"
)

// Reference describes a foreign key held by a record.  Field is the JSON
// name of the attribute, Kind the referenced collection and ID its value.
type Reference struct {
	Field string
	Kind  Kind
	ID    string
}

// Constraint is a set of field/value pairs that must not be shared by two
// records of the same kind.  Single-field constraints cover names and
// emails; the place/amenity link uses a two-field constraint.
type Constraint map[string]string

// Entity is implemented by every record type.  The storage layer works only
// through this interface so that it never needs to know which concrete
// record it is persisting.
type Entity interface {
	Kind() Kind
	Key() string
	Timestamps() (created, updated time.Time)
	// Touched returns a copy with updated_at set to at.
	Touched(at time.Time) Entity
	References() []Reference
	UniqueKeys() []Constraint
	// Lookup returns the string form of a stored field for exact-key lookups.
	Lookup(field string) (string, bool)
	// Patch returns a validated copy with the fields present in both changes
	// and allowed applied.  Other keys are ignored.
	Patch(changes Attrs, allowed []string) (Entity, error)
}

// registry maps each kind to a constructor of its blank record.
var registry = map[Kind]func() Entity{
	KindUser:         func() Entity { return &User{} },
	KindCountry:      func() Entity { return &Country{} },
	KindCity:         func() Entity { return &City{} },
	KindAmenity:      func() Entity { return &Amenity{} },
	KindPlace:        func() Entity { return &Place{} },
	KindReview:       func() Entity { return &Review{} },
	KindPlaceAmenity: func() Entity { return &PlaceAmenity{} },
}

// Kinds returns every registered kind in a stable order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// New returns an empty record of the given kind, ready to be filled by a
// decoder or an ORM scan.
func New(kind Kind) (Entity, error) {
	blank, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	return blank(), nil
}

// Decode rebuilds a record from its persisted JSON form.
func Decode(kind Kind, raw []byte) (Entity, error) {
	e, err := New(kind)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, e); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return e, nil
}

// now is the clock used for created_at/updated_at.  Microsecond precision
// matches the serialised layout and DATETIME(6) columns.
var now = func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }

// Now exposes the record clock to the storage layer.
func Now() time.Time { return now() }
