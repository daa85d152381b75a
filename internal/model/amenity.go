package model

import "time"

// Amenity is a feature a place can offer (e.g. "Wifi").
type Amenity struct {
	Record
	Name string `json:"name" gorm:"size:128;not null;uniqueIndex"` // amenities.name
}

func NewAmenity(a Attrs) (*Amenity, error) {
	name, err := parseName("name", a["name"])
	if err != nil {
		return nil, err
	}
	return &Amenity{Record: newRecord(), Name: name}, nil
}

func (*Amenity) TableName() string { return "amenities" }

func (*Amenity) Kind() Kind { return KindAmenity }

func (am *Amenity) Touched(at time.Time) Entity {
	next := *am
	next.UpdatedAt = at
	return &next
}

func (*Amenity) References() []Reference { return nil }

func (am *Amenity) UniqueKeys() []Constraint {
	return []Constraint{{"name": am.Name}}
}

func (am *Amenity) Lookup(field string) (string, bool) {
	if field == "name" {
		return am.Name, true
	}
	return am.Record.lookup(field)
}

func (am *Amenity) Patch(changes Attrs, allowed []string) (Entity, error) {
	next := *am
	for _, field := range permitted(changes, allowed) {
		if field == "name" {
			v, err := parseName(field, changes[field])
			if err != nil {
				return nil, err
			}
			next.Name = v
		}
	}
	return &next, nil
}
