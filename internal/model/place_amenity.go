package model

import "time"

// PlaceAmenity links a place to an amenity (many-to-many).  The pair is
// unique; the link has its own id so it can travel through the same storage
// interface as every other record.
type PlaceAmenity struct {
	Record
	PlaceID   string `json:"place_id" gorm:"size:60;not null;uniqueIndex:idx_place_amenity"`   // place_amenity.place_id
	AmenityID string `json:"amenity_id" gorm:"size:60;not null;uniqueIndex:idx_place_amenity"` // place_amenity.amenity_id

	Place   *Place   `json:"-" gorm:"foreignKey:PlaceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Amenity *Amenity `json:"-" gorm:"foreignKey:AmenityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func NewPlaceAmenity(a Attrs) (*PlaceAmenity, error) {
	placeID, err := parseRef("place_id", a["place_id"])
	if err != nil {
		return nil, err
	}
	amenityID, err := parseRef("amenity_id", a["amenity_id"])
	if err != nil {
		return nil, err
	}
	return &PlaceAmenity{Record: newRecord(), PlaceID: placeID, AmenityID: amenityID}, nil
}

func (*PlaceAmenity) TableName() string { return "place_amenity" }

func (*PlaceAmenity) Kind() Kind { return KindPlaceAmenity }

func (pa *PlaceAmenity) Touched(at time.Time) Entity {
	next := *pa
	next.UpdatedAt = at
	return &next
}

func (pa *PlaceAmenity) References() []Reference {
	return []Reference{
		{Field: "place_id", Kind: KindPlace, ID: pa.PlaceID},
		{Field: "amenity_id", Kind: KindAmenity, ID: pa.AmenityID},
	}
}

func (pa *PlaceAmenity) UniqueKeys() []Constraint {
	return []Constraint{{"place_id": pa.PlaceID, "amenity_id": pa.AmenityID}}
}

func (pa *PlaceAmenity) Lookup(field string) (string, bool) {
	switch field {
	case "place_id":
		return pa.PlaceID, true
	case "amenity_id":
		return pa.AmenityID, true
	}
	return pa.Record.lookup(field)
}

// Patch never changes a link; the pair is its identity.
func (pa *PlaceAmenity) Patch(Attrs, []string) (Entity, error) {
	next := *pa
	next.Place, next.Amenity = nil, nil
	return &next, nil
}
