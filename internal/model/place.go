package model

import "time"

// Place is a lodging offered by a host user inside a city.
//
// Fields:
//
//	CityID            – id of the city the place is in.
//	HostID            – id of the user offering the place.
//	Name              – unique place name, letters and spaces only.
//	Description       – free text, may be empty.
//	Address           – free text, may be empty.
//	NumberOfRooms     – rooms, integer >= 0.
//	NumberOfBathrooms – bathrooms, integer >= 0.
//	MaxGuests         – guest capacity, integer >= 0.
//	PricePerNight     – nightly price in whole currency units, integer >= 0.
//	Latitude          – degrees in [-90, 90].
//	Longitude         – degrees in [-180, 180].
type Place struct {
	Record
	CityID            string  `json:"city_id" gorm:"size:60;not null;index"`     // places.city_id
	HostID            string  `json:"host_id" gorm:"size:60;not null;index"`     // places.host_id
	Name              string  `json:"name" gorm:"size:128;not null;uniqueIndex"` // places.name
	Description       string  `json:"description" gorm:"size:1024"`              // places.description
	Address           string  `json:"address" gorm:"size:1024"`                  // places.address
	NumberOfRooms     int     `json:"number_of_rooms" gorm:"not null;default:0"`
	NumberOfBathrooms int     `json:"number_of_bathrooms" gorm:"not null;default:0"`
	MaxGuests         int     `json:"max_guests" gorm:"not null;default:0"`
	PricePerNight     int     `json:"price_per_night" gorm:"not null;default:0"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`

	City *City `json:"-" gorm:"foreignKey:CityID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Host *User `json:"-" gorm:"foreignKey:HostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// PlaceFields lists every attribute accepted when creating a place.
var PlaceFields = []string{
	"city_id", "host_id", "name", "description", "address",
	"number_of_rooms", "number_of_bathrooms", "max_guests", "price_per_night",
	"latitude", "longitude",
}

// NewPlace validates attrs and returns a new place.
func NewPlace(a Attrs) (*Place, error) {
	p := &Place{Record: newRecord()}
	for _, field := range PlaceFields {
		if err := p.set(field, a[field]); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Place) set(field string, raw any) error {
	var err error
	switch field {
	case "city_id":
		p.CityID, err = parseRef(field, raw)
	case "host_id":
		p.HostID, err = parseRef(field, raw)
	case "name":
		p.Name, err = parseName(field, raw)
	case "description":
		p.Description, err = parseText(field, raw)
	case "address":
		p.Address, err = parseText(field, raw)
	case "number_of_rooms":
		p.NumberOfRooms, err = parseCount(field, raw)
	case "number_of_bathrooms":
		p.NumberOfBathrooms, err = parseCount(field, raw)
	case "max_guests":
		p.MaxGuests, err = parseCount(field, raw)
	case "price_per_night":
		p.PricePerNight, err = parseCount(field, raw)
	case "latitude":
		p.Latitude, err = parseCoordinate(field, raw, 90)
	case "longitude":
		p.Longitude, err = parseCoordinate(field, raw, 180)
	}
	return err
}

func (*Place) TableName() string { return "places" }

func (*Place) Kind() Kind { return KindPlace }

func (p *Place) Touched(at time.Time) Entity {
	next := *p
	next.UpdatedAt = at
	return &next
}

func (p *Place) References() []Reference {
	return []Reference{
		{Field: "city_id", Kind: KindCity, ID: p.CityID},
		{Field: "host_id", Kind: KindUser, ID: p.HostID},
	}
}

func (p *Place) UniqueKeys() []Constraint {
	return []Constraint{{"name": p.Name}}
}

func (p *Place) Lookup(field string) (string, bool) {
	switch field {
	case "name":
		return p.Name, true
	case "city_id":
		return p.CityID, true
	case "host_id":
		return p.HostID, true
	}
	return p.Record.lookup(field)
}

func (p *Place) Patch(changes Attrs, allowed []string) (Entity, error) {
	next := *p
	next.City, next.Host = nil, nil
	for _, field := range permitted(changes, allowed) {
		if err := next.set(field, changes[field]); err != nil {
			return nil, err
		}
	}
	return &next, nil
}
