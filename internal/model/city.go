package model

import "time"

// City belongs to a country and contains places.
//
// Fields:
//
//	Name      – unique city name, letters and spaces only.
//	CountryID – id of the owning country; must exist when written.
type City struct {
	Record
	Name      string   `json:"name" gorm:"size:128;not null;uniqueIndex"`                                      // cities.name
	CountryID string   `json:"country_id" gorm:"size:60;not null;index"`                                       // cities.country_id
	Country   *Country `json:"-" gorm:"foreignKey:CountryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"` // FK only, never loaded
}

// NewCity validates attrs and returns a new city.
func NewCity(a Attrs) (*City, error) {
	name, err := parseName("name", a["name"])
	if err != nil {
		return nil, err
	}
	countryID, err := parseRef("country_id", a["country_id"])
	if err != nil {
		return nil, err
	}
	return &City{Record: newRecord(), Name: name, CountryID: countryID}, nil
}

func (*City) TableName() string { return "cities" }

func (*City) Kind() Kind { return KindCity }

func (c *City) Touched(at time.Time) Entity {
	next := *c
	next.UpdatedAt = at
	return &next
}

func (c *City) References() []Reference {
	return []Reference{{Field: "country_id", Kind: KindCountry, ID: c.CountryID}}
}

func (c *City) UniqueKeys() []Constraint {
	return []Constraint{{"name": c.Name}}
}

func (c *City) Lookup(field string) (string, bool) {
	switch field {
	case "name":
		return c.Name, true
	case "country_id":
		return c.CountryID, true
	}
	return c.Record.lookup(field)
}

func (c *City) Patch(changes Attrs, allowed []string) (Entity, error) {
	next := *c
	next.Country = nil
	for _, field := range permitted(changes, allowed) {
		switch field {
		case "name":
			v, err := parseName(field, changes[field])
			if err != nil {
				return nil, err
			}
			next.Name = v
		case "country_id":
			v, err := parseRef(field, changes[field])
			if err != nil {
				return nil, err
			}
			next.CountryID = v
		}
	}
	return &next, nil
}
