package model

import "time"

// Country groups cities.  Countries are addressed by their two-letter
// code in the public API, while cities reference them by id.
type Country struct {
	Record
	Name string `json:"name" gorm:"size:128;not null;uniqueIndex"`                              // countries.name
	Code string `json:"country_code" gorm:"column:country_code;size:2;not null;uniqueIndex"` // countries.country_code
}

// NewCountry validates attrs and returns a new country.
func NewCountry(a Attrs) (*Country, error) {
	name, err := parseName("name", a["name"])
	if err != nil {
		return nil, err
	}
	code, err := parseCountryCode("country_code", a["country_code"])
	if err != nil {
		return nil, err
	}
	return &Country{Record: newRecord(), Name: name, Code: code}, nil
}

func (*Country) TableName() string { return "countries" }

func (*Country) Kind() Kind { return KindCountry }

func (c *Country) Touched(at time.Time) Entity {
	next := *c
	next.UpdatedAt = at
	return &next
}

func (*Country) References() []Reference { return nil }

func (c *Country) UniqueKeys() []Constraint {
	return []Constraint{{"name": c.Name}, {"country_code": c.Code}}
}

func (c *Country) Lookup(field string) (string, bool) {
	switch field {
	case "name":
		return c.Name, true
	case "country_code":
		return c.Code, true
	}
	return c.Record.lookup(field)
}

func (c *Country) Patch(changes Attrs, allowed []string) (Entity, error) {
	next := *c
	for _, field := range permitted(changes, allowed) {
		switch field {
		case "name":
			v, err := parseName(field, changes[field])
			if err != nil {
				return nil, err
			}
			next.Name = v
		case "country_code":
			v, err := parseCountryCode(field, changes[field])
			if err != nil {
				return nil, err
			}
			next.Code = v
		}
	}
	return &next, nil
}
