package model

import "time"

// Review is a user's rating of a place.
type Review struct {
	Record
	PlaceID string `json:"place_id" gorm:"size:60;not null;index"` // reviews.place_id
	UserID  string `json:"user_id" gorm:"size:60;not null;index"`  // reviews.user_id
	Comment string `json:"comment" gorm:"type:text;not null"`      // reviews.comment
	Rating  int    `json:"rating" gorm:"not null;check:rating >= 0 AND rating <= 5"`

	Place *Place `json:"-" gorm:"foreignKey:PlaceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User  *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func NewReview(a Attrs) (*Review, error) {
	placeID, err := parseRef("place_id", a["place_id"])
	if err != nil {
		return nil, err
	}
	userID, err := parseRef("user_id", a["user_id"])
	if err != nil {
		return nil, err
	}
	comment, err := parseComment("comment", a["comment"])
	if err != nil {
		return nil, err
	}
	rating, err := parseRating("rating", a["rating"])
	if err != nil {
		return nil, err
	}
	return &Review{Record: newRecord(), PlaceID: placeID, UserID: userID, Comment: comment, Rating: rating}, nil
}

func (*Review) TableName() string { return "reviews" }

func (*Review) Kind() Kind { return KindReview }

func (r *Review) Touched(at time.Time) Entity {
	next := *r
	next.UpdatedAt = at
	return &next
}

func (r *Review) References() []Reference {
	return []Reference{
		{Field: "place_id", Kind: KindPlace, ID: r.PlaceID},
		{Field: "user_id", Kind: KindUser, ID: r.UserID},
	}
}

// UniqueKeys is empty: a user may review the same place more than once.
func (*Review) UniqueKeys() []Constraint { return nil }

func (r *Review) Lookup(field string) (string, bool) {
	switch field {
	case "place_id":
		return r.PlaceID, true
	case "user_id":
		return r.UserID, true
	}
	return r.Record.lookup(field)
}

func (r *Review) Patch(changes Attrs, allowed []string) (Entity, error) {
	next := *r
	next.Place, next.User = nil, nil
	for _, field := range permitted(changes, allowed) {
		switch field {
		case "comment":
			v, err := parseComment(field, changes[field])
			if err != nil {
				return nil, err
			}
			next.Comment = v
		case "rating":
			v, err := parseRating(field, changes[field])
			if err != nil {
				return nil, err
			}
			next.Rating = v
		}
	}
	return &next, nil
}
