package model

import "time"

// User represents an account that can host places and write reviews.
// This struct corresponds to a row in the `users` table and to an entry of
// the "User" collection in the file store.
//
// Fields:
//
//	FirstName    – given name, letters and spaces only.
//	LastName     – family name, letters and spaces only.
//	Email        – unique, lower-cased address.
//	PasswordHash – bcrypt hash of the password; never serialised in responses.
type User struct {
	Record
	FirstName    string `json:"first_name" gorm:"size:128;not null"`        // users.first_name
	LastName     string `json:"last_name" gorm:"size:128;not null"`         // users.last_name
	Email        string `json:"email" gorm:"size:128;not null;uniqueIndex"` // users.email
	PasswordHash string `json:"password_hash" gorm:"size:128;not null"`     // users.password_hash
}

// PasswordHasher turns a validated plain password into its stored form.
type PasswordHasher func(plain string) (string, error)

// NewUser validates attrs and returns a new user whose password has been
// passed through hash.
func NewUser(a Attrs, hash PasswordHasher) (*User, error) {
	first, err := parseName("first_name", a["first_name"])
	if err != nil {
		return nil, err
	}
	last, err := parseName("last_name", a["last_name"])
	if err != nil {
		return nil, err
	}
	email, err := parseEmail("email", a["email"])
	if err != nil {
		return nil, err
	}
	plain, err := parsePassword("password", a["password"])
	if err != nil {
		return nil, err
	}
	digest, err := hash(plain)
	if err != nil {
		return nil, err
	}
	return &User{
		Record:       newRecord(),
		FirstName:    first,
		LastName:     last,
		Email:        email,
		PasswordHash: digest,
	}, nil
}

func (*User) TableName() string { return "users" }

func (*User) Kind() Kind { return KindUser }

func (u *User) Touched(at time.Time) Entity {
	next := *u
	next.UpdatedAt = at
	return &next
}

func (*User) References() []Reference { return nil }

func (u *User) UniqueKeys() []Constraint {
	return []Constraint{{"email": u.Email}}
}

func (u *User) Lookup(field string) (string, bool) {
	switch field {
	case "first_name":
		return u.FirstName, true
	case "last_name":
		return u.LastName, true
	case "email":
		return u.Email, true
	}
	return u.Record.lookup(field)
}

// Patch supports first_name and last_name.  Email and password changes are
// not part of the update surface.
func (u *User) Patch(changes Attrs, allowed []string) (Entity, error) {
	next := *u
	for _, field := range permitted(changes, allowed) {
		switch field {
		case "first_name":
			v, err := parseName(field, changes[field])
			if err != nil {
				return nil, err
			}
			next.FirstName = v
		case "last_name":
			v, err := parseName(field, changes[field])
			if err != nil {
				return nil, err
			}
			next.LastName = v
		}
	}
	return &next, nil
}
