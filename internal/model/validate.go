package model

import (
	"regexp"
	"strings"
)

// MinCommentWords is the minimum number of words in a review comment.
const MinCommentWords = 3

// Password bounds.  bcrypt only hashes the first 72 bytes and refuses
// anything longer.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// Column widths shared with the gorm tags on the entities.
const (
	MaxNameLength = 128
	MaxTextLength = 1024
)

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z ]+$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	codePattern  = regexp.MustCompile(`^[A-Z]{2}$`)
)

func parseString(field string, raw any) (string, error) {
	if raw == nil {
		return "", invalid(field, "Missing %s", field)
	}
	s, ok := raw.(string)
	if !ok {
		return "", invalid(field, "%s must be a string", field)
	}
	return s, nil
}

// parseName accepts non-blank values made of ASCII letters and spaces.
func parseName(field string, raw any) (string, error) {
	s, err := parseString(field, raw)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(s) == "" || !namePattern.MatchString(s) {
		return "", invalid(field, "Invalid %s specified: %s", field, s)
	}
	if len(s) > MaxNameLength {
		return "", tooLong(field, MaxNameLength)
	}
	return s, nil
}

func parseEmail(field string, raw any) (string, error) {
	s, err := parseString(field, raw)
	if err != nil {
		return "", err
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > MaxNameLength {
		return "", tooLong(field, MaxNameLength)
	}
	if !emailPattern.MatchString(s) {
		return "", invalid(field, "Invalid %s specified: %s", field, s)
	}
	return s, nil
}

func parsePassword(field string, raw any) (string, error) {
	s, err := parseString(field, raw)
	if err != nil {
		return "", err
	}
	if len(s) < MinPasswordLength {
		return "", invalid(field, "%s must be at least %d characters", field, MinPasswordLength)
	}
	if len(s) > MaxPasswordLength {
		return "", tooLong(field, MaxPasswordLength)
	}
	return s, nil
}

func parseCountryCode(field string, raw any) (string, error) {
	s, err := parseString(field, raw)
	if err != nil {
		return "", err
	}
	s = strings.ToUpper(strings.TrimSpace(s))
	if !codePattern.MatchString(s) {
		return "", invalid(field, "Invalid %s specified: %s", field, s)
	}
	return s, nil
}

// parseRef validates the shape of a foreign key.  Whether the referenced
// record exists is checked by the store at write time.
func parseRef(field string, raw any) (string, error) {
	s, err := parseString(field, raw)
	if err != nil {
		return "", err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", invalid(field, "Invalid %s specified: %s", field, s)
	}
	return s, nil
}

// parseText accepts any string, including the empty one, but the field
// itself must be present.
func parseText(field string, raw any) (string, error) {
	s, err := parseString(field, raw)
	if err != nil {
		return "", err
	}
	if len(s) > MaxTextLength {
		return "", tooLong(field, MaxTextLength)
	}
	return s, nil
}

func tooLong(field string, max int) error {
	return invalid(field, "%s must be at most %d characters", field, max)
}

func parseComment(field string, raw any) (string, error) {
	s, err := parseString(field, raw)
	if err != nil {
		return "", err
	}
	if len(strings.Fields(s)) < MinCommentWords {
		return "", invalid(field, "%s must be at least %d words", field, MinCommentWords)
	}
	return s, nil
}

func parseRating(field string, raw any) (int, error) {
	if raw == nil {
		return 0, invalid(field, "Missing %s", field)
	}
	n, ok := asInt(raw)
	if !ok || n < 0 || n > 5 {
		return 0, invalid(field, "%s must be an integer between 0 and 5", field)
	}
	return n, nil
}

// parseCount accepts non-negative integers (rooms, guests, price).
func parseCount(field string, raw any) (int, error) {
	if raw == nil {
		return 0, invalid(field, "Missing %s", field)
	}
	n, ok := asInt(raw)
	if !ok {
		return 0, invalid(field, "Invalid value specified for %s: %v", field, raw)
	}
	if n < 0 {
		return 0, invalid(field, "%s must not be negative", field)
	}
	return n, nil
}

func parseCoordinate(field string, raw any, limit float64) (float64, error) {
	if raw == nil {
		return 0, invalid(field, "Missing %s", field)
	}
	f, ok := asFloat(raw)
	if !ok {
		return 0, invalid(field, "Invalid value specified for %s: %v", field, raw)
	}
	if f < -limit || f > limit {
		return 0, invalid(field, "%s must be between %g and %g", field, -limit, limit)
	}
	return f, nil
}
