package models

import (
	"encoding/json"
	"errors"
)

var (
	ErrAlreadyResolved   = errors.New("case is already resolved")
	ErrIllegalTransition = errors.New("illegal status transition")
)

// EncodeCollection serializes the full case collection to the persisted
// JSON array form. An empty collection encodes as "[]" rather than "null"
// so the stored value always parses back as an array.
func EncodeCollection(cases []Case) (string, error) {
	if cases == nil {
		cases = []Case{}
	}
	b, err := json.Marshal(cases)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeCollection parses the persisted JSON array. An empty string is
// treated as an absent value and yields an empty collection.
func DecodeCollection(value string) ([]Case, error) {
	if value == "" {
		return []Case{}, nil
	}
	var cases []Case
	if err := json.Unmarshal([]byte(value), &cases); err != nil {
		return nil, err
	}
	return cases, nil
}
