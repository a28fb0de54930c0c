package venue

import (
	"errors"
	"strings"
)

var (
	ErrInvalidVenueID   = errors.New("venue identifier must not be empty")
	ErrVenueIDTooLong   = errors.New("venue identifier too long")
	ErrInvalidVenueName = errors.New("venue name must not be empty")
	ErrInvalidCapacity  = errors.New("capacity must be positive")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

const maxIDLength = 64

// ID is the admin-chosen free-text venue identifier.
type ID struct {
	value string
}

func NewID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}, ErrInvalidVenueID
	}
	if len(s) > maxIDLength {
		return ID{}, ErrVenueIDTooLong
	}
	return ID{value: s}, nil
}

func (id ID) Value() string {
	return id.value
}

func (id ID) IsZero() bool {
	return id.value == ""
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrInvalidVenueName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}
