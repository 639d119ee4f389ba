package domain

import "errors"

var (
	// ErrNotFound is returned when the addressed message or notification has
	// no matching record for the acting user.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the acting user is not a participant of
	// the addressed conversation or not the owner of the addressed record.
	ErrForbidden = errors.New("forbidden")
)
