package service

import "errors"

var (
	// ErrEmptyUser is returned when an activity is recorded without a user.
	ErrEmptyUser = errors.New("empty user")

	// ErrEmptyActivityType is returned when an activity is recorded
	// without a type.
	ErrEmptyActivityType = errors.New("empty activity type")
)
