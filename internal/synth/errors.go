package synth

import "errors"

var (
	// ErrNoBuilder is returned when no schema builder is registered for
	// the resolved family.
	ErrNoBuilder = errors.New("no builder registered for family")

	// ErrUnknownFormat is returned when a builder declares a format the
	// serializer does not support.
	ErrUnknownFormat = errors.New("unknown serialization format")
)
