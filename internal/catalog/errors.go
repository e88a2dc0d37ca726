package catalog

import "errors"

// ErrUnknownUpstream is returned for selector values that match no
// supported upstream family.
var ErrUnknownUpstream = errors.New("unknown upstream")
