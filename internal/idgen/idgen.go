package idgen

import "github.com/google/uuid"

// NewFunc produces a new globally unique run identifier. It is a variable
// so tests can stub it.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new run identifier.
func New() string { return NewFunc() }
