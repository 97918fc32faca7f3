package ginternals

import "errors"

// ErrObjectNotFound is returned when an object cannot be found in the odb
var ErrObjectNotFound = errors.New("object not found")
