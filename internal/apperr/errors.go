// Package apperr defines sentinel errors shared across service and API layers.
package apperr

import "errors"

// ErrNotFound indicates a requested document does not exist.
var ErrNotFound = errors.New("not found")
