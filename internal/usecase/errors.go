package usecase

import "errors"

// ErrNotFound is the only failure the catalog usecases produce: a lookup by
// position ID or skill name matched nothing.
var ErrNotFound = errors.New("not found")
