package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every repository method that looks up a single
// row that does not exist.
var ErrNotFound = errors.New("not found")

func wrapNotFound(what string) error {
	return fmt.Errorf("%s: %w", what, ErrNotFound)
}
