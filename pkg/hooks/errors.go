package hooks

import "errors"

var (
	// ErrInvalidBlock is returned when a block name or renderer is missing.
	ErrInvalidBlock = errors.New("hooks: invalid block registration")

	// ErrDuplicateBlock is returned when a block name is registered twice.
	ErrDuplicateBlock = errors.New("hooks: block already registered")
)
