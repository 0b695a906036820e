package taglines

import "errors"

var (
	// ErrInputTooLarge is returned when an import payload exceeds its size limit.
	ErrInputTooLarge = errors.New("taglines: input too large")

	// ErrNoTaglines is returned when an import contains no usable tagline.
	ErrNoTaglines = errors.New("taglines: no valid taglines found")

	// ErrInvalidCSV is returned when a CSV payload cannot be parsed.
	ErrInvalidCSV = errors.New("taglines: invalid csv")

	// ErrInvalidYAML is returned when a YAML list file cannot be decoded.
	ErrInvalidYAML = errors.New("taglines: invalid yaml")
)
