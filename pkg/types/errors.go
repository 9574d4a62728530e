package types

import "errors"

// Decoding errors.
var (
	ErrInvalidDocument = errors.New("invalid payload document")
	ErrInvalidPayload  = errors.New("payload must be a JSON object")
)

// Lookup and parsing errors.
var (
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidLayoutSize = errors.New("invalid layout size")
)
