package services

import "errors"

// Core error taxonomy. Controllers distinguish these with errors.Is and map
// them to response codes; anything else is treated as a persistence failure.
var (
	// ErrNotFound means the referenced entity does not exist
	ErrNotFound = errors.New("record not found")

	// ErrOrderClosed means a mutation was attempted on a terminal order
	// (cobrada or cancelada)
	ErrOrderClosed = errors.New("cannot modify a closed order")

	// ErrInvalidStatus means a status value outside the recognized
	// vocabulary was supplied
	ErrInvalidStatus = errors.New("invalid status value")

	// ErrInvalidQuantity means a non-positive quantity was supplied
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrInvalidPrice means a negative unit price was supplied
	ErrInvalidPrice = errors.New("unit price must not be negative")
)
