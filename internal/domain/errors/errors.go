package errors

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrEmptyOrder   = errors.New("order has no items")
	ErrMissingField = errors.New("required field is empty")
	ErrInvalidDate  = errors.New("invalid order date")
)
