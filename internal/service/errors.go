package service

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("order number already exists")
	ErrValidation = errors.New("validation")

	// Webhook pipeline rejections.
	ErrMissingContent = errors.New("missing email content (body or snippet)")
	ErrNoOrderNumber  = errors.New("could not extract order number")

	// Settings list updates must actually be arrays.
	ErrNotArray = errors.New("value must be an array")
)
