package services

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidAnswer  = errors.New("invalid answer")
	ErrDuplicateTitle = errors.New("a quiz with this title already exists")
)
