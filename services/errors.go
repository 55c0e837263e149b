package services

import "errors"

// error กลางของ service layer — controller เอาไป map เป็น HTTP status
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrValidation         = errors.New("validation failed")
)
