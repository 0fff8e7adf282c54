package services

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmptyUpdate        = errors.New("no updatable fields provided")
	ErrEmptyTask          = errors.New("task description is required")
)
