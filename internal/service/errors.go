package service

import "errors"

var (
	ErrNotFound     = errors.New("task not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrNoFields     = errors.New("no fields to update")
)
