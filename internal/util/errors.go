package util

import "errors"

var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")
	ErrSessionNotFound = errors.New("session not found or expired")
)
