package repository

import "errors"

// Sentinel kinds for match store errors.
var (
	ErrNoMatch          = errors.New("no match loaded")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrUnknownEventType = errors.New("unknown event type")
	ErrInvalidMinute    = errors.New("invalid minute")
)
