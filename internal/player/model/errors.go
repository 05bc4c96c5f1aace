package model

import "errors"

var (
	// ErrPlayerNotFound is returned when a player does not exist.
	ErrPlayerNotFound = errors.New("player not found")
)
