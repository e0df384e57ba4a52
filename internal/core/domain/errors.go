package domain

import "errors"

var (
	ErrSourceUnavailable = errors.New("poll source unavailable")
	ErrPollNotFound      = errors.New("poll not found")
	ErrInvalidPollID     = errors.New("invalid poll id")
	ErrInvalidChoiceID   = errors.New("invalid choice id")
	ErrTallyMismatch     = errors.New("choice tally does not match recorded votes")
)
