package errors

import "fmt"

var (
	ErrWorkerPanic           = fmt.Errorf("worker panic")
	ErrEmptyCredentials      = fmt.Errorf("username and password are required")
	ErrMissingField          = fmt.Errorf("missing required field")
	ErrInvalidChoice         = fmt.Errorf("value is not one of the offered choices")
	ErrNotAuthenticated      = fmt.Errorf("session is not authenticated")
	ErrProfileAlreadySet     = fmt.Errorf("farm profile already submitted for this session")
	ErrNoProfile             = fmt.Errorf("no farm profile for this session")
	ErrTooManyPendingReplies = fmt.Errorf("too many replies pending")
	ErrWeatherUnavailable    = fmt.Errorf("weather data unavailable")
)
