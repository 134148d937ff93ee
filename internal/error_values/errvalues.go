package errorvalues

import "errors"

var (
	ErrValidation = errors.New("validation error")

	ErrEmailTaken       = errors.New("email already registered")
	ErrUserNotFound     = errors.New("user doesn't exist")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrBookNotFound   = errors.New("book doesn't exist")
	ErrDuplicateTitle = errors.New("user already has a book with this title")
	ErrWrongOwner     = errors.New("book has different owner")

	ErrAlreadyMarked = errors.New("book already marked")
	ErrMarkNotFound  = errors.New("book isn't marked")

	ErrReviewExists   = errors.New("user already reviewed this book")
	ErrReviewNotFound = errors.New("review doesn't exist")

	ErrSessionNotFound = errors.New("reading session doesn't exist")
	ErrSessionClosed   = errors.New("reading session already closed")
	ErrEndBeforeStart  = errors.New("end time precedes start time")
	ErrInvalidPeriod   = errors.New("unknown stats period")

	ErrSelfFollow       = errors.New("user can't follow themselves")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrFollowNotFound   = errors.New("follow relation doesn't exist")
)
