package errors

import "errors"

var (
	ErrNotAuthenticated = errors.New("user has not signed in")
	ErrSessionExpired   = errors.New("user is signed out")
	ErrForbidden        = errors.New("forbidden")
	ErrSubjectNotFound  = errors.New("subject not found")
)
