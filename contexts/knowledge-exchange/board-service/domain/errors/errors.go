package errors

import "errors"

var (
	ErrQuestionNotFound    = errors.New("question not found")
	ErrAnswerNotFound      = errors.New("answer not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrConstraintViolation = errors.New("request caused a table constraint violation")
)
