package interview

import "errors"

var (
	// ErrInvalidTransition is returned when an operation is called
	// while the session is not in an eligible stage. The session is
	// left unchanged.
	ErrInvalidTransition = errors.New("interview: invalid transition")

	// ErrEmptyQuestionSet is returned when BeginInterview is called
	// with no questions.
	ErrEmptyQuestionSet = errors.New("interview: empty question set")
)
