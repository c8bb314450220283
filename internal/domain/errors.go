package domain

import "errors"

var (
	// ErrInvalidCategory is returned when a session is started for an unknown category.
	ErrInvalidCategory = errors.New("invalid quiz category")
	// ErrInvalidOption indicates a submitted option index outside 0-3.
	ErrInvalidOption = errors.New("invalid option")
	// ErrQuestionNotAnswered is returned when advancing past a question with no answer or skip recorded.
	ErrQuestionNotAnswered = errors.New("current question has not been answered")
	// ErrTimeExpired is returned when answering a question whose countdown already ran out.
	ErrTimeExpired = errors.New("time for the current question has expired")
	// ErrLifelineAlreadyUsed is returned when a lifeline is requested a second time in a session.
	ErrLifelineAlreadyUsed = errors.New("lifeline already used")
	// ErrUnknownLifeline indicates a lifeline name that is not one of the supported kinds.
	ErrUnknownLifeline = errors.New("unknown lifeline")
	// ErrSessionCompleted is returned for any mutation of a finished session.
	ErrSessionCompleted = errors.New("quiz session already completed")
	// ErrSessionInProgress is returned when a result is requested before the session ends.
	ErrSessionInProgress = errors.New("quiz session still in progress")
	// ErrNoPreviousQuestion is returned when navigating back from the first question.
	ErrNoPreviousQuestion = errors.New("no previous question")
	// ErrSessionNotFound is returned when a quiz session has not been started or was abandoned.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrInvalidQuestionBank indicates question content failed load-time validation.
	ErrInvalidQuestionBank = errors.New("invalid question bank")
	// ErrInvalidContact wraps contact form validation failures.
	ErrInvalidContact = errors.New("invalid contact message")
)
