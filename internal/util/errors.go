package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrQuizNotAccessible   = errors.New("quiz is private, join with an access code first")
	ErrQuizNotYetOpen      = errors.New("quiz has not started yet")
	ErrQuizClosed          = errors.New("quiz has already ended")
	ErrQuizAlreadyTaken    = errors.New("quiz already completed")
	ErrQuizNotPractice     = errors.New("quiz does not allow practice attempts")
	ErrResultNotFound      = errors.New("result not found")
	ErrInvalidAccessCode   = errors.New("access code is invalid or does not exist")
	ErrQuestionInUse       = errors.New("question is used by an existing quiz")
	ErrShortAnswerRequired = errors.New("short answer questions require a reference answer")
	ErrNoCorrectOption     = errors.New("question must have a correct option")
)
