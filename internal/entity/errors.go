package entity

import "errors"

// Domain error values. All are recoverable: services return them to the
// caller and never mutate state on a failed validation.
var (
	ErrUnknownFeature      = errors.New("unknown feature")
	ErrMissingInput        = errors.New("this feature requires an input")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidYearInput    = errors.New("input must be a whole number of years")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrAdviceNotFound      = errors.New("advice request not found")
	ErrFeedbackAlreadySet  = errors.New("feedback has already been provided")
	ErrAssetNotFound       = errors.New("asset not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCode         = errors.New("invalid verification code")
	ErrCodeExpired         = errors.New("verification code expired")
)
