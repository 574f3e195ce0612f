package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("incorrect email or password")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrWrongTokenType      = errors.New("wrong token type")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrInactiveUser = errors.New("inactive user")
	ErrForbidden    = errors.New("the user doesn't have enough privileges")
)
