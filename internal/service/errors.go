package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong login or password")
	ErrLoginTaken          = errors.New("login is already taken")

	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrUnsupportedExportVersion = errors.New("unsupported export version")
	ErrVersionIsNotSpecified    = errors.New("app version is not specified")
)
