package adapter

import "errors"

var (
	ErrBadRequest         = errors.New("backend rejected request")
	ErrUnauthorized       = errors.New("backend unauthorized")
	ErrNotFound           = errors.New("backend resource not found")
	ErrConflict           = errors.New("backend conflict")
	ErrUnexpectedStatus   = errors.New("unexpected backend status")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrTokenMinting       = errors.New("error minting backend token")
)
