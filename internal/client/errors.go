package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrConflict        = errors.New("conflict")
	ErrTooManyRequests = errors.New("too many requests")
	ErrRequestFailed   = errors.New("request failed")
	ErrUnreachable     = errors.New("gateway unreachable")
)

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, body)
	default:
		return fmt.Errorf("%w: http %d", ErrRequestFailed, resp.StatusCode())
	}
}

// UserMessage is the short text shown to the user for err. Details stay in
// the log file.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthorized):
		return "Your session has expired. Please log in again."
	case errors.Is(err, ErrNotFound):
		return "The item no longer exists."
	case errors.Is(err, ErrInvalidRequest):
		return "The input was not accepted. Please check it and try again."
	case errors.Is(err, ErrConflict):
		return "That name is already taken."
	case errors.Is(err, ErrTooManyRequests):
		return "Too many requests. Please wait a moment."
	case errors.Is(err, ErrUnreachable):
		return "The server cannot be reached."
	default:
		return "Something went wrong. Please try again."
	}
}
