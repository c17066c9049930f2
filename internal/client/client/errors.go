package client

import "errors"

var (
	ErrUnavailable        = errors.New("record store unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrConflict           = errors.New("conflict")
	ErrUnexpectedResponse = errors.New("unexpected response")
)
