package adapter

import "errors"

var (
	ErrInvalidRequest = errors.New("request rejected by server")
	ErrUnauthorized   = errors.New("client unauthorized")
	ErrForbidden      = errors.New("access forbidden")
)
