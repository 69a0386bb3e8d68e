package exception

import "errors"

var (
	ErrExceptionNotFound = errors.New("time exception not found")
)
