package account

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidToken    = errors.New("provider rejected the token")
	ErrNotLinked       = errors.New("no credential linked for this provider")
	ErrMissingArgument = errors.New("token is required")
)
