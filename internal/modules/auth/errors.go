package auth

import "errors"

var (
	ErrEmailExists        = errors.New("email_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUserBlocked        = errors.New("user_blocked")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrInvalidToken       = errors.New("invalid_token")
	ErrWrongPassword      = errors.New("wrong_password")
)
