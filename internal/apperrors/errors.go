package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidCredentials indicates a failed login. It deliberately does not
// distinguish an unknown username from a wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrSessionExpired indicates the refresh credential itself is expired or unusable.
var ErrSessionExpired = errors.New("session expired")

// ErrSessionRevoked indicates a refresh credential that verifies
// cryptographically but no longer matches the server-held copy.
var ErrSessionRevoked = errors.New("session revoked")

// ErrTokenExpired indicates a token that verified but is past its expiry.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid indicates a malformed token or a failed signature check.
var ErrTokenInvalid = errors.New("token invalid")
