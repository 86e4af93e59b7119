// services/errors.go
package services

// Typed failures returned by the service layer. Controllers translate them
// to HTTP statuses at the request boundary; anything not covered here is a
// server error.

// ValidationError covers bad, missing, or contradictory input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// AuthenticationError covers missing, invalid, or expired credentials.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NotFoundError covers referenced records that are absent or not owned by
// the requesting user.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(message string) error {
	return &NotFoundError{Message: message}
}

// ConflictError covers duplicate records, e.g. an already registered email.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// ConfigurationError carries an operator-facing reason verbatim, e.g. a
// missing SMTP configuration.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
