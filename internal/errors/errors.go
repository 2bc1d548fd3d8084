package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// MalformedInputError reports input that could not be parsed at all, as
// opposed to a well-formed netlist that fails validation. Validation
// failures are ordinary results and never use this type.
type MalformedInputError struct {
	Message string
}

func (e *MalformedInputError) Error() string {
	return e.Message
}

// StorageUnavailableError reports that the persistence collaborator could
// not serve a request (connection refused, pool exhausted, ...).
type StorageUnavailableError struct {
	Message string
	Err     error
}

func (e *StorageUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("storage unavailable: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("storage unavailable: %s", e.Message)
}

func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrSubmissionNotFound = &NotFoundError{Entity: "submission"}
)

// Business Logic Errors
var (
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrGraphUnavailable        = errors.New("graph unavailable: netlist is structurally invalid")
)

// Authentication Errors
var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsMalformedInput checks if an error is a MalformedInputError
func IsMalformedInput(err error) bool {
	var malformedErr *MalformedInputError
	return errors.As(err, &malformedErr)
}

// IsStorageUnavailable checks if an error is a StorageUnavailableError
func IsStorageUnavailable(err error) bool {
	var storageErr *StorageUnavailableError
	return errors.As(err, &storageErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewMalformedInputError creates a new MalformedInputError
func NewMalformedInputError(message string) error {
	return &MalformedInputError{Message: message}
}

// NewStorageUnavailableError wraps a storage failure
func NewStorageUnavailableError(message string, err error) error {
	return &StorageUnavailableError{Message: message, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
