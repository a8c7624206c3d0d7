package domain

import "fmt"

// Error codes for the recognized failure kinds
const (
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeFileNotFound  = "FILE_NOT_FOUND"
	ErrCodeFileRead      = "FILE_READ_ERROR"
	ErrCodeParseError    = "PARSE_ERROR"
	ErrCodeAnalysisError = "ANALYSIS_ERROR"
	ErrCodeConfigError   = "CONFIG_ERROR"
)

// DomainError is the error type carried across layer boundaries
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface
func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e DomainError) Unwrap() error {
	return e.Cause
}

// NewDomainError creates a DomainError with an arbitrary code
func NewDomainError(code, message string, cause error) error {
	return DomainError{Code: code, Message: message, Cause: cause}
}

// NewInvalidInputError creates an error for invalid user input
func NewInvalidInputError(message string, cause error) error {
	return DomainError{Code: ErrCodeInvalidInput, Message: message, Cause: cause}
}

// NewFileNotFoundError creates an error for a missing file
func NewFileNotFoundError(path string, cause error) error {
	return DomainError{Code: ErrCodeFileNotFound, Message: fmt.Sprintf("file not found: %s", path), Cause: cause}
}

// NewFileReadError creates an error for an unreadable file
func NewFileReadError(path string, cause error) error {
	return DomainError{Code: ErrCodeFileRead, Message: fmt.Sprintf("failed to read file: %s", path), Cause: cause}
}

// NewParseError creates an error for unparseable source
func NewParseError(path string, cause error) error {
	return DomainError{Code: ErrCodeParseError, Message: fmt.Sprintf("failed to parse file: %s", path), Cause: cause}
}

// NewAnalysisError creates an error for an analysis failure
func NewAnalysisError(message string, cause error) error {
	return DomainError{Code: ErrCodeAnalysisError, Message: message, Cause: cause}
}

// NewConfigError creates an error for a configuration problem
func NewConfigError(message string, cause error) error {
	return DomainError{Code: ErrCodeConfigError, Message: message, Cause: cause}
}
