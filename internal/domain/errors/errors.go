package errors

import (
	"net/http"

	"fitsaga/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// PayloadError is an AppError that carries structured details for the client
type PayloadError interface {
	AppError
	Payload() any
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors with the same business code, so WithDetails copies still match the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// payloadError carries structured details next to a predefined error
type payloadError struct {
	*BaseError
	payload any
}

// WithPayload returns base carrying payload as its client-visible details
func WithPayload(base *BaseError, payload any) PayloadError {
	return &payloadError{BaseError: base, payload: payload}
}

// NewConflictWithIDs returns base carrying {field: ids} as its payload
func NewConflictWithIDs(base *BaseError, field string, ids []string) PayloadError {
	return WithPayload(base, map[string][]string{field: ids})
}

// Payload returns the structured details
func (e *payloadError) Payload() any {
	return e.payload
}

// Unwrap exposes the base error to errors.Is
func (e *payloadError) Unwrap() error {
	return e.BaseError
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"A user with this email already exists",
		"",
	)

	ErrInvalidAccessStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACCESS_STATUS",
		"Invalid access status for this role",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"Invalid role",
		"",
	)

	ErrClaimUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"CLAIM_UPDATE_FAILED",
		"User saved but role claim could not be updated",
		"",
	)

	// Client-related errors
	ErrClientNotFound = NewBaseError(
		http.StatusNotFound,
		"CLIENT_NOT_FOUND",
		"Client not found",
		"",
	)

	ErrClientsHaveBookings = NewBaseError(
		http.StatusConflict,
		"CLIENTS_HAVE_BOOKINGS",
		"Some clients have active bookings",
		"",
	)

	ErrInstructorNotFound = NewBaseError(
		http.StatusNotFound,
		"INSTRUCTOR_NOT_FOUND",
		"Instructor not found",
		"",
	)

	// Plan-related errors
	ErrPlanNotFound = NewBaseError(
		http.StatusNotFound,
		"PLAN_NOT_FOUND",
		"Subscription plan not found",
		"",
	)

	// Session-related errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Session not found",
		"",
	)

	ErrSessionHasBookings = NewBaseError(
		http.StatusConflict,
		"SESSION_HAS_BOOKINGS",
		"Cannot delete sessions with confirmed bookings",
		"",
	)

	ErrSessionNotDeletable = NewBaseError(
		http.StatusConflict,
		"SESSION_NOT_DELETABLE",
		"Cannot delete sessions that are in progress or completed",
		"",
	)

	// Contract-related errors
	ErrContractNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTRACT_NOT_FOUND",
		"Contract not found",
		"",
	)

	ErrContractAlreadySigned = NewBaseError(
		http.StatusBadRequest,
		"CONTRACT_ALREADY_SIGNED",
		"Contract has already been signed",
		"",
	)

	ErrContractExpired = NewBaseError(
		http.StatusBadRequest,
		"CONTRACT_EXPIRED",
		"Contract has expired",
		"",
	)

	ErrContractNotSignable = NewBaseError(
		http.StatusBadRequest,
		"CONTRACT_NOT_SIGNABLE",
		"Contract is not awaiting a signature",
		"",
	)

	ErrSignatureRequired = NewBaseError(
		http.StatusBadRequest,
		"SIGNATURE_REQUIRED",
		"A valid PNG signature is required",
		"",
	)

	ErrInvalidSigningToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_SIGNING_TOKEN",
		"Invalid or expired signing link",
		"",
	)

	ErrContractDocumentNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTRACT_DOCUMENT_NOT_FOUND",
		"Contract document not found",
		"",
	)

	ErrContractStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"CONTRACT_STORAGE_FAILED",
		"Contract could not be stored",
		"",
	)

	// Tutorial-related errors
	ErrTutorialNotFound = NewBaseError(
		http.StatusNotFound,
		"TUTORIAL_NOT_FOUND",
		"Tutorial not found",
		"",
	)

	ErrNotTutorialAuthor = NewBaseError(
		http.StatusForbidden,
		"NOT_TUTORIAL_AUTHOR",
		"Only the author can modify this tutorial",
		"",
	)

	// Media-related errors
	ErrMediaUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"MEDIA_UNAVAILABLE",
		"Video storage is not configured",
		"",
	)

	ErrVideoNotFound = NewBaseError(
		http.StatusNotFound,
		"VIDEO_NOT_FOUND",
		"Could not locate video in any container or path variation",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the underlying database error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
