package services

import (
	"errors"
	"net/http"
)

// ErrorCode identifies a business-rule violation class.
type ErrorCode string

const (
	CodeValidationError       ErrorCode = "VALIDATION_ERROR"
	CodeNotFound              ErrorCode = "NOT_FOUND"
	CodeCartLimitExceeded     ErrorCode = "CART_LIMIT_EXCEEDED"
	CodeQuantityLimitExceeded ErrorCode = "QUANTITY_LIMIT_EXCEEDED"
	CodeSpamDetected          ErrorCode = "SPAM_DETECTED"
)

// FieldError carries per-field detail for validation failures.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ServiceError is the error type produced by domain services for expected
// business-rule violations. Anything else bubbling out of a service is an
// unexpected fault and must not be mapped to a known code.
type ServiceError struct {
	Code    ErrorCode    `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"-"`
	Details []FieldError `json:"details,omitempty"`
}

func (e *ServiceError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// AsServiceError unwraps err into a *ServiceError if it is one.
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

func newValidationError(details []FieldError) *ServiceError {
	return &ServiceError{
		Code:    CodeValidationError,
		Message: "Validation failed",
		Status:  http.StatusBadRequest,
		Details: details,
	}
}

func newNotFound(message string) *ServiceError {
	return &ServiceError{
		Code:    CodeNotFound,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

func newCartLimitExceeded(message string) *ServiceError {
	return &ServiceError{
		Code:    CodeCartLimitExceeded,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

func newQuantityLimitExceeded(message string) *ServiceError {
	return &ServiceError{
		Code:    CodeQuantityLimitExceeded,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

func newSpamDetected(message string) *ServiceError {
	return &ServiceError{
		Code:    CodeSpamDetected,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}
