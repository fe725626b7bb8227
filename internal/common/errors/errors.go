// internal/common/errors/errors.go

// Package errors provides the standardized error taxonomy for the
// matching engine.
package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Caller errors: recoverable by correcting input, never retried.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	// Dependency errors: surfaced as retryable, but the engine itself
	// performs zero retries and zero partial degradation.
	ErrCodeProfileStoreUnavailable   ErrorCode = "PROFILE_STORE_UNAVAILABLE"
	ErrCodeCatalogueStoreUnavailable ErrorCode = "CATALOGUE_STORE_UNAVAILABLE"

	// Per-candidate errors: the candidate is skipped with a logged
	// reason, the run continues.
	ErrCodeMalformedProfile ErrorCode = "MALFORMED_PROFILE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidRequestError creates a non-retryable validation error naming
// every missing required field.
func NewInvalidRequestError(missingFields []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Event request is missing required fields",
		Details:   fmt.Sprintf("missing: %s", strings.Join(missingFields, ", ")),
		Retryable: false,
		Metadata: map[string]interface{}{
			"missingFields": missingFields,
		},
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileStoreUnavailableError creates a retryable error for a failed
// expertise-profile read.
func NewProfileStoreUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileStoreUnavailable,
		Message:   "Vendor profile store read failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogueStoreUnavailableError creates a retryable error for a
// failed service-catalogue read.
func NewCatalogueStoreUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogueStoreUnavailable,
		Message:   "Service catalogue read failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedProfileError creates a non-retryable error for one vendor
// profile that failed schema validation or scoring. The caller excludes
// the vendor and continues.
func NewMalformedProfileError(vendorID, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedProfile,
		Message:   "Vendor expertise profile is malformed",
		Details:   details,
		Retryable: false,
		Metadata: map[string]interface{}{
			"vendorId": vendorID,
		},
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// MissingFields extracts the missing field list from an InvalidRequest
// error, or nil for any other error.
func MissingFields(err error) []string {
	var stdErr *StandardError
	if !errors.As(err, &stdErr) || stdErr.Code != ErrCodeInvalidRequest {
		return nil
	}
	fields, _ := stdErr.Metadata["missingFields"].([]string)
	return fields
}

// IsInvalidRequest checks whether err is an INVALID_REQUEST error.
func IsInvalidRequest(err error) bool {
	var stdErr *StandardError
	return errors.As(err, &stdErr) && stdErr.Code == ErrCodeInvalidRequest
}

// IsDependencyUnavailable checks whether err is a store-unavailable error.
func IsDependencyUnavailable(err error) bool {
	var stdErr *StandardError
	if !errors.As(err, &stdErr) {
		return false
	}
	return stdErr.Code == ErrCodeProfileStoreUnavailable ||
		stdErr.Code == ErrCodeCatalogueStoreUnavailable
}

// IsRetryable checks whether err carries a retryable condition the
// caller may retry on its own policy.
func IsRetryable(err error) bool {
	var stdErr *StandardError
	return errors.As(err, &stdErr) && stdErr.Retryable
}
