// Package vault loads named secret blobs from a single JSON file and
// lazily decodes a chosen one into a typed value.
package vault

import "github.com/vyrodovalexey/avaconf/format"

// DetailAlias is the detail key holding the alias a failed lookup
// targeted.
const DetailAlias = "alias"

// SecretError reports a failed vault operation: a missing alias or an
// unloaded vault.
type SecretError struct {
	Message string
	Details format.Context
	Cause   error
}

// newSecretError wraps a failure at its point of occurrence.
func newSecretError(message string, details format.Context, cause error) *SecretError {
	return &SecretError{
		Message: message,
		Details: details,
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *SecretError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *SecretError) Unwrap() error {
	return e.Cause
}

// Kind returns the error kind.
func (e *SecretError) Kind() string {
	return format.KindInvalidConfiguration
}

// Code returns the numeric code paired with the kind.
func (e *SecretError) Code() int {
	return format.CodeInvalidConfiguration
}
