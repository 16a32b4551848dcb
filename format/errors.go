// Package format provides uniform reading and writing of configuration
// files across multiple serialization formats.
package format

// Error classification shared by every failure this library produces.
const (
	// KindInvalidConfiguration is the single error kind covering missing
	// files, IO failures, malformed content, and vault lookups.
	KindInvalidConfiguration = "Invalid Configuration"

	// CodeInvalidConfiguration is the numeric code paired with the kind.
	CodeInvalidConfiguration = 400
)

// Detail keys injected into error contexts.
const (
	// DetailPath holds the file path the failing operation targeted.
	DetailPath = "path"

	// DetailOrigin holds the raw text of the underlying error.
	DetailOrigin = "origin"
)

// Context carries caller-supplied metadata attached to errors.
//
// The library treats it as opaque passthrough data: keys seeded by the
// caller survive untouched into the final error details. Every
// extension happens on a copy, so a caller's map is never mutated as a
// side effect of a failed call.
type Context map[string]any

// Clone returns a copy of the context. A nil context clones to an
// empty, non-nil one so it can be extended safely.
func (c Context) Clone() Context {
	out := make(Context, len(c)+2)
	for k, v := range c {
		out[k] = v
	}
	return out
}

// With returns a copy of the context with key set to value.
func (c Context) With(key string, value any) Context {
	out := c.Clone()
	out[key] = value
	return out
}

// ConfigurationFileError reports a failed file or content operation:
// open, create, decode, or encode.
type ConfigurationFileError struct {
	Message string
	Details Context
	Cause   error
}

// newFileError wraps a failure at its point of occurrence.
func newFileError(message string, details Context, cause error) *ConfigurationFileError {
	return &ConfigurationFileError{
		Message: message,
		Details: details,
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *ConfigurationFileError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *ConfigurationFileError) Unwrap() error {
	return e.Cause
}

// Kind returns the error kind.
func (e *ConfigurationFileError) Kind() string {
	return KindInvalidConfiguration
}

// Code returns the numeric code paired with the kind.
func (e *ConfigurationFileError) Code() int {
	return CodeInvalidConfiguration
}
