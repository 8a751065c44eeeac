// Package errors provides standardized error handling for Orbiter.
// It defines common error kinds and helper functions for consistent
// error creation, wrapping, and inspection across the application.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	// Content error kinds
	ContentNotFound
	InvalidContent
	// Lead submission error kinds
	InvalidLead
	SubmissionFailed
)

// Common error values for frequently occurring errors
var (
	ErrInvalidConfig   = NewConfigError("invalid configuration", "", InvalidConfig, nil)
	ErrContentNotFound = NewContentError("content not found", "", ContentNotFound, nil)
	ErrInvalidLead     = NewSubmissionError("invalid lead", InvalidLead, nil, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// ContentError represents errors loading or validating site content
type ContentError struct {
	ApplicationError
	source string
}

// NewContentError creates a new content error. source names the content
// file or the catalog the problem was found in.
func NewContentError(msg string, source string, kind ErrorKind, err error) *ContentError {
	return &ContentError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		source: source,
	}
}

// Error returns the content error message
func (e *ContentError) Error() string {
	if e.source != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.source, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.source)
	}
	return e.ApplicationError.Error()
}

// Source returns the content source associated with the error
func (e *ContentError) Source() string {
	return e.source
}

// SubmissionError represents a rejected or failed lead submission.
// Fields holds per-field validation messages keyed by form field name.
type SubmissionError struct {
	ApplicationError
	Fields map[string]string
}

// NewSubmissionError creates a new submission error
func NewSubmissionError(msg string, kind ErrorKind, fields map[string]string, err error) *SubmissionError {
	return &SubmissionError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		Fields: fields,
	}
}

// Error returns the submission error message, listing invalid fields in
// a stable order.
func (e *SubmissionError) Error() string {
	if len(e.Fields) == 0 {
		return e.ApplicationError.Error()
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%s: %s", e.msg, strings.Join(names, ", "))
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsInvalidContent checks if the error is an invalid content error
func IsInvalidContent(err error) bool {
	var contentErr *ContentError
	if errors.As(err, &contentErr) {
		return contentErr.Kind() == InvalidContent
	}
	return false
}

// IsInvalidLead checks if the error is a lead validation error
func IsInvalidLead(err error) bool {
	var subErr *SubmissionError
	if errors.As(err, &subErr) {
		return subErr.Kind() == InvalidLead
	}
	return false
}

// FieldErrors returns the per-field messages carried by err, if any.
func FieldErrors(err error) map[string]string {
	var subErr *SubmissionError
	if errors.As(err, &subErr) {
		return subErr.Fields
	}
	return nil
}
