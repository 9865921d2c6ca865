/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package spec

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for spec reading. Every *SyntaxError unwraps to one of them.
var (
	// ErrNullInput indicates that no spec text was given at all.
	ErrNullInput = errors.New("spec text should not be null")

	// ErrEmptyInput indicates spec text that is blank after trimming.
	ErrEmptyInput = errors.New("spec text should not be empty")

	// ErrUnknownDirective indicates a header that matches no registered directive.
	ErrUnknownDirective = errors.New("unknown directive")

	// ErrUnknownParameter indicates an unrecognized clause keyword or trailing word.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrNumberFormat indicates a numeric token that could not be parsed.
	ErrNumberFormat = errors.New("number format")

	// ErrUnknownColor indicates a color token that is neither hex nor a known name.
	ErrUnknownColor = errors.New("unknown color")

	// ErrInvalidSides indicates an illegal side word or side combination.
	ErrInvalidSides = errors.New("invalid sides")

	// ErrMissingCssPropertyName indicates a css directive without a property name.
	ErrMissingCssPropertyName = errors.New("missing css property name")

	// ErrMissingValidationType indicates a text or css directive without a comparison mode.
	ErrMissingValidationType = errors.New("missing validation type")

	// ErrNoImagesDefined indicates an image directive without any file clause.
	ErrNoImagesDefined = errors.New("no images defined")

	// ErrInvalidErrorRate indicates a malformed error rate.
	ErrInvalidErrorRate = errors.New("invalid error rate")

	// ErrInvalidRange indicates a range with a malformed unit or reversed bounds.
	ErrInvalidRange = errors.New("invalid range")

	// ErrUnknownFilter indicates an image filter name that is not supported.
	ErrUnknownFilter = errors.New("unknown image filter")

	// ErrMissingObjectName indicates a directive body without the target object.
	ErrMissingObjectName = errors.New("missing object name")
)

// SyntaxError is the single error type raised for malformed spec text.
// Message is user-facing and stable; Kind is one of the sentinel errors above.
type SyntaxError struct {
	Kind    error
	Message string
}

// Error returns the user-facing message.
func (e *SyntaxError) Error() string {
	return e.Message
}

// Unwrap returns the error kind so callers can use errors.Is.
func (e *SyntaxError) Unwrap() error {
	return e.Kind
}

// Errorf builds a SyntaxError of the given kind.
func Errorf(kind error, format string, args ...any) *SyntaxError {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &SyntaxError{Kind: kind, Message: msg}
}

// Message catalog shared by the grammars and directive parsers.

// NullInputError reports absent spec text.
func NullInputError() *SyntaxError {
	return Errorf(ErrNullInput, "Spec text should not be null")
}

// EmptyInputError reports blank spec text.
func EmptyInputError() *SyntaxError {
	return Errorf(ErrEmptyInput, "Spec text should not be empty")
}

// UnknownDirectiveError reports an unregistered directive header.
func UnknownDirectiveError(header string) *SyntaxError {
	return Errorf(ErrUnknownDirective, "Unknown spec: %q", header)
}

// UnknownParameterError reports an unrecognized clause keyword.
func UnknownParameterError(word string) *SyntaxError {
	return Errorf(ErrUnknownParameter, "Unknown parameter: %s", word)
}

// NumberFormatError reports a token that is not a number. The token may be empty.
func NumberFormatError(token string) *SyntaxError {
	return Errorf(ErrNumberFormat, "Cannot parse number: \"%s\"", token)
}

// UnknownColorError reports a color token that could not be resolved.
func UnknownColorError(token string) *SyntaxError {
	return Errorf(ErrUnknownColor, "Unknown color: %s", token)
}

// MissingCssPropertyNameError reports a css directive without a property.
func MissingCssPropertyNameError() *SyntaxError {
	return Errorf(ErrMissingCssPropertyName, "Missing css property name")
}

// MissingValidationTypeError reports a text or css directive without a comparison mode.
func MissingValidationTypeError() *SyntaxError {
	return Errorf(ErrMissingValidationType, "Missing validation type (is, contains, starts, ends, matches)")
}

// NoImagesDefinedError reports an image directive without file clauses.
func NoImagesDefinedError() *SyntaxError {
	return Errorf(ErrNoImagesDefined, "There are no images defined")
}

// InvalidErrorRateError reports a malformed error rate, quoting the raw text.
func InvalidErrorRateError(raw string) *SyntaxError {
	return Errorf(ErrInvalidErrorRate, "Incorrect error rate syntax: \"%s\"", raw)
}

// UnknownFilterError reports an unsupported image filter.
func UnknownFilterError(name string) *SyntaxError {
	return Errorf(ErrUnknownFilter, "Unknown image filter: %s", name)
}

// MissingObjectNameError reports a directive body without an object name.
func MissingObjectNameError() *SyntaxError {
	return Errorf(ErrMissingObjectName, "Missing object name")
}
