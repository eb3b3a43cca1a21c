package errors

import (
	"fmt"
)

// ParseError is a configuration file that could not be read or decoded.
// Line is 0 when the decoder did not report a position.
type ParseError struct {
	Path string
	Line int
	Err  error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	return &ParseError{Path: path, Line: line, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	where := "config " + e.Path
	if e.Line > 0 {
		where = fmt.Sprintf("%s line %d", where, e.Line)
	}
	if e.Err == nil {
		return where + ": unreadable"
	}
	return where + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError is a refused value. Field uses the dotted YAML path
// ("form.build", "image.source") so messages match what users edit.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	field := e.Field
	if field == "" {
		field = "value"
	}
	return fmt.Sprintf("invalid %s: %s", field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ImageError records a failure to read or decode a print image.
type ImageError struct {
	Path string
	Err  error
}

// NewImageError constructs an ImageError.
func NewImageError(path string, err error) error {
	return &ImageError{Path: path, Err: err}
}

func (e *ImageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("image error: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("image error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ImageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SubmissionError indicates a submitter could not hand off a request.
type SubmissionError struct {
	Submitter string
	Message   string
	Err       error
}

// NewSubmissionError constructs a SubmissionError for the named submitter.
func NewSubmissionError(submitter string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &SubmissionError{Submitter: submitter, Message: message, Err: err}
}

func (e *SubmissionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Submitter != "" {
		return fmt.Sprintf("submission error [%s]: %s", e.Submitter, e.Message)
	}
	return fmt.Sprintf("submission error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *SubmissionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
