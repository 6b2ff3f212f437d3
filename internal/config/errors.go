package config

import (
	"errors"
	"fmt"

	"github.com/dshills/boxedit/internal/config/loader"
)

var (
	// ErrValidationFailed matches every *ValidationError with errors.Is.
	ErrValidationFailed  = errors.New("validation failed")
	ErrUnsupportedFormat = loader.ErrUnsupportedFormat
)

// ParseError reports a file that is not valid TOML or YAML.
type ParseError = loader.ParseError

// ValidationErrorCode says which rule a setting broke.
type ValidationErrorCode uint8

const (
	ErrCodeUnknownSetting ValidationErrorCode = iota
	ErrCodeTypeMismatch
	ErrCodeOutOfRange
	ErrCodeInvalidEnum
	ErrCodePatternMismatch
)

var codeNames = [...]string{
	ErrCodeUnknownSetting:  "unknown_setting",
	ErrCodeTypeMismatch:    "type_mismatch",
	ErrCodeOutOfRange:      "out_of_range",
	ErrCodeInvalidEnum:     "invalid_enum",
	ErrCodePatternMismatch: "pattern_mismatch",
}

func (c ValidationErrorCode) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "unknown"
}

// ValidationError names the setting at Path that failed and why.
type ValidationError struct {
	Path    string // dotted, e.g. "blink.on_ms"
	Message string
	Value   any
	Code    ValidationErrorCode
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Path, e.Message)
	if e.Value != nil {
		msg += fmt.Sprintf(" (got %v)", e.Value)
	}
	return msg
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidationFailed }
