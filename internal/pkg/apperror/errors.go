package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindAuth       Kind = "AUTH"
	KindValidation Kind = "VALIDATION"
	KindLimit      Kind = "LIMIT"
	KindNotFound   Kind = "NOT_FOUND"
)

const CodeForbidden = "ADMIN_REQUIRED"

// Error is the single error type surfaced by the notes core.
// Errors of the same Kind match each other under errors.Is.
type Error struct {
	Kind    Kind                   `json:"kind"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrAuth       = &Error{Kind: KindAuth, Code: "AUTH_ERROR", Message: "authentication required"}
	ErrValidation = &Error{Kind: KindValidation, Code: "VALIDATION_ERROR", Message: "invalid input"}
	ErrLimit      = &Error{Kind: KindLimit, Code: "NOTE_LIMIT_REACHED", Message: "note limit reached"}
	ErrNotFound   = &Error{Kind: KindNotFound, Code: "NOT_FOUND", Message: "resource not found"}
)

func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Code: "AUTH_ERROR", Message: message}
}

func Validation(message string, details map[string]interface{}) *Error {
	return &Error{Kind: KindValidation, Code: "VALIDATION_ERROR", Message: message, Details: details}
}

// Forbidden is an Auth error for a logged-in user lacking the required role.
func Forbidden(message string) *Error {
	return &Error{Kind: KindAuth, Code: CodeForbidden, Message: message}
}

// Limit carries the usage numbers that caused the denial.
func Limit(limit, used int) *Error {
	return &Error{
		Kind:    KindLimit,
		Code:    "NOTE_LIMIT_REACHED",
		Message: "note limit reached, upgrade to Pro for unlimited notes",
		Details: map[string]interface{}{
			"limit": limit,
			"used":  used,
		},
	}
}

func NotFound(resource, id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Details: map[string]interface{}{"id": id},
	}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
