package digest

import (
	"errors"
	"fmt"
	"strings"
)

// Application error codes.
const (
	ECONFLICT       = "conflict"
	EINTERNAL       = "internal"
	EINVALID        = "invalid"
	ENOTFOUND       = "not_found"
	ENOTIMPLEMENTED = "not_implemented"
	EUNAVAILABLE    = "unavailable"
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract out the code & message.
//
// Any non-application error (such as a disk error) should be reported as an
// EINTERNAL error and the human user should only see "Internal error" as the
// message. These low-level internal error details should only be logged and
// reported to the operator of the application (not the end user).
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("digest error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// User-facing messages for failed article analyses.
const (
	MessagePaywall    = "This content is behind a paywall or requires authentication. Try a different article or news source."
	MessageNotFound   = "Article not found. Please check the URL and try again."
	MessageExtraction = "Unable to extract article content. This site may have anti-scraping protection or an unusual format."
	MessageGeneric    = "An error occurred while processing the article. Please try again or use a different URL."
)

// FriendlyError translates an article analysis error into a message for
// end users. Sites refusing access are reported as paywalled.
func FriendlyError(err error) string {
	var b interface{ Blocked() bool }
	if errors.As(err, &b) && b.Blocked() {
		return MessagePaywall
	}

	switch ErrorCode(err) {
	case ENOTFOUND:
		return MessageNotFound
	case EINVALID:
		msg := ErrorMessage(err)
		if strings.Contains(strings.ToLower(msg), "could not extract") {
			return MessageExtraction
		}
		return msg
	}
	return MessageGeneric
}
