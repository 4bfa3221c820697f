package errcode

import (
	"fmt"
	"net/http"
)

var (
	ErrInvalidParam = New(http.StatusBadRequest, "Invalid request body")
	ErrUnauthorized = New(http.StatusUnauthorized, "Authentication required")
)

// group
var (
	ErrGroupNotFound       = New(http.StatusNotFound, "Group not found")
	ErrOnlyCreatorEdit     = New(http.StatusForbidden, "Only the creator can edit this group")
	ErrOnlyCreatorDelete   = New(http.StatusForbidden, "Only the creator can delete this group")
	ErrOnlyCreatorRequests = New(http.StatusForbidden, "Only the creator can view join requests")
)

// auth
var (
	ErrEmailRegistered    = New(http.StatusConflict, "Email already registered")
	ErrInvalidCredentials = New(http.StatusUnauthorized, "Invalid email or password")
	ErrUserNotFound       = New(http.StatusNotFound, "User not found")
)

type Error struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("status: %d, message: %v", e.Status, e.Message)
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// FieldError reports the first violated field of a request body.
func FieldError(field, message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message, Field: field}
}
