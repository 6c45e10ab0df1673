package services

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies a failure surfaced to RPC callers.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindAlreadyExists
	KindInvalidCredential
	KindInvalidToken
	KindStorageFailure
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION"
	case KindAlreadyExists:
		return "ALREADY_EXISTS"
	case KindInvalidCredential:
		return "INVALID_CREDENTIAL"
	case KindInvalidToken:
		return "INVALID_TOKEN"
	case KindStorageFailure:
		return "STORAGE_FAILURE"
	default:
		return "INTERNAL"
	}
}

// Messages returned to callers. The credential message is shared by the
// unknown-email and wrong-password cases.
const (
	MsgUserAlreadyExists  = "User already exists"
	MsgInvalidCredentials = "Email/password not valid"
	MsgInvalidToken       = "Token is not valid"
)

// RPCError is the {message, status} pair every AuthService failure is
// normalized into. Err keeps the underlying cause for logs and errors.Is.
type RPCError struct {
	Kind    ErrorKind
	Message string
	Status  int
	Err     error
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

func (e *RPCError) Unwrap() error {
	return e.Err
}

func newRPCError(kind ErrorKind, message string, cause error) *RPCError {
	status := http.StatusBadRequest
	switch kind {
	case KindInvalidToken:
		status = http.StatusUnauthorized
	case KindInternal:
		status = http.StatusInternalServerError
	}
	return &RPCError{Kind: kind, Message: message, Status: status, Err: cause}
}
