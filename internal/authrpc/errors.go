package authrpc

import (
	"fmt"
	"net/http"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// ErrorDomain identifies errdetails.ErrorInfo entries produced by this service.
	ErrorDomain = "gophauth"
	// StatusMetadataKey holds the HTTP-style status in ErrorInfo.Metadata.
	StatusMetadataKey = "status"
)

// Error is the {message, status} pair a failed call carries.
type Error struct {
	Reason  string
	Message string
	Status  int
	Code    codes.Code
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// NewStatusError encodes message and httpStatus into a gRPC status error
// with the given code. reason names the failure class (e.g. "ALREADY_EXISTS").
func NewStatusError(code codes.Code, reason, message string, httpStatus int) error {
	st := status.New(code, message)
	withInfo, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   ErrorDomain,
		Metadata: map[string]string{StatusMetadataKey: strconv.Itoa(httpStatus)},
	})
	if err != nil {
		return st.Err()
	}
	return withInfo.Err()
}

// ErrorFromStatus decodes err back into an *Error. Errors that carry no
// ErrorInfo get a status derived from their gRPC code. ok is false when err
// is not a gRPC status error at all.
func ErrorFromStatus(err error) (*Error, bool) {
	st, ok := status.FromError(err)
	if !ok || err == nil {
		return nil, false
	}

	out := &Error{
		Message: st.Message(),
		Code:    st.Code(),
		Status:  httpStatusFromCode(st.Code()),
		Reason:  st.Code().String(),
	}

	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain {
			continue
		}
		out.Reason = info.GetReason()
		if s, err := strconv.Atoi(info.GetMetadata()[StatusMetadataKey]); err == nil {
			out.Status = s
		}
	}

	return out, true
}

func httpStatusFromCode(c codes.Code) int {
	switch c {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument, codes.AlreadyExists, codes.FailedPrecondition:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
