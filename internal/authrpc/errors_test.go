package authrpc

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestStatusErrorRoundTrip(t *testing.T) {
	err := NewStatusError(codes.AlreadyExists, "ALREADY_EXISTS", "User already exists", http.StatusBadRequest)

	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	got, ok := ErrorFromStatus(err)
	require.True(t, ok)
	assert.Equal(t, &Error{
		Reason:  "ALREADY_EXISTS",
		Message: "User already exists",
		Status:  http.StatusBadRequest,
		Code:    codes.AlreadyExists,
	}, got)
	assert.Equal(t, "User already exists (status 400)", got.Error())
}

func TestErrorFromStatus_WithoutDetails(t *testing.T) {
	got, ok := ErrorFromStatus(status.Error(codes.Unauthenticated, "nope"))
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, got.Status)
	assert.Equal(t, "Unauthenticated", got.Reason)

	got, ok = ErrorFromStatus(status.Error(codes.Unavailable, "down"))
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, got.Status)
}

func TestErrorFromStatus_NotStatus(t *testing.T) {
	_, ok := ErrorFromStatus(errors.New("plain"))
	assert.False(t, ok)

	_, ok = ErrorFromStatus(nil)
	assert.False(t, ok)
}

func TestJSONCodec(t *testing.T) {
	c := jsonCodec{}
	assert.Equal(t, "json", c.Name())

	b, err := c.Marshal(&RegisterRequest{Email: "a@x.com", Password: "pw", Name: "A"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@x.com","password":"pw","name":"A"}`, string(b))

	var out RegisterRequest
	require.NoError(t, c.Unmarshal(b, &out))
	assert.Equal(t, "a@x.com", out.Email)

	var empty PingRequest
	assert.NoError(t, c.Unmarshal(nil, &empty))
}
