package grpc

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type recordingLogger struct {
	logging.Nop
	infos []string
	warns []string
}

func (r *recordingLogger) Info(_ context.Context, msg string, _ ...any) { r.infos = append(r.infos, msg) }
func (r *recordingLogger) Warn(_ context.Context, msg string, _ ...any) { r.warns = append(r.warns, msg) }
func (r *recordingLogger) With(...any) logging.Logger                 { return r }

func TestLoggingInterceptor_Success(t *testing.T) {
	rl := &recordingLogger{}
	s := NewGRPCServer("", rl, &fakeAuth{}, nil)

	info := &grpc.UnaryServerInfo{FullMethod: "/gophauth.AuthService/Ping"}
	resp, err := s.loggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Equal(t, []string{"rpc handled"}, rl.infos)
	assert.Empty(t, rl.warns)
}

func TestLoggingInterceptor_FailurePassesErrorThrough(t *testing.T) {
	rl := &recordingLogger{}
	s := NewGRPCServer("", rl, &fakeAuth{}, nil)

	want := status.Error(codes.InvalidArgument, "bad")
	info := &grpc.UnaryServerInfo{FullMethod: "/gophauth.AuthService/Login"}
	_, err := s.loggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, want
	})

	assert.Equal(t, want, err)
	assert.Equal(t, []string{"rpc failed"}, rl.warns)
	assert.Empty(t, rl.infos)
}
