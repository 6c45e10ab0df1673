package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/authrpc"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *authrpc.RegisterRequest) (*authrpc.AuthResponse, error) {

	result, err := s.auth.RegisterUser(ctx, services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	return toResponse(result), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *authrpc.LoginRequest) (*authrpc.AuthResponse, error) {

	result, err := s.auth.LoginUser(ctx, services.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	return toResponse(result), nil
}

func (s *GRPCServer) VerifyToken(ctx context.Context, req *authrpc.VerifyTokenRequest) (*authrpc.AuthResponse, error) {

	result, err := s.auth.VerifyToken(ctx, req.Token)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	return toResponse(result), nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *authrpc.PingRequest) (*authrpc.PingResponse, error) {
	return &authrpc.PingResponse{Status: "OK"}, nil
}

func toResponse(r *services.AuthResult) *authrpc.AuthResponse {
	return &authrpc.AuthResponse{User: toUser(r.User), Token: r.Token}
}

func toUser(p models.AuthenticatedPayload) authrpc.User {
	return authrpc.User{ID: p.ID, Email: p.Email, Name: p.Name}
}

// mapError turns a service failure into a gRPC status that still carries
// the {message, status} pair.
func (s *GRPCServer) mapError(ctx context.Context, err error) error {
	var rpcErr *services.RPCError
	if !errors.As(err, &rpcErr) {
		s.logger.Error(ctx, "unexpected service error", "error", err)
		return status.Error(codes.Internal, "internal error")
	}

	return authrpc.NewStatusError(grpcCode(rpcErr.Kind), rpcErr.Kind.String(), rpcErr.Message, rpcErr.Status)
}

func grpcCode(k services.ErrorKind) codes.Code {
	switch k {
	case services.KindAlreadyExists:
		return codes.AlreadyExists
	case services.KindInvalidCredential, services.KindStorageFailure, services.KindValidation:
		return codes.InvalidArgument
	case services.KindInvalidToken:
		return codes.Unauthenticated
	default:
		return codes.Internal
	}
}
