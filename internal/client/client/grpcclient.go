package client

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/authrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// Session is an authenticated user together with the token issued for them.
type Session struct {
	User  authrpc.User
	Token string
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      authrpc.AuthServiceClient
}

// NewAuthClient connects to the service at endpointURL. The connection is
// lazy: no network traffic happens until the first call.
func NewAuthClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = authrpc.NewAuthServiceClient(conn)
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, email, password, name string) (*Session, error) {
	resp, err := s.client.Register(ctx, &authrpc.RegisterRequest{Email: email, Password: password, Name: name})
	if err != nil {
		return nil, s.mapError(err)
	}
	return toSession(resp), nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := s.client.Login(ctx, &authrpc.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	return toSession(resp), nil
}

// VerifyToken checks token and returns the session with a refreshed token.
func (s *GRPCClient) VerifyToken(ctx context.Context, token string) (*Session, error) {
	resp, err := s.client.VerifyToken(ctx, &authrpc.VerifyTokenRequest{Token: token})
	if err != nil {
		return nil, s.mapError(err)
	}
	return toSession(resp), nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	_, err := s.client.Ping(ctx, &authrpc.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func toSession(r *authrpc.AuthResponse) *Session {
	return &Session{User: r.User, Token: r.Token}
}

func (s *GRPCClient) mapError(err error) error {
	if status.Code(err) == codes.Unavailable {
		return ErrUnavailable
	}
	if e, ok := authrpc.ErrorFromStatus(err); ok {
		return e
	}
	return err
}
