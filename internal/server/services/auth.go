// Package services contains server-side business logic. AuthService handles
// registration, login and token verification with sliding expiration.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
)

// RegisterInput carries a registration request. All fields are required.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is returned by every successful operation.
type AuthResult struct {
	User  models.AuthenticatedPayload
	Token string
}

// TokenCodec signs payloads into tokens and verifies them back. Refresh
// re-signs verified claims with a strictly later expiry.
type TokenCodec interface {
	Sign(payload models.AuthenticatedPayload) (string, error)
	Refresh(claims *auth.Claims) (string, error)
	Verify(token string) (*auth.Claims, error)
}

type AuthService struct {
	users  users.Repository
	hasher auth.PasswordHasher
	tokens TokenCodec
	logger logging.Logger
}

func NewAuthService(repo users.Repository, hasher auth.PasswordHasher, tokens TokenCodec, logger logging.Logger) *AuthService {
	return &AuthService{
		users:  repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("module", "auth_service"),
	}
}

// RegisterUser creates a user and signs a token for it. A duplicate email
// fails with KindAlreadyExists; store failures surface their raw message.
func (s *AuthService) RegisterUser(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := validateRequired("email", strings.TrimSpace(in.Email), "password", in.Password, "name", strings.TrimSpace(in.Name)); err != nil {
		return nil, err
	}

	_, err := s.users.GetUserByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, newRPCError(KindAlreadyExists, MsgUserAlreadyExists, common.ErrorAlreadyExists)
	case !errors.Is(err, common.ErrorNotFound):
		return nil, s.storageFailure(ctx, "lookup user", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) || errors.Is(err, auth.ErrEmptyPassword) {
			return nil, newRPCError(KindValidation, err.Error(), common.ErrorValidation)
		}
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, newRPCError(KindInternal, common.ErrorInternal.Error(), err)
	}

	user, err := s.users.Create(ctx, &models.User{Email: in.Email, PasswordHash: hash, Name: in.Name})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, newRPCError(KindAlreadyExists, MsgUserAlreadyExists, err)
		}
		return nil, s.storageFailure(ctx, "create user", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)

	return s.issue(ctx, user.Payload())
}

// LoginUser checks the credentials and signs a fresh token. Unknown email
// and wrong password produce the same error.
func (s *AuthService) LoginUser(ctx context.Context, in LoginInput) (*AuthResult, error) {
	user, err := s.users.GetUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, newRPCError(KindInvalidCredential, MsgInvalidCredentials, err)
		}
		return nil, s.storageFailure(ctx, "lookup user", err)
	}

	if !s.hasher.Compare(in.Password, user.PasswordHash) {
		return nil, newRPCError(KindInvalidCredential, MsgInvalidCredentials, nil)
	}

	return s.issue(ctx, user.Payload())
}

// VerifyToken validates token and, on success, returns a new token for the
// same payload with a fresh expiry window.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*AuthResult, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		s.logger.Debug(ctx, "token rejected", "error", err)
		return nil, newRPCError(KindInvalidToken, MsgInvalidToken, err)
	}

	refreshed, err := s.tokens.Refresh(claims)
	if err != nil {
		s.logger.Error(ctx, "token refresh failed", "error", err)
		return nil, newRPCError(KindInternal, common.ErrorInternal.Error(), err)
	}
	return &AuthResult{User: claims.Payload(), Token: refreshed}, nil
}

func (s *AuthService) issue(ctx context.Context, payload models.AuthenticatedPayload) (*AuthResult, error) {
	token, err := s.tokens.Sign(payload)
	if err != nil {
		s.logger.Error(ctx, "token signing failed", "error", err)
		return nil, newRPCError(KindInternal, common.ErrorInternal.Error(), err)
	}
	return &AuthResult{User: payload, Token: token}, nil
}

// storageFailure logs the full cause and passes its message through to the
// caller, which existing clients rely on.
func (s *AuthService) storageFailure(ctx context.Context, op string, err error) *RPCError {
	s.logger.Error(ctx, "user store failure", "op", op, "error", err)
	return newRPCError(KindStorageFailure, err.Error(), err)
}

// validateRequired takes name/value pairs and reports the empty ones.
// Passwords are passed untrimmed: whitespace is a valid password.
func validateRequired(pairs ...string) *RPCError {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			missing = append(missing, pairs[i])
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return newRPCError(KindValidation, strings.Join(missing, ", ")+" required", common.ErrorValidation)
}
