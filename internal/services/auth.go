package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"lab-portal/internal/clients"
	"lab-portal/internal/dto"
	apperrors "lab-portal/pkg/errors"
	"lab-portal/pkg/service"
	"lab-portal/pkg/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*session.Record, string, error)
	Register(ctx context.Context, payload dto.RegisterDTO) (*session.Record, string, error)
	Logout(ctx context.Context, sessionID string) error
}

type AuthService struct {
	users      clients.UsersClientInterface
	sessions   session.Store
	tokens     service.TokenService
	sessionTTL time.Duration
	logger     *zap.Logger
}

func NewAuthService(
	users clients.UsersClientInterface,
	sessions session.Store,
	tokens service.TokenService,
	sessionTTL time.Duration,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Login authenticates against the users service and opens a session. A 401
// upstream is wrong credentials, not a failure of the portal; no session is
// written in that case.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*session.Record, string, error) {
	user, err := s.users.Login(ctx, payload)
	if err != nil {
		if code, ok := upstreamStatus(err); ok && code == http.StatusUnauthorized {
			return nil, "", apperrors.NewHttpError(http.StatusUnauthorized, "Login failed: invalid credentials", err, nil)
		}
		return nil, "", mapUpstreamError(err, "users service is unavailable")
	}
	return s.openSession(ctx, user)
}

func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*session.Record, string, error) {
	request := dto.RegisterRequest{
		Name:     strings.TrimSpace(payload.Name + " " + payload.Surname),
		Email:    payload.Email,
		Password: payload.Password,
		Position: payload.Position,
		Code1:    payload.Code1,
		Code2:    payload.Code2,
	}

	user, err := s.users.Register(ctx, request)
	if err != nil {
		if code, ok := upstreamStatus(err); ok && code == http.StatusBadRequest {
			return nil, "", apperrors.NewHttpError(http.StatusBadRequest, "Registration failed: check input or codes", err, nil)
		}
		return nil, "", mapUpstreamError(err, "users service is unavailable")
	}
	return s.openSession(ctx, user)
}

func (s *AuthService) openSession(ctx context.Context, user *dto.User) (*session.Record, string, error) {
	rec := session.Record{
		ID: uuid.NewString(),
		User: session.User{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			Role:     user.Role,
			Position: user.Position,
		},
		CreatedAt: time.Now(),
	}

	if err := s.sessions.Save(ctx, rec, s.sessionTTL); err != nil {
		s.logger.Error("failed to persist session", zap.Int64("userID", user.ID), zap.Error(err))
		return nil, "", apperrors.NewHttpError(http.StatusInternalServerError, "could not open session", err, nil)
	}

	token, err := s.tokens.Generate(user.ID, rec.ID)
	if err != nil {
		s.logger.Error("failed to sign session token", zap.Int64("userID", user.ID), zap.Error(err))
		return nil, "", apperrors.NewHttpError(http.StatusInternalServerError, "could not open session", err, nil)
	}

	s.logger.Info("session opened", zap.Int64("userID", user.ID), zap.String("sessionID", rec.ID))
	return &rec, token, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Error("failed to delete session", zap.String("sessionID", sessionID), zap.Error(err))
		return apperrors.NewHttpError(http.StatusInternalServerError, "could not close session", err, nil)
	}
	s.logger.Info("session closed", zap.String("sessionID", sessionID))
	return nil
}
