package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vantage-fin/vantage/internal/apperrors"
	"github.com/vantage-fin/vantage/internal/core/domain"
	portsrepo "github.com/vantage-fin/vantage/internal/core/ports/repositories"
	portssvc "github.com/vantage-fin/vantage/internal/core/ports/services"
	"github.com/vantage-fin/vantage/internal/dto"
	"github.com/vantage-fin/vantage/internal/middleware"
	"github.com/vantage-fin/vantage/internal/utils"
)

type authService struct {
	userRepo portsrepo.UserRepository
}

// NewAuthService creates the registration and credential-check service.
func NewAuthService(userRepo portsrepo.UserRepository) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Name:         req.Name,
		BaseCurrency: domain.CurrencyUSD,
		ExchangeRate: domain.DefaultExchangeRate,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		logger.Error("Failed to save user", "error", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	logger.Info("User registered", "user_id", user.UserID)
	return &user, nil
}

func (s *authService) Authenticate(ctx context.Context, req dto.LoginRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error as a bad password so callers cannot probe for emails.
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		logger.Error("Failed to look up user for login", "error", err)
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	return user, nil
}
