package services

import (
	"context"

	"github.com/vantage-fin/vantage/internal/core/domain"
	"github.com/vantage-fin/vantage/internal/dto"
)

// AuthSvcFacade registers users and verifies credentials. Token issuance is
// the handler's concern; the facade only authenticates.
type AuthSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	Authenticate(ctx context.Context, req dto.LoginRequest) (*domain.User, error)
}
