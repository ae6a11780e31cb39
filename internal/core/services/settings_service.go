package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vantage-fin/vantage/internal/apperrors"
	"github.com/vantage-fin/vantage/internal/core/domain"
	portsrepo "github.com/vantage-fin/vantage/internal/core/ports/repositories"
	portssvc "github.com/vantage-fin/vantage/internal/core/ports/services"
	"github.com/vantage-fin/vantage/internal/dto"
	"github.com/vantage-fin/vantage/internal/middleware"
	"github.com/vantage-fin/vantage/internal/platform/cache"
)

type settingsService struct {
	userRepo portsrepo.UserRepository
	cache    *cache.TagCache[domain.CurrencySettings]
	inv      cache.Invalidator
}

// NewSettingsService creates the currency-settings provider. Reads are
// served through the per-user cache; UpdateSettings invalidates it along
// with the summary, whose totals are denominated in the base currency.
func NewSettingsService(userRepo portsrepo.UserRepository, settingsCache *cache.TagCache[domain.CurrencySettings], inv cache.Invalidator) portssvc.SettingsSvcFacade {
	return &settingsService{userRepo: userRepo, cache: settingsCache, inv: inv}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetCurrencySettings(ctx context.Context, userID string) (domain.CurrencySettings, error) {
	key := cache.UserTag(cache.TagSettings, userID)
	if settings, ok := s.cache.Get(key); ok {
		return settings, nil
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return domain.CurrencySettings{}, fmt.Errorf("failed to load currency settings: %w", err)
	}

	settings := user.Settings()
	s.cache.Set(key, settings, key)
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (domain.CurrencySettings, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	baseCurrency := domain.NormalizeCurrency(req.BaseCurrency)
	if !domain.IsSupportedBaseCurrency(baseCurrency) {
		return domain.CurrencySettings{}, fmt.Errorf("%w: base currency must be USD or ETB", apperrors.ErrValidation)
	}
	if req.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		return domain.CurrencySettings{}, apperrors.ErrInvalidExchangeRate
	}

	if err := s.userRepo.UpdateCurrencySettings(ctx, userID, baseCurrency, req.ExchangeRate, time.Now()); err != nil {
		logger.Error("Failed to update currency settings", "error", err)
		return domain.CurrencySettings{}, err
	}

	s.cache.Invalidate(cache.UserTag(cache.TagSettings, userID))
	s.inv.Invalidate(cache.UserTag(cache.TagSummary, userID))

	return domain.CurrencySettings{BaseCurrency: baseCurrency, ExchangeRate: req.ExchangeRate}, nil
}
