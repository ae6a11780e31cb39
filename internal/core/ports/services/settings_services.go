package services

import (
	"context"

	"github.com/vantage-fin/vantage/internal/core/domain"
	"github.com/vantage-fin/vantage/internal/dto"
)

// SettingsSvcFacade resolves per-user currency settings. Reads are served
// through a per-user cache; every settings write invalidates it.
type SettingsSvcFacade interface {
	// GetCurrencySettings returns the user's base currency and USD→ETB rate,
	// substituting {USD, 120} when no preference is stored.
	GetCurrencySettings(ctx context.Context, userID string) (domain.CurrencySettings, error)
	UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (domain.CurrencySettings, error)
}
