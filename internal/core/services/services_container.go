package services

import (
	"fmt"

	"github.com/vantage-fin/vantage/internal/core/domain"
	portsrepo "github.com/vantage-fin/vantage/internal/core/ports/repositories"
	portssvc "github.com/vantage-fin/vantage/internal/core/ports/services"
	"github.com/vantage-fin/vantage/internal/platform/cache"
	"github.com/vantage-fin/vantage/pkg/config"
)

// NewServiceContainer wires the repositories, caches and services together.
// The summary cache doubles as the invalidator handed to every mutating
// service.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	settingsCache, err := cache.New[domain.CurrencySettings](cfg.SettingsCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings cache: %w", err)
	}
	summaryCache, err := cache.New[domain.Summary](cfg.SettingsCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary cache: %w", err)
	}

	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(repos.UserRepo)
	container.Settings = NewSettingsService(repos.UserRepo, settingsCache, summaryCache)
	container.Account = NewAccountService(repos.AccountRepo, repos.TransactionRepo, summaryCache)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo, summaryCache)
	container.Category = NewCategoryService(repos.CategoryRepo, summaryCache)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.CategoryRepo, repos.TransactionRepo, container.Settings)
	container.Goal = NewGoalService(repos.GoalRepo, repos.AccountRepo, repos.CategoryRepo, container.Settings, summaryCache)
	container.Summary = NewSummaryService(repos.AccountRepo, repos.TransactionRepo, repos.CategoryRepo, container.Settings, summaryCache)

	return container, nil
}
