package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vantage-fin/vantage/internal/apperrors"
	"github.com/vantage-fin/vantage/internal/core/domain"
	portsrepo "github.com/vantage-fin/vantage/internal/core/ports/repositories"
	portssvc "github.com/vantage-fin/vantage/internal/core/ports/services"
	"github.com/vantage-fin/vantage/internal/dto"
	"github.com/vantage-fin/vantage/internal/middleware"
	"github.com/vantage-fin/vantage/internal/utils/money"
)

var hundred = decimal.NewFromInt(100)

type budgetService struct {
	budgetRepo      portsrepo.BudgetRepository
	categoryRepo    portsrepo.CategoryRepository
	transactionRepo portsrepo.TransactionRepository
	settingsSvc     portssvc.SettingsSvcFacade
}

// NewBudgetService creates the monthly-limit service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepository, categoryRepo portsrepo.CategoryRepository, transactionRepo portsrepo.TransactionRepository, settingsSvc portssvc.SettingsSvcFacade) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		settingsSvc:     settingsSvc,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// GetBudgetsWithProgress joins the current month's budgets with what was
// actually spent per category. Each spend bucket is converted from its
// account's native currency into the base currency before summing, so mixed
// USD and ETB spending compares against one limit.
func (s *budgetService) GetBudgetsWithProgress(ctx context.Context, userID string) ([]domain.BudgetProgress, error) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	budgets, err := s.budgetRepo.ListBudgetsForMonth(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsSvc.GetCurrencySettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	from := time.Date(year, now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).AddDate(0, 0, -1)

	spends, err := s.transactionRepo.CategorySpend(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	spentByCategory := map[string]decimal.Decimal{}
	for _, spend := range spends {
		converted := money.ToBase(spend.Total, spend.CurrencyCode, settings)
		spentByCategory[spend.CategoryID] = spentByCategory[spend.CategoryID].Add(converted)
	}

	progress := make([]domain.BudgetProgress, len(budgets))
	for i, row := range budgets {
		spent := spentByCategory[row.CategoryID]
		percentage := decimal.Zero
		if row.LimitAmount.IsPositive() {
			percentage = spent.Div(row.LimitAmount).Mul(hundred)
		}
		progress[i] = domain.BudgetProgress{
			Budget:       row.Budget,
			CategoryName: row.CategoryName,
			Spent:        spent,
			Percentage:   percentage,
			OverBudget:   spent.GreaterThan(row.LimitAmount),
		}
	}
	return progress, nil
}

func (s *budgetService) SetBudget(ctx context.Context, userID string, req dto.SetBudgetRequest) (*domain.Budget, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: budget amount cannot be negative", apperrors.ErrValidation)
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category.Kind != domain.ExpenseCategory {
		return nil, fmt.Errorf("%w: budgets apply to expense categories only", apperrors.ErrValidation)
	}

	now := time.Now()
	month := req.Month
	year := req.Year
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	budget := domain.Budget{
		BudgetID:    uuid.NewString(),
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Month:       month,
		Year:        year,
		LimitAmount: req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	saved, err := s.budgetRepo.UpsertBudget(ctx, budget)
	if err != nil {
		logger.Error("Failed to upsert budget", "error", err)
		return nil, err
	}
	return saved, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	return s.budgetRepo.DeleteBudget(ctx, userID, budgetID)
}
