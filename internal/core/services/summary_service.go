package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vantage-fin/vantage/internal/core/domain"
	portsrepo "github.com/vantage-fin/vantage/internal/core/ports/repositories"
	portssvc "github.com/vantage-fin/vantage/internal/core/ports/services"
	"github.com/vantage-fin/vantage/internal/platform/cache"
	"github.com/vantage-fin/vantage/internal/utils/money"
)

type summaryService struct {
	accountRepo     portsrepo.AccountRepository
	transactionRepo portsrepo.TransactionRepository
	categoryRepo    portsrepo.CategoryRepository
	settingsSvc     portssvc.SettingsSvcFacade
	cache           *cache.TagCache[domain.Summary]
}

// NewSummaryService creates the dashboard aggregator. Computed summaries are
// cached per user; every mutating service invalidates the summary tag.
func NewSummaryService(accountRepo portsrepo.AccountRepository, transactionRepo portsrepo.TransactionRepository, categoryRepo portsrepo.CategoryRepository, settingsSvc portssvc.SettingsSvcFacade, summaryCache *cache.TagCache[domain.Summary]) portssvc.SummarySvcFacade {
	return &summaryService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		settingsSvc:     settingsSvc,
		cache:           summaryCache,
	}
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// GetSummary assembles the dashboard read-model for the current calendar
// month, everything converted into the user's base currency at read time.
func (s *summaryService) GetSummary(ctx context.Context, userID string) (*domain.Summary, error) {
	key := cache.UserTag(cache.TagSummary, userID)
	if summary, ok := s.cache.Get(key); ok {
		return &summary, nil
	}

	settings, err := s.settingsSvc.GetCurrencySettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	flows, err := s.transactionRepo.AccountFlows(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalBalance := decimal.Zero
	balances := make([]domain.AccountBalance, len(accounts))
	for i, account := range accounts {
		current := account.OpeningBalance
		if flow, ok := flows[account.AccountID]; ok {
			current = current.Add(flow.IncomeSum).Sub(flow.ExpenseSum)
		}
		balances[i] = domain.AccountBalance{
			AccountID:      account.AccountID,
			Name:           account.Name,
			Type:           account.Type,
			CurrencyCode:   account.CurrencyCode,
			CurrentBalance: current,
		}
		totalBalance = totalBalance.Add(money.ToBase(current, account.CurrencyCode, settings))
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).AddDate(0, 0, -1)

	currencyFlows, err := s.transactionRepo.CurrencyFlows(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	monthIncome := decimal.Zero
	monthExpense := decimal.Zero
	for _, flow := range currencyFlows {
		monthIncome = monthIncome.Add(money.ToBase(flow.IncomeSum, flow.CurrencyCode, settings))
		monthExpense = monthExpense.Add(money.ToBase(flow.ExpenseSum, flow.CurrencyCode, settings))
	}

	breakdown, err := s.categoryBreakdown(ctx, userID, monthStart, monthEnd, settings)
	if err != nil {
		return nil, err
	}

	summary := domain.Summary{
		BaseCurrency:      settings.BaseCurrency,
		TotalBalance:      totalBalance,
		MonthIncome:       monthIncome,
		MonthExpense:      monthExpense,
		NetCashFlow:       monthIncome.Sub(monthExpense),
		AccountBalances:   balances,
		CategoryBreakdown: breakdown,
	}

	s.cache.Set(key, summary, key)
	return &summary, nil
}

// categoryBreakdown converts each per-currency spend bucket to the base
// currency, folds buckets of the same category together and computes each
// category's share of the month's expenses.
func (s *summaryService) categoryBreakdown(ctx context.Context, userID string, from, to time.Time, settings domain.CurrencySettings) ([]domain.CategoryBreakdownRow, error) {
	spends, err := s.transactionRepo.CategorySpend(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	if len(spends) == 0 {
		return []domain.CategoryBreakdownRow{}, nil
	}

	categories, err := s.categoryRepo.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.CategoryID] = c.Name
	}

	totals := map[string]decimal.Decimal{}
	order := []string{}
	grandTotal := decimal.Zero
	for _, spend := range spends {
		converted := money.ToBase(spend.Total, spend.CurrencyCode, settings)
		if _, seen := totals[spend.CategoryID]; !seen {
			order = append(order, spend.CategoryID)
		}
		totals[spend.CategoryID] = totals[spend.CategoryID].Add(converted)
		grandTotal = grandTotal.Add(converted)
	}

	rows := make([]domain.CategoryBreakdownRow, 0, len(order))
	for _, categoryID := range order {
		total := totals[categoryID]
		percentage := decimal.Zero
		if grandTotal.IsPositive() {
			percentage = total.Div(grandTotal).Mul(hundred)
		}
		rows = append(rows, domain.CategoryBreakdownRow{
			CategoryID:   categoryID,
			CategoryName: names[categoryID],
			Total:        total,
			Percentage:   percentage,
		})
	}
	return rows, nil
}
