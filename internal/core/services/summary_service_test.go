package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vantage-fin/vantage/internal/core/domain"
	portssvc "github.com/vantage-fin/vantage/internal/core/ports/services"
	"github.com/vantage-fin/vantage/internal/core/services"
	"github.com/vantage-fin/vantage/internal/platform/cache"
)

type SummaryServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockTxnRepo      *MockTransactionRepository
	mockCategoryRepo *MockCategoryRepository
	mockSettingsSvc  *MockSettingsService
	summaryCache     *cache.TagCache[domain.Summary]
	service          portssvc.SummarySvcFacade
	userID           string
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockSettingsSvc = new(MockSettingsService)
	summaryCache, err := cache.New[domain.Summary](16)
	suite.Require().NoError(err)
	suite.summaryCache = summaryCache
	suite.service = services.NewSummaryService(suite.mockAccountRepo, suite.mockTxnRepo, suite.mockCategoryRepo, suite.mockSettingsSvc, summaryCache)
	suite.userID = uuid.NewString()
}

func (suite *SummaryServiceTestSuite) TestGetSummary_ConvertsToBaseCurrency() {
	ctx := context.Background()
	settings := domain.CurrencySettings{BaseCurrency: "USD", ExchangeRate: decimal.NewFromInt(120)}
	suite.mockSettingsSvc.On("GetCurrencySettings", ctx, suite.userID).Return(settings, nil).Once()

	usdAccount := domain.Account{
		AccountID:      uuid.NewString(),
		UserID:         suite.userID,
		Name:           "Checking",
		Type:           domain.Checking,
		CurrencyCode:   "USD",
		OpeningBalance: decimal.NewFromInt(1000),
	}
	etbAccount := domain.Account{
		AccountID:      uuid.NewString(),
		UserID:         suite.userID,
		Name:           "Birr cash",
		Type:           domain.Cash,
		CurrencyCode:   "ETB",
		OpeningBalance: decimal.NewFromInt(24000),
	}
	suite.mockAccountRepo.On("ListAccounts", ctx, suite.userID).Return([]domain.Account{usdAccount, etbAccount}, nil).Once()
	suite.mockTxnRepo.On("AccountFlows", ctx, suite.userID).Return(map[string]domain.AccountFlow{}, nil).Once()

	suite.mockTxnRepo.On("CurrencyFlows", ctx, suite.userID, mock.Anything, mock.Anything).
		Return([]domain.CurrencyFlow{
			{CurrencyCode: "USD", IncomeSum: decimal.NewFromInt(500), ExpenseSum: decimal.NewFromInt(300)},
			{CurrencyCode: "ETB", IncomeSum: decimal.NewFromInt(12000), ExpenseSum: decimal.Zero},
		}, nil).Once()
	suite.mockTxnRepo.On("CategorySpend", ctx, suite.userID, mock.Anything, mock.Anything).
		Return([]domain.CategorySpend{}, nil).Once()

	summary, err := suite.service.GetSummary(ctx, suite.userID)

	suite.Require().NoError(err)
	// 1000 USD + 24000 ETB / 120 = 1200 USD total.
	suite.True(summary.TotalBalance.Equal(decimal.NewFromInt(1200)), "got %s", summary.TotalBalance)
	// 500 USD + 12000 ETB / 120 = 600 USD income.
	suite.True(summary.MonthIncome.Equal(decimal.NewFromInt(600)), "got %s", summary.MonthIncome)
	suite.True(summary.MonthExpense.Equal(decimal.NewFromInt(300)))
	suite.True(summary.NetCashFlow.Equal(decimal.NewFromInt(300)))
}

func (suite *SummaryServiceTestSuite) TestGetSummary_BreakdownPercentages() {
	ctx := context.Background()
	settings := domain.CurrencySettings{BaseCurrency: "USD", ExchangeRate: decimal.NewFromInt(120)}
	suite.mockSettingsSvc.On("GetCurrencySettings", ctx, suite.userID).Return(settings, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx, suite.userID).Return([]domain.Account{}, nil).Once()
	suite.mockTxnRepo.On("AccountFlows", ctx, suite.userID).Return(map[string]domain.AccountFlow{}, nil).Once()
	suite.mockTxnRepo.On("CurrencyFlows", ctx, suite.userID, mock.Anything, mock.Anything).
		Return([]domain.CurrencyFlow{}, nil).Once()

	foodID := uuid.NewString()
	rentID := uuid.NewString()
	suite.mockTxnRepo.On("CategorySpend", ctx, suite.userID, mock.Anything, mock.Anything).
		Return([]domain.CategorySpend{
			{CategoryID: foodID, CurrencyCode: "USD", Total: decimal.NewFromInt(75)},
			{CategoryID: rentID, CurrencyCode: "USD", Total: decimal.NewFromInt(225)},
		}, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx, suite.userID).Return([]domain.Category{
		{CategoryID: foodID, UserID: suite.userID, Name: "Food", Kind: domain.ExpenseCategory},
		{CategoryID: rentID, UserID: suite.userID, Name: "Rent", Kind: domain.ExpenseCategory},
	}, nil).Once()

	summary, err := suite.service.GetSummary(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(summary.CategoryBreakdown, 2)
	suite.Equal("Food", summary.CategoryBreakdown[0].CategoryName)
	suite.True(summary.CategoryBreakdown[0].Percentage.Equal(decimal.NewFromInt(25)), "got %s", summary.CategoryBreakdown[0].Percentage)
	suite.True(summary.CategoryBreakdown[1].Percentage.Equal(decimal.NewFromInt(75)))
}

func (suite *SummaryServiceTestSuite) TestGetSummary_SecondReadServedFromCache() {
	ctx := context.Background()
	settings := domain.CurrencySettings{BaseCurrency: "USD", ExchangeRate: decimal.NewFromInt(120)}
	suite.mockSettingsSvc.On("GetCurrencySettings", ctx, suite.userID).Return(settings, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx, suite.userID).Return([]domain.Account{}, nil).Once()
	suite.mockTxnRepo.On("AccountFlows", ctx, suite.userID).Return(map[string]domain.AccountFlow{}, nil).Once()
	suite.mockTxnRepo.On("CurrencyFlows", ctx, suite.userID, mock.Anything, mock.Anything).
		Return([]domain.CurrencyFlow{}, nil).Once()
	suite.mockTxnRepo.On("CategorySpend", ctx, suite.userID, mock.Anything, mock.Anything).
		Return([]domain.CategorySpend{}, nil).Once()

	_, err := suite.service.GetSummary(ctx, suite.userID)
	suite.Require().NoError(err)
	_, err = suite.service.GetSummary(ctx, suite.userID)
	suite.Require().NoError(err)

	suite.mockAccountRepo.AssertNumberOfCalls(suite.T(), "ListAccounts", 1)

	// Invalidation through the shared tag forces a recompute.
	suite.summaryCache.Invalidate(cache.UserTag(cache.TagSummary, suite.userID))

	suite.mockSettingsSvc.On("GetCurrencySettings", ctx, suite.userID).Return(settings, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx, suite.userID).Return([]domain.Account{}, nil).Once()
	suite.mockTxnRepo.On("AccountFlows", ctx, suite.userID).Return(map[string]domain.AccountFlow{}, nil).Once()
	suite.mockTxnRepo.On("CurrencyFlows", ctx, suite.userID, mock.Anything, mock.Anything).
		Return([]domain.CurrencyFlow{}, nil).Once()
	suite.mockTxnRepo.On("CategorySpend", ctx, suite.userID, mock.Anything, mock.Anything).
		Return([]domain.CategorySpend{}, nil).Once()

	_, err = suite.service.GetSummary(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertNumberOfCalls(suite.T(), "ListAccounts", 2)
}

func TestSummaryService(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
