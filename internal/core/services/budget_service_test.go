package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vantage-fin/vantage/internal/apperrors"
	"github.com/vantage-fin/vantage/internal/core/domain"
	portsrepo "github.com/vantage-fin/vantage/internal/core/ports/repositories"
	portssvc "github.com/vantage-fin/vantage/internal/core/ports/services"
	"github.com/vantage-fin/vantage/internal/core/services"
	"github.com/vantage-fin/vantage/internal/dto"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo   *MockBudgetRepository
	mockCategoryRepo *MockCategoryRepository
	mockTxnRepo      *MockTransactionRepository
	mockSettingsSvc  *MockSettingsService
	service          portssvc.BudgetSvcFacade
	userID           string
	usdSettings      domain.CurrencySettings
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockSettingsSvc = new(MockSettingsService)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockCategoryRepo, suite.mockTxnRepo, suite.mockSettingsSvc)
	suite.userID = uuid.NewString()
	suite.usdSettings = domain.CurrencySettings{BaseCurrency: "USD", ExchangeRate: decimal.NewFromInt(120)}
}

func (suite *BudgetServiceTestSuite) budgetRow(categoryID, name string, limit int64) portsrepo.BudgetRow {
	now := time.Now()
	return portsrepo.BudgetRow{
		Budget: domain.Budget{
			BudgetID:    uuid.NewString(),
			UserID:      suite.userID,
			CategoryID:  categoryID,
			Month:       int(now.Month()),
			Year:        now.Year(),
			LimitAmount: decimal.NewFromInt(limit),
		},
		CategoryName: name,
	}
}

func (suite *BudgetServiceTestSuite) TestProgress_OverBudget() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	now := time.Now()

	suite.mockBudgetRepo.On("ListBudgetsForMonth", ctx, suite.userID, int(now.Month()), now.Year()).
		Return([]portsrepo.BudgetRow{suite.budgetRow(categoryID, "Food", 500)}, nil).Once()
	suite.mockSettingsSvc.On("GetCurrencySettings", ctx, suite.userID).Return(suite.usdSettings, nil).Once()
	suite.mockTxnRepo.On("CategorySpend", ctx, suite.userID, mock.Anything, mock.Anything).
		Return([]domain.CategorySpend{
			{CategoryID: categoryID, CurrencyCode: "USD", Total: decimal.NewFromInt(625)},
		}, nil).Once()

	progress, err := suite.service.GetBudgetsWithProgress(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(progress, 1)
	suite.True(progress[0].Spent.Equal(decimal.NewFromInt(625)))
	suite.True(progress[0].Percentage.Equal(decimal.NewFromInt(125)), "got %s", progress[0].Percentage)
	suite.True(progress[0].OverBudget)
}

func (suite *BudgetServiceTestSuite) TestProgress_ZeroLimitIsZeroPercent() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	now := time.Now()

	suite.mockBudgetRepo.On("ListBudgetsForMonth", ctx, suite.userID, int(now.Month()), now.Year()).
		Return([]portsrepo.BudgetRow{suite.budgetRow(categoryID, "Misc", 0)}, nil).Once()
	suite.mockSettingsSvc.On("GetCurrencySettings", ctx, suite.userID).Return(suite.usdSettings, nil).Once()
	suite.mockTxnRepo.On("CategorySpend", ctx, suite.userID, mock.Anything, mock.Anything).
		Return([]domain.CategorySpend{
			{CategoryID: categoryID, CurrencyCode: "USD", Total: decimal.NewFromInt(40)},
		}, nil).Once()

	progress, err := suite.service.GetBudgetsWithProgress(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(progress, 1)
	suite.True(progress[0].Percentage.IsZero())
	suite.True(progress[0].OverBudget)
}

func (suite *BudgetServiceTestSuite) TestProgress_ConvertsMixedCurrencySpend() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	now := time.Now()

	suite.mockBudgetRepo.On("ListBudgetsForMonth", ctx, suite.userID, int(now.Month()), now.Year()).
		Return([]portsrepo.BudgetRow{suite.budgetRow(categoryID, "Groceries", 1000)}, nil).Once()
	suite.mockSettingsSvc.On("GetCurrencySettings", ctx, suite.userID).Return(suite.usdSettings, nil).Once()
	// 100 USD directly, plus 12000 ETB at rate 120 = 100 USD.
	suite.mockTxnRepo.On("CategorySpend", ctx, suite.userID, mock.Anything, mock.Anything).
		Return([]domain.CategorySpend{
			{CategoryID: categoryID, CurrencyCode: "USD", Total: decimal.NewFromInt(100)},
			{CategoryID: categoryID, CurrencyCode: "ETB", Total: decimal.NewFromInt(12000)},
		}, nil).Once()

	progress, err := suite.service.GetBudgetsWithProgress(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(progress, 1)
	suite.True(progress[0].Spent.Equal(decimal.NewFromInt(200)), "got %s", progress[0].Spent)
}

func (suite *BudgetServiceTestSuite) TestSetBudget_RejectsIncomeCategory() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, categoryID).Return(&domain.Category{
		CategoryID: categoryID,
		UserID:     suite.userID,
		Name:       "Salary",
		Kind:       domain.IncomeCategory,
	}, nil).Once()

	_, err := suite.service.SetBudget(ctx, suite.userID, dto.SetBudgetRequest{
		CategoryID: categoryID,
		Amount:     decimal.NewFromInt(500),
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "UpsertBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestSetBudget_DefaultsToCurrentMonth() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, categoryID).Return(&domain.Category{
		CategoryID: categoryID,
		UserID:     suite.userID,
		Name:       "Food",
		Kind:       domain.ExpenseCategory,
	}, nil).Once()

	now := time.Now()
	suite.mockBudgetRepo.On("UpsertBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.Month == int(now.Month()) && b.Year == now.Year()
	})).Return(&domain.Budget{}, nil).Once()

	_, err := suite.service.SetBudget(ctx, suite.userID, dto.SetBudgetRequest{
		CategoryID: categoryID,
		Amount:     decimal.NewFromInt(500),
	})

	suite.Require().NoError(err)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func TestBudgetService(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
