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
	portssvc "github.com/vantage-fin/vantage/internal/core/ports/services"
	"github.com/vantage-fin/vantage/internal/core/services"
	"github.com/vantage-fin/vantage/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockAccountRepo  *MockAccountRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.TransactionSvcFacade
	userID           string
	usdAccount       domain.Account
	etbAccount       domain.Account
	eurAccount       domain.Account
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockAccountRepo, suite.mockCategoryRepo, noopInvalidator{})

	suite.userID = uuid.NewString()
	suite.usdAccount = domain.Account{
		AccountID:    uuid.NewString(),
		UserID:       suite.userID,
		Name:         "Checking",
		Type:         domain.Checking,
		CurrencyCode: "USD",
	}
	suite.etbAccount = domain.Account{
		AccountID:    uuid.NewString(),
		UserID:       suite.userID,
		Name:         "Birr cash",
		Type:         domain.Cash,
		CurrencyCode: "ETB",
	}
	suite.eurAccount = domain.Account{
		AccountID:    uuid.NewString(),
		UserID:       suite.userID,
		Name:         "Euro savings",
		Type:         domain.Savings,
		CurrencyCode: "EUR",
	}
}

func (suite *TransactionServiceTestSuite) expectFindAccount(account domain.Account) {
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.userID, account.AccountID).Return(&account, nil).Once()
}

func (suite *TransactionServiceTestSuite) TestRecordExpense_Success() {
	ctx := context.Background()
	suite.expectFindAccount(suite.usdAccount)
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		AccountID:  suite.usdAccount.AccountID,
		Kind:       domain.Expense,
		Amount:     decimal.NewFromInt(200),
		OccurredOn: time.Now(),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.Expense, txn.Kind)
	suite.True(txn.Amount.Equal(decimal.NewFromInt(200)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_NonPositiveAmount() {
	_, err := suite.service.RecordTransaction(context.Background(), suite.userID, dto.CreateTransactionRequest{
		AccountID:  suite.usdAccount.AccountID,
		Kind:       domain.Expense,
		Amount:     decimal.Zero,
		OccurredOn: time.Now(),
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_CategoryKindMismatch() {
	ctx := context.Background()
	suite.expectFindAccount(suite.usdAccount)
	categoryID := uuid.NewString()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, categoryID).Return(&domain.Category{
		CategoryID: categoryID,
		UserID:     suite.userID,
		Name:       "Salary",
		Kind:       domain.IncomeCategory,
	}, nil).Once()

	_, err := suite.service.RecordTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		AccountID:  suite.usdAccount.AccountID,
		Kind:       domain.Expense,
		Amount:     decimal.NewFromInt(10),
		OccurredOn: time.Now(),
		CategoryID: &categoryID,
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestTransfer_SameCurrency() {
	ctx := context.Background()
	suite.expectFindAccount(suite.usdAccount)
	secondUSD := suite.usdAccount
	secondUSD.AccountID = uuid.NewString()
	suite.expectFindAccount(secondUSD)

	amount := decimal.NewFromInt(500)
	suite.mockTxnRepo.On("SaveTransfer", ctx, mock.AnythingOfType("domain.Transaction"), secondUSD.AccountID, amount).Return(nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		AccountID:            suite.usdAccount.AccountID,
		Kind:                 domain.Transfer,
		Amount:               amount,
		OccurredOn:           time.Now(),
		DestinationAccountID: &secondUSD.AccountID,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(txn.CounterpartyAccountID)
	suite.Equal(secondUSD.AccountID, *txn.CounterpartyAccountID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestTransfer_CrossCurrencyUSDToETB() {
	ctx := context.Background()
	suite.expectFindAccount(suite.usdAccount)
	suite.expectFindAccount(suite.etbAccount)

	rate := "135.5"
	// 100 USD at 135.5 credits 13550 ETB.
	expected := decimal.NewFromInt(100).Mul(decimal.RequireFromString(rate))
	suite.mockTxnRepo.On("SaveTransfer", ctx, mock.AnythingOfType("domain.Transaction"), suite.etbAccount.AccountID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(expected)
	})).Return(nil).Once()

	_, err := suite.service.RecordTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		AccountID:            suite.usdAccount.AccountID,
		Kind:                 domain.Transfer,
		Amount:               decimal.NewFromInt(100),
		OccurredOn:           time.Now(),
		DestinationAccountID: &suite.etbAccount.AccountID,
		ExchangeRate:         &rate,
	})

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestTransfer_CrossCurrencyETBToUSD_Divides() {
	ctx := context.Background()
	suite.expectFindAccount(suite.etbAccount)
	suite.expectFindAccount(suite.usdAccount)

	rate := "120"
	// 1200 ETB at 120 credits 10 USD.
	expected := decimal.NewFromInt(10)
	suite.mockTxnRepo.On("SaveTransfer", ctx, mock.AnythingOfType("domain.Transaction"), suite.usdAccount.AccountID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(expected)
	})).Return(nil).Once()

	_, err := suite.service.RecordTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		AccountID:            suite.etbAccount.AccountID,
		Kind:                 domain.Transfer,
		Amount:               decimal.NewFromInt(1200),
		OccurredOn:           time.Now(),
		DestinationAccountID: &suite.usdAccount.AccountID,
		ExchangeRate:         &rate,
	})

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestTransfer_UnsupportedPair() {
	ctx := context.Background()
	suite.expectFindAccount(suite.usdAccount)
	suite.expectFindAccount(suite.eurAccount)

	rate := "1.1"
	_, err := suite.service.RecordTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		AccountID:            suite.usdAccount.AccountID,
		Kind:                 domain.Transfer,
		Amount:               decimal.NewFromInt(100),
		OccurredOn:           time.Now(),
		DestinationAccountID: &suite.eurAccount.AccountID,
		ExchangeRate:         &rate,
	})

	suite.Require().ErrorIs(err, apperrors.ErrUnsupportedCurrencyPair)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestTransfer_MissingRate() {
	ctx := context.Background()
	suite.expectFindAccount(suite.usdAccount)
	suite.expectFindAccount(suite.etbAccount)

	_, err := suite.service.RecordTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		AccountID:            suite.usdAccount.AccountID,
		Kind:                 domain.Transfer,
		Amount:               decimal.NewFromInt(100),
		OccurredOn:           time.Now(),
		DestinationAccountID: &suite.etbAccount.AccountID,
	})

	suite.Require().ErrorIs(err, apperrors.ErrMissingExchangeRate)
}

func (suite *TransactionServiceTestSuite) TestTransfer_InvalidRate() {
	ctx := context.Background()

	for _, bad := range []string{"abc", "-5", "0"} {
		suite.expectFindAccount(suite.usdAccount)
		suite.expectFindAccount(suite.etbAccount)

		rate := bad
		_, err := suite.service.RecordTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
			AccountID:            suite.usdAccount.AccountID,
			Kind:                 domain.Transfer,
			Amount:               decimal.NewFromInt(100),
			OccurredOn:           time.Now(),
			DestinationAccountID: &suite.etbAccount.AccountID,
			ExchangeRate:         &rate,
		})

		suite.Require().ErrorIs(err, apperrors.ErrInvalidExchangeRate, "rate %q", bad)
	}
}

func (suite *TransactionServiceTestSuite) TestTransfer_SameAccountRejected() {
	ctx := context.Background()
	suite.expectFindAccount(suite.usdAccount)

	_, err := suite.service.RecordTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		AccountID:            suite.usdAccount.AccountID,
		Kind:                 domain.Transfer,
		Amount:               decimal.NewFromInt(100),
		OccurredOn:           time.Now(),
		DestinationAccountID: &suite.usdAccount.AccountID,
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestTransfer_BalanceUpdateFailedPropagates() {
	ctx := context.Background()
	suite.expectFindAccount(suite.usdAccount)
	secondUSD := suite.usdAccount
	secondUSD.AccountID = uuid.NewString()
	suite.expectFindAccount(secondUSD)

	suite.mockTxnRepo.On("SaveTransfer", ctx, mock.AnythingOfType("domain.Transaction"), secondUSD.AccountID, mock.Anything).
		Return(apperrors.ErrBalanceUpdateFailed).Once()

	_, err := suite.service.RecordTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		AccountID:            suite.usdAccount.AccountID,
		Kind:                 domain.Transfer,
		Amount:               decimal.NewFromInt(100),
		OccurredOn:           time.Now(),
		DestinationAccountID: &secondUSD.AccountID,
	})

	suite.Require().ErrorIs(err, apperrors.ErrBalanceUpdateFailed)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_TransferRejected() {
	ctx := context.Background()
	transferID := uuid.NewString()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, transferID).Return(&domain.Transaction{
		TransactionID: transferID,
		UserID:        suite.userID,
		Kind:          domain.Transfer,
		Amount:        decimal.NewFromInt(50),
	}, nil).Once()

	newAmount := decimal.NewFromInt(75)
	_, err := suite.service.UpdateTransaction(ctx, suite.userID, transferID, dto.UpdateTransactionRequest{Amount: &newAmount})

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_TransferRejected() {
	ctx := context.Background()
	transferID := uuid.NewString()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, transferID).Return(&domain.Transaction{
		TransactionID: transferID,
		UserID:        suite.userID,
		Kind:          domain.Transfer,
	}, nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, transferID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_BadDateFilter() {
	_, err := suite.service.ListTransactions(context.Background(), suite.userID, dto.ListTransactionsParams{From: "not-a-date"})
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
