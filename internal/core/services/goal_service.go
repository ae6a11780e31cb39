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
	"github.com/vantage-fin/vantage/internal/platform/cache"
	"github.com/vantage-fin/vantage/internal/utils/money"
)

type goalService struct {
	goalRepo     portsrepo.GoalRepository
	accountRepo  portsrepo.AccountRepository
	categoryRepo portsrepo.CategoryRepository
	settingsSvc  portssvc.SettingsSvcFacade
	inv          cache.Invalidator
}

// NewGoalService creates the savings-goal service. Goal amounts are stored
// in USD; requests and responses use the owner's display currency.
func NewGoalService(goalRepo portsrepo.GoalRepository, accountRepo portsrepo.AccountRepository, categoryRepo portsrepo.CategoryRepository, settingsSvc portssvc.SettingsSvcFacade, inv cache.Invalidator) portssvc.GoalSvcFacade {
	return &goalService{
		goalRepo:     goalRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		settingsSvc:  settingsSvc,
		inv:          inv,
	}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}

	settings, err := s.settingsSvc.GetCurrencySettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.AccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, userID, *req.AccountID); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	goal := domain.Goal{
		GoalID:        uuid.NewString(),
		UserID:        userID,
		Name:          req.Name,
		TargetAmount:  money.ToUSD(req.TargetAmount, settings),
		CurrentAmount: decimal.Zero,
		Deadline:      req.Deadline,
		AccountID:     req.AccountID,
		CategoryID:    req.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		logger.Error("Failed to create goal", "error", err)
		return nil, err
	}

	s.inv.Invalidate(cache.UserTag(cache.TagGoals, userID))
	return &goal, nil
}

// GetGoalsWithAnalytics lists the user's goals with derived progress
// figures, monetary fields converted into the display currency.
func (s *goalService) GetGoalsWithAnalytics(ctx context.Context, userID string) ([]domain.GoalAnalytics, error) {
	goals, err := s.goalRepo.ListGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsSvc.GetCurrencySettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	analytics := make([]domain.GoalAnalytics, len(goals))
	for i, goal := range goals {
		analytics[i] = analyzeGoal(goal, settings, now)
	}
	return analytics, nil
}

// analyzeGoal derives the progress figures for one goal. Arithmetic happens
// on the stored USD amounts; converted display values are produced last.
func analyzeGoal(goal domain.Goal, settings domain.CurrencySettings, now time.Time) domain.GoalAnalytics {
	a := domain.GoalAnalytics{Goal: goal}

	progress := decimal.Zero
	if goal.TargetAmount.IsPositive() {
		progress = goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred)
	}
	a.ProgressPercent = progress

	if goal.Deadline != nil {
		days := int(goal.Deadline.Sub(now).Hours() / 24)
		if days < 0 {
			days = 0
		}
		a.DaysRemaining = &days

		remaining := goal.TargetAmount.Sub(goal.CurrentAmount)
		if days > 0 && remaining.IsPositive() {
			months := days / 30
			if months < 1 {
				months = 1
			}
			required := money.FromUSD(remaining, settings).Div(decimal.NewFromInt(int64(months)))
			a.RequiredMonthlySaving = &required
		}
	}

	a.TargetAmount = money.FromUSD(goal.TargetAmount, settings)
	a.CurrentAmount = money.FromUSD(goal.CurrentAmount, settings)
	return a
}

func (s *goalService) UpdateGoal(ctx context.Context, userID, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsSvc.GetCurrencySettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
		}
		goal.TargetAmount = money.ToUSD(*req.TargetAmount, settings)
	}
	if req.Deadline != nil {
		goal.Deadline = req.Deadline
	}
	if req.AccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, userID, *req.AccountID); err != nil {
			return nil, err
		}
		goal.AccountID = req.AccountID
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, *req.CategoryID); err != nil {
			return nil, err
		}
		goal.CategoryID = req.CategoryID
	}
	goal.UpdatedAt = time.Now()

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		return nil, err
	}

	s.inv.Invalidate(cache.UserTag(cache.TagGoals, userID))
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	if err := s.goalRepo.DeleteGoal(ctx, userID, goalID); err != nil {
		return err
	}
	s.inv.Invalidate(cache.UserTag(cache.TagGoals, userID))
	return nil
}

// Contribute moves money towards a goal: the amount, given in the funding
// account's native currency, is converted via the base currency into USD and
// added to the goal, while a matching expense transaction is recorded
// against the account. Both writes land in one atomic unit.
func (s *goalService) Contribute(ctx context.Context, userID, goalID string, req dto.ContributeRequest) (*domain.Goal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: contribution amount must be positive", apperrors.ErrValidation)
	}

	goal, err := s.goalRepo.FindGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, userID, req.AccountID)
	if err != nil {
		return nil, err
	}

	categoryID := req.CategoryID
	if categoryID == nil {
		categoryID = goal.CategoryID
	}
	if categoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, *categoryID); err != nil {
			return nil, err
		}
	}

	settings, err := s.settingsSvc.GetCurrencySettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	baseAmount := money.ToBase(req.Amount, account.CurrencyCode, settings)
	usdAmount := money.ToUSD(baseAmount, settings)

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		AccountID:     account.AccountID,
		Kind:          domain.Expense,
		Amount:        req.Amount,
		OccurredOn:    now,
		CategoryID:    categoryID,
		Description:   fmt.Sprintf("Contribution to goal %q", goal.Name),
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.goalRepo.AddContribution(ctx, userID, goalID, usdAmount, txn); err != nil {
		logger.Error("Failed to add goal contribution", "error", err, "goal_id", goalID)
		return nil, err
	}

	s.inv.Invalidate(
		cache.UserTag(cache.TagGoals, userID),
		cache.UserTag(cache.TagTransactions, userID),
		cache.UserTag(cache.TagSummary, userID),
	)

	goal.CurrentAmount = goal.CurrentAmount.Add(usdAmount)
	goal.UpdatedAt = now
	return goal, nil
}
