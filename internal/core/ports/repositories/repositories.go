package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service container.
type RepositoryProvider struct {
	UserRepo        UserRepository
	AccountRepo     AccountRepository
	TransactionRepo TransactionRepository
	CategoryRepo    CategoryRepository
	BudgetRepo      BudgetRepository
	GoalRepo        GoalRepository
}
