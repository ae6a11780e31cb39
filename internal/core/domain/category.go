package domain

// CategoryKind distinguishes classification tags for income vs expense
// transactions. Budgets reference expense categories only.
type CategoryKind string

const (
	IncomeCategory  CategoryKind = "income"
	ExpenseCategory CategoryKind = "expense"
)

// Category is a per-user classification tag.
type Category struct {
	CategoryID string       `json:"categoryID"`
	UserID     string       `json:"userID"`
	Name       string       `json:"name"`
	Kind       CategoryKind `json:"kind"`
	Icon       string       `json:"icon,omitempty"`
	Color      string       `json:"color,omitempty"`
	AuditFields
}
