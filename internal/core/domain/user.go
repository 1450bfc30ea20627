package domain

// User represents an application user and their display preferences.
type User struct {
	UserID              string `json:"userID"` // Primary Key (e.g., UUID)
	Name                string `json:"name"`
	Email               string `json:"email"`
	PasswordHash        string `json:"-"`
	DefaultCurrencyCode string `json:"defaultCurrencyCode"` // Portfolio totals are converted into this currency
	AuditFields
}
