package models

// Company grants a fixed token top-up to each of its active users.
type Company struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	TopUp       int64  `json:"top_up"`
	EmailStatus bool   `json:"email_status"`
}

// User is a token holder belonging to a company.
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	CompanyID    int64  `json:"company_id"`
	EmailStatus  bool   `json:"email_status"`
	ActiveStatus bool   `json:"active_status"`
	Tokens       int64  `json:"tokens"`
}

// WithTokens returns a copy of u holding the given balance.
func (u User) WithTokens(tokens int64) User {
	u.Tokens = tokens
	return u
}

// TopUpRecord is the outcome of topping up one user. User carries the new
// balance.
type TopUpRecord struct {
	User                 User  `json:"user"`
	PreviousTokenBalance int64 `json:"previous_token_balance"`
	NewTokenBalance      int64 `json:"new_token_balance"`
}

// CompanyReport groups the top-ups applied for one company.
type CompanyReport struct {
	Company         Company       `json:"company"`
	UsersEmailed    []TopUpRecord `json:"users_emailed"`
	UsersNotEmailed []TopUpRecord `json:"users_not_emailed"`
	TotalTopUps     int64         `json:"total_top_ups"`
}
