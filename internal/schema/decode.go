package schema

import "frameworks/topup/internal/models"

// DecodeUsers converts a list that passed ValidUsers into typed users.
// Behavior on unvalidated input is undefined.
func DecodeUsers(value any) []models.User {
	items := value.([]any)
	users := make([]models.User, 0, len(items))
	for _, item := range items {
		r := item.(map[string]any)
		users = append(users, models.User{
			ID:           r["id"].(int64),
			FirstName:    r["first_name"].(string),
			LastName:     r["last_name"].(string),
			Email:        r["email"].(string),
			CompanyID:    r["company_id"].(int64),
			EmailStatus:  r["email_status"].(bool),
			ActiveStatus: r["active_status"].(bool),
			Tokens:       r["tokens"].(int64),
		})
	}
	return users
}

// DecodeCompanies converts a list that passed ValidCompanies into typed
// companies.
func DecodeCompanies(value any) []models.Company {
	items := value.([]any)
	companies := make([]models.Company, 0, len(items))
	for _, item := range items {
		r := item.(map[string]any)
		companies = append(companies, models.Company{
			ID:          r["id"].(int64),
			Name:        r["name"].(string),
			TopUp:       r["top_up"].(int64),
			EmailStatus: r["email_status"].(bool),
		})
	}
	return companies
}
