// Package topup applies company token top-ups to their active users.
package topup

import (
	"cmp"
	"slices"

	"frameworks/topup/internal/models"
	"frameworks/topup/internal/notify"
)

// Engine computes top-ups and notifies users whose company and personal
// email flags are both set.
type Engine struct {
	notifier notify.Notifier
}

// NewEngine returns an Engine notifying through n. A nil n drops
// notifications.
func NewEngine(n notify.Notifier) *Engine {
	if n == nil {
		n = notify.Noop{}
	}
	return &Engine{notifier: n}
}

// Compute tops up every active user whose company exists and returns one
// report per such company, ordered by company id. Inputs are not modified.
//
// Users are ordered by last name, first name, then email inside each report.
// When companies share an id the last one wins.
func (e *Engine) Compute(users []models.User, companies []models.Company) []models.CompanyReport {
	companiesByID := make(map[int64]models.Company, len(companies))
	for _, c := range companies {
		companiesByID[c.ID] = c
	}

	eligible := make([]models.User, 0, len(users))
	for _, u := range users {
		if !u.ActiveStatus {
			continue
		}
		if _, ok := companiesByID[u.CompanyID]; !ok {
			continue
		}
		eligible = append(eligible, u)
	}
	slices.SortStableFunc(eligible, compareUsers)

	usersByCompany := make(map[int64][]models.User)
	for _, u := range eligible {
		usersByCompany[u.CompanyID] = append(usersByCompany[u.CompanyID], u)
	}

	companyIDs := make([]int64, 0, len(usersByCompany))
	for id := range usersByCompany {
		companyIDs = append(companyIDs, id)
	}
	slices.Sort(companyIDs)

	reports := make([]models.CompanyReport, 0, len(companyIDs))
	for _, id := range companyIDs {
		reports = append(reports, e.topUpCompany(companiesByID[id], usersByCompany[id]))
	}
	return reports
}

func (e *Engine) topUpCompany(company models.Company, users []models.User) models.CompanyReport {
	report := models.CompanyReport{
		Company:         company,
		UsersEmailed:    []models.TopUpRecord{},
		UsersNotEmailed: []models.TopUpRecord{},
		TotalTopUps:     company.TopUp * int64(len(users)),
	}

	for _, u := range users {
		previous := u.Tokens
		balance := previous + company.TopUp
		record := models.TopUpRecord{
			User:                 u.WithTokens(balance),
			PreviousTokenBalance: previous,
			NewTokenBalance:      balance,
		}

		if company.EmailStatus && u.EmailStatus {
			e.notifier.Notify(u.Email, balance)
			report.UsersEmailed = append(report.UsersEmailed, record)
		} else {
			report.UsersNotEmailed = append(report.UsersNotEmailed, record)
		}
	}
	return report
}

func compareUsers(a, b models.User) int {
	return cmp.Or(
		cmp.Compare(a.LastName, b.LastName),
		cmp.Compare(a.FirstName, b.FirstName),
		cmp.Compare(a.Email, b.Email),
	)
}
