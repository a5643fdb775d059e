package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frameworks/topup/internal/models"
)

func acmeReport() models.CompanyReport {
	lee := models.User{ID: 1, FirstName: "Ann", LastName: "Lee", Email: "a@x.com", CompanyID: 1, EmailStatus: true, ActiveStatus: true, Tokens: 15}
	ng := models.User{ID: 2, FirstName: "Bo", LastName: "Ng", Email: "b@x.com", CompanyID: 1, ActiveStatus: true, Tokens: 30}
	return models.CompanyReport{
		Company:         models.Company{ID: 1, Name: "Acme", TopUp: 10, EmailStatus: true},
		UsersEmailed:    []models.TopUpRecord{{User: lee, PreviousTokenBalance: 5, NewTokenBalance: 15}},
		UsersNotEmailed: []models.TopUpRecord{{User: ng, PreviousTokenBalance: 20, NewTokenBalance: 30}},
		TotalTopUps:     20,
	}
}

const acmeText = `Company ID: 1
Company Name: Acme
Users emailed:
    Lee, Ann, a@x.com
      Previous token balance: 5
      New token balance: 15
Users not emailed:
    Ng, Bo, b@x.com
      Previous token balance: 20
      New token balance: 30
Total top ups: 20

`

func TestRender_Acme(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(Options{IndentSize: DefaultIndentSize}).Render(&buf, []models.CompanyReport{acmeReport()}))
	assert.Equal(t, acmeText, buf.String())
}

func TestRender_EmptyListsAndMultipleCompanies(t *testing.T) {
	empty := models.CompanyReport{
		Company: models.Company{ID: 2, Name: "Empty Co", TopUp: 7},
	}
	var buf bytes.Buffer
	require.NoError(t, NewWriter(Options{IndentSize: 4}).Render(&buf, []models.CompanyReport{acmeReport(), empty}))

	want := acmeText + `Company ID: 2
Company Name: Empty Co
Users emailed:
Users not emailed:
Total top ups: 0

`
	assert.Equal(t, want, buf.String())
}

func TestRender_NoReports(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(Options{IndentSize: 4}).Render(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestRender_IndentSizeIsConfigurable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(Options{IndentSize: 2}).Render(&buf, []models.CompanyReport{acmeReport()}))
	assert.Contains(t, buf.String(), "\n  Lee, Ann, a@x.com\n    Previous token balance: 5\n")

	buf.Reset()
	require.NoError(t, NewWriter(Options{IndentSize: 0}).Render(&buf, []models.CompanyReport{acmeReport()}))
	assert.Contains(t, buf.String(), "\nLee, Ann, a@x.com\n  Previous token balance: 5\n")
}

func TestRender_TrailingNewlineNotDoubled(t *testing.T) {
	r := acmeReport()
	r.Company.Name = "Acme\n"
	var buf bytes.Buffer
	require.NoError(t, NewWriter(Options{IndentSize: 4}).Render(&buf, []models.CompanyReport{r}))
	assert.Contains(t, buf.String(), "Company Name: Acme\nUsers emailed:\n")
}

func TestWrite_OverwritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than nothing"), 0o600))

	require.NoError(t, NewWriter(Options{IndentSize: 4}).Write([]models.CompanyReport{acmeReport()}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, acmeText, string(data))
}

func TestWrite_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "output.txt")
	err := NewWriter(Options{IndentSize: 4}).Write(nil, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create report")
}
