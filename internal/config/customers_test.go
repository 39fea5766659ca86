package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCustomersFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "customers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCustomers(t *testing.T) {
	path := writeCustomersFile(t, `
customers:
  - name: customer1
    credential_var: API_CHECK_CUSTOMER1
    services:
      - Intune
      - Microsoft365Defender
    mail_to: recipient@domain.com
    mail_cc: ops@domain.com
  - name: customer2
    credential_var: API_CHECK_CUSTOMER2
    services:
      - Exchange
    mail_to: recipient2@domain.com
`)

	customers, err := LoadCustomers(path)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "customer1", customers[0].Name)
	assert.Equal(t, "API_CHECK_CUSTOMER1", customers[0].CredentialVar)
	assert.True(t, customers[0].MonitorsService("Intune"))
	assert.False(t, customers[0].MonitorsService("Exchange"))
	assert.Equal(t, "", customers[1].MailCc)
}

func TestLoadCustomers_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "empty file",
			content: "",
		},
		{
			name: "missing services",
			content: `
customers:
  - name: customer1
    credential_var: API_CHECK_CUSTOMER1
    services: []
    mail_to: recipient@domain.com
`,
		},
		{
			name: "bad recipient",
			content: `
customers:
  - name: customer1
    credential_var: API_CHECK_CUSTOMER1
    services: [Intune]
    mail_to: not-an-email
`,
		},
		{
			name:    "not yaml",
			content: "{{{",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCustomers(writeCustomersFile(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadCustomers_MissingFile(t *testing.T) {
	_, err := LoadCustomers(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFindCustomer(t *testing.T) {
	customers := []Customer{{Name: "customer1"}, {Name: "customer2"}}

	c, ok := FindCustomer(customers, "customer2")
	require.True(t, ok)
	assert.Equal(t, "customer2", c.Name)

	_, ok = FindCustomer(customers, "unknown")
	assert.False(t, ok)
}
