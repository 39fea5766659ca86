package poller

import (
	apperrors "MS_Service_Health_Monitor/internal/errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvCredentialResolver(t *testing.T) {
	resolver := NewEnvCredentialResolver()

	t.Run("Success three part tuple", func(t *testing.T) {
		t.Setenv("API_CHECK_CUSTOMER1", "tenant-1;client-1;s3cret")

		credentials, err := resolver.Resolve("API_CHECK_CUSTOMER1")
		require.NoError(t, err)
		assert.Equal(t, "tenant-1", credentials.TenantID)
		assert.Equal(t, "client-1", credentials.ClientID)
		assert.Equal(t, "s3cret", credentials.Secret)
	})

	t.Run("Error variable not set", func(t *testing.T) {
		_, err := resolver.Resolve("API_CHECK_UNSET")
		assert.ErrorIs(t, err, apperrors.ErrCredentialNotFound)
	})

	t.Run("Error wrong field count", func(t *testing.T) {
		tests := []struct {
			name string
			raw  string
		}{
			{name: "two parts", raw: "tenant-1;client-1"},
			{name: "four parts", raw: "tenant-1;client-1;secret;extra"},
			{name: "no delimiter", raw: "tenant-1 client-1 secret"},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				t.Setenv("API_CHECK_MALFORMED", tc.raw)

				_, err := resolver.Resolve("API_CHECK_MALFORMED")
				assert.ErrorIs(t, err, apperrors.ErrMalformedCredentials)
			})
		}
	})
}
