package poller

import (
	"MS_Service_Health_Monitor/internal/config"
	apperrors "MS_Service_Health_Monitor/internal/errors"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCustomer = config.Customer{
	Name:     "customer1",
	Services: []string{"Intune", "Microsoft365Defender"},
}

func TestFetchHealthOverviews(t *testing.T) {
	t.Run("Success filters to monitored services with shared timestamp", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"value": [
				{"id": "Intune", "service": "Microsoft Intune", "status": "serviceOperational"},
				{"id": "Exchange", "service": "Exchange Online", "status": "serviceInterruption"},
				{"id": "Microsoft365Defender", "service": "Microsoft 365 Defender", "status": "investigating"}
			]}`))
		}))
		defer server.Close()

		client := NewHealthClient(server.URL, time.Second)
		records, err := client.FetchHealthOverviews(context.Background(), "test-token", testCustomer)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Microsoft Intune", records[0].Service)
		assert.Equal(t, "serviceOperational", records[0].Status)
		assert.Equal(t, "Microsoft 365 Defender", records[1].Service)
		assert.Equal(t, "customer1", records[0].Customer)
		assert.Equal(t, records[0].Timestamp, records[1].Timestamp)
		assert.Equal(t, time.UTC, records[0].Timestamp.Location())
	})

	t.Run("Success no monitored services in response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"value": [{"id": "Exchange", "service": "Exchange Online", "status": "serviceOperational"}]}`))
		}))
		defer server.Close()

		client := NewHealthClient(server.URL, time.Second)
		records, err := client.FetchHealthOverviews(context.Background(), "test-token", testCustomer)

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Error non success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"code": "InvalidAuthenticationToken"}}`))
		}))
		defer server.Close()

		client := NewHealthClient(server.URL, time.Second)
		_, err := client.FetchHealthOverviews(context.Background(), "bad-token", testCustomer)

		require.Error(t, err)
		var remoteErr *apperrors.RemoteAPIError
		require.True(t, errors.As(err, &remoteErr))
		assert.Equal(t, http.StatusUnauthorized, remoteErr.StatusCode)
	})

	t.Run("Error malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not-json`))
		}))
		defer server.Close()

		client := NewHealthClient(server.URL, time.Second)
		_, err := client.FetchHealthOverviews(context.Background(), "test-token", testCustomer)

		assert.Error(t, err)
	})

	t.Run("Error unresponsive endpoint hits timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := NewHealthClient(server.URL, 50*time.Millisecond)
		_, err := client.FetchHealthOverviews(context.Background(), "test-token", testCustomer)

		assert.Error(t, err)
	})
}
