package poller

import (
	"MS_Service_Health_Monitor/internal/config"
	apperrors "MS_Service_Health_Monitor/internal/errors"
	"MS_Service_Health_Monitor/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type HealthClient interface {
	FetchHealthOverviews(ctx context.Context, token string, customer config.Customer) ([]model.StatusRecord, error)
}

type healthClient struct {
	endpoint string
	client   *http.Client
}

type healthOverviewsResponse struct {
	Value []struct {
		ID      string `json:"id"`
		Service string `json:"service"`
		Status  string `json:"status"`
	} `json:"value"`
}

// FetchHealthOverviews calls the health-overview endpoint once and returns
// one StatusRecord per item whose service id the customer monitors. All
// records of one call carry the same poll timestamp.
func (h *healthClient) FetchHealthOverviews(ctx context.Context, token string, customer config.Customer) ([]model.StatusRecord, error) {
	polledAt := time.Now().UTC().Truncate(time.Second)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("HealthClient.FetchHealthOverviews creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HealthClient.FetchHealthOverviews: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("HealthClient.FetchHealthOverviews: %w", apperrors.NewRemoteAPIError(resp.StatusCode, string(body)))
	}

	var overview healthOverviewsResponse
	if err = json.NewDecoder(resp.Body).Decode(&overview); err != nil {
		return nil, fmt.Errorf("HealthClient.FetchHealthOverviews decoding response: %w", err)
	}

	var records []model.StatusRecord
	for _, item := range overview.Value {
		if !customer.MonitorsService(item.ID) {
			continue
		}
		records = append(records, model.StatusRecord{
			Customer:  customer.Name,
			Timestamp: polledAt,
			Service:   item.Service,
			Status:    item.Status,
		})
	}
	return records, nil
}

func NewHealthClient(endpoint string, requestTimeout time.Duration) HealthClient {
	return &healthClient{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}
