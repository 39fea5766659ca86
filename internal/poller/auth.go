package poller

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

type Authenticator interface {
	Token(ctx context.Context, credentials Credentials) (string, error)
}

type authenticator struct {
	authEndpoint string
	scope        string
	httpClient   *http.Client
}

// Token performs a single client-credential token exchange against the
// identity provider. There is no retry and no caching across runs; a failed
// exchange skips the tenant for the current cycle.
func (a *authenticator) Token(ctx context.Context, credentials Credentials) (string, error) {
	cfg := clientcredentials.Config{
		ClientID:     credentials.ClientID,
		ClientSecret: credentials.Secret,
		TokenURL:     fmt.Sprintf("%s/%s/oauth2/v2.0/token", a.authEndpoint, credentials.TenantID),
		Scopes:       []string{a.scope},
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)
	token, err := cfg.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("Authenticator.Token: %w", err)
	}
	return token.AccessToken, nil
}

func NewAuthenticator(authEndpoint string, scope string, requestTimeout time.Duration) Authenticator {
	return &authenticator{
		authEndpoint: authEndpoint,
		scope:        scope,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}
