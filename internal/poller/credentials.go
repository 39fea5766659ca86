package poller

import (
	apperrors "MS_Service_Health_Monitor/internal/errors"
	"fmt"
	"os"
	"strings"
)

// Credentials is the 3-part tuple required for the client-credential flow.
type Credentials struct {
	TenantID string
	ClientID string
	Secret   string
}

type CredentialResolver interface {
	Resolve(envVar string) (Credentials, error)
}

// envCredentialResolver reads ";"-delimited tenantId;clientId;secret tuples
// from process environment variables.
type envCredentialResolver struct{}

func (envCredentialResolver) Resolve(envVar string) (Credentials, error) {
	raw := os.Getenv(envVar)
	if raw == "" {
		return Credentials{}, fmt.Errorf("CredentialResolver.Resolve [%s]: %w", envVar, apperrors.ErrCredentialNotFound)
	}
	parts := strings.Split(raw, ";")
	if len(parts) != 3 {
		return Credentials{}, fmt.Errorf("CredentialResolver.Resolve [%s]: %w", envVar, apperrors.ErrMalformedCredentials)
	}
	return Credentials{
		TenantID: parts[0],
		ClientID: parts[1],
		Secret:   parts[2],
	}, nil
}

func NewEnvCredentialResolver() CredentialResolver {
	return envCredentialResolver{}
}
