package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrCredentialNotFound    = errors.New("credential environment variable not found")
	ErrMalformedCredentials  = errors.New("credential string must contain tenantId;clientId;secret")
	ErrUnknownCustomer       = errors.New("customer not present in configuration")
	ErrEmptyDataset          = errors.New("empty status dataset")
	ErrNoReportData          = errors.New("no records in report window")
	ErrNoUsableServiceResult = errors.New("no usable service result for customer")
)

// RemoteAPIError is a non-success response from the identity provider or the
// health endpoint. It marks the tenant as skipped for the current cycle.
type RemoteAPIError struct {
	StatusCode int
	Body       string
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("remote API returned [%d]: %s", e.StatusCode, e.Body)
}

func NewRemoteAPIError(statusCode int, body string) error {
	return &RemoteAPIError{
		StatusCode: statusCode,
		Body:       body,
	}
}
