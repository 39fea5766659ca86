package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Customer is one monitored tenant: its credential reference, service
// subscriptions and report recipients. Loaded once per run, immutable after.
type Customer struct {
	Name string `yaml:"name" validate:"required"`
	// CredentialVar names the environment variable holding the
	// ";"-delimited tenantId;clientId;secret tuple.
	CredentialVar string   `yaml:"credential_var" validate:"required"`
	Services      []string `yaml:"services" validate:"required,min=1,dive,required"`
	MailTo        string   `yaml:"mail_to" validate:"required,email"`
	MailCc        string   `yaml:"mail_cc" validate:"omitempty,email"`
}

type customersFile struct {
	Customers []Customer `yaml:"customers" validate:"required,min=1,dive"`
}

// MonitorsService reports whether a remote service id is subscribed for this
// customer.
func (c Customer) MonitorsService(serviceID string) bool {
	for _, s := range c.Services {
		if s == serviceID {
			return true
		}
	}
	return false
}

// FindCustomer returns the customer with the given name.
func FindCustomer(customers []Customer, name string) (Customer, bool) {
	for _, c := range customers {
		if c.Name == name {
			return c, true
		}
	}
	return Customer{}, false
}

// LoadCustomers reads and validates the YAML customer configuration.
func LoadCustomers(path string) ([]Customer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.LoadCustomers: %w", err)
	}

	var f customersFile
	if err = yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("config.LoadCustomers parsing %s: %w", path, err)
	}
	if err = validator.New().Struct(f); err != nil {
		return nil, fmt.Errorf("config.LoadCustomers validating %s: %w", path, err)
	}
	return f.Customers, nil
}
