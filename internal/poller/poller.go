// Package poller resolves per-tenant credentials, fetches current service
// health and feeds the ingestion pipeline. A failure for one tenant never
// prevents processing of the others.
package poller

import (
	"MS_Service_Health_Monitor/internal/config"
	"MS_Service_Health_Monitor/internal/repository"
	"context"
	"time"

	"go.uber.org/zap"
)

type Poller interface {
	// Scan performs one poll cycle over all configured customers, stores
	// the fetched records per tenant and prunes records older than the
	// retention window.
	Scan(ctx context.Context)
}

type poller struct {
	customers        []config.Customer
	resolver         CredentialResolver
	authenticator    Authenticator
	healthClient     HealthClient
	statusRepository repository.StatusRepository
	retentionDays    int
	logger           *zap.Logger
}

func (p *poller) Scan(ctx context.Context) {
	if len(p.customers) == 0 {
		p.logger.Warn("no customers configured, nothing to scan")
		return
	}

	stored := 0
	for _, customer := range p.customers {
		log := p.logger.With(zap.String("customer", customer.Name))

		credentials, err := p.resolver.Resolve(customer.CredentialVar)
		if err != nil {
			log.Warn("skipping customer, cannot resolve credentials", zap.Error(err))
			continue
		}

		token, err := p.authenticator.Token(ctx, credentials)
		if err != nil {
			log.Warn("skipping customer, authentication failed", zap.Error(err))
			continue
		}

		records, err := p.healthClient.FetchHealthOverviews(ctx, token, customer)
		if err != nil {
			log.Warn("skipping customer, health fetch failed", zap.Error(err))
			continue
		}
		if len(records) == 0 {
			log.Info("no monitored services in health overview response")
			continue
		}
		for _, record := range records {
			log.Info("service status polled",
				zap.String("service", record.Service),
				zap.String("status", record.Status))
		}

		// per-tenant transaction, a failed batch never corrupts another
		// tenant's data
		if err = p.statusRepository.InsertStatuses(ctx, records); err != nil {
			log.Error("failed to store status records", zap.Error(err))
			continue
		}
		stored += len(records)
	}

	if stored == 0 {
		p.logger.Warn("no health data stored this cycle, skipping retention prune")
		return
	}
	p.logger.Info("health data stored", zap.Int("records", stored))

	cutoff := time.Now().AddDate(0, 0, -p.retentionDays)
	deleted, err := p.statusRepository.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		p.logger.Error("failed to prune outdated records", zap.Error(err))
		return
	}
	p.logger.Info("outdated records pruned",
		zap.Int64("deleted", deleted),
		zap.Int("retention_days", p.retentionDays))
}

func NewPoller(
	customers []config.Customer,
	resolver CredentialResolver,
	authenticator Authenticator,
	healthClient HealthClient,
	statusRepository repository.StatusRepository,
	retentionDays int,
	logger *zap.Logger,
) Poller {
	return &poller{
		customers:        customers,
		resolver:         resolver,
		authenticator:    authenticator,
		healthClient:     healthClient,
		statusRepository: statusRepository,
		retentionDays:    retentionDays,
		logger:           logger,
	}
}
