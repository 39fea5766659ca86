// Package report compiles per-customer service health reports from stored
// status records and dispatches them by email.
package report

import (
	"MS_Service_Health_Monitor/internal/analysis"
	"MS_Service_Health_Monitor/internal/chart"
	"MS_Service_Health_Monitor/internal/config"
	apperrors "MS_Service_Health_Monitor/internal/errors"
	"MS_Service_Health_Monitor/internal/model"
	"MS_Service_Health_Monitor/internal/repository"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// CustomerAll selects every configured customer for a report run.
const CustomerAll = "all"

type Service interface {
	// Run compiles and dispatches reports for one customer or for
	// CustomerAll. It aborts with an error when there is no data in the
	// report window or no customer yields a usable service result;
	// per-customer and per-service failures are isolated and logged.
	Run(ctx context.Context, customerName string) error
}

type service struct {
	customers        []config.Customer
	statusRepository repository.StatusRepository
	aggregator       analysis.Aggregator
	renderer         chart.Renderer
	dispatcher       Dispatcher
	window           config.RetentionConfig
	logger           *zap.Logger
}

func (s *service) Run(ctx context.Context, customerName string) error {
	filter := ""
	if customerName != CustomerAll {
		customer, ok := config.FindCustomer(s.customers, customerName)
		if !ok {
			return fmt.Errorf("ReportService.Run [%s]: %w", customerName, apperrors.ErrUnknownCustomer)
		}
		filter = customer.Name
	}

	start, end := s.reportWindow(time.Now().UTC())
	records, err := s.statusRepository.GetStatusesInRange(ctx, start, end, filter)
	if err != nil {
		return fmt.Errorf("ReportService.Run: %w", err)
	}
	if len(records) == 0 {
		s.logger.Warn("no records in report window, no email will be sent",
			zap.String("customer", customerName),
			zap.Time("start", start),
			zap.Time("end", end))
		return fmt.Errorf("ReportService.Run: %w", apperrors.ErrNoReportData)
	}

	sent := 0
	for _, group := range groupByCustomerService(records) {
		log := s.logger.With(zap.String("customer", group.name))
		customer, ok := config.FindCustomer(s.customers, group.name)
		if !ok {
			log.Warn("stored records reference a customer missing from configuration, skipping")
			continue
		}

		customerReport, err := s.analyze(group)
		if err != nil {
			log.Warn("customer yielded no usable service result, dropped from report", zap.Error(err))
			continue
		}
		customerReport.HTMLBody = buildHTMLBody(customerReport)

		if err = s.dispatcher.Dispatch(customer, customerReport); err != nil {
			log.Error("failed to dispatch report email", zap.Error(err))
			continue
		}
		log.Info("report email sent", zap.Int("services", len(customerReport.Services)))
		sent++
	}
	if sent == 0 {
		return fmt.Errorf("ReportService.Run: %w", apperrors.ErrNoUsableServiceResult)
	}
	return nil
}

// analyze aggregates and charts every service of one customer group. A
// failed aggregation skips the service; a failed chart degrades the service
// to its numeric summary. At least one usable service result is required.
func (s *service) analyze(group customerGroup) (model.CustomerReport, error) {
	customerReport := model.CustomerReport{Customer: group.name}
	for _, svc := range group.services {
		log := s.logger.With(zap.String("customer", group.name), zap.String("service", svc.name))

		summary, err := s.aggregator.Aggregate(svc.records)
		if err != nil {
			log.Warn("cannot compute health summary, skipping service", zap.Error(err))
			continue
		}

		chartPath, err := s.renderer.Render(group.name, svc.name, svc.records)
		if err != nil {
			log.Warn("cannot render chart, degrading to summary only", zap.Error(err))
			chartPath = ""
		}

		customerReport.Services = append(customerReport.Services, model.ServiceReport{
			Service:   svc.name,
			Summary:   summary,
			ChartPath: chartPath,
		})
	}
	if len(customerReport.Services) == 0 {
		return model.CustomerReport{}, fmt.Errorf("ReportService.analyze [%s]: %w", group.name, apperrors.ErrNoUsableServiceResult)
	}
	return customerReport, nil
}

// reportWindow maps the configured day offsets onto [start of day, end of
// day] bounds. Misconfigured offsets fall back to the single prior calendar
// day.
func (s *service) reportWindow(now time.Time) (time.Time, time.Time) {
	from, to := s.window.ReportDaysFrom, s.window.ReportDaysTo
	if from < to || to < 0 {
		s.logger.Warn("invalid report window offsets, defaulting to previous day",
			zap.Int("from_days", from),
			zap.Int("to_days", to))
		from, to = 1, 1
	}
	start := now.AddDate(0, 0, -from)
	end := now.AddDate(0, 0, -to)
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, time.UTC)
	return start, end
}

type serviceGroup struct {
	name    string
	records []model.StatusRecord
}

type customerGroup struct {
	name     string
	services []serviceGroup
}

// groupByCustomerService splits a record sequence ordered by customer,
// service, timestamp into per-customer per-service groups, preserving order.
func groupByCustomerService(records []model.StatusRecord) []customerGroup {
	var groups []customerGroup
	for _, record := range records {
		if len(groups) == 0 || groups[len(groups)-1].name != record.Customer {
			groups = append(groups, customerGroup{name: record.Customer})
		}
		group := &groups[len(groups)-1]
		if len(group.services) == 0 || group.services[len(group.services)-1].name != record.Service {
			group.services = append(group.services, serviceGroup{name: record.Service})
		}
		svc := &group.services[len(group.services)-1]
		svc.records = append(svc.records, record)
	}
	return groups
}

func NewService(
	customers []config.Customer,
	statusRepository repository.StatusRepository,
	aggregator analysis.Aggregator,
	renderer chart.Renderer,
	dispatcher Dispatcher,
	window config.RetentionConfig,
	logger *zap.Logger,
) Service {
	return &service{
		customers:        customers,
		statusRepository: statusRepository,
		aggregator:       aggregator,
		renderer:         renderer,
		dispatcher:       dispatcher,
		window:           window,
		logger:           logger,
	}
}
