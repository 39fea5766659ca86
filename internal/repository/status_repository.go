package repository

import (
	"MS_Service_Health_Monitor/internal/model"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ServiceStatus is the persisted form of a StatusRecord. The timestamp is
// stored as a sortable string so range selects and the retention cutoff work
// with plain lexicographic comparison.
type ServiceStatus struct {
	Customer  string `gorm:"column:customer;not null"`
	Timestamp string `gorm:"column:timestamp;not null"`
	Service   string `gorm:"column:service;not null"`
	Status    string `gorm:"column:status;not null"`
}

func (ServiceStatus) TableName() string {
	return "service_status"
}

type StatusRepository interface {
	// InsertStatuses appends one tenant's poll-cycle batch in a single
	// transaction.
	InsertStatuses(ctx context.Context, records []model.StatusRecord) error
	// GetStatusesInRange returns records with start <= timestamp <= end,
	// optionally filtered to one customer (empty customer means all),
	// ordered by customer, service, timestamp.
	GetStatusesInRange(ctx context.Context, start time.Time, end time.Time, customer string) ([]model.StatusRecord, error)
	// DeleteOlderThan removes records strictly before the cutoff and
	// returns the number deleted.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type statusRepository struct {
	db *gorm.DB
}

func (s *statusRepository) InsertStatuses(ctx context.Context, records []model.StatusRecord) error {
	if len(records) == 0 {
		return nil
	}
	rows := make([]ServiceStatus, 0, len(records))
	for _, record := range records {
		rows = append(rows, ServiceStatus{
			Customer:  record.Customer,
			Timestamp: record.Timestamp.UTC().Format(model.TimestampLayout),
			Service:   record.Service,
			Status:    record.Status,
		})
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("StatusRepository.InsertStatuses: %w", err)
	}
	return nil
}

func (s *statusRepository) GetStatusesInRange(ctx context.Context, start time.Time, end time.Time, customer string) ([]model.StatusRecord, error) {
	query := s.db.WithContext(ctx).
		Where("timestamp BETWEEN ? AND ?", start.UTC().Format(model.TimestampLayout), end.UTC().Format(model.TimestampLayout))
	if customer != "" {
		query = query.Where("customer = ?", customer)
	}
	var rows []ServiceStatus
	result := query.Order("customer, service, timestamp").Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("StatusRepository.GetStatusesInRange: %w", result.Error)
	}
	records := make([]model.StatusRecord, 0, len(rows))
	for _, row := range rows {
		ts, err := time.ParseInLocation(model.TimestampLayout, row.Timestamp, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("StatusRepository.GetStatusesInRange parsing timestamp %q: %w", row.Timestamp, err)
		}
		records = append(records, model.StatusRecord{
			Customer:  row.Customer,
			Timestamp: ts,
			Service:   row.Service,
			Status:    row.Status,
		})
	}
	return records, nil
}

func (s *statusRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("timestamp < ?", cutoff.UTC().Format(model.TimestampLayout)).
		Delete(&ServiceStatus{})
	if result.Error != nil {
		return 0, fmt.Errorf("StatusRepository.DeleteOlderThan: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Migrate creates the service_status table when it does not exist yet.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&ServiceStatus{}); err != nil {
		return fmt.Errorf("repository.Migrate: %w", err)
	}
	return nil
}

func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepository{
		db: db,
	}
}
