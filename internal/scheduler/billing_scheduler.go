package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/juju/clock"
	"github.com/robfig/cron/v3"

	"apt-be-svc/internal/metrics"
	"apt-be-svc/internal/models"
	"apt-be-svc/internal/repository"
	"apt-be-svc/internal/service"
	"apt-be-svc/pkg/logger"
)

// Scheduler codes written to log_schedullers
const (
	MonthlyRentCode     = "MONTHLY_RENT_CREATION"
	OverdueReminderCode = "OVERDUE_PAYMENT_REMINDER"
)

// BillingScheduler handles scheduled billing operations
type BillingScheduler struct {
	billingService     service.BillingService
	logSchedulerRepo   repository.LogSchedulerRepository
	clock              clock.Clock
	location           *time.Location
	metrics            *metrics.Collector
	logger             *logger.Logger
	cron               *cron.Cron
	rentExpression     string
	reminderExpression string
}

// NewBillingScheduler creates a new billing scheduler. Cron expressions are
// evaluated in location.
func NewBillingScheduler(
	billingService service.BillingService,
	logSchedulerRepo repository.LogSchedulerRepository,
	clk clock.Clock,
	location *time.Location,
	rentExpression, reminderExpression string,
	metrics *metrics.Collector,
	logger *logger.Logger,
) *BillingScheduler {
	if location == nil {
		location = time.UTC
	}
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds(), cron.WithLocation(location))

	return &BillingScheduler{
		billingService:     billingService,
		logSchedulerRepo:   logSchedulerRepo,
		clock:              clk,
		location:           location,
		metrics:            metrics,
		logger:             logger,
		cron:               c,
		rentExpression:     rentExpression,
		reminderExpression: reminderExpression,
	}
}

// Start initializes and starts all scheduled jobs
func (s *BillingScheduler) Start() error {
	s.logger.Info("Starting billing scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	jobs := []struct {
		code       string
		expression string
		run        func(ctx context.Context) error
	}{
		{MonthlyRentCode, s.rentExpression, s.CreateMonthlyRent},
		{OverdueReminderCode, s.reminderExpression, s.SendOverdueReminders},
	}
	for _, job := range jobs {
		job := job
		if job.expression == "" {
			s.logger.WithField("job", job.code).Info("No cron expression, job disabled")
			continue
		}
		if _, err := s.cron.AddFunc(job.expression, func() { _ = job.run(context.Background()) }); err != nil {
			return fmt.Errorf("failed to schedule %s job: %w", job.code, err)
		}
		s.logger.WithFields(map[string]interface{}{
			"job":             job.code,
			"cron_expression": job.expression,
		}).Info("Job scheduled successfully")
	}

	s.cron.Start()
	s.logger.Info("Billing scheduler started successfully")

	return nil
}

// Stop gracefully stops the scheduler
func (s *BillingScheduler) Stop() {
	s.logger.Info("Stopping billing scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Billing scheduler stopped successfully")
}

// CreateMonthlyRent creates the rent charges of the current local month
func (s *BillingScheduler) CreateMonthlyRent(ctx context.Context) error {
	now := s.clock.Now().In(s.location)
	month, year := int(now.Month()), now.Year()

	return s.run(ctx, MonthlyRentCode, fmt.Sprintf("Creating monthly rent for %04d-%02d", year, month), func(ctx context.Context) (interface{}, error) {
		return s.billingService.CreateBulkMonthlyRent(ctx, month, year)
	})
}

// SendOverdueReminders notifies rooms with overdue bills
func (s *BillingScheduler) SendOverdueReminders(ctx context.Context) error {
	return s.run(ctx, OverdueReminderCode, "Sending overdue payment reminders", func(ctx context.Context) (interface{}, error) {
		return s.billingService.SendOverdueReminders(ctx)
	})
}

// run wraps a job with START/RUNNING/SUCCESS/FAILED log rows
func (s *BillingScheduler) run(ctx context.Context, code, runningMessage string, job func(ctx context.Context) (interface{}, error)) error {
	docID := uuid.New().String()

	s.logScheduler(ctx, code, docID, "Starting scheduled job", models.SchedulerStart)
	s.logger.WithField("job", code).Info("Starting scheduled job...")

	s.logScheduler(ctx, code, docID, runningMessage, models.SchedulerRunning)

	result, err := job(ctx)
	if err != nil {
		s.logScheduler(ctx, code, docID, fmt.Sprintf("Job failed: %v", err), models.SchedulerFailed)
		s.metrics.SchedulerRun(code, models.SchedulerFailed)
		s.logger.WithError(err).WithField("job", code).Error("Scheduled job failed")
		return err
	}

	responseJSON, _ := json.Marshal(result)
	s.logScheduler(ctx, code, docID, fmt.Sprintf("Job completed: %s", string(responseJSON)), models.SchedulerSuccess)
	s.metrics.SchedulerRun(code, models.SchedulerSuccess)
	s.logger.WithFields(map[string]interface{}{
		"job":    code,
		"result": string(responseJSON),
	}).Info("Scheduled job completed")
	return nil
}

// logScheduler creates a new log entry in the database
func (s *BillingScheduler) logScheduler(ctx context.Context, code, documentID, message, status string) {
	now := s.clock.Now().UTC()
	logEntry := &models.LogSchedullers{
		DocumentID:       documentID,
		SchedullerCode:   code,
		Message:          message,
		StatusScheduller: status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.logSchedulerRepo.CreateLogScheduler(ctx, logEntry); err != nil {
		s.logger.WithError(err).WithField("status", status).Error("Failed to create scheduler log entry")
		return
	}
	s.logger.WithFields(map[string]interface{}{
		"status":      status,
		"document_id": documentID,
	}).Debug("Scheduler log entry created")
}
