package schedule

import (
	"context"
	"frost-api/internal/domain/usecase/department"
	"frost-api/pkg/log"
	"frost-api/pkg/redis"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RefreshSchedulerConfig holds configuration for the refresh scheduler
type RefreshSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// RefreshScheduler handles scheduled department refreshes with distributed locking
type RefreshScheduler struct {
	cron        *cron.Cron
	useCase     department.UseCase
	redisClient *redis.Client
	config      *RefreshSchedulerConfig
}

// NewRefreshScheduler creates a new refresh scheduler with distributed locking support
func NewRefreshScheduler(useCase department.UseCase, redisClient *redis.Client, cronExpression string, lockTTL int, refreshInterval int) *RefreshScheduler {
	return &RefreshScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config: &RefreshSchedulerConfig{
			CronExpression:  cronExpression,
			LockTTL:         time.Duration(lockTTL) * time.Second,
			RefreshInterval: time.Duration(refreshInterval) * time.Second,
		},
	}
}

// InitRefreshScheduleTasks initializes refresh schedule tasks with distributed locking
func (s *RefreshScheduler) InitRefreshScheduleTasks(ctx context.Context) {
	go func() {
		// Create a scheduled task lock with persistent refresh
		lock := redis.NewScheduledTaskLock(
			s.redisClient,
			"department_refresh_scheduler",
			s.getLockTTL(),
			s.getRefreshInterval(),
			"frost_schedules",
		)

		err := lock.Lock(ctx)
		if err != nil {
			log.Errorf("Failed to acquire distributed lock, refresh scheduler will not be initialized: %v", err)
			return
		}

		// Start auto-refresh to maintain the lock indefinitely
		refreshErrChan := lock.AutoRefresh(ctx)

		cronExpression := s.config.CronExpression

		_, err = s.cron.AddFunc(cronExpression, s.ExecuteScheduledTask)

		if err != nil {
			log.Errorf("Failed to initialize refresh scheduler, cron will not be started: %v", err)
			return
		}

		// Start the scheduler
		s.cron.Start()
		log.Infof("Department refresh scheduler started successfully with cron expression: %s", cronExpression)

		// Monitor auto-refresh errors and stop scheduler if refresh fails
		err = <-refreshErrChan

		// Stop the scheduler due to refresh failure or context cancellation
		if s.cron != nil {
			cronCtx := s.cron.Stop()
			<-cronCtx.Done()
		}

		if err != nil {
			log.Errorf("Department refresh scheduler stopped due to auto-refresh failure: %v", err)
		} else {
			log.Info("Department refresh scheduler stopped gracefully")
		}
	}()
}

// ExecuteScheduledTask executes the department refresh for all monitored departments
func (s *RefreshScheduler) ExecuteScheduledTask() {
	// Generate request ID for tracking
	requestID := uuid.New().String()

	log.Info("Department refresh scheduled task triggered", zap.String("request_id", requestID))

	if err := s.useCase.RefreshAllDepartmentsScheduled(requestID); err != nil {
		log.Error("Failed to execute scheduled department refresh", zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info("Scheduled department refresh completed successfully", zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler
func (s *RefreshScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *RefreshScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

func (s *RefreshScheduler) getRefreshInterval() time.Duration {
	if s.config.RefreshInterval > 0 {
		return s.config.RefreshInterval
	}
	return 1 * time.Minute
}
