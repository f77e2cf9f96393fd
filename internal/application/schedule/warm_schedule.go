package schedule

import (
	"frost-api/internal/domain/usecase/dashboard"
	"frost-api/internal/domain/usecase/department"
	"frost-api/pkg/log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// warmPageSize bounds how many departments are listed per warm iteration.
const warmPageSize = 50

// WarmScheduler periodically recomputes and re-caches the dataset of every
// monitored department so dashboard loads hit warm cache.
type WarmScheduler struct {
	scheduler         gocron.Scheduler
	dashboardUseCase  dashboard.UseCase
	departmentUseCase department.UseCase
	interval          time.Duration
}

func NewWarmScheduler(dashboardUseCase dashboard.UseCase, departmentUseCase department.UseCase, intervalMinutes int) (*WarmScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	interval := time.Duration(intervalMinutes) * time.Minute
	if interval <= 0 {
		interval = 30 * time.Minute
	}

	return &WarmScheduler{
		scheduler:         scheduler,
		dashboardUseCase:  dashboardUseCase,
		departmentUseCase: departmentUseCase,
		interval:          interval,
	}, nil
}

// InitWarmScheduleTasks registers and starts the periodic cache warm job
func (s *WarmScheduler) InitWarmScheduleTasks() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.WarmAllDepartments),
	)
	if err != nil {
		return err
	}

	s.scheduler.Start()
	log.Infof("Cache warm scheduler started with interval: %s", s.interval)
	return nil
}

// WarmAllDepartments walks every monitored department and re-caches its dataset
func (s *WarmScheduler) WarmAllDepartments() {
	page := 0
	warmed := 0
	failed := 0

	for {
		departments, err := s.departmentUseCase.FindAllDepartments(page, warmPageSize)
		if err != nil {
			log.Warnf("Failed to list departments for cache warm (page %d): %v", page, err)
			return
		}
		if len(departments.Content) == 0 {
			break
		}

		for _, dept := range departments.Content {
			if err := s.dashboardUseCase.WarmDepartment(dept.Code); err != nil {
				log.Warnf("Failed to warm cache for department %s: %v", dept.Code, err)
				failed++
				continue
			}
			warmed++
		}

		if page >= departments.TotalPages-1 {
			break
		}
		page++
	}

	log.Infof("Cache warm completed: %d warmed, %d failed", warmed, failed)
}

// Stop gracefully stops the scheduler
func (s *WarmScheduler) Stop() {
	if err := s.scheduler.Shutdown(); err != nil {
		log.Warnf("Failed to shut down cache warm scheduler: %v", err)
	}
}
