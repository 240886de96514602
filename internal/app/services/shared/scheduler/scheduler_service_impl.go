package scheduler

import (
	"context"
	"time"

	"caremind-service/internal/app/config"
	"caremind-service/internal/app/contracts"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the recurring jobs the service needs besides request
// handling. Today that is a single job: remind reviewers about discharge
// requests that are still sitting in pending.
type Scheduler struct {
	Cron              *cron.Cron
	PatientRepository contracts.PatientRepository
	FanoutService     contracts.FanoutService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewScheduler(
	patientRepository contracts.PatientRepository,
	fanoutService contracts.FanoutService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *Scheduler {
	return &Scheduler{
		Cron:              cron.New(),
		PatientRepository: patientRepository,
		FanoutService:     fanoutService,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (s *Scheduler) Start() error {
	spec := s.InternalConfig.App.PendingReminderCronSpec
	_, err := s.Cron.AddFunc(spec, s.runPendingReminder)
	if err != nil {
		return err
	}
	s.Cron.Start()
	s.Log.Info("scheduler started", zap.String("pending_reminder_spec", spec))
	return nil
}

// Stop waits for a running job to finish before returning.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Log.Info("scheduler stopped")
}

func (s *Scheduler) runPendingReminder() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	patients, err := s.PatientRepository.FindAllWithPendingDischargeRequests(ctx)
	if err != nil {
		s.Log.Error("scheduler pending reminder failed to count pending requests", zap.Error(err))
		return
	}

	pendingCount := 0
	for i := range patients {
		if patients[i].PendingDischargeRequest() != nil {
			pendingCount++
		}
	}

	s.FanoutService.NotifyPendingReminder(ctx, pendingCount)
}
