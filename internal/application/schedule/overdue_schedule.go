package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
)

// OverdueSchedulerConfig holds configuration for the overdue sweep
type OverdueSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// OverdueScheduler periodically flips unfinished todos with a passed due
// date to OVERDUE. A Redis distributed lock ensures a single instance
// runs the sweep when several replicas are deployed.
type OverdueScheduler struct {
	cron        *cron.Cron
	useCase     todo.UseCase
	redisClient *redis.Client
	config      *OverdueSchedulerConfig
	registered  bool
}

func NewOverdueScheduler(useCase todo.UseCase, redisClient *redis.Client, config *OverdueSchedulerConfig) *OverdueScheduler {
	return &OverdueScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      config,
	}
}

// InitOverdueScheduleTasks initializes the overdue sweep with distributed locking
func (scheduler *OverdueScheduler) InitOverdueScheduleTasks(ctx context.Context) {
	if scheduler.redisClient == nil {
		// no lock available; sweep anyway, acceptable for single-instance setups
		scheduler.start()
		return
	}

	go scheduler.runWithLock(ctx)
}

// runWithLock keeps trying to acquire the sweep lock so a standby replica
// takes over when the holder dies and its lock expires. While the lock is
// held the cron runs; a failed refresh stops it and re-enters the
// acquisition loop.
func (scheduler *OverdueScheduler) runWithLock(ctx context.Context) {
	lock := redis.NewLock(scheduler.redisClient, "overdue_sweep", scheduler.lockTTL(), "todo_schedules")
	standby := false

	for {
		if err := lock.Lock(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			if !standby {
				log.Infof("Overdue scheduler standing by, another instance holds the lock: %v", err)
				standby = true
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(scheduler.refreshInterval()):
			}
			continue
		}
		standby = false

		refreshErrChan := lock.AutoRefresh(ctx, scheduler.refreshInterval())

		scheduler.start()

		// stop sweeping once the lock cannot be held any longer
		err := <-refreshErrChan
		cronCtx := scheduler.cron.Stop()
		<-cronCtx.Done()

		if ctx.Err() != nil {
			log.Info("Overdue scheduler stopped gracefully")
			return
		}
		log.Errorf("Overdue scheduler paused, lock refresh failed: %v", err)
	}
}

func (scheduler *OverdueScheduler) start() {
	// register once; Stop/Start cycles keep the existing entry
	if !scheduler.registered {
		_, err := scheduler.cron.AddFunc(scheduler.config.CronExpression, scheduler.ExecuteScheduledTask)
		if err != nil {
			log.Errorf("Failed to initialize overdue scheduler, cron will not be started: %v", err)
			return
		}
		scheduler.registered = true
	}

	scheduler.cron.Start()
	log.Infof("Overdue scheduler started with cron expression: %s", scheduler.config.CronExpression)
}

// ExecuteScheduledTask runs one overdue sweep
func (scheduler *OverdueScheduler) ExecuteScheduledTask() {
	runID := uuid.New().String()

	log.Info(msg.GetMessage("todo.cron.start"), zap.String("run_id", runID))

	updated, err := scheduler.useCase.MarkOverdue()
	if err != nil {
		log.Error(msg.GetMessage("todo.cron.failed"), zap.String("run_id", runID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("todo.cron.end", updated), zap.String("run_id", runID), zap.Int64("updated", updated))
}

// Stop gracefully stops the scheduler
func (scheduler *OverdueScheduler) Stop() {
	ctx := scheduler.cron.Stop()
	<-ctx.Done()
}

func (scheduler *OverdueScheduler) lockTTL() time.Duration {
	if scheduler.config.LockTTL > 0 {
		return scheduler.config.LockTTL
	}
	return 10 * time.Minute
}

func (scheduler *OverdueScheduler) refreshInterval() time.Duration {
	if scheduler.config.RefreshInterval > 0 {
		return scheduler.config.RefreshInterval
	}
	return 1 * time.Minute
}
