package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type stubTodoUseCase struct {
	sweeps  int
	updated int64
}

func (s *stubTodoUseCase) FindAllByUser(userID uint) ([]entity.Todo, error) { return nil, nil }

func (s *stubTodoUseCase) FindByIDAndUser(id uint, userID uint) (*entity.Todo, error) {
	return nil, nil
}

func (s *stubTodoUseCase) Create(userID uint, dto model.CreateTodoDTO) (*entity.Todo, error) {
	return nil, nil
}

func (s *stubTodoUseCase) Update(id uint, userID uint, dto model.UpdateTodoDTO, partial bool) (*entity.Todo, error) {
	return nil, nil
}

func (s *stubTodoUseCase) Delete(id uint, userID uint) error { return nil }

func (s *stubTodoUseCase) MarkOverdue() (int64, error) {
	s.sweeps++
	return s.updated, nil
}

func TestStartRegistersCronEntryOnce(t *testing.T) {
	scheduler := NewOverdueScheduler(&stubTodoUseCase{}, nil, &OverdueSchedulerConfig{
		CronExpression: "@every 1h",
	})

	// acquisition cycles stop and restart the cron; the sweep entry must
	// not be duplicated across them
	scheduler.start()
	scheduler.Stop()
	scheduler.start()
	scheduler.Stop()

	assert.Len(t, scheduler.cron.Entries(), 1)
}

func TestExecuteScheduledTaskRunsSweep(t *testing.T) {
	useCase := &stubTodoUseCase{updated: 2}
	scheduler := NewOverdueScheduler(useCase, nil, &OverdueSchedulerConfig{
		CronExpression: "@every 1h",
	})

	scheduler.ExecuteScheduledTask()
	require.Equal(t, 1, useCase.sweeps)
}
