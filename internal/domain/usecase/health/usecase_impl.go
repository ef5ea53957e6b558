package health

import (
	"context"

	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/pkg/redis"
)

type healthUseCase struct {
	dbGateway   db.HealthDBGateway
	redisClient *redis.Client
}

// NewHealthUseCase creates the health usecase. redisClient may be nil when
// caching is disabled; the cache component then reports UNKNOWN.
func NewHealthUseCase(dbGateway db.HealthDBGateway, redisClient *redis.Client) UseCase {
	return &healthUseCase{
		dbGateway:   dbGateway,
		redisClient: redisClient,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	dbHealth := useCase.dbGateway.Health()
	cacheHealth := useCase.checkCache()

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp || cacheHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Cache:    cacheHealth,
	}
}

func (useCase *healthUseCase) checkCache() model.ComponentHealthStatus {
	if useCase.redisClient == nil {
		return model.ComponentHealthStatus{
			Status: model.StatusUnknown,
			Details: map[string]string{
				"message": "cache disabled",
			},
		}
	}

	check := redis.CheckHealth(context.Background(), useCase.redisClient)
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(check.Status),
		Details: check.Details,
	}
}
