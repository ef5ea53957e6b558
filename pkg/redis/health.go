package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthCheck represents the health check result for the Redis connection
type HealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// CheckHealth pings Redis and reports connection pool details
func CheckHealth(ctx context.Context, client *Client) HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	details := map[string]string{
		"host":     client.config.Host,
		"port":     strconv.Itoa(client.config.Port),
		"database": strconv.Itoa(client.config.Database),
	}

	if err := client.Ping(ctx); err != nil {
		details["message"] = err.Error()
		return HealthCheck{
			Status:  StatusDown,
			Details: details,
		}
	}

	stats := client.GetClient().PoolStats()
	details["message"] = string(StatusUp)
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)

	return HealthCheck{
		Status:  StatusUp,
		Details: details,
	}
}
