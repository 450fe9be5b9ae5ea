package health

import (
	"context"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

var startedAt = time.Now()

// DBPinger is optional for the health check. If nil, the database is reported as disconnected.
type DBPinger interface {
	Ping() error
}

// Handlers serves the health endpoint.
type Handlers struct {
	Rdb *redis.Client
	DB  DBPinger
}

type depStatus struct {
	Status string `json:"status"`
	PingMs int64  `json:"pingMs"`
}

// JSON GET /health/json — uptime plus dependency reachability.
func (h *Handlers) JSON(c *fiber.Ctx) error {
	deps := map[string]depStatus{
		"redis":    h.pingRedis(),
		"database": h.pingDB(),
	}
	status := "ok"
	for _, d := range deps {
		if d.Status != "connected" {
			status = "degraded"
		}
	}
	return c.JSON(fiber.Map{
		"status":        status,
		"uptimeSeconds": int64(time.Since(startedAt).Seconds()),
		"goVersion":     runtime.Version(),
		"dependencies":  deps,
	})
}

func (h *Handlers) pingRedis() depStatus {
	if h.Rdb == nil {
		return depStatus{Status: "disconnected"}
	}
	start := time.Now()
	if err := h.Rdb.Ping(context.Background()).Err(); err != nil {
		return depStatus{Status: "disconnected"}
	}
	return depStatus{Status: "connected", PingMs: time.Since(start).Milliseconds()}
}

func (h *Handlers) pingDB() depStatus {
	if h.DB == nil {
		return depStatus{Status: "disconnected"}
	}
	start := time.Now()
	if err := h.DB.Ping(); err != nil {
		return depStatus{Status: "disconnected"}
	}
	return depStatus{Status: "connected", PingMs: time.Since(start).Milliseconds()}
}
