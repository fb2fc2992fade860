package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waveboard_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// VotesCast counts vote upserts by outcome (created or updated is not
	// distinguished at the SQL level, so this counts accepted casts).
	VotesCast = promauto.NewCounter(prometheus.CounterOpts{
		Name: "waveboard_votes_cast_total",
		Help: "Total number of accepted vote casts",
	})
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware registers the metrics endpoint and returns the HTTP
// metrics collection handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus, app *fiber.App) fiber.Handler {
	prom.RegisterAt(app, "/metrics")
	return prom.Middleware
}
