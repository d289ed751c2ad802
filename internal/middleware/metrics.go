package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// RedisErrors counts Redis command failures, labelled by command name.
var RedisErrors = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "inkwell_redis_errors_total",
		Help: "Total number of Redis command errors",
	},
	[]string{"command"},
)

// InitMetrics registers application metrics and returns the Prometheus
// middleware for HTTP request instrumentation.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	prometheus.MustRegister(RedisErrors)
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the Prometheus middleware as a fiber.Handler.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
