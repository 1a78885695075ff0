package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/sergioortiz17/devtools-backend/internal/middleware"
	"github.com/sergioortiz17/devtools-backend/internal/server"
)

// HealthHandler reports whether the service's dependencies are reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth runs the configured dependency checks.
//
// It returns 200 when the database answers and 503 otherwise. A failing
// Redis is reported but does not fail the check, since the cache is optional.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	obs := h.server.Config.Observability

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]any)
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"version":     h.server.Config.App.Version,
		"checks":      checks,
	}
	isHealthy := true

	if obs.HealthCheckEnabled("database") {
		err := h.runCheck(c.Request().Context(), &logger, checks, "database", func(ctx context.Context) error {
			if h.server.DB == nil {
				return fmt.Errorf("database not initialized")
			}
			return h.server.DB.Ping(ctx)
		})
		if err != nil {
			isHealthy = false
		}
	}

	if obs.HealthCheckEnabled("redis") && h.server.Redis != nil {
		_ = h.runCheck(c.Request().Context(), &logger, checks, "redis", func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordEvent(map[string]any{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// runCheck executes one dependency check under the configured timeout and
// stores its outcome in checks.
func (h *HealthHandler) runCheck(
	ctx context.Context,
	logger *zerolog.Logger,
	checks map[string]any,
	name string,
	check func(ctx context.Context) error,
) error {
	ctx, cancel := context.WithTimeout(ctx, h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	checkStart := time.Now()
	err := check(ctx)
	elapsed := time.Since(checkStart)

	if err != nil {
		checks[name] = map[string]any{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}

		logger.Error().
			Err(err).
			Dur("response_time", elapsed).
			Msgf("%s health check failed", name)

		h.recordEvent(map[string]any{
			"check_type":       name,
			"operation":        "health_check",
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
		return err
	}

	checks[name] = map[string]any{
		"status":        "healthy",
		"response_time": elapsed.String(),
	}

	logger.Info().
		Dur("response_time", elapsed).
		Msgf("%s health check passed", name)
	return nil
}

func (h *HealthHandler) recordEvent(params map[string]any) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", params)
	}
}
