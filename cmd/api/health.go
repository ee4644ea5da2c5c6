package main

import (
	"context"
	"net/http"
	"time"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Env      string `json:"env"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

// Health godoc
//
//	@Summary		Health check
//	@Description	Reports the service version and whether the database answers a ping.
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Failure		401	{object}	error
//	@Failure		503	{object}	HealthResponse
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:   "ok",
		Env:      app.config.env,
		Version:  version,
		Database: "ok",
	}
	status := http.StatusOK
	if err := app.store.Ping(ctx); err != nil {
		app.logger.Errorw("health check: database ping failed", "error", err.Error())
		resp.Status = "degraded"
		resp.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	_ = app.jsonResponse(w, status, resp)
}
