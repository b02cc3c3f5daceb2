package controllers

import (
	"context"
	"net/http"

	"nostalgic/nostalgic/utils/logging"

	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController reports liveness; the database must answer a ping.
type HealthController struct {
	db Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

func (h *HealthController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			logging.ErrorLogger.Error("health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unavailable"}`))
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
