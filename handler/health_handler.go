package handler

import (
	"context"
	"go-social-api/common"
	"net/http"
	"time"
)

// Pinger checks that a backing store is reachable.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	ping Pinger
}

// NewHealthHandler returns a health handler. A nil ping reports healthy
// without checking anything.
func NewHealthHandler(ping Pinger) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// HealthCheck godoc
// @Summary      Show the status of server
// @Description  get the status of server and its database
// @Tags         health
// @Accept       json
// @Produce      json
// @Success      200  {object}  common.Envelope
// @Failure      503  {object}  common.Envelope "Database unavailable"
// @Router       /health [get]
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) *common.AppError {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			return common.NewAppError(http.StatusServiceUnavailable, "Database unavailable", err)
		}
	}
	common.SuccessMessage(w, http.StatusOK, "API is healthy and running")
	return nil
}
