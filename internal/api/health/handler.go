package health

import (
	"context"
	"net/http"
	"time"

	"remoteready/internal/pkg/logger"
	"remoteready/internal/pkg/responder"
)

const (
	StatusHealthy   = "Healthy"
	StatusUnhealthy = "Unhealthy"
)

// Pinger é satisfeito por *sqlx.DB e *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Report é o corpo das respostas de saúde.
type Report struct {
	Status string            `json:"status" example:"Healthy"`
	Checks map[string]string `json:"checks,omitempty"`
}

type Handler struct {
	db      Pinger
	timeout time.Duration
	logger  logger.Logger
}

// NewHandler cria o handler de health check. timeout limita cada verificação de prontidão.
func NewHandler(db Pinger, timeout time.Duration, log logger.Logger) *Handler {
	return &Handler{db: db, timeout: timeout, logger: log}
}

// Live lida com GET /health/live.
// @Summary Liveness
// @Tags health
// @Produce json
// @Success 200 {object} health.Report
// @Router /health/live [get]
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	_ = responder.JSON(w, http.StatusOK, Report{Status: StatusHealthy})
}

// Ready lida com GET /health/ready, verificando a conexão com o banco.
// @Summary Readiness
// @Tags health
// @Produce json
// @Success 200 {object} health.Report
// @Failure 503 {object} health.Report
// @Router /health/ready [get]
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	report := Report{Status: StatusHealthy, Checks: map[string]string{"postgres": StatusHealthy}}
	status := http.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("Health check do banco falhou", map[string]interface{}{"error": err.Error()})
		report.Status = StatusUnhealthy
		report.Checks["postgres"] = StatusUnhealthy
		status = http.StatusServiceUnavailable
	}

	_ = responder.JSON(w, status, report)
}
