package middleware

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"remoteready/internal/domain"
	"remoteready/internal/pkg/cache"
	"remoteready/internal/pkg/logger"
	"remoteready/internal/pkg/metrics"
)

// RateLimitPolicy descreve uma janela fixa: Limit permissões a cada Window.
// Até QueueLimit requisições excedentes aguardam a próxima janela (mais antigas primeiro);
// as demais recebem 429.
type RateLimitPolicy struct {
	Name       string
	Limit      int
	Window     time.Duration
	QueueLimit int
}

// RateLimiter aplica a política por IP do cliente usando o contador compartilhado (Redis).
// Se o contador estiver indisponível a requisição segue (falha aberta) com um aviso no log.
func RateLimiter(counter cache.WindowCounter, policy RateLimitPolicy, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "rate-limit:" + policy.Name + ":" + clientIP(r)

			count, ttl, err := counter.IncrWindow(r.Context(), key, policy.Window)
			if err != nil {
				log.Warn("Rate limiter indisponível; requisição liberada.", map[string]interface{}{
					"policy": policy.Name,
					"error":  err.Error(),
				})
				metrics.ObserveRateLimit(policy.Name, metrics.RateLimitBypassed)
				next.ServeHTTP(w, r)
				return
			}

			// Excedente dentro da fila: espera a janela reiniciar e tenta uma única vez.
			position := int(count) - policy.Limit
			if position > 0 && position <= policy.QueueLimit {
				metrics.ObserveRateLimit(policy.Name, metrics.RateLimitQueued)
				// Posições menores acordam antes, preservando a ordem de chegada.
				wait := ttl + time.Duration(position)*time.Millisecond
				if !sleepCtx(r.Context(), wait) {
					return
				}
				count, ttl, err = counter.IncrWindow(r.Context(), key, policy.Window)
				if err != nil {
					metrics.ObserveRateLimit(policy.Name, metrics.RateLimitBypassed)
					next.ServeHTTP(w, r)
					return
				}
			}

			if int(count) > policy.Limit {
				metrics.ObserveRateLimit(policy.Name, metrics.RateLimitRejected)
				log.Debug("Requisição rejeitada pelo rate limiter.", map[string]interface{}{
					"policy": policy.Name,
					"key":    key,
					"path":   r.URL.Path,
				})
				writeRateLimited(w, policy, ttl)
				return
			}

			metrics.ObserveRateLimit(policy.Name, metrics.RateLimitAllowed)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(policy.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(policy.Limit-int(count)))
			next.ServeHTTP(w, r)
		})
	}
}

func writeRateLimited(w http.ResponseWriter, policy RateLimitPolicy, ttl time.Duration) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(policy.Limit))
	w.Header().Set("X-RateLimit-Remaining", "0")
	w.Header().Set("X-RateLimit-Reset", time.Now().Add(ttl).UTC().Format(time.RFC1123))
	w.Header().Set("Retry-After", strconv.Itoa(int((ttl+time.Second-1)/time.Second)))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     http.StatusTooManyRequests,
		Category: "RATE_LIMITED",
		Message:  "Muitas requisições. Tente novamente mais tarde.",
	})
}

// sleepCtx espera d ou até o cliente desistir. Retorna false se o contexto foi cancelado.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// clientIP usa o RemoteAddr (já ajustado pelo middleware RealIP do chi).
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
