package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/openmediastation/mediaserver/pkg/logger"
	"go.uber.org/zap"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LogMiddleware attaches a request scoped logger and logs every served request at debug
func (s Server) LogMiddleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := s.baseLogger.With(
				zap.String("request_path", r.URL.Path),
				zap.String("method", r.Method),
				zap.String("id", uuid.New().String()),
			)

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			h.ServeHTTP(rec, r.WithContext(logger.WithCtx(r.Context(), log)))

			log.Debugw("request served", "status", rec.status, "duration", time.Since(start))
		})
	}
}
