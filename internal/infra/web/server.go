package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"newsletter-service/internal/usecase"
)

// NewRouter wires the three inbound operations plus health and metrics.
func NewRouter(
	subUC usecase.SubscriptionUseCase,
	confUC usecase.ConfirmationUseCase,
	newsUC usecase.NewsletterUseCase,
	auth *AuthManager,
	logger *zerolog.Logger,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/subscriptions", subscribeHandler(subUC))
	r.Get("/subscriptions/confirm", confirmHandler(confUC))

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware)
		r.Post("/newsletters", publishHandler(newsUC))
	})

	return r
}

func requestLogger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("http request")
		})
	}
}
