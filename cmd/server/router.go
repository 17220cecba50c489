package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chatdrip/sequence-engine/internal/handler"
)

func setupRouter(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/dispatch", h.Dispatch)
		r.Post("/outcome", h.ReportOutcome)

		r.Post("/enrollments", h.Enroll)
		r.Delete("/enrollments", h.Unenroll)

		r.Get("/messages/sent", h.GetSentMessages)
		r.Get("/stats/daily", h.GetDailyStats)

		r.Post("/scheduler/start", h.StartScheduler)
		r.Post("/scheduler/stop", h.StopScheduler)
	})

	return r
}
