package api

import (
	"fxcache/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(rateHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	router.Handle("/metrics", promhttp.Handler())

	router.Get("/api/v1/rates", rateHandler.ListRates)
	router.Delete("/api/v1/rates", rateHandler.FlushAll)
	router.Get("/api/v1/rates/{from:[A-Za-z]{3}}/{to:[A-Za-z]{3}}", rateHandler.GetRate)
	router.Delete("/api/v1/rates/{from:[A-Za-z]{3}}/{to:[A-Za-z]{3}}", rateHandler.FlushRate)
	return router
}
