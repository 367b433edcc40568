package api

import (
	_ "ratesvc/docs"
	"ratesvc/internal/rates/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Handle("/metrics", promhttp.Handler())

	router.Get("/api/v1/rates", rateHandler.GetRates)
	router.Get("/api/v1/rates/convert", rateHandler.ConvertPrice)
	router.Get("/api/v1/rates/history", rateHandler.GetHistory)
	router.Get("/api/v1/rates/history/{id}", rateHandler.GetHistoryByID)
	return router
}
