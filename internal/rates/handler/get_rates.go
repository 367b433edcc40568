package handler

import (
	"net/http"
	"time"
)

type GetRatesResponse struct {
	OK         bool      `json:"ok"`
	ArsToUsd   float64   `json:"ars_to_usd" example:"0.001"`
	EurToUsd   float64   `json:"eur_to_usd" example:"1.1"`
	Source     string    `json:"source" example:"bluelytics+frankfurter"`
	CapturedAt time.Time `json:"captured_at" example:"2025-01-02T15:04:05Z"`
	Error      string    `json:"error,omitempty"`
}

// GetRates godoc
// @Summary Current exchange rates
// @Description Returns the current ARS/USD and EUR/USD rates. Always answers 200; "ok": false marks a degraded (default) snapshot.
// @Tags Rates
// @Produce json
// @Success 200 {object} GetRatesResponse
// @Router /rates [get]
func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	res := h.service.GetExchangeRates(r.Context())

	writeJSON(w, http.StatusOK, GetRatesResponse{
		OK:         res.OK,
		ArsToUsd:   res.Snapshot.ArsToUsd,
		EurToUsd:   res.Snapshot.EurToUsd,
		Source:     res.Snapshot.Source,
		CapturedAt: res.Snapshot.CapturedAt,
		Error:      res.ErrorMessage,
	})
}
