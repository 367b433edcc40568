package handler

import (
	"math"
	"net/http"
	"ratesvc/internal/rates"
	"strconv"
	"strings"
)

type ConvertPriceResponse struct {
	Amount    float64 `json:"amount" example:"50000"`
	From      string  `json:"from" example:"ARS"`
	To        string  `json:"to" example:"USD"`
	Converted float64 `json:"converted" example:"50"`
	Formatted string  `json:"formatted" example:"$50.00"`
}

// ConvertPrice godoc
// @Summary Convert a price to USD
// @Description Converts amount from the given currency using the cached snapshot. Unknown currencies pass through unchanged.
// @Tags Rates
// @Produce json
// @Param amount query number true "Amount to convert"
// @Param from query string true "Source currency code (ARS, EUR, USD)"
// @Param to query string false "Target currency code, USD only" default(USD)
// @Success 200 {object} ConvertPriceResponse
// @Failure 400 {object} errorResponse
// @Router /rates/convert [get]
func (h *Handler) ConvertPrice(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		writeError(w, http.StatusBadRequest, "invalid amount")
		return
	}

	from := strings.ToUpper(strings.TrimSpace(q.Get("from")))
	if from == "" {
		writeError(w, http.StatusBadRequest, "from currency is required")
		return
	}

	to := strings.ToUpper(strings.TrimSpace(q.Get("to")))
	if to == "" {
		to = "USD"
	}

	converted := h.service.ConvertPrice(amount, from, to)

	writeJSON(w, http.StatusOK, ConvertPriceResponse{
		Amount:    amount,
		From:      from,
		To:        to,
		Converted: converted,
		Formatted: rates.FormatPrice(converted, to),
	})
}
