package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"ratesvc/internal/domain"
	"ratesvc/internal/rates"

	"github.com/google/uuid"
)

type RateService interface {
	GetExchangeRates(ctx context.Context) rates.QueryResult
	ConvertPrice(amount float64, fromCurrency, toCurrency string) float64
	GetHistory(ctx context.Context, limit int) ([]domain.StoredSnapshot, error)
	GetSnapshotByID(ctx context.Context, id uuid.UUID) (*domain.StoredSnapshot, error)
}

type Handler struct {
	service RateService
}

func NewRateHandler(service RateService) *Handler {
	return &Handler{service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
