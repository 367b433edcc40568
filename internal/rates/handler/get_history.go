package handler

import (
	"net/http"
	"ratesvc/internal/domain"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type SnapshotView struct {
	ID         string    `json:"id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
	ArsToUsd   float64   `json:"ars_to_usd" example:"0.001"`
	EurToUsd   float64   `json:"eur_to_usd" example:"1.1"`
	Source     string    `json:"source" example:"open-er-api"`
	CapturedAt time.Time `json:"captured_at" example:"2025-01-02T15:04:05Z"`
}

type GetHistoryResponse struct {
	Snapshots []SnapshotView `json:"snapshots"`
}

// GetHistory godoc
// @Summary Recent rate snapshots
// @Description Lists persisted snapshots, newest first
// @Tags Rates
// @Produce json
// @Param limit query int false "Maximum number of snapshots" default(20)
// @Success 200 {object} GetHistoryResponse
// @Failure 500 {object} errorResponse
// @Router /rates/history [get]
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = min(parsed, maxHistoryLimit)
	}

	snapshots, err := h.service.GetHistory(r.Context(), limit)
	if err != nil {
		msg := "ups, couldn't get snapshot history this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetHistory", "limit": limit}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	views := make([]SnapshotView, 0, len(snapshots))
	for _, s := range snapshots {
		views = append(views, toSnapshotView(s))
	}
	writeJSON(w, http.StatusOK, GetHistoryResponse{Snapshots: views})
}

func toSnapshotView(s domain.StoredSnapshot) SnapshotView {
	return SnapshotView{
		ID:         s.ID.String(),
		ArsToUsd:   s.ArsToUsd,
		EurToUsd:   s.EurToUsd,
		Source:     s.Source,
		CapturedAt: s.CapturedAt,
	}
}
