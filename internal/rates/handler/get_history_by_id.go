package handler

import (
	"errors"
	"net/http"
	"ratesvc/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GetHistoryByID godoc
// @Summary Get one rate snapshot
// @Description Get a persisted snapshot by its ID
// @Tags Rates
// @Produce json
// @Param id path string true "Snapshot ID"
// @Success 200 {object} SnapshotView
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /rates/history/{id} [get]
func (h *Handler) GetHistoryByID(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid snapshot ID format")
		return
	}

	snapshot, err := h.service.GetSnapshotByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			writeError(w, http.StatusNotFound, "snapshot not found")
			return
		}
		msg := "ups, couldn't get snapshot by id this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetHistoryByID", "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, toSnapshotView(*snapshot))
}
