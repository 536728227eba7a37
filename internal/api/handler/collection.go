package handler

import (
	"errors"
	"net/http"

	"github.com/albapepper/hoops-collector/internal/api/respond"
	"github.com/albapepper/hoops-collector/internal/collector"
)

// StartCollection launches the collection loop in the background.
// @Summary Start collection
// @Description Runs a historical pass followed by the live loop until stopped.
// @Tags collection
// @Produce json
// @Success 202 {object} map[string]interface{}
// @Failure 409 {object} respond.ErrorResponse
// @Router /collection/start [post]
func (h *Handler) StartCollection(w http.ResponseWriter, r *http.Request) {
	if err := h.collector.Launch(h.baseCtx); err != nil {
		respond.WriteError(w, http.StatusConflict, respond.CodeAlreadyRunning, err.Error())
		return
	}
	respond.WriteJSONObject(w, http.StatusAccepted, map[string]interface{}{
		"status": "started",
	})
}

// StopCollection asks the loop to stop after the current pass.
// @Summary Stop collection
// @Tags collection
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /collection/stop [post]
func (h *Handler) StopCollection(w http.ResponseWriter, r *http.Request) {
	status := "not_running"
	if h.collector.Running() {
		status = "stopping"
	}
	h.collector.Stop()
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status": status,
	})
}

// CollectionStatus returns the collector snapshot.
// @Summary Collection status
// @Tags collection
// @Produce json
// @Success 200 {object} collector.Status
// @Router /collection/status [get]
func (h *Handler) CollectionStatus(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, h.collector.Status())
}

// CollectHistorical runs one historical pass synchronously.
// @Summary Run historical pass
// @Description Collects leagues, seasons and target-league teams once. Rejected while the loop runs.
// @Tags collection
// @Produce json
// @Success 200 {object} collector.HistoricalResult
// @Failure 409 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /collection/historical [post]
func (h *Handler) CollectHistorical(w http.ResponseWriter, r *http.Request) {
	res, err := h.collector.RunHistorical(r.Context())
	switch {
	case err == nil:
		respond.WriteJSONObject(w, http.StatusOK, res)
	case errors.Is(err, collector.ErrAlreadyRunning):
		respond.WriteError(w, http.StatusConflict, respond.CodeAlreadyRunning, "Data collection is already running")
	case r.Context().Err() != nil:
		h.logger.Info("Historical pass cancelled by client", "error", err)
		respond.WriteError(w, http.StatusServiceUnavailable, respond.CodeCancelled, "Historical pass cancelled")
	default:
		h.logger.Error("Historical pass failed", "error", err)
		respond.WriteErrorDetail(w, http.StatusInternalServerError, respond.CodeStorageError,
			"Historical pass failed", err.Error())
	}
}
