package handler

import (
	"log/slog"
	"net/http"

	ledgerSvc "bookkeeper/internal/domain/services/ledger"
	"bookkeeper/internal/httputil"
)

// OperationalYearHandler handles operational year HTTP requests
type OperationalYearHandler struct {
	service ledgerSvc.OperationalYearService
	logger  *slog.Logger
}

// NewOperationalYearHandler creates a new operational year handler
func NewOperationalYearHandler(service ledgerSvc.OperationalYearService, logger *slog.Logger) *OperationalYearHandler {
	return &OperationalYearHandler{
		service: service,
		logger:  logger,
	}
}

// ListOperationalYears returns the user's operational years
// GET /api/operational-years
func (h *OperationalYearHandler) ListOperationalYears(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	items, err := h.service.ListOperationalYears(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, items)
}

// CreateOperationalYear creates a new operational year
// POST /api/operational-years
func (h *OperationalYearHandler) CreateOperationalYear(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req ledgerSvc.CreateOperationalYearRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.service.CreateOperationalYear(r.Context(), userID, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, item)
}

// GetOperationalYear retrieves a single operational year
// GET /api/operational-years/{id}
func (h *OperationalYearHandler) GetOperationalYear(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.service.GetOperationalYear(r.Context(), userID, id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// UpdateOperationalYear applies a partial update to a operational year
// PATCH /api/operational-years/{id}
func (h *OperationalYearHandler) UpdateOperationalYear(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req ledgerSvc.UpdateOperationalYearRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.service.UpdateOperationalYear(r.Context(), userID, id, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// DeleteOperationalYear deletes a operational year
// DELETE /api/operational-years/{id}
func (h *OperationalYearHandler) DeleteOperationalYear(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteOperationalYear(r.Context(), userID, id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}
