package handler

import (
	"log/slog"
	"net/http"

	ledgerSvc "bookkeeper/internal/domain/services/ledger"
	"bookkeeper/internal/httputil"
)

// VerificationHandler handles verification HTTP requests
type VerificationHandler struct {
	service ledgerSvc.VerificationService
	logger  *slog.Logger
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(service ledgerSvc.VerificationService, logger *slog.Logger) *VerificationHandler {
	return &VerificationHandler{
		service: service,
		logger:  logger,
	}
}

// ListVerifications returns the user's verifications
// GET /api/verifications
func (h *VerificationHandler) ListVerifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	items, err := h.service.ListVerifications(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, items)
}

// CreateVerification creates a new verification
// POST /api/verifications
func (h *VerificationHandler) CreateVerification(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req ledgerSvc.CreateVerificationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.service.CreateVerification(r.Context(), userID, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, item)
}

// GetVerification retrieves a single verification
// GET /api/verifications/{id}
func (h *VerificationHandler) GetVerification(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.service.GetVerification(r.Context(), userID, id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// UpdateVerification applies a partial update to a verification
// PATCH /api/verifications/{id}
func (h *VerificationHandler) UpdateVerification(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req ledgerSvc.UpdateVerificationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.service.UpdateVerification(r.Context(), userID, id, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// DeleteVerification deletes a verification
// DELETE /api/verifications/{id}
func (h *VerificationHandler) DeleteVerification(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteVerification(r.Context(), userID, id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}

// ListRows returns the user's verification rows
// GET /api/verification-rows
func (h *VerificationHandler) ListRows(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	items, err := h.service.ListRows(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, items)
}

// CreateRow creates a new verification row
// POST /api/verification-rows
func (h *VerificationHandler) CreateRow(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req ledgerSvc.CreateVerificationRowRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.service.CreateRow(r.Context(), userID, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, item)
}

// GetRow retrieves a single verification row
// GET /api/verification-rows/{id}
func (h *VerificationHandler) GetRow(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.service.GetRow(r.Context(), userID, id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// UpdateRow applies a partial update to a verification row
// PATCH /api/verification-rows/{id}
func (h *VerificationHandler) UpdateRow(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req ledgerSvc.UpdateVerificationRowRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.service.UpdateRow(r.Context(), userID, id, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// DeleteRow deletes a verification row
// DELETE /api/verification-rows/{id}
func (h *VerificationHandler) DeleteRow(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteRow(r.Context(), userID, id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}

// ListAttachments returns the user's verification attachments
// GET /api/verification-attachments
func (h *VerificationHandler) ListAttachments(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	items, err := h.service.ListAttachments(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, items)
}

// CreateAttachment creates a new verification attachment
// POST /api/verification-attachments
func (h *VerificationHandler) CreateAttachment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req ledgerSvc.CreateAttachmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.service.CreateAttachment(r.Context(), userID, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, item)
}

// GetAttachment retrieves a single verification attachment
// GET /api/verification-attachments/{id}
func (h *VerificationHandler) GetAttachment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.service.GetAttachment(r.Context(), userID, id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// UpdateAttachment applies a partial update to a verification attachment
// PATCH /api/verification-attachments/{id}
func (h *VerificationHandler) UpdateAttachment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req ledgerSvc.UpdateAttachmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.service.UpdateAttachment(r.Context(), userID, id, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// DeleteAttachment deletes a verification attachment
// DELETE /api/verification-attachments/{id}
func (h *VerificationHandler) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteAttachment(r.Context(), userID, id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}
