package handler

import (
	"log/slog"
	"net/http"

	ledgerSvc "bookkeeper/internal/domain/services/ledger"
	"bookkeeper/internal/httputil"
)

// BankAccountHandler handles bank account HTTP requests
type BankAccountHandler struct {
	service ledgerSvc.BankAccountService
	logger  *slog.Logger
}

// NewBankAccountHandler creates a new bank account handler
func NewBankAccountHandler(service ledgerSvc.BankAccountService, logger *slog.Logger) *BankAccountHandler {
	return &BankAccountHandler{
		service: service,
		logger:  logger,
	}
}

// ListBankAccounts returns the user's bank accounts
// GET /api/bank-accounts
func (h *BankAccountHandler) ListBankAccounts(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	items, err := h.service.ListBankAccounts(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, items)
}

// CreateBankAccount creates a new bank account
// POST /api/bank-accounts
func (h *BankAccountHandler) CreateBankAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req ledgerSvc.CreateBankAccountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.service.CreateBankAccount(r.Context(), userID, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, item)
}

// GetBankAccount retrieves a single bank account
// GET /api/bank-accounts/{id}
func (h *BankAccountHandler) GetBankAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.service.GetBankAccount(r.Context(), userID, id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// UpdateBankAccount applies a partial update to a bank account
// PATCH /api/bank-accounts/{id}
func (h *BankAccountHandler) UpdateBankAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req ledgerSvc.UpdateBankAccountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.service.UpdateBankAccount(r.Context(), userID, id, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// DeleteBankAccount deletes a bank account
// DELETE /api/bank-accounts/{id}
func (h *BankAccountHandler) DeleteBankAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteBankAccount(r.Context(), userID, id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}
