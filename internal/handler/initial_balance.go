package handler

import (
	"log/slog"
	"net/http"

	ledgerSvc "bookkeeper/internal/domain/services/ledger"
	"bookkeeper/internal/httputil"

	"github.com/google/uuid"
)

// InitialBalanceHandler handles initial balance HTTP requests
type InitialBalanceHandler struct {
	service ledgerSvc.InitialBalanceService
	logger  *slog.Logger
}

// NewInitialBalanceHandler creates a new initial balance handler
func NewInitialBalanceHandler(service ledgerSvc.InitialBalanceService, logger *slog.Logger) *InitialBalanceHandler {
	return &InitialBalanceHandler{
		service: service,
		logger:  logger,
	}
}

// ListAccountInitials returns the user's account initials
// GET /api/operational-year-account-initials
func (h *InitialBalanceHandler) ListAccountInitials(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	items, err := h.service.ListAccountInitials(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, items)
}

// CreateAccountInitial creates a new account initial
// POST /api/operational-year-account-initials
func (h *InitialBalanceHandler) CreateAccountInitial(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req ledgerSvc.CreateAccountInitialRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.service.CreateAccountInitial(r.Context(), userID, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, item)
}

// GetAccountInitial retrieves a single account initial
// GET /api/operational-year-account-initials/{id}
func (h *InitialBalanceHandler) GetAccountInitial(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.service.GetAccountInitial(r.Context(), userID, id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// UpdateAccountInitial applies a partial update to a account initial
// PATCH /api/operational-year-account-initials/{id}
func (h *InitialBalanceHandler) UpdateAccountInitial(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req ledgerSvc.UpdateAccountInitialRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.service.UpdateAccountInitial(r.Context(), userID, id, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// DeleteAccountInitial deletes a account initial
// DELETE /api/operational-year-account-initials/{id}
func (h *InitialBalanceHandler) DeleteAccountInitial(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteAccountInitial(r.Context(), userID, id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}

// ListBankAccountInitials returns the user's bank account initials
// GET /api/operational-year-bank-account-initials
func (h *InitialBalanceHandler) ListBankAccountInitials(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	items, err := h.service.ListBankAccountInitials(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, items)
}

// CreateBankAccountInitial creates a new bank account initial
// POST /api/operational-year-bank-account-initials
func (h *InitialBalanceHandler) CreateBankAccountInitial(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req ledgerSvc.CreateBankAccountInitialRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.service.CreateBankAccountInitial(r.Context(), userID, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, item)
}

// GetBankAccountInitial retrieves a single bank account initial
// GET /api/operational-year-bank-account-initials/{id}
func (h *InitialBalanceHandler) GetBankAccountInitial(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.service.GetBankAccountInitial(r.Context(), userID, id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// UpdateBankAccountInitial applies a partial update to a bank account initial
// PATCH /api/operational-year-bank-account-initials/{id}
func (h *InitialBalanceHandler) UpdateBankAccountInitial(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req ledgerSvc.UpdateBankAccountInitialRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.service.UpdateBankAccountInitial(r.Context(), userID, id, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// DeleteBankAccountInitial deletes a bank account initial
// DELETE /api/operational-year-bank-account-initials/{id}
func (h *InitialBalanceHandler) DeleteBankAccountInitial(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteBankAccountInitial(r.Context(), userID, id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}

// FindAccountInitial looks up an opening balance by year and account
// GET /api/operational-year-account-initials/{operationalYearId}/{accountId}
func (h *InitialBalanceHandler) FindAccountInitial(w http.ResponseWriter, r *http.Request) {
	userID, yearID, accountID, ok := yearAndRecord(w, r, "accountId")
	if !ok {
		return
	}

	item, err := h.service.FindAccountInitial(r.Context(), userID, yearID, accountID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// UpdateAccountInitialByYear updates the opening balance found by year and account
// PATCH /api/operational-year-account-initials/{operationalYearId}/{accountId}
func (h *InitialBalanceHandler) UpdateAccountInitialByYear(w http.ResponseWriter, r *http.Request) {
	userID, yearID, accountID, ok := yearAndRecord(w, r, "accountId")
	if !ok {
		return
	}

	var req ledgerSvc.UpdateAccountInitialRequest
	if !decodeBody(w, r, &req) {
		return
	}

	existing, err := h.service.FindAccountInitial(r.Context(), userID, yearID, accountID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	item, err := h.service.UpdateAccountInitial(r.Context(), userID, existing.ID, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// DeleteAccountInitialByYear deletes the opening balance found by year and account
// DELETE /api/operational-year-account-initials/{operationalYearId}/{accountId}
func (h *InitialBalanceHandler) DeleteAccountInitialByYear(w http.ResponseWriter, r *http.Request) {
	userID, yearID, accountID, ok := yearAndRecord(w, r, "accountId")
	if !ok {
		return
	}

	existing, err := h.service.FindAccountInitial(r.Context(), userID, yearID, accountID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := h.service.DeleteAccountInitial(r.Context(), userID, existing.ID); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}

// FindBankAccountInitial looks up an opening balance by year and bank account
// GET /api/operational-year-bank-account-initials/{operationalYearId}/{bankAccountId}
func (h *InitialBalanceHandler) FindBankAccountInitial(w http.ResponseWriter, r *http.Request) {
	userID, yearID, bankAccountID, ok := yearAndRecord(w, r, "bankAccountId")
	if !ok {
		return
	}

	item, err := h.service.FindBankAccountInitial(r.Context(), userID, yearID, bankAccountID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// UpdateBankAccountInitialByYear updates the opening balance found by year and bank account
// PATCH /api/operational-year-bank-account-initials/{operationalYearId}/{bankAccountId}
func (h *InitialBalanceHandler) UpdateBankAccountInitialByYear(w http.ResponseWriter, r *http.Request) {
	userID, yearID, bankAccountID, ok := yearAndRecord(w, r, "bankAccountId")
	if !ok {
		return
	}

	var req ledgerSvc.UpdateBankAccountInitialRequest
	if !decodeBody(w, r, &req) {
		return
	}

	existing, err := h.service.FindBankAccountInitial(r.Context(), userID, yearID, bankAccountID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	item, err := h.service.UpdateBankAccountInitial(r.Context(), userID, existing.ID, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// DeleteBankAccountInitialByYear deletes the opening balance found by year and bank account
// DELETE /api/operational-year-bank-account-initials/{operationalYearId}/{bankAccountId}
func (h *InitialBalanceHandler) DeleteBankAccountInitialByYear(w http.ResponseWriter, r *http.Request) {
	userID, yearID, bankAccountID, ok := yearAndRecord(w, r, "bankAccountId")
	if !ok {
		return
	}

	existing, err := h.service.FindBankAccountInitial(r.Context(), userID, yearID, bankAccountID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := h.service.DeleteBankAccountInitial(r.Context(), userID, existing.ID); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}

// yearAndRecord resolves the user plus the {operationalYearId} and record path parameters
func yearAndRecord(w http.ResponseWriter, r *http.Request, recordParam string) (uuid.UUID, int64, int64, bool) {
	userID, ok := requireUser(w, r)
	if !ok {
		return uuid.Nil, 0, 0, false
	}
	yearID, ok := pathID(w, r, "operationalYearId")
	if !ok {
		return uuid.Nil, 0, 0, false
	}
	recordID, ok := pathID(w, r, recordParam)
	if !ok {
		return uuid.Nil, 0, 0, false
	}
	return userID, yearID, recordID, true
}
