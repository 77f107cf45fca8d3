package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	ledgerSvc "bookkeeper/internal/domain/services/ledger"
	"bookkeeper/internal/httputil"
)

// AccountHandler handles chart-of-accounts HTTP requests
type AccountHandler struct {
	service ledgerSvc.AccountService
	logger  *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(service ledgerSvc.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		service: service,
		logger:  logger,
	}
}

// ListAccounts returns the user's accounts as a flat list
// GET /api/accounts
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	accounts, err := h.service.ListAccounts(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, accounts)
}

// GetAccountTree returns the account tree as display rows
// GET /api/accounts/tree?expanded=1,2,3&all=true
func (h *AccountHandler) GetAccountTree(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	req, err := parseTreeQuery(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.service.GetAccountTree(r.Context(), userID, req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, view)
}

// CreateAccount creates a new account
// POST /api/accounts
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req ledgerSvc.CreateAccountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	account, err := h.service.CreateAccount(r.Context(), userID, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, account)
}

// GetAccount retrieves a single account
// GET /api/accounts/{id}
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	account, err := h.service.GetAccount(r.Context(), userID, id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, account)
}

// UpdateAccount renames and/or moves an account
// PATCH /api/accounts/{id}
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req ledgerSvc.UpdateAccountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	account, err := h.service.UpdateAccount(r.Context(), userID, id, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, account)
}

// DeleteAccount deletes an account
// DELETE /api/accounts/{id}
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteAccount(r.Context(), userID, id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}

// parseTreeQuery reads the comma-separated expanded ids and the all flag
func parseTreeQuery(r *http.Request) (*ledgerSvc.AccountTreeRequest, error) {
	q := r.URL.Query()
	req := &ledgerSvc.AccountTreeRequest{}

	if all := q.Get("all"); all != "" {
		expandAll, err := strconv.ParseBool(all)
		if err != nil {
			return nil, errInvalidQuery("all")
		}
		req.ExpandAll = expandAll
	}

	for _, raw := range q["expanded"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, errInvalidQuery("expanded")
			}
			req.Expanded = append(req.Expanded, id)
		}
	}

	return req, nil
}

type errInvalidQuery string

func (e errInvalidQuery) Error() string { return "invalid query parameter: " + string(e) }
