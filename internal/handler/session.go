package handler

import (
	"log/slog"
	"net/http"

	ledgerSvc "bookkeeper/internal/domain/services/ledger"
	"bookkeeper/internal/httputil"
)

// SessionHandler exchanges credentials for session tokens
type SessionHandler struct {
	service ledgerSvc.SessionService
	logger  *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service ledgerSvc.SessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		logger:  logger,
	}
}

// CreateSession logs a user in
// POST /api/session
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req ledgerSvc.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	session, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, session)
}
