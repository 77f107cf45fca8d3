package ledger

import (
	"context"

	models "bookkeeper/internal/domain/models/ledger"
	"bookkeeper/internal/httputil"

	"github.com/google/uuid"
)

// AccountService handles chart-of-accounts business logic
type AccountService interface {
	// ListAccounts returns the user's flat account list
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]models.Account, error)

	// GetAccountTree builds the forest and returns rows in display order
	GetAccountTree(ctx context.Context, userID uuid.UUID, req *AccountTreeRequest) (*models.AccountTreeView, error)

	CreateAccount(ctx context.Context, userID uuid.UUID, req *CreateAccountRequest) (*models.Account, error)
	GetAccount(ctx context.Context, userID uuid.UUID, id int64) (*models.Account, error)

	// UpdateAccount renames and/or reparents; reparenting is refused when it
	// would introduce a cycle
	UpdateAccount(ctx context.Context, userID uuid.UUID, id int64, req *UpdateAccountRequest) (*models.Account, error)

	DeleteAccount(ctx context.Context, userID uuid.UUID, id int64) error
}

// CreateAccountRequest represents an account creation request
type CreateAccountRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	ParentAccountID *int64  `json:"parentAccountId,omitempty"` // null for root
}

// UpdateAccountRequest represents an account update request
type UpdateAccountRequest struct {
	Name            *string                 `json:"name,omitempty"`
	Description     httputil.OptionalString `json:"description"`
	ParentAccountID httputil.OptionalInt64  `json:"parentAccountId"` // null moves to root
}

// AccountTreeRequest selects which nodes are expanded
type AccountTreeRequest struct {
	Expanded  []int64
	ExpandAll bool
}
