package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Account is a node in a user's chart of accounts.
// ParentAccountID nil means the account is a root.
type Account struct {
	ID              int64     `json:"id" db:"id"`
	UserID          uuid.UUID `json:"userId" db:"user_id"`
	Name            string    `json:"name" db:"name"`
	Description     *string   `json:"description" db:"description"`
	ParentAccountID *int64    `json:"parentAccountId" db:"parent_account_id"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// IsRoot reports whether the account has no parent.
func (a *Account) IsRoot() bool {
	return a.ParentAccountID == nil
}
