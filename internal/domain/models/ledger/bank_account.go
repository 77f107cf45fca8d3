package ledger

import (
	"time"

	"github.com/google/uuid"
)

// BankAccount is a real-world bank account that transactions are imported from.
type BankAccount struct {
	ID             int64     `json:"id" db:"id"`
	UserID         uuid.UUID `json:"userId" db:"user_id"`
	Name           string    `json:"name" db:"name"`
	Bank           string    `json:"bank" db:"bank"`
	ClearingNumber int       `json:"clearingNumber" db:"clearing_nr"`
	AccountNumber  int64     `json:"accountNumber" db:"account_nr"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
