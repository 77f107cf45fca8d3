package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountInitial is the opening balance of an account for an operational year.
type AccountInitial struct {
	ID                int64           `json:"id" db:"id"`
	UserID            uuid.UUID       `json:"userId" db:"user_id"`
	AccountID         int64           `json:"accountId" db:"account_id"`
	OperationalYearID int64           `json:"operationalYearId" db:"operational_year_id"`
	InitialValue      decimal.Decimal `json:"initialValue" db:"initial_value"`
	CreatedAt         time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time       `json:"updatedAt" db:"updated_at"`
}

// BankAccountInitial is the opening balance of a bank account for an operational year.
type BankAccountInitial struct {
	ID                int64           `json:"id" db:"id"`
	UserID            uuid.UUID       `json:"userId" db:"user_id"`
	BankAccountID     int64           `json:"bankAccountId" db:"bank_account_id"`
	OperationalYearID int64           `json:"operationalYearId" db:"operational_year_id"`
	InitialValue      decimal.Decimal `json:"initialValue" db:"initial_value"`
	CreatedAt         time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time       `json:"updatedAt" db:"updated_at"`
}
