package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Verification is a journal entry. Its rows carry the debits and credits.
type Verification struct {
	ID          int64     `json:"id" db:"id"`
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Date        time.Time `json:"date" db:"date"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// VerificationRow books a debit or credit against an account.
type VerificationRow struct {
	ID                int64           `json:"id" db:"id"`
	UserID            uuid.UUID       `json:"userId" db:"user_id"`
	VerificationID    int64           `json:"verificationId" db:"verification_id"`
	AccountID         int64           `json:"accountId" db:"account_id"`
	OperationalYearID int64           `json:"operationalYearId" db:"operational_year_id"`
	TransactionID     *int64          `json:"transactionId" db:"transaction_id"`
	Debit             decimal.Decimal `json:"debit" db:"debit"`
	Credit            decimal.Decimal `json:"credit" db:"credit"`
	CreatedAt         time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time       `json:"updatedAt" db:"updated_at"`
}

// VerificationAttachment points at a stored receipt or document.
type VerificationAttachment struct {
	ID             int64     `json:"id" db:"id"`
	UserID         uuid.UUID `json:"userId" db:"user_id"`
	VerificationID int64     `json:"verificationId" db:"verification_id"`
	FilePath       string    `json:"filePath" db:"file_path"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
