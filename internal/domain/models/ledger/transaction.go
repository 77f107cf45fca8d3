package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is one line of a bank statement. Saldo is the running balance
// reported by the bank after the transaction.
type Transaction struct {
	ID                int64           `json:"id" db:"id"`
	UserID            uuid.UUID       `json:"userId" db:"user_id"`
	OperationalYearID int64           `json:"operationalYearId" db:"operational_year_id"`
	BankAccountID     int64           `json:"bankAccountId" db:"bank_account_id"`
	Date              time.Time       `json:"date" db:"date"`
	Amount            decimal.Decimal `json:"amount" db:"amount"`
	Saldo             decimal.Decimal `json:"saldo" db:"saldo"`
	Text              string          `json:"text" db:"text"`
	CreatedAt         time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time       `json:"updatedAt" db:"updated_at"`
}
