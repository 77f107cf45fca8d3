package ledger

import (
	"time"

	"github.com/google/uuid"
)

// OperationalYear is a fiscal year. Initial balances, transactions and
// verification rows are grouped by it.
type OperationalYear struct {
	ID        int64     `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	StartDate time.Time `json:"startDate" db:"start_date"`
	EndDate   time.Time `json:"endDate" db:"end_date"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Contains reports whether t falls within the year, both ends inclusive.
func (y *OperationalYear) Contains(t time.Time) bool {
	return !t.Before(y.StartDate) && !t.After(y.EndDate)
}
