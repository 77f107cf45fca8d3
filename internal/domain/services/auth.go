package services

import (
	"context"

	"github.com/google/uuid"
)

// ResourceAuthorizer checks that records referenced by a request belong to
// the requesting user. Ledger rows only carry foreign keys, so without this
// a user could attach rows to another user's accounts or years.
//
// A reference to a record the user does not own is reported as a validation
// error: the caller cannot tell it apart from a record that does not exist.
type ResourceAuthorizer interface {
	CanUseAccount(ctx context.Context, userID uuid.UUID, accountID int64) error
	CanUseBankAccount(ctx context.Context, userID uuid.UUID, bankAccountID int64) error
	CanUseOperationalYear(ctx context.Context, userID uuid.UUID, yearID int64) error
	CanUseTransaction(ctx context.Context, userID uuid.UUID, transactionID int64) error
	CanUseVerification(ctx context.Context, userID uuid.UUID, verificationID int64) error
}
