package ledger

import (
	"context"
	"testing"
	"time"

	"bookkeeper/internal/domain"
	models "bookkeeper/internal/domain/models/ledger"
	ledgerSvc "bookkeeper/internal/domain/services/ledger"
	"bookkeeper/internal/httputil"
	"bookkeeper/internal/service/auth"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerFixture struct {
	user     uuid.UUID
	stranger uuid.UUID

	accounts      *fakeAccountRepo
	bankAccounts  *memStore[models.BankAccount]
	years         *memStore[models.OperationalYear]
	transactions  *memStore[models.Transaction]
	verifications *memStore[models.Verification]
	rows          *memStore[models.VerificationRow]
	attachments   *memStore[models.VerificationAttachment]

	authorizer *auth.OwnerBasedAuthorizer
}

// newLedgerFixture seeds, for one user: account 1, bank account 1, year 1,
// transaction 1 and verification 1. The stranger owns id 2 of each.
func newLedgerFixture() *ledgerFixture {
	f := &ledgerFixture{
		user:          uuid.New(),
		stranger:      uuid.New(),
		accounts:      newFakeAccountRepo(),
		bankAccounts:  newFakeBankAccountRepo(),
		years:         newFakeYearRepo(),
		transactions:  newFakeTransactionRepo(),
		verifications: newFakeVerificationRepo(),
		rows:          newFakeRowRepo(),
		attachments:   newFakeAttachmentRepo(),
	}

	for id, owner := range map[int64]uuid.UUID{1: f.user, 2: f.stranger} {
		f.accounts.put(models.Account{ID: id, UserID: owner, Name: "Bank"})
		f.bankAccounts.put(models.BankAccount{ID: id, UserID: owner, Name: "Checking"})
		f.years.put(models.OperationalYear{ID: id, UserID: owner, Name: "2024"})
		f.transactions.put(models.Transaction{ID: id, UserID: owner, OperationalYearID: id, BankAccountID: id})
		f.verifications.put(models.Verification{ID: id, UserID: owner, Name: "V1"})
	}

	f.authorizer = auth.NewOwnerBasedAuthorizer(f.accounts, f.bankAccounts, f.years, f.transactions, f.verifications)
	return f
}

func (f *ledgerFixture) verificationService() ledgerSvc.VerificationService {
	return NewVerificationService(f.verifications, f.rows, f.attachments, f.authorizer, discardLogger())
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateRow(t *testing.T) {
	f := newLedgerFixture()
	svc := f.verificationService()

	row, err := svc.CreateRow(context.Background(), f.user, &ledgerSvc.CreateVerificationRowRequest{
		VerificationID:    1,
		AccountID:         1,
		OperationalYearID: 1,
		TransactionID:     ptr[int64](1),
		Debit:             dec("125.50"),
	})

	require.NoError(t, err)
	assert.True(t, row.Debit.Equal(decimal.RequireFromString("125.5")))
	assert.True(t, row.Credit.IsZero())
}

func TestCreateRow_AmountRules(t *testing.T) {
	tests := []struct {
		name          string
		debit, credit *decimal.Decimal
		wantErr       bool
	}{
		{"debit only", dec("10"), nil, false},
		{"credit only", nil, dec("10"), false},
		{"both given", dec("10"), dec("5"), false},
		{"neither", nil, nil, true},
		{"both zero", dec("0"), dec("0.00"), true},
		{"negative debit", dec("-1"), nil, true},
		{"negative credit", dec("5"), dec("-5"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLedgerFixture()
			_, err := f.verificationService().CreateRow(context.Background(), f.user, &ledgerSvc.CreateVerificationRowRequest{
				VerificationID:    1,
				AccountID:         1,
				OperationalYearID: 1,
				Debit:             tt.debit,
				Credit:            tt.credit,
			})
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateRow_RejectsForeignReferences(t *testing.T) {
	base := ledgerSvc.CreateVerificationRowRequest{VerificationID: 1, AccountID: 1, OperationalYearID: 1, Credit: dec("1")}

	tests := []struct {
		name   string
		mutate func(*ledgerSvc.CreateVerificationRowRequest)
	}{
		{"verification", func(r *ledgerSvc.CreateVerificationRowRequest) { r.VerificationID = 2 }},
		{"account", func(r *ledgerSvc.CreateVerificationRowRequest) { r.AccountID = 2 }},
		{"operational year", func(r *ledgerSvc.CreateVerificationRowRequest) { r.OperationalYearID = 2 }},
		{"transaction", func(r *ledgerSvc.CreateVerificationRowRequest) { r.TransactionID = ptr[int64](2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLedgerFixture()
			req := base
			tt.mutate(&req)

			_, err := f.verificationService().CreateRow(context.Background(), f.user, &req)

			assert.ErrorIs(t, err, domain.ErrValidation)
			rows, _ := f.rows.ListByUser(context.Background(), f.user)
			assert.Empty(t, rows)
		})
	}
}

func TestUpdateRow_ClearsTransactionAndRechecksAmounts(t *testing.T) {
	f := newLedgerFixture()
	svc := f.verificationService()
	ctx := context.Background()

	row, err := svc.CreateRow(ctx, f.user, &ledgerSvc.CreateVerificationRowRequest{
		VerificationID: 1, AccountID: 1, OperationalYearID: 1, TransactionID: ptr[int64](1), Debit: dec("10"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateRow(ctx, f.user, row.ID, &ledgerSvc.UpdateVerificationRowRequest{
		TransactionID: httputil.Null[int64](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.TransactionID)

	_, err = svc.UpdateRow(ctx, f.user, row.ID, &ledgerSvc.UpdateVerificationRowRequest{Debit: dec("0")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVerification_CRUD(t *testing.T) {
	f := newLedgerFixture()
	svc := f.verificationService()
	ctx := context.Background()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	v, err := svc.CreateVerification(ctx, f.user, &ledgerSvc.CreateVerificationRequest{
		Name:        "Rent",
		Description: ptr("March"),
		Date:        date,
	})
	require.NoError(t, err)

	v, err = svc.UpdateVerification(ctx, f.user, v.ID, &ledgerSvc.UpdateVerificationRequest{
		Description: httputil.Null[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, v.Description)
	assert.Equal(t, "Rent", v.Name)
	assert.Equal(t, date, v.Date)

	require.NoError(t, svc.DeleteVerification(ctx, f.user, v.ID))
	_, err = svc.GetVerification(ctx, f.user, v.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateVerification_RequiresDate(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.verificationService().CreateVerification(context.Background(), f.user, &ledgerSvc.CreateVerificationRequest{Name: "Rent"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAttachments(t *testing.T) {
	f := newLedgerFixture()
	svc := f.verificationService()
	ctx := context.Background()

	_, err := svc.CreateAttachment(ctx, f.user, &ledgerSvc.CreateAttachmentRequest{VerificationID: 2, FilePath: "receipt.pdf"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	a, err := svc.CreateAttachment(ctx, f.user, &ledgerSvc.CreateAttachmentRequest{VerificationID: 1, FilePath: " receipts/2024/rent.pdf "})
	require.NoError(t, err)
	assert.Equal(t, "receipts/2024/rent.pdf", a.FilePath)

	_, err = svc.UpdateAttachment(ctx, f.user, a.ID, &ledgerSvc.UpdateAttachmentRequest{FilePath: ptr("")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	list, err := svc.ListAttachments(ctx, f.user)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	others, err := svc.ListAttachments(ctx, f.stranger)
	require.NoError(t, err)
	assert.Empty(t, others)
}
