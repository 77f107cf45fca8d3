package ledger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"bookkeeper/internal/domain"
	models "bookkeeper/internal/domain/models/ledger"
	"bookkeeper/internal/domain/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeTxManager runs fn inline and records the options it was asked for.
// Functions registered with onTxEnd run when fn returns, the way Postgres
// releases transaction-scoped locks at commit or rollback.
type fakeTxManager struct {
	mu      sync.Mutex
	calls   int
	options []pgx.TxOptions
}

type fakeTxKey struct{}

type fakeTx struct {
	onEnd []func()
}

func (m *fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return m.ExecTxWithOptions(ctx, pgx.TxOptions{}, fn)
}

func (m *fakeTxManager) ExecTxWithOptions(ctx context.Context, opts pgx.TxOptions, fn repositories.TxFn) error {
	m.mu.Lock()
	m.calls++
	m.options = append(m.options, opts)
	m.mu.Unlock()

	tx := &fakeTx{}
	defer func() {
		for _, release := range tx.onEnd {
			release()
		}
	}()
	return fn(context.WithValue(ctx, fakeTxKey{}, tx))
}

// onTxEnd defers f to the end of the transaction in ctx
func onTxEnd(ctx context.Context, f func()) bool {
	tx, ok := ctx.Value(fakeTxKey{}).(*fakeTx)
	if !ok {
		return false
	}
	tx.onEnd = append(tx.onEnd, f)
	return true
}

// memStore is a user-scoped in-memory table keyed by serial id.
type memStore[T any] struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*T
	id     func(*T) *int64
	owner  func(*T) uuid.UUID
	label  string
}

func newMemStore[T any](label string, id func(*T) *int64, owner func(*T) uuid.UUID) *memStore[T] {
	return &memStore[T]{rows: map[int64]*T{}, id: id, owner: owner, label: label}
}

func (s *memStore[T]) Create(_ context.Context, v *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	*s.id(v) = s.nextID
	cp := *v
	s.rows[s.nextID] = &cp
	return nil
}

func (s *memStore[T]) GetByID(_ context.Context, id int64, userID uuid.UUID) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.rows[id]
	if !ok || s.owner(v) != userID {
		return nil, fmt.Errorf("%s %d: %w", s.label, id, domain.ErrNotFound)
	}
	cp := *v
	return &cp, nil
}

func (s *memStore[T]) ListByUser(_ context.Context, userID uuid.UUID) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := []T{}
	for _, id := range ids {
		if v := s.rows[id]; s.owner(v) == userID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (s *memStore[T]) Update(_ context.Context, v *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := *s.id(v)
	existing, ok := s.rows[id]
	if !ok || s.owner(existing) != s.owner(v) {
		return fmt.Errorf("%s %d: %w", s.label, id, domain.ErrNotFound)
	}
	cp := *v
	s.rows[id] = &cp
	return nil
}

func (s *memStore[T]) Delete(_ context.Context, id int64, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.rows[id]
	if !ok || s.owner(v) != userID {
		return fmt.Errorf("%s %d: %w", s.label, id, domain.ErrNotFound)
	}
	delete(s.rows, id)
	return nil
}

// put stores v under its own id, bypassing the serial counter.
func (s *memStore[T]) put(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := *s.id(&v)
	s.rows[id] = &v
	s.nextID = max(s.nextID, id)
}

// fakeAccountRepo holds a real per-user lock until the surrounding fake
// transaction ends and logs the order of lock, read and write calls.
type fakeAccountRepo struct {
	*memStore[models.Account]

	mu        sync.Mutex
	locked    []uuid.UUID
	calls     []string
	hierarchy map[uuid.UUID]*sync.Mutex

	// afterList runs between the guard's read and the write
	afterList func()
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		memStore: newMemStore("account",
			func(a *models.Account) *int64 { return &a.ID },
			func(a *models.Account) uuid.UUID { return a.UserID },
		),
		hierarchy: map[uuid.UUID]*sync.Mutex{},
	}
}

func (r *fakeAccountRepo) record(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *fakeAccountRepo) callLog() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

func (r *fakeAccountRepo) LockHierarchy(ctx context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	lock, ok := r.hierarchy[userID]
	if !ok {
		lock = &sync.Mutex{}
		r.hierarchy[userID] = lock
	}
	r.mu.Unlock()

	lock.Lock()
	if !onTxEnd(ctx, lock.Unlock) {
		lock.Unlock()
		return fmt.Errorf("lock account hierarchy: no transaction in context")
	}

	r.mu.Lock()
	r.locked = append(r.locked, userID)
	r.calls = append(r.calls, "lock")
	r.mu.Unlock()
	return nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.Account, error) {
	r.record("get")
	return r.memStore.GetByID(ctx, id, userID)
}

func (r *fakeAccountRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	r.record("list")
	accounts, err := r.memStore.ListByUser(ctx, userID)
	if r.afterList != nil {
		r.afterList()
	}
	return accounts, err
}

func (r *fakeAccountRepo) Update(ctx context.Context, a *models.Account) error {
	r.record("update")
	return r.memStore.Update(ctx, a)
}

func newFakeBankAccountRepo() *memStore[models.BankAccount] {
	return newMemStore("bank account",
		func(b *models.BankAccount) *int64 { return &b.ID },
		func(b *models.BankAccount) uuid.UUID { return b.UserID },
	)
}

func newFakeYearRepo() *memStore[models.OperationalYear] {
	return newMemStore("operational year",
		func(y *models.OperationalYear) *int64 { return &y.ID },
		func(y *models.OperationalYear) uuid.UUID { return y.UserID },
	)
}

func newFakeTransactionRepo() *memStore[models.Transaction] {
	return newMemStore("transaction",
		func(t *models.Transaction) *int64 { return &t.ID },
		func(t *models.Transaction) uuid.UUID { return t.UserID },
	)
}

func newFakeVerificationRepo() *memStore[models.Verification] {
	return newMemStore("verification",
		func(v *models.Verification) *int64 { return &v.ID },
		func(v *models.Verification) uuid.UUID { return v.UserID },
	)
}

func newFakeRowRepo() *memStore[models.VerificationRow] {
	return newMemStore("verification row",
		func(r *models.VerificationRow) *int64 { return &r.ID },
		func(r *models.VerificationRow) uuid.UUID { return r.UserID },
	)
}

func newFakeAttachmentRepo() *memStore[models.VerificationAttachment] {
	return newMemStore("verification attachment",
		func(a *models.VerificationAttachment) *int64 { return &a.ID },
		func(a *models.VerificationAttachment) uuid.UUID { return a.UserID },
	)
}

type fakeAccountInitialRepo struct {
	*memStore[models.AccountInitial]
}

func newFakeAccountInitialRepo() *fakeAccountInitialRepo {
	return &fakeAccountInitialRepo{newMemStore("account initial",
		func(i *models.AccountInitial) *int64 { return &i.ID },
		func(i *models.AccountInitial) uuid.UUID { return i.UserID },
	)}
}

func (r *fakeAccountInitialRepo) GetByYearAndAccount(ctx context.Context, userID uuid.UUID, yearID, accountID int64) (*models.AccountInitial, error) {
	all, _ := r.ListByUser(ctx, userID)
	for _, i := range all {
		if i.OperationalYearID == yearID && i.AccountID == accountID {
			return &i, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeBankAccountInitialRepo struct {
	*memStore[models.BankAccountInitial]
}

func newFakeBankAccountInitialRepo() *fakeBankAccountInitialRepo {
	return &fakeBankAccountInitialRepo{newMemStore("bank account initial",
		func(i *models.BankAccountInitial) *int64 { return &i.ID },
		func(i *models.BankAccountInitial) uuid.UUID { return i.UserID },
	)}
}

func (r *fakeBankAccountInitialRepo) GetByYearAndBankAccount(ctx context.Context, userID uuid.UUID, yearID, bankAccountID int64) (*models.BankAccountInitial, error) {
	all, _ := r.ListByUser(ctx, userID)
	for _, i := range all {
		if i.OperationalYearID == yearID && i.BankAccountID == bankAccountID {
			return &i, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.Username]; ok {
		return &domain.ConflictError{Message: "username taken", ResourceType: "user"}
	}
	user.ID = uuid.New()
	cp := *user
	r.users[user.Username] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user '%s': %w", username, domain.ErrNotFound)
}
