package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"bookkeeper/internal/config"
	"bookkeeper/internal/domain"
	models "bookkeeper/internal/domain/models/ledger"
	"bookkeeper/internal/domain/repositories"
	ledgerRepo "bookkeeper/internal/domain/repositories/ledger"
	ledgerSvc "bookkeeper/internal/domain/services/ledger"
	"bookkeeper/internal/observability"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/text/language"
)

// reparentTxOptions must give every statement a fresh snapshot. The account
// set is read after the per-user advisory lock is granted, so it includes
// every reparent committed while this one waited. A repeatable-read snapshot
// would be fixed at the lock statement, before the wait.
var reparentTxOptions = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

// accountService implements the AccountService interface
type accountService struct {
	accountRepo ledgerRepo.AccountRepository
	txManager   repositories.TransactionManager
	metrics     *observability.Collector
	collation   language.Tag
	logger      *slog.Logger
}

// NewAccountService creates a new account service. collation selects the
// locale used to order siblings in the account tree.
func NewAccountService(
	accountRepo ledgerRepo.AccountRepository,
	txManager repositories.TransactionManager,
	metrics *observability.Collector,
	collation language.Tag,
	logger *slog.Logger,
) ledgerSvc.AccountService {
	return &accountService{
		accountRepo: accountRepo,
		txManager:   txManager,
		metrics:     metrics,
		collation:   collation,
		logger:      logger,
	}
}

// ListAccounts returns the user's flat account list
func (s *accountService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	return s.accountRepo.ListByUser(ctx, userID)
}

// GetAccountTree builds the user's forest and renders it in display order
func (s *accountService) GetAccountTree(ctx context.Context, userID uuid.UUID, req *ledgerSvc.AccountTreeRequest) (*models.AccountTreeView, error) {
	accounts, err := s.accountRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	forest, err := BuildForest(accounts)
	if err != nil {
		s.logger.Error("account tree is inconsistent", "user_id", userID, "error", err)
		return nil, err
	}

	expanded := make(models.ExpandState, len(req.Expanded))
	if req.ExpandAll {
		expanded = ExpandAll(forest)
	}
	for _, id := range req.Expanded {
		expanded[id] = true
	}

	view := &models.AccountTreeView{
		MaxDepth: MaxDepth(forest),
		Rows:     []models.AccountTreeRow{},
	}
	for item := range OrderedTraversal(forest, expanded, s.collation) {
		node := item.Node
		view.Rows = append(view.Rows, models.AccountTreeRow{
			Depth:       item.Depth,
			ID:          node.ID,
			Name:        node.Name,
			Description: node.Description,
			ParentID:    node.ParentAccountID,
			HasChildren: len(node.Children) > 0,
			Expanded:    expanded[node.ID],
		})
	}

	return view, nil
}

// CreateAccount creates a new account, optionally under a parent
func (s *accountService) CreateAccount(ctx context.Context, userID uuid.UUID, req *ledgerSvc.CreateAccountRequest) (*models.Account, error) {
	if err := validateCreateAccount(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// A new account has no descendants, so any existing parent is acyclic
	if req.ParentAccountID != nil {
		if err := s.checkParent(ctx, userID, *req.ParentAccountID); err != nil {
			return nil, err
		}
	}

	account := &models.Account{
		UserID:          userID,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		ParentAccountID: req.ParentAccountID,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("account created",
		"id", account.ID,
		"parent_account_id", account.ParentAccountID,
		"user_id", userID,
	)

	return account, nil
}

// GetAccount retrieves an account owned by the user
func (s *accountService) GetAccount(ctx context.Context, userID uuid.UUID, id int64) (*models.Account, error) {
	return s.accountRepo.GetByID(ctx, id, userID)
}

// UpdateAccount renames and/or reparents an account. A reparent is checked
// against the user's full account set and refused if it would close a cycle.
func (s *accountService) UpdateAccount(ctx context.Context, userID uuid.UUID, id int64, req *ledgerSvc.UpdateAccountRequest) (*models.Account, error) {
	if err := validateUpdateAccount(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	var updated *models.Account
	err := s.txManager.ExecTxWithOptions(ctx, reparentTxOptions, func(ctx context.Context) error {
		if err := s.accountRepo.LockHierarchy(ctx, userID); err != nil {
			return err
		}

		account, err := s.accountRepo.GetByID(ctx, id, userID)
		if err != nil {
			return err
		}

		if req.Name != nil {
			account.Name = strings.TrimSpace(*req.Name)
		}
		account.Description = req.Description.Or(account.Description)

		newParent := req.ParentAccountID.Or(account.ParentAccountID)
		moved := !sameParent(account.ParentAccountID, newParent)
		if moved && newParent != nil {
			if err := s.checkReparent(ctx, userID, id, *newParent); err != nil {
				return err
			}
		}
		account.ParentAccountID = newParent

		if err := s.accountRepo.Update(ctx, account); err != nil {
			return err
		}

		if moved {
			s.metrics.AccountsReparented.Inc()
			s.logger.Info("account reparented",
				"id", account.ID,
				"parent_account_id", account.ParentAccountID,
				"user_id", userID,
			)
		}

		updated = account
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteAccount deletes an account without children or bookings
func (s *accountService) DeleteAccount(ctx context.Context, userID uuid.UUID, id int64) error {
	if err := s.accountRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("account deleted", "id", id, "user_id", userID)
	return nil
}

// checkParent verifies the proposed parent is one of the user's accounts
func (s *accountService) checkParent(ctx context.Context, userID uuid.UUID, parentID int64) error {
	if _, err := s.accountRepo.GetByID(ctx, parentID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.ValidationError{Code: domain.CodeInvalidParent, Message: "invalid parent account"}
		}
		return err
	}
	return nil
}

// checkReparent runs the cycle guard over the user's complete account set.
// Must run inside the hierarchy lock.
func (s *accountService) checkReparent(ctx context.Context, userID uuid.UUID, accountID, parentID int64) error {
	accounts, err := s.accountRepo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	if !containsAccount(accounts, parentID) {
		return &domain.ValidationError{Code: domain.CodeInvalidParent, Message: "invalid parent account"}
	}

	cyclic, err := WouldCreateCycle(accounts, accountID, parentID)
	if err != nil {
		s.logger.Error("cycle check failed",
			"id", accountID,
			"parent_account_id", parentID,
			"user_id", userID,
			"error", err,
		)
		return err
	}

	if cyclic {
		s.metrics.CyclesRejected.Inc()
		s.logger.Info("reparent refused: cyclic account relationship",
			"id", accountID,
			"parent_account_id", parentID,
			"user_id", userID,
		)
		return &domain.ValidationError{Code: domain.CodeCyclicAccount, Message: "cyclic account relationship"}
	}

	return nil
}

func validateCreateAccount(req *ledgerSvc.CreateAccountRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			notBlank,
			validation.Length(1, config.MaxNameLength),
		),
		validation.Field(&req.Description, validation.Length(0, config.MaxDescriptionLength)),
		validation.Field(&req.ParentAccountID, validation.Min(int64(1))),
	)
}

func validateUpdateAccount(req *ledgerSvc.UpdateAccountRequest) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.NilOrNotEmpty,
			notBlank,
			validation.Length(1, config.MaxNameLength),
		),
	)
	if err != nil {
		return err
	}

	if d := req.Description.Value; d != nil && len(*d) > config.MaxDescriptionLength {
		return validation.Errors{"description": fmt.Errorf("the length must be no more than %d", config.MaxDescriptionLength)}
	}
	if p := req.ParentAccountID.Value; p != nil && *p < 1 {
		return validation.Errors{"parentAccountId": errors.New("must be a positive id")}
	}
	return nil
}

func sameParent(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func containsAccount(accounts []models.Account, id int64) bool {
	for i := range accounts {
		if accounts[i].ID == id {
			return true
		}
	}
	return false
}
