package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByOwner retrieves the account of a member, subscriber or vehicle.
	FindAccountByOwner(ctx context.Context, kind domain.AccountKind, ownerID string) (*domain.Account, error)

	// ListAccounts retrieves a page of accounts ordered by creation time.
	ListAccounts(ctx context.Context, filter domain.AccountFilter, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccountByOwner marks the owner's account as inactive.
	DeactivateAccountByOwner(ctx context.Context, kind domain.AccountKind, ownerID string, userID string, now time.Time) error
}

// AccountBalanceSupport is used by the balance engine inside a transaction.
type AccountBalanceSupport interface {
	// FindAccountByIDForUpdate selects the account and locks its row.
	FindAccountByIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error)

	// UpdateAccountBalance adds delta to the balance and stamps last_modified.
	UpdateAccountBalance(ctx context.Context, accountID string, delta decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountBalanceSupport

	// WithTx returns a repository bound to tx.
	WithTx(tx pgx.Tx) AccountRepositoryFacade
}
