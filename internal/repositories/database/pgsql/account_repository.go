package pgsql

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/taxi_coop_backoffice/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const selectAccountFields = `
	account_id, kind, owner_id, balance, last_modified, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func (r *PgxAccountRepository) WithTx(tx pgx.Tx) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: r.bind(tx)}
}

func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:    d.AccountID,
		Kind:         string(d.Kind),
		OwnerID:      d.OwnerID,
		Balance:      d.Balance,
		LastModified: d.LastModified,
		IsActive:     d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:    m.AccountID,
		Kind:         domain.AccountKind(m.Kind),
		OwnerID:      m.OwnerID,
		Balance:      m.Balance,
		LastModified: m.LastModified,
		IsActive:     m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var m models.Account
	if err := row.Scan(
		&m.AccountID,
		&m.Kind,
		&m.OwnerID,
		&m.Balance,
		&m.LastModified,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	acc := toDomainAccount(m)
	return &acc, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, kind, owner_id, balance, last_modified, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		m.AccountID,
		m.Kind,
		m.OwnerID,
		m.Balance,
		m.LastModified,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return translateError(err, "failed to save account %s", m.AccountID)
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + selectAccountFields + ` FROM accounts WHERE account_id = $1;`
	acc, err := scanAccount(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		return nil, translateError(err, "account %s", accountID)
	}
	return acc, nil
}

// FindAccountByIDForUpdate retrieves an account and locks its row until the transaction ends.
// Must be called on a repository bound with WithTx.
func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + selectAccountFields + ` FROM accounts WHERE account_id = $1 FOR UPDATE;`
	acc, err := scanAccount(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		return nil, translateError(err, "lock account %s", accountID)
	}
	return acc, nil
}

func (r *PgxAccountRepository) FindAccountByOwner(ctx context.Context, kind domain.AccountKind, ownerID string) (*domain.Account, error) {
	query := `SELECT ` + selectAccountFields + ` FROM accounts WHERE kind = $1 AND owner_id = $2;`
	acc, err := scanAccount(r.db.QueryRow(ctx, query, string(kind), ownerID))
	if err != nil {
		return nil, translateError(err, "account of %s %s", kind, ownerID)
	}
	return acc, nil
}

// ListAccounts retrieves a page of accounts ordered by creation time.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, filter domain.AccountFilter, limit int, offset int) ([]domain.Account, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.Kind != "" {
		args = append(args, string(filter.Kind))
		conditions = append(conditions, "kind = $"+strconv.Itoa(len(args)))
	}
	if cond := statusCondition(filter.Status); cond != "" {
		conditions = append(conditions, cond)
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + selectAccountFields + ` FROM accounts`)
	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	args = append(args, limit, offset)
	sb.WriteString(" ORDER BY created_at, account_id LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args)))

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, translateError(err, "failed to list accounts")
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan account row")
		}
		accounts = append(accounts, *acc)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating account rows")
	}
	return accounts, nil
}

// UpdateAccountBalance adds delta to the stored balance. The row must already be locked by the caller.
func (r *PgxAccountRepository) UpdateAccountBalance(ctx context.Context, accountID string, delta decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET balance = balance + $2, last_modified = $3, last_updated_at = $4, last_updated_by = $5
		WHERE account_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, accountID, delta, domain.StartOfDay(now), now, userID)
	if err != nil {
		return translateError(err, "failed to update balance of account %s", accountID)
	}
	return expectOneRow(tag, "account %s", accountID)
}

func (r *PgxAccountRepository) DeactivateAccountByOwner(ctx context.Context, kind domain.AccountKind, ownerID string, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE kind = $1 AND owner_id = $2;
	`
	tag, err := r.db.Exec(ctx, query, string(kind), ownerID, now, userID)
	if err != nil {
		return translateError(err, "failed to deactivate account of %s %s", kind, ownerID)
	}
	return expectOneRow(tag, "account of %s %s", kind, ownerID)
}
