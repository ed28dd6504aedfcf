package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/taxi_coop_backoffice/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const selectCashRegisterFields = `cash_register_id, amount, is_active, last_updated_at, last_updated_by`

// PgxCashRegisterRepository stores the single cash_register row. The singleton column is unique,
// so concurrent get-or-create calls converge on one row.
type PgxCashRegisterRepository struct {
	BaseRepository
}

func newPgxCashRegisterRepository(pool *pgxpool.Pool) *PgxCashRegisterRepository {
	return &PgxCashRegisterRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.CashRegisterRepositoryFacade = (*PgxCashRegisterRepository)(nil)

func (r *PgxCashRegisterRepository) WithTx(tx pgx.Tx) portsrepo.CashRegisterRepositoryFacade {
	return &PgxCashRegisterRepository{BaseRepository: r.bind(tx)}
}

func scanCashRegister(row pgx.Row) (*domain.CashRegister, error) {
	var m models.CashRegister
	if err := row.Scan(&m.CashRegisterID, &m.Amount, &m.IsActive, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
		return nil, err
	}
	register := &domain.CashRegister{
		CashRegisterID: m.CashRegisterID,
		Amount:         m.Amount,
		IsActive:       m.IsActive,
		LastUpdatedAt:  m.LastUpdatedAt,
	}
	if m.LastUpdatedBy != nil {
		register.LastUpdatedBy = *m.LastUpdatedBy
	}
	return register, nil
}

func (r *PgxCashRegisterRepository) GetOrCreateCashRegister(ctx context.Context, now time.Time) (*domain.CashRegister, error) {
	insert := `
		INSERT INTO cash_register (cash_register_id, amount, is_active, last_updated_at)
		VALUES ($1, 0, TRUE, $2)
		ON CONFLICT (singleton) DO NOTHING;
	`
	if _, err := r.db.Exec(ctx, insert, uuid.NewString(), now); err != nil {
		return nil, translateError(err, "failed to create cash register")
	}

	register, err := scanCashRegister(r.db.QueryRow(ctx, `SELECT `+selectCashRegisterFields+` FROM cash_register WHERE singleton;`))
	if err != nil {
		return nil, translateError(err, "cash register")
	}
	return register, nil
}

func (r *PgxCashRegisterRepository) FindCashRegisterForUpdate(ctx context.Context) (*domain.CashRegister, error) {
	register, err := scanCashRegister(r.db.QueryRow(ctx, `SELECT `+selectCashRegisterFields+` FROM cash_register WHERE singleton FOR UPDATE;`))
	if err != nil {
		return nil, translateError(err, "lock cash register")
	}
	return register, nil
}

func (r *PgxCashRegisterRepository) AddToCashRegister(ctx context.Context, cashRegisterID string, delta decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE cash_register
		SET amount = amount + $2, last_updated_at = $3, last_updated_by = $4
		WHERE cash_register_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, cashRegisterID, delta, now, userID)
	if err != nil {
		return translateError(err, "failed to update cash register %s", cashRegisterID)
	}
	return expectOneRow(tag, "cash register %s", cashRegisterID)
}

func (r *PgxCashRegisterRepository) SetCashRegisterAmount(ctx context.Context, cashRegisterID string, amount decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE cash_register
		SET amount = $2, last_updated_at = $3, last_updated_by = $4
		WHERE cash_register_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, cashRegisterID, amount, now, userID)
	if err != nil {
		return translateError(err, "failed to set cash register %s", cashRegisterID)
	}
	return expectOneRow(tag, "cash register %s", cashRegisterID)
}
