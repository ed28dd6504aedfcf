package pgsql

import (
	"context"
	"strconv"
	"strings"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/taxi_coop_backoffice/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	cashMovementsTable    = "cash_movements"
	nonCashMovementsTable = "non_cash_movements"

	movementBaseFields = `
	movement_id, account_kind, account_id, description, amount, movement_date, movement_type, is_income`
	movementAuditFields = `
	is_active, created_at, created_by, last_updated_at, last_updated_by`
)

// PgxMovementRepository stores one kind of movement. Cash and non-cash movements live in
// separate tables; only the cash table carries cash_register_id.
type PgxMovementRepository struct {
	BaseRepository
	kind  domain.MovementKind
	table string
}

func newPgxMovementRepository(pool *pgxpool.Pool, kind domain.MovementKind) *PgxMovementRepository {
	table := nonCashMovementsTable
	if kind == domain.MovementKindCash {
		table = cashMovementsTable
	}
	return &PgxMovementRepository{BaseRepository: newBaseRepository(pool), kind: kind, table: table}
}

var _ portsrepo.MovementRepositoryFacade = (*PgxMovementRepository)(nil)

func (r *PgxMovementRepository) Kind() domain.MovementKind {
	return r.kind
}

func (r *PgxMovementRepository) WithTx(tx pgx.Tx) portsrepo.MovementRepositoryFacade {
	return &PgxMovementRepository{BaseRepository: r.bind(tx), kind: r.kind, table: r.table}
}

func (r *PgxMovementRepository) isCash() bool {
	return r.kind == domain.MovementKindCash
}

// selectFields keeps the scan layout identical for both tables.
func (r *PgxMovementRepository) selectFields() string {
	register := "NULL::text"
	if r.isCash() {
		register = "cash_register_id::text"
	}
	return movementBaseFields + ", " + register + "," + movementAuditFields
}

func toModelMovement(d domain.Movement) models.Movement {
	m := models.Movement{
		MovementID:   d.MovementID,
		Description:  d.Description,
		Amount:       d.Amount,
		MovementDate: d.Date,
		MovementType: string(d.Type),
		IsIncome:     d.IsIncome,
		IsActive:     d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if !d.Account.IsNone() {
		kind, id := string(d.Account.Kind), d.Account.AccountID
		m.AccountKind, m.AccountID = &kind, &id
	}
	if d.CashRegisterID != "" {
		id := d.CashRegisterID
		m.CashRegisterID = &id
	}
	return m
}

func toDomainMovement(m models.Movement, kind domain.MovementKind) domain.Movement {
	d := domain.Movement{
		MovementID:  m.MovementID,
		Kind:        kind,
		Account:     domain.NoAccount,
		Description: m.Description,
		Amount:      m.Amount,
		Date:        m.MovementDate,
		Type:        domain.MovementType(m.MovementType),
		IsIncome:    m.IsIncome,
		IsActive:    m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.AccountKind != nil && m.AccountID != nil {
		d.Account = domain.AccountRef{Kind: domain.AccountKind(*m.AccountKind), AccountID: *m.AccountID}
	}
	if m.CashRegisterID != nil {
		d.CashRegisterID = *m.CashRegisterID
	}
	return d
}

func (r *PgxMovementRepository) scanMovement(row pgx.Row) (*domain.Movement, error) {
	var m models.Movement
	if err := row.Scan(
		&m.MovementID,
		&m.AccountKind,
		&m.AccountID,
		&m.Description,
		&m.Amount,
		&m.MovementDate,
		&m.MovementType,
		&m.IsIncome,
		&m.CashRegisterID,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	d := toDomainMovement(m, r.kind)
	return &d, nil
}

func (r *PgxMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	m := toModelMovement(movement)
	columns := movementBaseFields + "," + movementAuditFields
	args := []any{
		m.MovementID, m.AccountKind, m.AccountID, m.Description, m.Amount, m.MovementDate, m.MovementType, m.IsIncome,
		m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
	if r.isCash() {
		columns += ", cash_register_id"
		args = append(args, m.CashRegisterID)
	}

	query := `INSERT INTO ` + r.table + ` (` + columns + `) VALUES (` + placeholders(len(args)) + `);`
	_, err := r.db.Exec(ctx, query, args...)
	return translateError(err, "failed to save movement %s", m.MovementID)
}

// UpdateMovement overwrites every mutable column. cash_register_id never changes.
func (r *PgxMovementRepository) UpdateMovement(ctx context.Context, movement domain.Movement) error {
	m := toModelMovement(movement)
	query := `
		UPDATE ` + r.table + `
		SET account_kind = $2, account_id = $3, description = $4, amount = $5, movement_date = $6,
			movement_type = $7, is_income = $8, is_active = $9, last_updated_at = $10, last_updated_by = $11
		WHERE movement_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.MovementID,
		m.AccountKind,
		m.AccountID,
		m.Description,
		m.Amount,
		m.MovementDate,
		m.MovementType,
		m.IsIncome,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "failed to update movement %s", m.MovementID)
	}
	return expectOneRow(tag, "movement %s", m.MovementID)
}

func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	query := `SELECT ` + r.selectFields() + ` FROM ` + r.table + ` WHERE movement_id = $1;`
	movement, err := r.scanMovement(r.db.QueryRow(ctx, query, movementID))
	if err != nil {
		return nil, translateError(err, "movement %s", movementID)
	}
	return movement, nil
}

func (r *PgxMovementRepository) FindMovementByIDForUpdate(ctx context.Context, movementID string) (*domain.Movement, error) {
	query := `SELECT ` + r.selectFields() + ` FROM ` + r.table + ` WHERE movement_id = $1 FOR UPDATE;`
	movement, err := r.scanMovement(r.db.QueryRow(ctx, query, movementID))
	if err != nil {
		return nil, translateError(err, "lock movement %s", movementID)
	}
	return movement, nil
}

func (r *PgxMovementRepository) ListMovements(ctx context.Context, filter domain.MovementFilter) ([]domain.Movement, error) {
	query, args := buildListMovementsQuery(r.table, r.selectFields(), filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "failed to list %s", r.table)
	}
	defer rows.Close()

	movements := []domain.Movement{}
	for rows.Next() {
		movement, err := r.scanMovement(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan movement row")
		}
		movements = append(movements, *movement)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating movement rows")
	}
	return movements, nil
}

// buildListMovementsQuery renders a keyset-paginated listing, newest first.
func buildListMovementsQuery(table, fields string, filter domain.MovementFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if cond := statusCondition(filter.Status); cond != "" {
		conditions = append(conditions, cond)
	}
	if filter.AccountID != "" {
		conditions = append(conditions, "account_id = "+next(filter.AccountID))
	}
	if filter.From != nil {
		conditions = append(conditions, "movement_date >= "+next(*filter.From))
	}
	if filter.To != nil {
		conditions = append(conditions, "movement_date <= "+next(*filter.To))
	}
	if !filter.AfterDate.IsZero() {
		date := next(filter.AfterDate)
		createdAt := next(filter.AfterCreatedAt)
		conditions = append(conditions, "(movement_date, created_at) < ("+date+", "+createdAt+")")
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + fields + " FROM " + table)
	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY movement_date DESC, created_at DESC")
	if filter.Limit > 0 {
		sb.WriteString(" LIMIT " + next(filter.Limit))
	}
	return sb.String(), args
}

// placeholders returns "$1, $2, ..., $n".
func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "$" + strconv.Itoa(i+1)
	}
	return strings.Join(parts, ", ")
}
