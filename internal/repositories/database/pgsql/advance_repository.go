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

const selectAdvanceFields = `
	advance_id, movement_id, movement_kind, member_account_id, advance_date, amount, description, created_at, created_by
`

type PgxAdvanceRepository struct {
	BaseRepository
}

func newPgxAdvanceRepository(pool *pgxpool.Pool) *PgxAdvanceRepository {
	return &PgxAdvanceRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.AdvanceRepositoryFacade = (*PgxAdvanceRepository)(nil)

func (r *PgxAdvanceRepository) WithTx(tx pgx.Tx) portsrepo.AdvanceRepositoryFacade {
	return &PgxAdvanceRepository{BaseRepository: r.bind(tx)}
}

func scanAdvance(row pgx.Row) (*domain.Advance, error) {
	var m models.Advance
	if err := row.Scan(
		&m.AdvanceID,
		&m.MovementID,
		&m.MovementKind,
		&m.MemberAccountID,
		&m.AdvanceDate,
		&m.Amount,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
	); err != nil {
		return nil, err
	}
	return &domain.Advance{
		AdvanceID:       m.AdvanceID,
		MovementID:      m.MovementID,
		MovementKind:    domain.MovementKind(m.MovementKind),
		MemberAccountID: m.MemberAccountID,
		Date:            m.AdvanceDate,
		Amount:          m.Amount,
		Description:     m.Description,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}, nil
}

func (r *PgxAdvanceRepository) SaveAdvance(ctx context.Context, advance domain.Advance) error {
	query := `
		INSERT INTO advances (advance_id, movement_id, movement_kind, member_account_id, advance_date, amount, description, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		advance.AdvanceID,
		advance.MovementID,
		string(advance.MovementKind),
		advance.MemberAccountID,
		advance.Date,
		advance.Amount,
		advance.Description,
		advance.CreatedAt,
		advance.CreatedBy,
	)
	return translateError(err, "failed to save advance of movement %s", advance.MovementID)
}

// DeleteAdvancesByMovement is a no-op when the movement has no advance.
func (r *PgxAdvanceRepository) DeleteAdvancesByMovement(ctx context.Context, kind domain.MovementKind, movementID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM advances WHERE movement_kind = $1 AND movement_id = $2;`, string(kind), movementID)
	return translateError(err, "failed to delete advance of movement %s", movementID)
}

func (r *PgxAdvanceRepository) FindAdvanceByID(ctx context.Context, advanceID string) (*domain.Advance, error) {
	advance, err := scanAdvance(r.db.QueryRow(ctx, `SELECT `+selectAdvanceFields+` FROM advances WHERE advance_id = $1;`, advanceID))
	if err != nil {
		return nil, translateError(err, "advance %s", advanceID)
	}
	return advance, nil
}

func (r *PgxAdvanceRepository) ListAdvances(ctx context.Context, filter domain.AdvanceFilter) ([]domain.Advance, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.MemberAccountID != "" {
		args = append(args, filter.MemberAccountID)
		conditions = append(conditions, "member_account_id = $"+strconv.Itoa(len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, "advance_date >= $"+strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, "advance_date <= $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + selectAdvanceFields + ` FROM advances`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY advance_date DESC, created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "failed to list advances")
	}
	defer rows.Close()

	advances := []domain.Advance{}
	for rows.Next() {
		advance, err := scanAdvance(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan advance row")
		}
		advances = append(advances, *advance)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating advance rows")
	}
	return advances, nil
}
