package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/taxi_coop_backoffice/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ownerAuditFields = `is_active, created_at, created_by, last_updated_at, last_updated_by`

func listOwnersQuery(table, fields, orderBy string, status domain.Status) string {
	query := `SELECT ` + fields + `, ` + ownerAuditFields + ` FROM ` + table
	if cond := statusCondition(status); cond != "" {
		query += " WHERE " + cond
	}
	return query + " ORDER BY " + orderBy + " LIMIT $1 OFFSET $2"
}

func deactivateOwner(ctx context.Context, db DBTX, table, idColumn, id, userID string, now time.Time) error {
	query := `UPDATE ` + table + ` SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3 WHERE ` + idColumn + ` = $1;`
	tag, err := db.Exec(ctx, query, id, now, userID)
	if err != nil {
		return translateError(err, "failed to deactivate %s %s", table, id)
	}
	return expectOneRow(tag, "%s %s", table, id)
}

func toDomainAudit(a models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

// --- members ---

const selectMemberFields = `member_id, first_name, last_name, document_number, phone`

type PgxMemberRepository struct {
	BaseRepository
}

func newPgxMemberRepository(pool *pgxpool.Pool) *PgxMemberRepository {
	return &PgxMemberRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

func (r *PgxMemberRepository) WithTx(tx pgx.Tx) portsrepo.MemberRepositoryFacade {
	return &PgxMemberRepository{BaseRepository: r.bind(tx)}
}

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m models.Member
	if err := row.Scan(&m.MemberID, &m.FirstName, &m.LastName, &m.DocumentNumber, &m.Phone,
		&m.IsActive, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
		return nil, err
	}
	return &domain.Member{
		MemberID:       m.MemberID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		DocumentNumber: m.DocumentNumber,
		Phone:          m.Phone,
		IsActive:       m.IsActive,
		AuditFields:    toDomainAudit(m.AuditFields),
	}, nil
}

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	query := `
		INSERT INTO members (` + selectMemberFields + `, ` + ownerAuditFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		member.MemberID, member.FirstName, member.LastName, member.DocumentNumber, member.Phone,
		member.IsActive, member.CreatedAt, member.CreatedBy, member.LastUpdatedAt, member.LastUpdatedBy)
	return translateError(err, "member with document %s", member.DocumentNumber)
}

func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	query := `
		UPDATE members
		SET first_name = $2, last_name = $3, phone = $4, last_updated_at = $5, last_updated_by = $6
		WHERE member_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, member.MemberID, member.FirstName, member.LastName, member.Phone, member.LastUpdatedAt, member.LastUpdatedBy)
	if err != nil {
		return translateError(err, "failed to update member %s", member.MemberID)
	}
	return expectOneRow(tag, "member %s", member.MemberID)
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `SELECT ` + selectMemberFields + `, ` + ownerAuditFields + ` FROM members WHERE member_id = $1;`
	member, err := scanMember(r.db.QueryRow(ctx, query, memberID))
	if err != nil {
		return nil, translateError(err, "member %s", memberID)
	}
	return member, nil
}

func (r *PgxMemberRepository) ListMembers(ctx context.Context, status domain.Status, limit int, offset int) ([]domain.Member, error) {
	rows, err := r.db.Query(ctx, listOwnersQuery("members", selectMemberFields, "last_name, first_name, member_id", status), limit, offset)
	if err != nil {
		return nil, translateError(err, "failed to list members")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Member, error) {
		m, err := scanMember(row)
		if err != nil {
			return domain.Member{}, err
		}
		return *m, nil
	})
}

func (r *PgxMemberRepository) DeactivateMember(ctx context.Context, memberID string, userID string, now time.Time) error {
	return deactivateOwner(ctx, r.db, "members", "member_id", memberID, userID, now)
}

// --- subscribers ---

const selectSubscriberFields = `subscriber_id, name, document_number, phone`

type PgxSubscriberRepository struct {
	BaseRepository
}

func newPgxSubscriberRepository(pool *pgxpool.Pool) *PgxSubscriberRepository {
	return &PgxSubscriberRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.SubscriberRepositoryFacade = (*PgxSubscriberRepository)(nil)

func (r *PgxSubscriberRepository) WithTx(tx pgx.Tx) portsrepo.SubscriberRepositoryFacade {
	return &PgxSubscriberRepository{BaseRepository: r.bind(tx)}
}

func scanSubscriber(row pgx.Row) (*domain.Subscriber, error) {
	var m models.Subscriber
	if err := row.Scan(&m.SubscriberID, &m.Name, &m.DocumentNumber, &m.Phone,
		&m.IsActive, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
		return nil, err
	}
	return &domain.Subscriber{
		SubscriberID:   m.SubscriberID,
		Name:           m.Name,
		DocumentNumber: m.DocumentNumber,
		Phone:          m.Phone,
		IsActive:       m.IsActive,
		AuditFields:    toDomainAudit(m.AuditFields),
	}, nil
}

func (r *PgxSubscriberRepository) SaveSubscriber(ctx context.Context, s domain.Subscriber) error {
	query := `
		INSERT INTO subscribers (` + selectSubscriberFields + `, ` + ownerAuditFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		s.SubscriberID, s.Name, s.DocumentNumber, s.Phone,
		s.IsActive, s.CreatedAt, s.CreatedBy, s.LastUpdatedAt, s.LastUpdatedBy)
	return translateError(err, "subscriber with document %s", s.DocumentNumber)
}

func (r *PgxSubscriberRepository) UpdateSubscriber(ctx context.Context, s domain.Subscriber) error {
	query := `UPDATE subscribers SET name = $2, phone = $3, last_updated_at = $4, last_updated_by = $5 WHERE subscriber_id = $1;`
	tag, err := r.db.Exec(ctx, query, s.SubscriberID, s.Name, s.Phone, s.LastUpdatedAt, s.LastUpdatedBy)
	if err != nil {
		return translateError(err, "failed to update subscriber %s", s.SubscriberID)
	}
	return expectOneRow(tag, "subscriber %s", s.SubscriberID)
}

func (r *PgxSubscriberRepository) FindSubscriberByID(ctx context.Context, subscriberID string) (*domain.Subscriber, error) {
	query := `SELECT ` + selectSubscriberFields + `, ` + ownerAuditFields + ` FROM subscribers WHERE subscriber_id = $1;`
	s, err := scanSubscriber(r.db.QueryRow(ctx, query, subscriberID))
	if err != nil {
		return nil, translateError(err, "subscriber %s", subscriberID)
	}
	return s, nil
}

func (r *PgxSubscriberRepository) ListSubscribers(ctx context.Context, status domain.Status, limit int, offset int) ([]domain.Subscriber, error) {
	rows, err := r.db.Query(ctx, listOwnersQuery("subscribers", selectSubscriberFields, "name, subscriber_id", status), limit, offset)
	if err != nil {
		return nil, translateError(err, "failed to list subscribers")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Subscriber, error) {
		s, err := scanSubscriber(row)
		if err != nil {
			return domain.Subscriber{}, err
		}
		return *s, nil
	})
}

func (r *PgxSubscriberRepository) DeactivateSubscriber(ctx context.Context, subscriberID string, userID string, now time.Time) error {
	return deactivateOwner(ctx, r.db, "subscribers", "subscriber_id", subscriberID, userID, now)
}

// --- vehicles ---

const selectVehicleFields = `vehicle_id, license_plate, brand, model, year`

type PgxVehicleRepository struct {
	BaseRepository
}

func newPgxVehicleRepository(pool *pgxpool.Pool) *PgxVehicleRepository {
	return &PgxVehicleRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.VehicleRepositoryFacade = (*PgxVehicleRepository)(nil)

func (r *PgxVehicleRepository) WithTx(tx pgx.Tx) portsrepo.VehicleRepositoryFacade {
	return &PgxVehicleRepository{BaseRepository: r.bind(tx)}
}

func scanVehicle(row pgx.Row) (*domain.Vehicle, error) {
	var m models.Vehicle
	if err := row.Scan(&m.VehicleID, &m.LicensePlate, &m.Brand, &m.Model, &m.Year,
		&m.IsActive, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
		return nil, err
	}
	return &domain.Vehicle{
		VehicleID:    m.VehicleID,
		LicensePlate: m.LicensePlate,
		Brand:        m.Brand,
		Model:        m.Model,
		Year:         m.Year,
		IsActive:     m.IsActive,
		AuditFields:  toDomainAudit(m.AuditFields),
	}, nil
}

func (r *PgxVehicleRepository) SaveVehicle(ctx context.Context, v domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (` + selectVehicleFields + `, ` + ownerAuditFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		v.VehicleID, v.LicensePlate, v.Brand, v.Model, v.Year,
		v.IsActive, v.CreatedAt, v.CreatedBy, v.LastUpdatedAt, v.LastUpdatedBy)
	return translateError(err, "vehicle with plate %s", v.LicensePlate)
}

func (r *PgxVehicleRepository) UpdateVehicle(ctx context.Context, v domain.Vehicle) error {
	query := `UPDATE vehicles SET brand = $2, model = $3, year = $4, last_updated_at = $5, last_updated_by = $6 WHERE vehicle_id = $1;`
	tag, err := r.db.Exec(ctx, query, v.VehicleID, v.Brand, v.Model, v.Year, v.LastUpdatedAt, v.LastUpdatedBy)
	if err != nil {
		return translateError(err, "failed to update vehicle %s", v.VehicleID)
	}
	return expectOneRow(tag, "vehicle %s", v.VehicleID)
}

func (r *PgxVehicleRepository) FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	query := `SELECT ` + selectVehicleFields + `, ` + ownerAuditFields + ` FROM vehicles WHERE vehicle_id = $1;`
	v, err := scanVehicle(r.db.QueryRow(ctx, query, vehicleID))
	if err != nil {
		return nil, translateError(err, "vehicle %s", vehicleID)
	}
	return v, nil
}

func (r *PgxVehicleRepository) ListVehicles(ctx context.Context, status domain.Status, limit int, offset int) ([]domain.Vehicle, error) {
	rows, err := r.db.Query(ctx, listOwnersQuery("vehicles", selectVehicleFields, "license_plate", status), limit, offset)
	if err != nil {
		return nil, translateError(err, "failed to list vehicles")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Vehicle, error) {
		v, err := scanVehicle(row)
		if err != nil {
			return domain.Vehicle{}, err
		}
		return *v, nil
	})
}

func (r *PgxVehicleRepository) DeactivateVehicle(ctx context.Context, vehicleID string, userID string, now time.Time) error {
	return deactivateOwner(ctx, r.db, "vehicles", "vehicle_id", vehicleID, userID, now)
}
