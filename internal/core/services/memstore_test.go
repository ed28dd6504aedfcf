package services_test

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/apperrors"
	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// fakeTx only identifies a transaction; the store never calls through to pgx.
type fakeTx struct {
	pgx.Tx
	id int
}

type memState struct {
	accounts    map[string]domain.Account
	register    *domain.CashRegister
	movements   map[domain.MovementKind]map[string]domain.Movement
	advances    map[string]domain.Advance
	members     map[string]domain.Member
	subscribers map[string]domain.Subscriber
	vehicles    map[string]domain.Vehicle
	history     map[string]domain.AccountHistory
}

func (s memState) clone() memState {
	c := memState{
		accounts:    maps.Clone(s.accounts),
		movements:   map[domain.MovementKind]map[string]domain.Movement{},
		advances:    maps.Clone(s.advances),
		members:     maps.Clone(s.members),
		subscribers: maps.Clone(s.subscribers),
		vehicles:    maps.Clone(s.vehicles),
		history:     maps.Clone(s.history),
	}
	for k, v := range s.movements {
		c.movements[k] = maps.Clone(v)
	}
	if s.register != nil {
		r := *s.register
		c.register = &r
	}
	return c
}

// memStore is an in-memory implementation of every repository port plus the TransactionManager.
// Begin snapshots the state and Rollback restores it, so atomicity can be asserted.
type memStore struct {
	mu       sync.Mutex
	state    memState
	snapshot *memState
	txSeq    int

	commits   int
	rollbacks int
	locked    []string
	failOn    map[string]error
}

var _ portsrepo.TransactionManager = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		state: memState{
			accounts: map[string]domain.Account{},
			movements: map[domain.MovementKind]map[string]domain.Movement{
				domain.MovementKindCash:    {},
				domain.MovementKindNonCash: {},
			},
			advances:    map[string]domain.Advance{},
			members:     map[string]domain.Member{},
			subscribers: map[string]domain.Subscriber{},
			vehicles:    map[string]domain.Vehicle{},
			history:     map[string]domain.AccountHistory{},
		},
		failOn: map[string]error{},
	}
}

func (s *memStore) fail(op string) error {
	return s.failOn[op]
}

func (s *memStore) Begin(context.Context) (pgx.Tx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("Begin"); err != nil {
		return nil, err
	}
	snap := s.state.clone()
	s.snapshot = &snap
	s.txSeq++
	return &fakeTx{id: s.txSeq}, nil
}

func (s *memStore) Commit(context.Context, pgx.Tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("Commit"); err != nil {
		return err
	}
	s.snapshot = nil
	s.commits++
	return nil
}

func (s *memStore) Rollback(context.Context, pgx.Tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot != nil {
		s.state = *s.snapshot
		s.snapshot = nil
	}
	s.rollbacks++
	return nil
}

// --- seeding helpers ---

func (s *memStore) seedAccount(kind domain.AccountKind, balance string, active bool) domain.Account {
	acc := domain.Account{
		AccountID: uuid.NewString(),
		Kind:      kind,
		OwnerID:   uuid.NewString(),
		Balance:   decimal.RequireFromString(balance),
		IsActive:  active,
	}
	s.state.accounts[acc.AccountID] = acc
	return acc
}

func (s *memStore) seedRegister(amount string) domain.CashRegister {
	r := domain.CashRegister{CashRegisterID: uuid.NewString(), Amount: decimal.RequireFromString(amount), IsActive: true}
	s.state.register = &r
	return r
}

func (s *memStore) balance(accountID string) decimal.Decimal {
	return s.state.accounts[accountID].Balance
}

func (s *memStore) registerAmount() decimal.Decimal {
	if s.state.register == nil {
		return decimal.Zero
	}
	return s.state.register.Amount
}

// --- accounts ---

type memAccountRepo struct{ s *memStore }

var _ portsrepo.AccountRepositoryFacade = memAccountRepo{}

func (r memAccountRepo) WithTx(pgx.Tx) portsrepo.AccountRepositoryFacade { return r }

func (r memAccountRepo) FindAccountByID(_ context.Context, id string) (*domain.Account, error) {
	acc, ok := r.s.state.accounts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &acc, nil
}

func (r memAccountRepo) FindAccountByOwner(_ context.Context, kind domain.AccountKind, ownerID string) (*domain.Account, error) {
	for _, acc := range r.s.state.accounts {
		if acc.Kind == kind && acc.OwnerID == ownerID {
			return &acc, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r memAccountRepo) ListAccounts(_ context.Context, filter domain.AccountFilter, limit int, offset int) ([]domain.Account, error) {
	var out []domain.Account
	for _, acc := range r.s.state.accounts {
		if (filter.Kind == "" || acc.Kind == filter.Kind) && filter.Status.Matches(acc.IsActive) {
			out = append(out, acc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r memAccountRepo) SaveAccount(_ context.Context, acc domain.Account) error {
	if err := r.s.fail("SaveAccount"); err != nil {
		return err
	}
	for _, existing := range r.s.state.accounts {
		if existing.Kind == acc.Kind && existing.OwnerID == acc.OwnerID {
			return apperrors.ErrDuplicate
		}
	}
	r.s.state.accounts[acc.AccountID] = acc
	return nil
}

func (r memAccountRepo) DeactivateAccountByOwner(_ context.Context, kind domain.AccountKind, ownerID string, userID string, now time.Time) error {
	for id, acc := range r.s.state.accounts {
		if acc.Kind == kind && acc.OwnerID == ownerID {
			acc.IsActive = false
			acc.LastUpdatedAt, acc.LastUpdatedBy = now, userID
			r.s.state.accounts[id] = acc
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r memAccountRepo) FindAccountByIDForUpdate(ctx context.Context, id string) (*domain.Account, error) {
	r.s.locked = append(r.s.locked, "account:"+id)
	return r.FindAccountByID(ctx, id)
}

func (r memAccountRepo) UpdateAccountBalance(_ context.Context, id string, delta decimal.Decimal, userID string, now time.Time) error {
	if err := r.s.fail("UpdateAccountBalance"); err != nil {
		return err
	}
	acc, ok := r.s.state.accounts[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	acc.Balance = acc.Balance.Add(delta)
	acc.LastModified = domain.StartOfDay(now)
	acc.LastUpdatedAt, acc.LastUpdatedBy = now, userID
	r.s.state.accounts[id] = acc
	return nil
}

// --- cash register ---

type memRegisterRepo struct{ s *memStore }

var _ portsrepo.CashRegisterRepositoryFacade = memRegisterRepo{}

func (r memRegisterRepo) WithTx(pgx.Tx) portsrepo.CashRegisterRepositoryFacade { return r }

func (r memRegisterRepo) GetOrCreateCashRegister(_ context.Context, now time.Time) (*domain.CashRegister, error) {
	if r.s.state.register == nil {
		r.s.state.register = &domain.CashRegister{CashRegisterID: uuid.NewString(), Amount: decimal.Zero, IsActive: true, LastUpdatedAt: now}
	}
	reg := *r.s.state.register
	return &reg, nil
}

func (r memRegisterRepo) FindCashRegisterForUpdate(_ context.Context) (*domain.CashRegister, error) {
	if r.s.state.register == nil {
		return nil, apperrors.ErrNotFound
	}
	r.s.locked = append(r.s.locked, "register")
	reg := *r.s.state.register
	return &reg, nil
}

func (r memRegisterRepo) AddToCashRegister(_ context.Context, id string, delta decimal.Decimal, userID string, now time.Time) error {
	if err := r.s.fail("AddToCashRegister"); err != nil {
		return err
	}
	if r.s.state.register == nil || r.s.state.register.CashRegisterID != id {
		return apperrors.ErrNotFound
	}
	r.s.state.register.Amount = r.s.state.register.Amount.Add(delta)
	r.s.state.register.LastUpdatedAt, r.s.state.register.LastUpdatedBy = now, userID
	return nil
}

func (r memRegisterRepo) SetCashRegisterAmount(_ context.Context, id string, amount decimal.Decimal, userID string, now time.Time) error {
	if r.s.state.register == nil || r.s.state.register.CashRegisterID != id {
		return apperrors.ErrNotFound
	}
	r.s.state.register.Amount = amount
	r.s.state.register.LastUpdatedAt, r.s.state.register.LastUpdatedBy = now, userID
	return nil
}

// --- movements ---

type memMovementRepo struct {
	s    *memStore
	kind domain.MovementKind
}

var _ portsrepo.MovementRepositoryFacade = memMovementRepo{}

func (r memMovementRepo) Kind() domain.MovementKind { return r.kind }
func (r memMovementRepo) WithTx(pgx.Tx) portsrepo.MovementRepositoryFacade { return r }

func (r memMovementRepo) table() map[string]domain.Movement { return r.s.state.movements[r.kind] }

func (r memMovementRepo) FindMovementByID(_ context.Context, id string) (*domain.Movement, error) {
	m, ok := r.table()[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &m, nil
}

func (r memMovementRepo) FindMovementByIDForUpdate(ctx context.Context, id string) (*domain.Movement, error) {
	r.s.locked = append(r.s.locked, "movement:"+id)
	return r.FindMovementByID(ctx, id)
}

func (r memMovementRepo) ListMovements(_ context.Context, f domain.MovementFilter) ([]domain.Movement, error) {
	var out []domain.Movement
	for _, m := range r.table() {
		if !f.Status.Matches(m.IsActive) {
			continue
		}
		if f.AccountID != "" && m.Account.AccountID != f.AccountID {
			continue
		}
		if f.From != nil && m.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && m.Date.After(*f.To) {
			continue
		}
		if !f.AfterDate.IsZero() || !f.AfterCreatedAt.IsZero() {
			if !(m.Date.Before(f.AfterDate) || (m.Date.Equal(f.AfterDate) && m.CreatedAt.Before(f.AfterCreatedAt))) {
				continue
			}
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r memMovementRepo) SaveMovement(_ context.Context, m domain.Movement) error {
	if err := r.s.fail("SaveMovement"); err != nil {
		return err
	}
	if m.Kind != r.kind {
		return fmt.Errorf("movement kind %s saved into %s table", m.Kind, r.kind)
	}
	r.table()[m.MovementID] = m
	return nil
}

func (r memMovementRepo) UpdateMovement(_ context.Context, m domain.Movement) error {
	if err := r.s.fail("UpdateMovement"); err != nil {
		return err
	}
	if _, ok := r.table()[m.MovementID]; !ok {
		return apperrors.ErrNotFound
	}
	r.table()[m.MovementID] = m
	return nil
}

// --- advances ---

type memAdvanceRepo struct{ s *memStore }

var _ portsrepo.AdvanceRepositoryFacade = memAdvanceRepo{}

func (r memAdvanceRepo) WithTx(pgx.Tx) portsrepo.AdvanceRepositoryFacade { return r }

func (r memAdvanceRepo) FindAdvanceByID(_ context.Context, id string) (*domain.Advance, error) {
	a, ok := r.s.state.advances[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (r memAdvanceRepo) ListAdvances(_ context.Context, f domain.AdvanceFilter) ([]domain.Advance, error) {
	var out []domain.Advance
	for _, a := range r.s.state.advances {
		if f.MemberAccountID != "" && a.MemberAccountID != f.MemberAccountID {
			continue
		}
		if f.From != nil && a.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && a.Date.After(*f.To) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r memAdvanceRepo) SaveAdvance(_ context.Context, a domain.Advance) error {
	if err := r.s.fail("SaveAdvance"); err != nil {
		return err
	}
	r.s.state.advances[a.AdvanceID] = a
	return nil
}

func (r memAdvanceRepo) DeleteAdvancesByMovement(_ context.Context, kind domain.MovementKind, movementID string) error {
	for id, a := range r.s.state.advances {
		if a.MovementKind == kind && a.MovementID == movementID {
			delete(r.s.state.advances, id)
		}
	}
	return nil
}

func (s *memStore) advancesFor(movementID string) []domain.Advance {
	var out []domain.Advance
	for _, a := range s.state.advances {
		if a.MovementID == movementID {
			out = append(out, a)
		}
	}
	return out
}

// --- owners ---

type memMemberRepo struct{ s *memStore }

var _ portsrepo.MemberRepositoryFacade = memMemberRepo{}

func (r memMemberRepo) WithTx(pgx.Tx) portsrepo.MemberRepositoryFacade { return r }

func (r memMemberRepo) FindMemberByID(_ context.Context, id string) (*domain.Member, error) {
	m, ok := r.s.state.members[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &m, nil
}

func (r memMemberRepo) ListMembers(_ context.Context, status domain.Status, limit int, offset int) ([]domain.Member, error) {
	var out []domain.Member
	for _, m := range r.s.state.members {
		if status.Matches(m.IsActive) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastName < out[j].LastName })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r memMemberRepo) SaveMember(_ context.Context, m domain.Member) error {
	for _, existing := range r.s.state.members {
		if existing.DocumentNumber == m.DocumentNumber {
			return fmt.Errorf("%w: document number %s", apperrors.ErrDuplicate, m.DocumentNumber)
		}
	}
	r.s.state.members[m.MemberID] = m
	return nil
}

func (r memMemberRepo) UpdateMember(_ context.Context, m domain.Member) error {
	if _, ok := r.s.state.members[m.MemberID]; !ok {
		return apperrors.ErrNotFound
	}
	r.s.state.members[m.MemberID] = m
	return nil
}

func (r memMemberRepo) DeactivateMember(_ context.Context, id string, userID string, now time.Time) error {
	m, ok := r.s.state.members[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	m.IsActive = false
	m.LastUpdatedAt, m.LastUpdatedBy = now, userID
	r.s.state.members[id] = m
	return nil
}

type memSubscriberRepo struct{ s *memStore }

var _ portsrepo.SubscriberRepositoryFacade = memSubscriberRepo{}

func (r memSubscriberRepo) WithTx(pgx.Tx) portsrepo.SubscriberRepositoryFacade { return r }

func (r memSubscriberRepo) FindSubscriberByID(_ context.Context, id string) (*domain.Subscriber, error) {
	v, ok := r.s.state.subscribers[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &v, nil
}

func (r memSubscriberRepo) ListSubscribers(_ context.Context, status domain.Status, limit int, offset int) ([]domain.Subscriber, error) {
	var out []domain.Subscriber
	for _, v := range r.s.state.subscribers {
		if status.Matches(v.IsActive) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r memSubscriberRepo) SaveSubscriber(_ context.Context, v domain.Subscriber) error {
	for _, existing := range r.s.state.subscribers {
		if existing.DocumentNumber == v.DocumentNumber {
			return apperrors.ErrDuplicate
		}
	}
	r.s.state.subscribers[v.SubscriberID] = v
	return nil
}

func (r memSubscriberRepo) UpdateSubscriber(_ context.Context, v domain.Subscriber) error {
	r.s.state.subscribers[v.SubscriberID] = v
	return nil
}

func (r memSubscriberRepo) DeactivateSubscriber(_ context.Context, id string, userID string, now time.Time) error {
	v, ok := r.s.state.subscribers[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	v.IsActive = false
	v.LastUpdatedAt, v.LastUpdatedBy = now, userID
	r.s.state.subscribers[id] = v
	return nil
}

type memVehicleRepo struct{ s *memStore }

var _ portsrepo.VehicleRepositoryFacade = memVehicleRepo{}

func (r memVehicleRepo) WithTx(pgx.Tx) portsrepo.VehicleRepositoryFacade { return r }

func (r memVehicleRepo) FindVehicleByID(_ context.Context, id string) (*domain.Vehicle, error) {
	v, ok := r.s.state.vehicles[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &v, nil
}

func (r memVehicleRepo) ListVehicles(_ context.Context, status domain.Status, limit int, offset int) ([]domain.Vehicle, error) {
	var out []domain.Vehicle
	for _, v := range r.s.state.vehicles {
		if status.Matches(v.IsActive) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r memVehicleRepo) SaveVehicle(_ context.Context, v domain.Vehicle) error {
	for _, existing := range r.s.state.vehicles {
		if existing.LicensePlate == v.LicensePlate {
			return fmt.Errorf("%w: license plate %s", apperrors.ErrDuplicate, v.LicensePlate)
		}
	}
	r.s.state.vehicles[v.VehicleID] = v
	return nil
}

func (r memVehicleRepo) UpdateVehicle(_ context.Context, v domain.Vehicle) error {
	r.s.state.vehicles[v.VehicleID] = v
	return nil
}

func (r memVehicleRepo) DeactivateVehicle(_ context.Context, id string, userID string, now time.Time) error {
	v, ok := r.s.state.vehicles[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	v.IsActive = false
	v.LastUpdatedAt, v.LastUpdatedBy = now, userID
	r.s.state.vehicles[id] = v
	return nil
}

// --- history ---

type memHistoryRepo struct{ s *memStore }

var _ portsrepo.AccountHistoryRepositoryFacade = memHistoryRepo{}

func (r memHistoryRepo) ListAccountHistory(_ context.Context, accountID string) ([]domain.AccountHistory, error) {
	var out []domain.AccountHistory
	for _, h := range r.s.state.history {
		if h.AccountID == accountID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period.Before(out[j].Period) })
	return out, nil
}

func (r memHistoryRepo) SaveAccountHistory(_ context.Context, h domain.AccountHistory) (bool, error) {
	key := h.AccountID + h.Period.String()
	if _, ok := r.s.state.history[key]; ok {
		return false, nil
	}
	r.s.state.history[key] = h
	return true, nil
}

func (s *memStore) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:           s,
		AccountRepo:         memAccountRepo{s},
		CashRegisterRepo:    memRegisterRepo{s},
		CashMovementRepo:    memMovementRepo{s: s, kind: domain.MovementKindCash},
		NonCashMovementRepo: memMovementRepo{s: s, kind: domain.MovementKindNonCash},
		AdvanceRepo:         memAdvanceRepo{s},
		MemberRepo:          memMemberRepo{s},
		SubscriberRepo:      memSubscriberRepo{s},
		VehicleRepo:         memVehicleRepo{s},
		AccountHistoryRepo:  memHistoryRepo{s},
	}
}

var errInjected = errors.New("injected failure")
