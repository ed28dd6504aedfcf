package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	"github.com/google/uuid"
	"go.uber.org/multierr"
)

const snapshotPageSize = 200

type accountLister interface {
	ListAccounts(ctx context.Context, filter domain.AccountFilter, limit int, offset int) ([]domain.Account, error)
}

type historyWriter interface {
	SaveAccountHistory(ctx context.Context, history domain.AccountHistory) (bool, error)
}

// AccountSnapshotJob records the balance of every active account for the current month.
// Re-running within the same month is a no-op for accounts already recorded.
type AccountSnapshotJob struct {
	logger   *slog.Logger
	accounts accountLister
	history  historyWriter
	now      func() time.Time
}

func NewAccountSnapshotJob(logger *slog.Logger, accounts accountLister, history historyWriter) (*AccountSnapshotJob, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if accounts == nil {
		return nil, fmt.Errorf("account repository required")
	}
	if history == nil {
		return nil, fmt.Errorf("account history repository required")
	}
	return &AccountSnapshotJob{logger: logger, accounts: accounts, history: history, now: time.Now}, nil
}

func (j *AccountSnapshotJob) Name() string { return "account-snapshot" }

func (j *AccountSnapshotJob) Run(ctx context.Context) error {
	now := j.now().UTC()
	period := domain.StartOfMonth(now)
	filter := domain.AccountFilter{Status: domain.StatusActive}

	var errs error
	inserted, seen := 0, 0
	for offset := 0; ; offset += snapshotPageSize {
		page, err := j.accounts.ListAccounts(ctx, filter, snapshotPageSize, offset)
		if err != nil {
			return multierr.Append(errs, fmt.Errorf("list accounts at offset %d: %w", offset, err))
		}
		for _, acc := range page {
			seen++
			ok, err := j.history.SaveAccountHistory(ctx, domain.AccountHistory{
				AccountHistoryID: uuid.NewString(),
				AccountID:        acc.AccountID,
				Period:           period,
				Balance:          acc.Balance,
				CreatedAt:        now,
			})
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("snapshot account %s: %w", acc.AccountID, err))
				continue
			}
			if ok {
				inserted++
			}
		}
		if len(page) < snapshotPageSize {
			break
		}
	}

	j.logger.Info("account snapshot complete",
		slog.String("period", period.Format("2006-01")),
		slog.Int("accounts", seen),
		slog.Int("inserted", inserted),
		slog.Int("failed", len(multierr.Errors(errs))),
	)
	return errs
}
