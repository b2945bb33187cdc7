package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"coinloop/internal/core/campaign"
	"coinloop/internal/core/domain"
	"coinloop/internal/core/ledger"
	"coinloop/internal/core/port"
	"coinloop/internal/core/taskpool"
	"coinloop/internal/observability"
)

// DefaultDismissAfter is how long the presentation layer shows a
// notification unless configured otherwise.
const DefaultDismissAfter = 3 * time.Second

var languages = []string{"EN", "FR", "AR"}

// EconomyUseCase sequences the ledger, the task pool and the campaign
// lifecycle into atomic commands. It is the only writer of balances and
// campaigns and implements port.EconomyUseCase.
type EconomyUseCase struct {
	store     port.Store
	ledger    *ledger.Ledger
	pool      *taskpool.Pool
	campaigns *campaign.Lifecycle
	gates     *userGates
	logger    *slog.Logger

	// dismissAfter is attached to every notification.
	dismissAfter time.Duration
	now          func() time.Time
}

var _ port.EconomyUseCase = (*EconomyUseCase)(nil)

// Option customises an EconomyUseCase.
type Option func(*EconomyUseCase)

// WithDismissAfter sets the notification auto-dismiss interval.
func WithDismissAfter(d time.Duration) Option {
	return func(u *EconomyUseCase) { u.dismissAfter = d }
}

// WithLedger replaces the ledger, typically to pin its clock in tests.
func WithLedger(l *ledger.Ledger) Option {
	return func(u *EconomyUseCase) { u.ledger = l }
}

// NewEconomyUseCase creates a usecase over the given store. A nil logger
// discards output.
func NewEconomyUseCase(store port.Store, logger *slog.Logger, opts ...Option) *EconomyUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	u := &EconomyUseCase{
		store:        store,
		ledger:       ledger.New(),
		pool:         taskpool.New(),
		campaigns:    campaign.New(),
		gates:        newUserGates(),
		logger:       logger,
		dismissAfter: DefaultDismissAfter,
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CompleteTask removes the task and credits its reward in one unit of work.
// A task that is already gone is reported as ErrTaskNotFound with an info
// notification and leaves the ledger untouched.
func (u *EconomyUseCase) CompleteTask(ctx context.Context, userID, taskID string) (*port.Outcome, error) {
	return u.run(ctx, "complete_task", userID, func(ctx context.Context, repos port.Repositories) (*port.Outcome, error) {
		task, err := u.pool.Complete(ctx, repos, taskID)
		if err != nil {
			return nil, err
		}
		desc := fmt.Sprintf("Task: %s %s", task.Platform, task.Action)
		tx, user, err := u.ledger.Credit(ctx, repos, userID, task.Reward, domain.KindEarn, desc)
		if err != nil {
			return nil, err
		}
		return &port.Outcome{
			User:         user,
			Task:         task,
			Transaction:  tx,
			Notification: success("+%d Coins Earned!", task.Reward),
		}, nil
	})
}

// SkipTask removes the task without any ledger effect.
func (u *EconomyUseCase) SkipTask(ctx context.Context, userID, taskID string) (*port.Outcome, error) {
	return u.run(ctx, "skip_task", userID, func(ctx context.Context, repos port.Repositories) (*port.Outcome, error) {
		if err := u.requireUser(ctx, repos, userID); err != nil {
			return nil, err
		}
		task, err := u.pool.Skip(ctx, repos, taskID)
		if err != nil {
			return nil, err
		}
		return &port.Outcome{Task: task, Notification: info("Task skipped")}, nil
	})
}

// CreateCampaign debits the funding cost and persists the campaign. When the
// debit fails the campaign is never stored.
func (u *EconomyUseCase) CreateCampaign(ctx context.Context, userID string, spec domain.CampaignSpec) (*port.Outcome, error) {
	return u.run(ctx, "create_campaign", userID, func(ctx context.Context, repos port.Repositories) (*port.Outcome, error) {
		c, cost, err := u.campaigns.Create(userID, spec)
		if err != nil {
			return nil, err
		}
		desc := fmt.Sprintf("Campaign: %s %s", c.Platform, c.Action)
		tx, user, err := u.ledger.Debit(ctx, repos, userID, cost, domain.KindSpend, desc)
		if err != nil {
			return nil, err
		}
		if err = u.campaigns.Save(ctx, repos, *c); err != nil {
			return nil, err
		}
		return &port.Outcome{
			User:         user,
			Campaign:     c,
			Transaction:  tx,
			Notification: success("Campaign launched successfully!"),
		}, nil
	})
}

// DeleteCampaign removes the campaign and refunds undelivered actions as a
// bonus in the same unit of work.
func (u *EconomyUseCase) DeleteCampaign(ctx context.Context, userID, campaignID string) (*port.Outcome, error) {
	return u.run(ctx, "delete_campaign", userID, func(ctx context.Context, repos port.Repositories) (*port.Outcome, error) {
		c, refund, err := u.campaigns.Delete(ctx, repos, userID, campaignID)
		if err != nil {
			return nil, err
		}
		out := &port.Outcome{Campaign: c, Notification: success("Campaign deleted")}
		if refund <= 0 {
			return out, nil
		}
		desc := fmt.Sprintf("Refund: %s Campaign", c.Platform)
		tx, user, err := u.ledger.Credit(ctx, repos, userID, refund, domain.KindBonus, desc)
		if err != nil {
			return nil, err
		}
		out.User, out.Transaction, out.Refund = user, tx, refund
		out.Notification = success("Campaign deleted, %d unused credits refunded", refund)
		return out, nil
	})
}

// ToggleCampaignStatus flips active and paused.
func (u *EconomyUseCase) ToggleCampaignStatus(ctx context.Context, userID, campaignID string) (*port.Outcome, error) {
	return u.run(ctx, "toggle_campaign", userID, func(ctx context.Context, repos port.Repositories) (*port.Outcome, error) {
		c, err := u.campaigns.ToggleStatus(ctx, repos, userID, campaignID)
		if err != nil {
			return nil, err
		}
		return &port.Outcome{Campaign: c, Notification: info("Campaign updated")}, nil
	})
}

// UpdateCampaign applies a patch without re-settling funds.
func (u *EconomyUseCase) UpdateCampaign(ctx context.Context, userID, campaignID string, patch domain.CampaignPatch) (*port.Outcome, error) {
	return u.run(ctx, "update_campaign", userID, func(ctx context.Context, repos port.Repositories) (*port.Outcome, error) {
		c, err := u.campaigns.Update(ctx, repos, userID, campaignID, patch)
		if err != nil {
			return nil, err
		}
		return &port.Outcome{Campaign: c, Notification: success("Campaign updated")}, nil
	})
}

// AddCredits records a purchase the payment provider already confirmed.
func (u *EconomyUseCase) AddCredits(ctx context.Context, userID string, amount int64) (*port.Outcome, error) {
	return u.run(ctx, "add_credits", userID, func(ctx context.Context, repos port.Repositories) (*port.Outcome, error) {
		tx, user, err := u.ledger.Credit(ctx, repos, userID, amount, domain.KindPurchase, "Coin Purchase")
		if err != nil {
			return nil, err
		}
		return &port.Outcome{
			User:         user,
			Transaction:  tx,
			Notification: success("+%d Coins added to wallet", amount),
		}, nil
	})
}

// RecordCampaignCompletion counts delivered actions. It serializes on the
// campaign owner, as every other campaign mutation does.
func (u *EconomyUseCase) RecordCampaignCompletion(ctx context.Context, campaignID string, count int64) (*port.Outcome, error) {
	c, err := u.campaigns.Get(ctx, u.store, campaignID)
	if err != nil {
		return &port.Outcome{Notification: u.notice(failureNotice(err))}, err
	}
	return u.run(ctx, "record_completion", c.OwnerID, func(ctx context.Context, repos port.Repositories) (*port.Outcome, error) {
		c, err := u.campaigns.RecordCompletion(ctx, repos, campaignID, count)
		if err != nil {
			return nil, err
		}
		return &port.Outcome{
			Campaign:     c,
			Notification: info("Campaign progress: %d of %d", c.CompletedCount, c.TotalRequested),
		}, nil
	})
}

// RegisterUser provisions a user with an empty balance, or updates the
// onboarding fields of an existing one.
func (u *EconomyUseCase) RegisterUser(ctx context.Context, profile domain.Profile) (*domain.User, error) {
	out, err := u.run(ctx, "register_user", profile.UserID, func(ctx context.Context, repos port.Repositories) (*port.Outcome, error) {
		lang := strings.ToUpper(strings.TrimSpace(profile.Language))
		if lang != "" && !slices.Contains(languages, lang) {
			return nil, domain.Invalid("language", fmt.Sprintf("unsupported language %q", profile.Language))
		}
		user, err := repos.GetUser(ctx, profile.UserID)
		if err != nil {
			return nil, fmt.Errorf("get user: %w", err)
		}
		now := u.now()
		if user == nil {
			user = &domain.User{
				ID:         profile.UserID,
				Reputation: profile.Reputation,
				Streak:     profile.Streak,
				Country:    domain.Worldwide,
				Language:   "EN",
				CreatedAt:  now,
			}
		}
		if c := strings.TrimSpace(profile.Country); c != "" {
			user.Country = c
		}
		if lang != "" {
			user.Language = lang
		}
		user.UpdatedAt = now
		if err = repos.SaveUser(ctx, *user); err != nil {
			return nil, fmt.Errorf("save user: %w", err)
		}
		return &port.Outcome{User: user, Notification: success("Profile saved")}, nil
	})
	if err != nil {
		return nil, err
	}
	return out.User, nil
}

// SupplyTask adds a task to the pool. Pool additions touch no balance, so
// they bypass the per-user gate.
func (u *EconomyUseCase) SupplyTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	started := time.Now()
	var added *domain.Task
	err := u.store.Atomic(ctx, func(ctx context.Context, repos port.Repositories) error {
		var err error
		added, err = u.pool.Add(ctx, repos, task)
		return err
	})
	observability.ObserveCommand("supply_task", started, err)
	if err != nil {
		u.logger.Warn("supply task rejected", slog.Any("error", err))
		return nil, err
	}
	u.logger.Debug("task supplied", slog.String("task_id", added.ID), slog.Int64("reward", added.Reward))
	return added, nil
}

// Wallet returns a consistent view of balance and log, newest entry first.
func (u *EconomyUseCase) Wallet(ctx context.Context, userID string) (*port.Wallet, error) {
	var w *port.Wallet
	err := u.store.Atomic(ctx, func(ctx context.Context, repos port.Repositories) error {
		user, err := repos.GetUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		txs, err := repos.ListTransactions(ctx, userID)
		if err != nil {
			return fmt.Errorf("list transactions: %w", err)
		}
		slices.Reverse(txs)
		w = &port.Wallet{User: *user, Transactions: txs}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Reconcile re-derives the balance from the log.
func (u *EconomyUseCase) Reconcile(ctx context.Context, userID string) (*port.Wallet, error) {
	var w *port.Wallet
	err := u.store.Atomic(ctx, func(ctx context.Context, repos port.Repositories) error {
		user, txs, err := u.ledger.Reconcile(ctx, repos, userID)
		if user != nil {
			w = &port.Wallet{User: *user, Transactions: txs}
		}
		return err
	})
	if errors.Is(err, domain.ErrLedgerMismatch) {
		u.logger.Error("ledger mismatch", slog.String("user_id", userID), slog.Any("error", err))
	}
	return w, err
}

// ListTasks returns the pool as seen by the user. Without an explicit
// country the user's own country is used.
func (u *EconomyUseCase) ListTasks(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error) {
	user, err := u.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if filter.Country == "" {
		filter.Country = user.Country
	}
	return u.pool.List(ctx, u.store, filter)
}

// ListCampaigns returns the user's campaigns, newest first.
func (u *EconomyUseCase) ListCampaigns(ctx context.Context, userID string) ([]domain.Campaign, error) {
	return u.store.ListCampaigns(ctx, userID)
}

type commandFunc func(ctx context.Context, repos port.Repositories) (*port.Outcome, error)

// run executes one command: it waits for the user's gate, runs fn in a
// single unit of work, and records the outcome. On failure nothing fn wrote
// is kept and the returned Outcome only carries a notification.
func (u *EconomyUseCase) run(ctx context.Context, command, userID string, fn commandFunc) (*port.Outcome, error) {
	started := time.Now()
	logger := u.logger.With(slog.String("command", command), slog.String("user_id", userID))

	out, err := u.exec(ctx, userID, fn)
	observability.ObserveCommand(command, started, err)
	if err != nil {
		level := slog.LevelDebug
		if observability.Classify(err) == observability.OutcomeError {
			level = slog.LevelError
		}
		logger.Log(ctx, level, "command rejected", slog.Any("error", err))
		return &port.Outcome{Notification: u.notice(failureNotice(err))}, err
	}
	observability.ObserveTransaction(out.Transaction)
	logger.Info("command committed", slog.Duration("took", time.Since(started)))
	out.Notification = u.notice(out.Notification)
	return out, nil
}

func (u *EconomyUseCase) exec(ctx context.Context, userID string, fn commandFunc) (*port.Outcome, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.Invalid("user_id", "must not be empty")
	}
	release, err := u.gates.acquire(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wait for user gate: %w", err)
	}
	defer release()

	var out *port.Outcome
	err = u.store.Atomic(ctx, func(ctx context.Context, repos port.Repositories) error {
		var err error
		out, err = fn(ctx, repos)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *EconomyUseCase) requireUser(ctx context.Context, repos port.LedgerRepository, userID string) error {
	user, err := repos.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return nil
}

func (u *EconomyUseCase) notice(n domain.Notification) domain.Notification {
	n.DismissAfter = u.dismissAfter
	return n
}
