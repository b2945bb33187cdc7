// Package ledger owns user balances and the append-only transaction log.
// Every balance change is written together with the entry that explains it,
// so the repositories passed in must be bound to a single unit of work
// (see port.Store.Atomic).
package ledger

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"coinloop/internal/core/domain"
	"coinloop/internal/core/port"
)

// Ledger posts credits and debits. It holds no state of its own.
type Ledger struct {
	now   func() time.Time
	newID func() string
}

// Option customises a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source used to stamp entries.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIDs overrides the transaction id generator.
func WithIDs(newID func() string) Option {
	return func(l *Ledger) { l.newID = newID }
}

// New returns a Ledger stamping entries with UTC wall time and uuid ids.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Credit increases the balance by amount and appends an entry of the given
// additive kind. It returns the entry and the updated user.
func (l *Ledger) Credit(ctx context.Context, repo port.LedgerRepository, userID string, amount int64, kind domain.TransactionKind, description string) (*domain.Transaction, *domain.User, error) {
	if kind == domain.KindSpend || !kind.Valid() {
		return nil, nil, domain.Invalid("kind", fmt.Sprintf("%q cannot be credited", kind))
	}
	if amount <= 0 {
		return nil, nil, domain.Invalid("amount", "must be positive")
	}
	user, err := l.load(ctx, repo, userID)
	if err != nil {
		return nil, nil, err
	}
	if user.Credits > math.MaxInt64-amount {
		return nil, nil, domain.Invalid("amount", "balance would overflow")
	}
	return l.post(ctx, repo, user, user.Credits+amount, amount, kind, description)
}

// Debit decreases the balance by amount and appends an entry of the given
// subtractive kind. When the balance would go negative it returns
// ErrInsufficientFunds and writes nothing.
func (l *Ledger) Debit(ctx context.Context, repo port.LedgerRepository, userID string, amount int64, kind domain.TransactionKind, description string) (*domain.Transaction, *domain.User, error) {
	if kind.Sign() > 0 {
		return nil, nil, domain.Invalid("kind", fmt.Sprintf("%q cannot be debited", kind))
	}
	if amount <= 0 {
		return nil, nil, domain.Invalid("amount", "must be positive")
	}
	user, err := l.load(ctx, repo, userID)
	if err != nil {
		return nil, nil, err
	}
	if user.Credits < amount {
		return nil, nil, fmt.Errorf("%w: balance %d, need %d", domain.ErrInsufficientFunds, user.Credits, amount)
	}
	return l.post(ctx, repo, user, user.Credits-amount, amount, kind, description)
}

// Reconcile loads a user and its log and verifies that the stored balance
// equals the signed sum of the log.
func (l *Ledger) Reconcile(ctx context.Context, repo port.LedgerRepository, userID string) (*domain.User, []domain.Transaction, error) {
	user, err := l.load(ctx, repo, userID)
	if err != nil {
		return nil, nil, err
	}
	txs, err := repo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("list transactions: %w", err)
	}
	if sum := domain.SignedSum(txs); sum != user.Credits {
		return user, txs, fmt.Errorf("%w: balance %d, log %d", domain.ErrLedgerMismatch, user.Credits, sum)
	}
	return user, txs, nil
}

func (l *Ledger) load(ctx context.Context, repo port.LedgerRepository, userID string) (*domain.User, error) {
	user, err := repo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (l *Ledger) post(ctx context.Context, repo port.LedgerRepository, user *domain.User, balance, amount int64, kind domain.TransactionKind, description string) (*domain.Transaction, *domain.User, error) {
	now := l.now()
	tx := domain.Transaction{
		ID:          l.newID(),
		UserID:      user.ID,
		Kind:        kind,
		Amount:      amount,
		Description: description,
		CreatedAt:   now,
	}
	if err := repo.AppendTransaction(ctx, tx); err != nil {
		return nil, nil, fmt.Errorf("append transaction: %w", err)
	}
	updated := *user
	updated.Credits = balance
	updated.UpdatedAt = now
	if err := repo.SaveUser(ctx, updated); err != nil {
		return nil, nil, fmt.Errorf("save user: %w", err)
	}
	return &tx, &updated, nil
}
