package port

import (
	"context"

	"coinloop/internal/core/domain"
)

// LedgerRepository persists users and their append-only transaction log.
// Get methods return nil, nil when the row does not exist.
type LedgerRepository interface {
	// GetUser returns a user. Inside Store.Atomic the row is locked for the
	// remainder of the transaction.
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// SaveUser inserts or replaces a user row, including its balance.
	SaveUser(ctx context.Context, user domain.User) error
	// AppendTransaction adds an entry to the log. Entries are never updated
	// or removed.
	AppendTransaction(ctx context.Context, tx domain.Transaction) error
	// ListTransactions returns a user's log in append order.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

// TaskRepository persists the pool of earnable tasks.
type TaskRepository interface {
	// ListTasks returns every pooled task in arrival order.
	ListTasks(ctx context.Context) ([]domain.Task, error)
	// AddTask appends a task to the pool and assigns its arrival sequence.
	AddTask(ctx context.Context, task *domain.Task) error
	// RemoveTask deletes a task and returns it. A task already gone yields
	// nil, nil so that a second removal can never observe the same task.
	RemoveTask(ctx context.Context, id string) (*domain.Task, error)
}

// CampaignRepository persists advertiser campaigns.
type CampaignRepository interface {
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// ListCampaigns returns an owner's campaigns, newest first.
	ListCampaigns(ctx context.Context, ownerID string) ([]domain.Campaign, error)
	InsertCampaign(ctx context.Context, c domain.Campaign) error
	UpdateCampaign(ctx context.Context, c domain.Campaign) error
	DeleteCampaign(ctx context.Context, id string) error
}

// Repositories groups every repository bound to one unit of work.
type Repositories interface {
	LedgerRepository
	TaskRepository
	CampaignRepository
}

// Store is the outbound persistence port. Reads made directly on the Store
// see committed state only. Atomic runs fn against repositories bound to a
// single transaction: every write made through them commits if fn returns
// nil and none of them is visible otherwise. Implementations must be safe
// for concurrent use.
type Store interface {
	Repositories
	Atomic(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
