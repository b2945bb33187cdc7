package port

import (
	"context"

	"coinloop/internal/core/domain"
)

// EconomyUseCase is the inbound port of the economy engine. Every command
// runs as one atomic unit and commands for the same user never overlap.
// Commands always return an Outcome carrying a notification, even when the
// returned error is non-nil; the error wraps one of the domain sentinels.
type EconomyUseCase interface {
	// CompleteTask removes the task from the pool and credits its reward as
	// an earn transaction. A task that is already gone yields ErrTaskNotFound
	// and no ledger effect.
	CompleteTask(ctx context.Context, userID, taskID string) (*Outcome, error)

	// SkipTask removes the task from the pool without a ledger effect.
	SkipTask(ctx context.Context, userID, taskID string) (*Outcome, error)

	// CreateCampaign debits totalRequested*costPerAction and persists the
	// campaign, or does neither.
	CreateCampaign(ctx context.Context, userID string, spec domain.CampaignSpec) (*Outcome, error)

	// DeleteCampaign removes the campaign and refunds undelivered actions as
	// a bonus transaction in the same unit of work.
	DeleteCampaign(ctx context.Context, userID, campaignID string) (*Outcome, error)

	// ToggleCampaignStatus flips active and paused.
	ToggleCampaignStatus(ctx context.Context, userID, campaignID string) (*Outcome, error)

	// UpdateCampaign applies a patch. Funds already committed are not
	// re-settled.
	UpdateCampaign(ctx context.Context, userID, campaignID string, patch domain.CampaignPatch) (*Outcome, error)

	// AddCredits records a purchase already confirmed by the payment
	// provider.
	AddCredits(ctx context.Context, userID string, amount int64) (*Outcome, error)

	// RecordCampaignCompletion counts delivered actions against a campaign,
	// capped at its requested total.
	RecordCampaignCompletion(ctx context.Context, campaignID string, count int64) (*Outcome, error)

	// RegisterUser provisions a user or updates the onboarding profile of an
	// existing one. Balances are never touched.
	RegisterUser(ctx context.Context, profile domain.Profile) (*domain.User, error)

	// SupplyTask adds a task to the pool on behalf of the task supplier.
	SupplyTask(ctx context.Context, task domain.Task) (*domain.Task, error)

	// Wallet returns the user with the transaction log, newest first.
	Wallet(ctx context.Context, userID string) (*Wallet, error)

	// ListTasks returns pooled tasks visible to the user.
	ListTasks(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error)

	// ListCampaigns returns the user's own campaigns.
	ListCampaigns(ctx context.Context, userID string) ([]domain.Campaign, error)

	// Reconcile checks that the stored balance equals the signed sum of the
	// log and returns ErrLedgerMismatch otherwise.
	Reconcile(ctx context.Context, userID string) (*Wallet, error)
}

// Outcome is the result of a command. Fields not touched by the command are
// left nil or zero. It is a DTO for the presentation layer.
type Outcome struct {
	User         *domain.User        `json:"user,omitempty"`
	Task         *domain.Task        `json:"task,omitempty"`
	Campaign     *domain.Campaign    `json:"campaign,omitempty"`
	Transaction  *domain.Transaction `json:"transaction,omitempty"`
	Refund       int64               `json:"refund,omitempty"`
	Notification domain.Notification `json:"notification"`
}

// Wallet is the balance view of a user.
type Wallet struct {
	User         domain.User          `json:"user"`
	Transactions []domain.Transaction `json:"transactions"`
}
