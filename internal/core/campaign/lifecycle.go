// Package campaign owns advertiser campaigns: validation, cost and refund
// arithmetic, status changes and completion counting. It never touches
// balances; the caller debits the returned cost and credits the returned
// refund in the same unit of work.
package campaign

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"coinloop/internal/core/domain"
	"coinloop/internal/core/port"
)

// Lifecycle implements campaign operations on top of a CampaignRepository.
type Lifecycle struct {
	now   func() time.Time
	newID func() string
}

// New returns a Lifecycle.
func New() *Lifecycle {
	return &Lifecycle{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Create validates spec and builds an active campaign owned by ownerID
// together with its funding cost. Nothing is persisted; see Save.
func (l *Lifecycle) Create(ownerID string, spec domain.CampaignSpec) (*domain.Campaign, int64, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, 0, domain.Invalid("owner_id", "must not be empty")
	}
	if !spec.Platform.Valid() {
		return nil, 0, domain.Invalid("platform", fmt.Sprintf("unsupported platform %q", spec.Platform))
	}
	if !spec.Action.Valid() {
		return nil, 0, domain.Invalid("action", fmt.Sprintf("unsupported action %q", spec.Action))
	}
	if strings.TrimSpace(spec.TargetURL) == "" {
		return nil, 0, domain.Invalid("target_url", "must not be empty")
	}
	cost, err := fundingCost(spec.TotalRequested, spec.CostPerAction)
	if err != nil {
		return nil, 0, err
	}
	now := l.now()
	c := &domain.Campaign{
		ID:             l.newID(),
		OwnerID:        ownerID,
		Platform:       spec.Platform,
		Action:         spec.Action,
		TargetURL:      spec.TargetURL,
		Description:    spec.Description,
		TotalRequested: spec.TotalRequested,
		CostPerAction:  spec.CostPerAction,
		Status:         domain.CampaignActive,
		Targeting:      normalizeTargeting(spec.Targeting),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return c, cost, nil
}

// Save persists a campaign built by Create.
func (l *Lifecycle) Save(ctx context.Context, repo port.CampaignRepository, c domain.Campaign) error {
	if err := repo.InsertCampaign(ctx, c); err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// ToggleStatus flips active and paused. Counts and funds are unaffected.
func (l *Lifecycle) ToggleStatus(ctx context.Context, repo port.CampaignRepository, ownerID, id string) (*domain.Campaign, error) {
	c, err := l.owned(ctx, repo, ownerID, id)
	if err != nil {
		return nil, err
	}
	if c.Status == domain.CampaignActive {
		c.Status = domain.CampaignPaused
	} else {
		c.Status = domain.CampaignActive
	}
	return c, l.update(ctx, repo, c)
}

// Update applies patch. Changing the requested total or the per-action cost
// does not re-settle funds already committed for the campaign.
func (l *Lifecycle) Update(ctx context.Context, repo port.CampaignRepository, ownerID, id string, patch domain.CampaignPatch) (*domain.Campaign, error) {
	c, err := l.owned(ctx, repo, ownerID, id)
	if err != nil {
		return nil, err
	}
	if patch.TargetURL != nil {
		if strings.TrimSpace(*patch.TargetURL) == "" {
			return nil, domain.Invalid("target_url", "must not be empty")
		}
		c.TargetURL = *patch.TargetURL
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.TotalRequested != nil {
		c.TotalRequested = *patch.TotalRequested
	}
	if patch.CostPerAction != nil {
		c.CostPerAction = *patch.CostPerAction
	}
	if patch.Targeting != nil {
		c.Targeting = normalizeTargeting(*patch.Targeting)
	}
	if _, err = fundingCost(c.TotalRequested, c.CostPerAction); err != nil {
		return nil, err
	}
	if c.TotalRequested < c.CompletedCount {
		return nil, domain.Invalid("total_requested", fmt.Sprintf("below completed count %d", c.CompletedCount))
	}
	return c, l.update(ctx, repo, c)
}

// Delete removes a campaign and returns it with the refund owed for the
// actions never delivered.
func (l *Lifecycle) Delete(ctx context.Context, repo port.CampaignRepository, ownerID, id string) (*domain.Campaign, int64, error) {
	c, err := l.owned(ctx, repo, ownerID, id)
	if err != nil {
		return nil, 0, err
	}
	if err = repo.DeleteCampaign(ctx, c.ID); err != nil {
		return nil, 0, fmt.Errorf("delete campaign: %w", err)
	}
	return c, Refund(*c), nil
}

// RecordCompletion adds count delivered actions, capped at the requested
// total. An already exhausted campaign is rejected.
func (l *Lifecycle) RecordCompletion(ctx context.Context, repo port.CampaignRepository, id string, count int64) (*domain.Campaign, error) {
	if count <= 0 {
		return nil, domain.Invalid("count", "must be positive")
	}
	c, err := l.get(ctx, repo, id)
	if err != nil {
		return nil, err
	}
	if c.Exhausted() {
		return nil, fmt.Errorf("%w: %d of %d delivered", domain.ErrCampaignExhausted, c.CompletedCount, c.TotalRequested)
	}
	c.CompletedCount += min(count, c.Remaining())
	return c, l.update(ctx, repo, c)
}

// Get returns a campaign regardless of owner.
func (l *Lifecycle) Get(ctx context.Context, repo port.CampaignRepository, id string) (*domain.Campaign, error) {
	return l.get(ctx, repo, id)
}

// Refund is the credit owed back for undelivered actions.
func Refund(c domain.Campaign) int64 {
	return c.Remaining() * c.CostPerAction
}

func (l *Lifecycle) get(ctx context.Context, repo port.CampaignRepository, id string) (*domain.Campaign, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.Invalid("campaign_id", "must not be empty")
	}
	c, err := repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return c, nil
}

// owned hides campaigns of other advertisers behind ErrCampaignNotFound.
func (l *Lifecycle) owned(ctx context.Context, repo port.CampaignRepository, ownerID, id string) (*domain.Campaign, error) {
	c, err := l.get(ctx, repo, id)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != ownerID {
		return nil, domain.ErrCampaignNotFound
	}
	return c, nil
}

func (l *Lifecycle) update(ctx context.Context, repo port.CampaignRepository, c *domain.Campaign) error {
	c.UpdatedAt = l.now()
	if err := repo.UpdateCampaign(ctx, *c); err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	return nil
}

func fundingCost(total, perAction int64) (int64, error) {
	if total <= 0 {
		return 0, domain.Invalid("total_requested", "must be positive")
	}
	if perAction <= 0 {
		return 0, domain.Invalid("cost_per_action", "must be positive")
	}
	if total > math.MaxInt64/perAction {
		return 0, domain.Invalid("total_requested", "cost overflows")
	}
	return total * perAction, nil
}

func normalizeTargeting(t domain.Targeting) domain.Targeting {
	if strings.TrimSpace(t.Country) == "" {
		t.Country = domain.Worldwide
	}
	return t
}
