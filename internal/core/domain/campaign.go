package domain

import "time"

// CampaignStatus is either active or paused. Deleted campaigns no longer
// exist in storage.
type CampaignStatus string

const (
	CampaignActive CampaignStatus = "active"
	CampaignPaused CampaignStatus = "paused"
)

// Targeting describes who should see a campaign.
type Targeting struct {
	Country string `json:"country"`
}

// Campaign is an advertiser's standing, prepaid request for actions.
// Amounts are integer credits. 0 <= CompletedCount <= TotalRequested.
type Campaign struct {
	ID             string         `json:"id"`
	OwnerID        string         `json:"owner_id"`
	Platform       Platform       `json:"platform"`
	Action         Action         `json:"action"`
	TargetURL      string         `json:"target_url"`
	Description    string         `json:"description"`
	TotalRequested int64          `json:"total_requested"`
	CompletedCount int64          `json:"completed_count"`
	CostPerAction  int64          `json:"cost_per_action"`
	Status         CampaignStatus `json:"status"`
	Targeting      Targeting      `json:"targeting"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Remaining returns the number of actions not yet delivered, never negative.
func (c Campaign) Remaining() int64 {
	if r := c.TotalRequested - c.CompletedCount; r > 0 {
		return r
	}
	return 0
}

// Exhausted reports whether every requested action has been delivered.
func (c Campaign) Exhausted() bool {
	return c.CompletedCount >= c.TotalRequested
}

// CampaignSummary is the dashboard headline over an advertiser's campaigns.
type CampaignSummary struct {
	ActiveCampaigns   int   `json:"active_campaigns"`
	TotalInteractions int64 `json:"total_interactions"`
}

// SummarizeCampaigns counts active campaigns and sums delivered actions
// across all of them, paused ones included.
func SummarizeCampaigns(campaigns []Campaign) CampaignSummary {
	var sum CampaignSummary
	for _, c := range campaigns {
		if c.Status == CampaignActive {
			sum.ActiveCampaigns++
		}
		sum.TotalInteractions += c.CompletedCount
	}
	return sum
}

// CampaignSpec is the advertiser input for a new campaign.
type CampaignSpec struct {
	Platform       Platform  `json:"platform"`
	Action         Action    `json:"action"`
	TargetURL      string    `json:"target_url"`
	Description    string    `json:"description"`
	TotalRequested int64     `json:"total_requested"`
	CostPerAction  int64     `json:"cost_per_action"`
	Targeting      Targeting `json:"targeting"`
}

// CampaignPatch holds optional field changes. Nil fields are left as is.
type CampaignPatch struct {
	TargetURL      *string    `json:"target_url,omitempty"`
	Description    *string    `json:"description,omitempty"`
	TotalRequested *int64     `json:"total_requested,omitempty"`
	CostPerAction  *int64     `json:"cost_per_action,omitempty"`
	Targeting      *Targeting `json:"targeting,omitempty"`
}
