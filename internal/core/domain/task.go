package domain

import "time"

// Task is one earnable action sitting in the pool.
type Task struct {
	ID           string    `json:"id"`
	Platform     Platform  `json:"platform"`
	Action       Action    `json:"action"`
	Reward       int64     `json:"reward"`
	Description  string    `json:"description"`
	TargetURL    string    `json:"target_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Country      string    `json:"country"`
	Seq          int64     `json:"-"` // arrival order
	CreatedAt    time.Time `json:"created_at"`
}

// TaskFilter narrows a pool listing. Zero fields do not filter.
type TaskFilter struct {
	Platform Platform
	Action   Action
	Country  string
}

// Matches reports whether t passes the filter.
func (f TaskFilter) Matches(t Task) bool {
	if f.Platform != "" && t.Platform != f.Platform {
		return false
	}
	if f.Action != "" && t.Action != f.Action {
		return false
	}
	return CountryMatches(t.Country, f.Country)
}
