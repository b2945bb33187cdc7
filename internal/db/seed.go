package db

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"coinloop/internal/core/domain"
	"coinloop/internal/core/port"
)

//go:embed demo_seed.toml
var demoSeed []byte

// SeedData is the content of a seed file.
type SeedData struct {
	Users     []SeedUser     `toml:"users" yaml:"users"`
	Tasks     []SeedTask     `toml:"tasks" yaml:"tasks"`
	Campaigns []SeedCampaign `toml:"campaigns" yaml:"campaigns"`
}

// SeedUser is provisioned and then granted Credits as a purchase.
type SeedUser struct {
	ID         string `toml:"id" yaml:"id"`
	Credits    int64  `toml:"credits" yaml:"credits"`
	Reputation int    `toml:"reputation" yaml:"reputation"`
	Streak     int    `toml:"streak" yaml:"streak"`
	Country    string `toml:"country" yaml:"country"`
	Language   string `toml:"language" yaml:"language"`
}

type SeedTask struct {
	ID           string `toml:"id" yaml:"id"`
	Platform     string `toml:"platform" yaml:"platform"`
	Action       string `toml:"action" yaml:"action"`
	Reward       int64  `toml:"reward" yaml:"reward"`
	Description  string `toml:"description" yaml:"description"`
	TargetURL    string `toml:"target_url" yaml:"target_url"`
	ThumbnailURL string `toml:"thumbnail_url" yaml:"thumbnail_url"`
	Country      string `toml:"country" yaml:"country"`
}

// SeedCampaign is funded by its owner; Completed actions are then recorded
// against it.
type SeedCampaign struct {
	Owner          string `toml:"owner" yaml:"owner"`
	Platform       string `toml:"platform" yaml:"platform"`
	Action         string `toml:"action" yaml:"action"`
	TargetURL      string `toml:"target_url" yaml:"target_url"`
	Description    string `toml:"description" yaml:"description"`
	TotalRequested int64  `toml:"total_requested" yaml:"total_requested"`
	CostPerAction  int64  `toml:"cost_per_action" yaml:"cost_per_action"`
	Completed      int64  `toml:"completed" yaml:"completed"`
	Country        string `toml:"country" yaml:"country"`
	Paused         bool   `toml:"paused" yaml:"paused"`
}

// ErrAlreadySeeded is returned when the first seed user already exists.
var ErrAlreadySeeded = errors.New("store already seeded")

// LoadSeed reads seed data from path, choosing the decoder by extension.
// An empty path returns the built-in demo data.
func LoadSeed(path string) (SeedData, error) {
	if path == "" {
		return ParseSeed(demoSeed, "toml")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return SeedData{}, err
	}
	return ParseSeed(raw, strings.TrimPrefix(filepath.Ext(path), "."))
}

// ParseSeed decodes seed data in the given format (toml, yaml or yml).
func ParseSeed(raw []byte, format string) (SeedData, error) {
	var data SeedData
	switch strings.ToLower(format) {
	case "toml":
		if _, err := toml.Decode(string(raw), &data); err != nil {
			return data, fmt.Errorf("decode toml seed: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return data, fmt.Errorf("decode yaml seed: %w", err)
		}
	default:
		return data, fmt.Errorf("unsupported seed format %q", format)
	}
	return data, nil
}

// Seed loads demo data through the economy usecase so that every balance is
// backed by ledger entries. It refuses to run twice against the same store.
func Seed(ctx context.Context, svc port.EconomyUseCase, data SeedData) error {
	if len(data.Users) > 0 {
		_, err := svc.Wallet(ctx, data.Users[0].ID)
		if err == nil {
			return ErrAlreadySeeded
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
	}
	for _, u := range data.Users {
		if _, err := svc.RegisterUser(ctx, domain.Profile{
			UserID:     u.ID,
			Reputation: u.Reputation,
			Streak:     u.Streak,
			Country:    u.Country,
			Language:   u.Language,
		}); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
		if u.Credits > 0 {
			if _, err := svc.AddCredits(ctx, u.ID, u.Credits); err != nil {
				return fmt.Errorf("seed credits %s: %w", u.ID, err)
			}
		}
	}
	for _, t := range data.Tasks {
		if _, err := svc.SupplyTask(ctx, domain.Task{
			ID:           t.ID,
			Platform:     domain.Platform(t.Platform),
			Action:       domain.Action(t.Action),
			Reward:       t.Reward,
			Description:  t.Description,
			TargetURL:    t.TargetURL,
			ThumbnailURL: t.ThumbnailURL,
			Country:      t.Country,
		}); err != nil {
			return fmt.Errorf("seed task %s: %w", t.ID, err)
		}
	}
	for i, c := range data.Campaigns {
		out, err := svc.CreateCampaign(ctx, c.Owner, domain.CampaignSpec{
			Platform:       domain.Platform(c.Platform),
			Action:         domain.Action(c.Action),
			TargetURL:      c.TargetURL,
			Description:    c.Description,
			TotalRequested: c.TotalRequested,
			CostPerAction:  c.CostPerAction,
			Targeting:      domain.Targeting{Country: c.Country},
		})
		if err != nil {
			return fmt.Errorf("seed campaign %d: %w", i, err)
		}
		id := out.Campaign.ID
		if c.Completed > 0 {
			if _, err = svc.RecordCampaignCompletion(ctx, id, c.Completed); err != nil {
				return fmt.Errorf("seed completions %d: %w", i, err)
			}
		}
		if c.Paused {
			if _, err = svc.ToggleCampaignStatus(ctx, c.Owner, id); err != nil {
				return fmt.Errorf("seed pause %d: %w", i, err)
			}
		}
	}
	return nil
}
