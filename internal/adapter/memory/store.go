// Package memory is an in-process implementation of port.Store. Writes made
// inside Atomic are staged and applied only when the unit of work succeeds.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"coinloop/internal/core/domain"
	"coinloop/internal/core/port"
)

type storedCampaign struct {
	campaign domain.Campaign
	seq      int64
}

type state struct {
	users     map[string]domain.User
	txs       map[string][]domain.Transaction
	tasks     []domain.Task
	campaigns map[string]storedCampaign
	seq       int64
}

// Store keeps all state in maps guarded by one lock. Units of work run one
// at a time; reads outside Atomic see only committed state.
type Store struct {
	mu sync.RWMutex
	st state
}

var _ port.Store = (*Store)(nil)

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{st: state{
		users:     make(map[string]domain.User),
		txs:       make(map[string][]domain.Transaction),
		campaigns: make(map[string]storedCampaign),
	}}
}

// Atomic runs fn against a staging area and applies its writes when fn
// returns nil and ctx is still live.
func (s *Store) Atomic(ctx context.Context, fn func(ctx context.Context, repos port.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := newStage(&s.st)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	tx.apply()
	return nil
}

func (s *Store) GetUser(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.st.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) SaveUser(ctx context.Context, user domain.User) error {
	return s.Atomic(ctx, func(ctx context.Context, repos port.Repositories) error {
		return repos.SaveUser(ctx, user)
	})
}

func (s *Store) AppendTransaction(ctx context.Context, t domain.Transaction) error {
	return s.Atomic(ctx, func(ctx context.Context, repos port.Repositories) error {
		return repos.AppendTransaction(ctx, t)
	})
}

func (s *Store) ListTransactions(_ context.Context, userID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.st.txs[userID]), nil
}

func (s *Store) ListTasks(_ context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.st.tasks), nil
}

func (s *Store) AddTask(ctx context.Context, task *domain.Task) error {
	return s.Atomic(ctx, func(ctx context.Context, repos port.Repositories) error {
		return repos.AddTask(ctx, task)
	})
}

func (s *Store) RemoveTask(ctx context.Context, id string) (task *domain.Task, err error) {
	err = s.Atomic(ctx, func(ctx context.Context, repos port.Repositories) error {
		task, err = repos.RemoveTask(ctx, id)
		return err
	})
	return task, err
}

func (s *Store) GetCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.st.campaigns[id]
	if !ok {
		return nil, nil
	}
	c := sc.campaign
	return &c, nil
}

func (s *Store) ListCampaigns(_ context.Context, ownerID string) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listCampaigns(s.st.campaigns, ownerID), nil
}

func (s *Store) InsertCampaign(ctx context.Context, c domain.Campaign) error {
	return s.Atomic(ctx, func(ctx context.Context, repos port.Repositories) error {
		return repos.InsertCampaign(ctx, c)
	})
}

func (s *Store) UpdateCampaign(ctx context.Context, c domain.Campaign) error {
	return s.Atomic(ctx, func(ctx context.Context, repos port.Repositories) error {
		return repos.UpdateCampaign(ctx, c)
	})
}

func (s *Store) DeleteCampaign(ctx context.Context, id string) error {
	return s.Atomic(ctx, func(ctx context.Context, repos port.Repositories) error {
		return repos.DeleteCampaign(ctx, id)
	})
}

func listCampaigns(all map[string]storedCampaign, ownerID string) []domain.Campaign {
	owned := make([]storedCampaign, 0)
	for _, sc := range all {
		if sc.campaign.OwnerID == ownerID {
			owned = append(owned, sc)
		}
	}
	slices.SortFunc(owned, func(a, b storedCampaign) int {
		return cmp.Compare(b.seq, a.seq)
	})
	out := make([]domain.Campaign, len(owned))
	for i, sc := range owned {
		out[i] = sc.campaign
	}
	return out
}
