package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"coinloop/internal/core/domain"
)

// stage records the writes of one unit of work on top of committed state.
// A nil entry in campaigns marks a deletion.
type stage struct {
	base      *state
	users     map[string]domain.User
	txs       map[string][]domain.Transaction
	added     []domain.Task
	removed   map[string]bool
	campaigns map[string]*storedCampaign
	seq       int64
}

func newStage(base *state) *stage {
	return &stage{
		base:      base,
		users:     make(map[string]domain.User),
		txs:       make(map[string][]domain.Transaction),
		removed:   make(map[string]bool),
		campaigns: make(map[string]*storedCampaign),
		seq:       base.seq,
	}
}

func (s *stage) GetUser(_ context.Context, id string) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	if u, ok := s.base.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *stage) SaveUser(_ context.Context, user domain.User) error {
	if user.ID == "" {
		return fmt.Errorf("save user: empty id")
	}
	s.users[user.ID] = user
	return nil
}

func (s *stage) AppendTransaction(_ context.Context, t domain.Transaction) error {
	s.txs[t.UserID] = append(s.txs[t.UserID], t)
	return nil
}

func (s *stage) ListTransactions(_ context.Context, userID string) ([]domain.Transaction, error) {
	out := slices.Clone(s.base.txs[userID])
	return append(out, s.txs[userID]...), nil
}

func (s *stage) ListTasks(_ context.Context) ([]domain.Task, error) {
	out := make([]domain.Task, 0, len(s.base.tasks)+len(s.added))
	for _, t := range s.base.tasks {
		if !s.removed[t.ID] {
			out = append(out, t)
		}
	}
	return append(out, s.added...), nil
}

func (s *stage) AddTask(_ context.Context, task *domain.Task) error {
	for _, t := range s.base.tasks {
		if t.ID == task.ID && !s.removed[t.ID] {
			return fmt.Errorf("%w: %s", domain.ErrTaskExists, task.ID)
		}
	}
	for _, t := range s.added {
		if t.ID == task.ID {
			return fmt.Errorf("%w: %s", domain.ErrTaskExists, task.ID)
		}
	}
	s.seq++
	task.Seq = s.seq
	s.added = append(s.added, *task)
	return nil
}

func (s *stage) RemoveTask(_ context.Context, id string) (*domain.Task, error) {
	for i, t := range s.added {
		if t.ID == id {
			s.added = slices.Delete(s.added, i, i+1)
			return &t, nil
		}
	}
	if s.removed[id] {
		return nil, nil
	}
	for _, t := range s.base.tasks {
		if t.ID == id {
			s.removed[id] = true
			return &t, nil
		}
	}
	return nil, nil
}

func (s *stage) lookupCampaign(id string) (*storedCampaign, bool) {
	if sc, ok := s.campaigns[id]; ok {
		return sc, sc != nil
	}
	if sc, ok := s.base.campaigns[id]; ok {
		return &sc, true
	}
	return nil, false
}

func (s *stage) GetCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	sc, ok := s.lookupCampaign(id)
	if !ok {
		return nil, nil
	}
	c := sc.campaign
	return &c, nil
}

func (s *stage) ListCampaigns(_ context.Context, ownerID string) ([]domain.Campaign, error) {
	merged := maps.Clone(s.base.campaigns)
	for id, sc := range s.campaigns {
		if sc == nil {
			delete(merged, id)
			continue
		}
		merged[id] = *sc
	}
	return listCampaigns(merged, ownerID), nil
}

func (s *stage) InsertCampaign(_ context.Context, c domain.Campaign) error {
	if _, ok := s.lookupCampaign(c.ID); ok {
		return fmt.Errorf("campaign %s already exists", c.ID)
	}
	s.seq++
	s.campaigns[c.ID] = &storedCampaign{campaign: c, seq: s.seq}
	return nil
}

func (s *stage) UpdateCampaign(_ context.Context, c domain.Campaign) error {
	sc, ok := s.lookupCampaign(c.ID)
	if !ok {
		return domain.ErrCampaignNotFound
	}
	s.campaigns[c.ID] = &storedCampaign{campaign: c, seq: sc.seq}
	return nil
}

func (s *stage) DeleteCampaign(_ context.Context, id string) error {
	if _, ok := s.lookupCampaign(id); !ok {
		return domain.ErrCampaignNotFound
	}
	s.campaigns[id] = nil
	return nil
}

// apply publishes the staged writes. The caller holds the store lock.
func (s *stage) apply() {
	for id, u := range s.users {
		s.base.users[id] = u
	}
	for id, txs := range s.txs {
		s.base.txs[id] = append(s.base.txs[id], txs...)
	}
	if len(s.removed) > 0 {
		s.base.tasks = slices.DeleteFunc(s.base.tasks, func(t domain.Task) bool {
			return s.removed[t.ID]
		})
	}
	s.base.tasks = append(s.base.tasks, s.added...)
	for id, sc := range s.campaigns {
		if sc == nil {
			delete(s.base.campaigns, id)
			continue
		}
		s.base.campaigns[id] = *sc
	}
	s.base.seq = s.seq
}
