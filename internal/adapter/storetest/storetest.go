// Package storetest holds the behaviour every port.Store implementation must
// show. Adapters run it from their own tests.
package storetest

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"coinloop/internal/core/domain"
	"coinloop/internal/core/port"
)

// Run exercises store. newStore must return an empty, migrated store.
func Run(t *testing.T, newStore func(t *testing.T) port.Store) {
	t.Run("users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("transactions", func(t *testing.T) { testTransactions(t, newStore(t)) })
	t.Run("tasks", func(t *testing.T) { testTasks(t, newStore(t)) })
	t.Run("campaigns", func(t *testing.T) { testCampaigns(t, newStore(t)) })
	t.Run("rollback", func(t *testing.T) { testRollback(t, newStore(t)) })
	t.Run("commit", func(t *testing.T) { testCommit(t, newStore(t)) })
	t.Run("concurrent task claim", func(t *testing.T) { testConcurrentClaim(t, newStore(t)) })
	t.Run("concurrent debit", func(t *testing.T) { testConcurrentDebit(t, newStore(t)) })
}

var now = time.Date(2024, 5, 1, 12, 30, 0, 123456000, time.UTC)

func user(id string, credits int64) domain.User {
	return domain.User{
		ID:         id,
		Credits:    credits,
		Reputation: 98,
		Streak:     5,
		Country:    "USA",
		Language:   "EN",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func task(id string) *domain.Task {
	return &domain.Task{
		ID:        id,
		Platform:  domain.PlatformInstagram,
		Action:    domain.ActionLike,
		Reward:    5,
		TargetURL: "https://instagram.com/p/" + id,
		Country:   domain.Worldwide,
		CreatedAt: now,
	}
}

func campaign(id, owner string) domain.Campaign {
	return domain.Campaign{
		ID:             id,
		OwnerID:        owner,
		Platform:       domain.PlatformTikTok,
		Action:         domain.ActionView,
		TargetURL:      "https://tiktok.com/@" + owner,
		TotalRequested: 50,
		CostPerAction:  3,
		Status:         domain.CampaignActive,
		Targeting:      domain.Targeting{Country: domain.Worldwide},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func testUsers(t *testing.T, store port.Store) {
	ctx := context.Background()

	got, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.SaveUser(ctx, user("u1", 0)))
	updated := user("u1", 42)
	updated.Country = "Brazil"
	require.NoError(t, store.SaveUser(ctx, updated))

	got, err = store.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.Credits)
	assert.Equal(t, "Brazil", got.Country)
	assert.Equal(t, 98, got.Reputation)
	assert.True(t, now.Equal(got.CreatedAt))
}

func testTransactions(t *testing.T, store port.Store) {
	ctx := context.Background()
	require.NoError(t, store.SaveUser(ctx, user("u1", 0)))

	kinds := []domain.TransactionKind{domain.KindPurchase, domain.KindSpend, domain.KindEarn}
	for i, kind := range kinds {
		require.NoError(t, store.AppendTransaction(ctx, domain.Transaction{
			ID:          string(kind),
			UserID:      "u1",
			Kind:        kind,
			Amount:      int64(10 * (i + 1)),
			Description: "entry",
			CreatedAt:   now,
		}))
	}

	txs, err := store.ListTransactions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, txs, 3)
	for i, kind := range kinds {
		assert.Equal(t, kind, txs[i].Kind)
	}
	assert.Equal(t, int64(10-20+30), domain.SignedSum(txs))

	txs, err = store.ListTransactions(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func testTasks(t *testing.T, store port.Store) {
	ctx := context.Background()
	first, second := task("t1"), task("t2")
	require.NoError(t, store.AddTask(ctx, first))
	require.NoError(t, store.AddTask(ctx, second))
	assert.Less(t, first.Seq, second.Seq)
	require.ErrorIs(t, store.AddTask(ctx, task("t1")), domain.ErrTaskExists)

	err := store.Atomic(ctx, func(ctx context.Context, repos port.Repositories) error {
		return repos.AddTask(ctx, task("t2"))
	})
	require.ErrorIs(t, err, domain.ErrTaskExists)

	tasks, err := store.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "t1", tasks[0].ID)
	assert.Equal(t, "https://instagram.com/p/t1", tasks[0].TargetURL)

	removed, err := store.RemoveTask(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, int64(5), removed.Reward)

	removed, err = store.RemoveTask(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, removed)

	tasks, err = store.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "t2", tasks[0].ID)
}

func testCampaigns(t *testing.T, store port.Store) {
	ctx := context.Background()
	require.NoError(t, store.SaveUser(ctx, user("u1", 0)))
	require.NoError(t, store.SaveUser(ctx, user("u2", 0)))

	require.NoError(t, store.InsertCampaign(ctx, campaign("c1", "u1")))
	require.NoError(t, store.InsertCampaign(ctx, campaign("c2", "u1")))
	require.NoError(t, store.InsertCampaign(ctx, campaign("c3", "u2")))

	list, err := store.ListCampaigns(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c2", list[0].ID)
	assert.Equal(t, "c1", list[1].ID)

	c := campaign("c1", "u1")
	c.CompletedCount = 12
	c.Status = domain.CampaignPaused
	require.NoError(t, store.UpdateCampaign(ctx, c))

	got, err := store.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(12), got.CompletedCount)
	assert.Equal(t, domain.CampaignPaused, got.Status)
	assert.Equal(t, domain.Worldwide, got.Targeting.Country)

	require.NoError(t, store.DeleteCampaign(ctx, "c1"))
	got, err = store.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.ErrorIs(t, store.DeleteCampaign(ctx, "c1"), domain.ErrCampaignNotFound)
	require.ErrorIs(t, store.UpdateCampaign(ctx, c), domain.ErrCampaignNotFound)
}

func testRollback(t *testing.T, store port.Store) {
	ctx := context.Background()
	require.NoError(t, store.SaveUser(ctx, user("u1", 10)))
	require.NoError(t, store.AddTask(ctx, task("t1")))

	boom := errors.New("boom")
	err := store.Atomic(ctx, func(ctx context.Context, repos port.Repositories) error {
		if err := repos.SaveUser(ctx, user("u1", 99)); err != nil {
			return err
		}
		if err := repos.AppendTransaction(ctx, domain.Transaction{
			ID: "x", UserID: "u1", Kind: domain.KindBonus, Amount: 89, CreatedAt: now,
		}); err != nil {
			return err
		}
		if _, err := repos.RemoveTask(ctx, "t1"); err != nil {
			return err
		}
		if err := repos.InsertCampaign(ctx, campaign("c1", "u1")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Credits)

	txs, err := store.ListTransactions(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, txs)

	tasks, err := store.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	c, err := store.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func testCommit(t *testing.T, store port.Store) {
	ctx := context.Background()
	require.NoError(t, store.AddTask(ctx, task("t1")))

	err := store.Atomic(ctx, func(ctx context.Context, repos port.Repositories) error {
		if err := repos.SaveUser(ctx, user("u1", 5)); err != nil {
			return err
		}
		// writes are visible inside the unit of work
		u, err := repos.GetUser(ctx, "u1")
		if err != nil {
			return err
		}
		if u == nil || u.Credits != 5 {
			return errors.New("staged user not visible")
		}
		if _, err = repos.RemoveTask(ctx, "t1"); err != nil {
			return err
		}
		tasks, err := repos.ListTasks(ctx)
		if err != nil {
			return err
		}
		if len(tasks) != 0 {
			return errors.New("removed task still listed")
		}
		return nil
	})
	require.NoError(t, err)

	got, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(5), got.Credits)

	tasks, err := store.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func testConcurrentClaim(t *testing.T, store port.Store) {
	ctx := context.Background()
	require.NoError(t, store.AddTask(ctx, task("t1")))

	var winners atomic.Int32
	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			return store.Atomic(ctx, func(ctx context.Context, repos port.Repositories) error {
				removed, err := repos.RemoveTask(ctx, "t1")
				if removed != nil {
					winners.Add(1)
				}
				return err
			})
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), winners.Load())
}

// testConcurrentDebit checks that a read-check-write inside Atomic cannot
// interleave with another unit of work on the same user.
func testConcurrentDebit(t *testing.T, store port.Store) {
	ctx := context.Background()
	require.NoError(t, store.SaveUser(ctx, user("u1", 50)))

	errShort := errors.New("short")
	var debited atomic.Int32
	var g errgroup.Group
	for range 10 {
		g.Go(func() error {
			err := store.Atomic(ctx, func(ctx context.Context, repos port.Repositories) error {
				u, err := repos.GetUser(ctx, "u1")
				if err != nil {
					return err
				}
				if u.Credits < 10 {
					return errShort
				}
				u.Credits -= 10
				return repos.SaveUser(ctx, *u)
			})
			if errors.Is(err, errShort) {
				return nil
			}
			if err == nil {
				debited.Add(1)
			}
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(5), debited.Load())

	got, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Credits)
}
