package taskpool_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinloop/internal/adapter/memory"
	"coinloop/internal/core/domain"
	"coinloop/internal/core/taskpool"
)

func TestAddAssignsDefaults(t *testing.T) {
	store := memory.NewStore()
	pool := taskpool.New()

	task, err := pool.Add(context.Background(), store, domain.Task{
		Platform: domain.PlatformYouTube,
		Action:   domain.ActionComment,
		Reward:   8,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, domain.Worldwide, task.Country)
	assert.False(t, task.CreatedAt.IsZero())
	assert.Positive(t, task.Seq)
}

func TestAddRejectsInvalid(t *testing.T) {
	store := memory.NewStore()
	pool := taskpool.New()
	cases := map[string]domain.Task{
		"platform": {Platform: "Vine", Action: domain.ActionLike, Reward: 1},
		"action":   {Platform: domain.PlatformTwitter, Action: "Poke", Reward: 1},
		"reward":   {Platform: domain.PlatformTwitter, Action: domain.ActionLike},
	}
	for field, task := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := pool.Add(context.Background(), store, task)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, field, verr.Field)
		})
	}
	tasks, err := store.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestListKeepsArrivalOrder(t *testing.T) {
	store := memory.NewStore()
	pool := taskpool.New()
	ctx := context.Background()
	for _, id := range []string{"t3", "t1", "t2"} {
		_, err := pool.Add(ctx, store, domain.Task{ID: id, Platform: domain.PlatformFacebook, Action: domain.ActionShare, Reward: 2})
		require.NoError(t, err)
	}

	tasks, err := pool.List(ctx, store, domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "t3", tasks[0].ID)
	assert.Equal(t, "t1", tasks[1].ID)
	assert.Equal(t, "t2", tasks[2].ID)

	tasks, err = pool.List(ctx, store, domain.TaskFilter{Action: domain.ActionLike})
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTakeRemovesExactlyOnce(t *testing.T) {
	store := memory.NewStore()
	pool := taskpool.New()
	ctx := context.Background()
	_, err := pool.Add(ctx, store, domain.Task{ID: "t1", Platform: domain.PlatformInstagram, Action: domain.ActionLike, Reward: 5})
	require.NoError(t, err)

	task, err := pool.Complete(ctx, store, "t1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), task.Reward)

	_, err = pool.Complete(ctx, store, "t1")
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	_, err = pool.Skip(ctx, store, "t1")
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	_, err = pool.Skip(ctx, store, " ")
	require.ErrorIs(t, err, domain.ErrValidation)
}
