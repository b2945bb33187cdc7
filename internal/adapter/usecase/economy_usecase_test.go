package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"coinloop/internal/adapter/memory"
	"coinloop/internal/core/domain"
)

func newService(t *testing.T, credits int64) (*EconomyUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := NewEconomyUseCase(store, nil)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, domain.Profile{UserID: "u1", Country: "USA", Language: "en"})
	require.NoError(t, err)
	if credits > 0 {
		_, err = svc.AddCredits(ctx, "u1", credits)
		require.NoError(t, err)
	}
	return svc, store
}

func supply(t *testing.T, svc *EconomyUseCase, id string, reward int64) {
	t.Helper()
	_, err := svc.SupplyTask(context.Background(), domain.Task{
		ID:       id,
		Platform: domain.PlatformInstagram,
		Action:   domain.ActionLike,
		Reward:   reward,
	})
	require.NoError(t, err)
}

func launch(t *testing.T, svc *EconomyUseCase, total, cost int64) *domain.Campaign {
	t.Helper()
	out, err := svc.CreateCampaign(context.Background(), "u1", domain.CampaignSpec{
		Platform:       domain.PlatformInstagram,
		Action:         domain.ActionFollow,
		TargetURL:      "https://instagram.com/coinloop",
		TotalRequested: total,
		CostPerAction:  cost,
	})
	require.NoError(t, err)
	return out.Campaign
}

// assertBalanced checks that the stored balance equals the signed log sum.
func assertBalanced(t *testing.T, svc *EconomyUseCase, want int64) {
	t.Helper()
	w, err := svc.Reconcile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, want, w.User.Credits)
	assert.Equal(t, want, domain.SignedSum(w.Transactions))
}

func TestCompleteTaskCreditsOnce(t *testing.T) {
	svc, _ := newService(t, 0)
	supply(t, svc, "t1", 5)
	ctx := context.Background()

	out, err := svc.CompleteTask(ctx, "u1", "t1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), out.User.Credits)
	assert.Equal(t, domain.KindEarn, out.Transaction.Kind)
	assert.Equal(t, "Task: Instagram Like", out.Transaction.Description)
	assert.Equal(t, "+5 Coins Earned!", out.Notification.Message)
	assert.Equal(t, domain.SeveritySuccess, out.Notification.Severity)
	assert.Equal(t, DefaultDismissAfter, out.Notification.DismissAfter)

	out, err = svc.CompleteTask(ctx, "u1", "t1")
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Equal(t, domain.SeverityInfo, out.Notification.Severity)
	assert.Nil(t, out.Transaction)

	w, err := svc.Wallet(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, w.Transactions, 1)
	assertBalanced(t, svc, 5)
}

func TestCompleteTaskUnknownUserKeepsTask(t *testing.T) {
	svc, _ := newService(t, 0)
	supply(t, svc, "t1", 5)
	ctx := context.Background()

	_, err := svc.CompleteTask(ctx, "ghost", "t1")
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	tasks, err := svc.ListTasks(ctx, "u1", domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "t1", tasks[0].ID)
}

func TestSkipTask(t *testing.T) {
	svc, _ := newService(t, 0)
	supply(t, svc, "t1", 5)
	ctx := context.Background()

	out, err := svc.SkipTask(ctx, "u1", "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", out.Task.ID)
	assert.Nil(t, out.Transaction)

	_, err = svc.SkipTask(ctx, "u1", "t1")
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	assertBalanced(t, svc, 0)
}

func TestCreateCampaignDebitsFunding(t *testing.T) {
	svc, _ := newService(t, 200)

	c := launch(t, svc, 50, 3)
	assert.Equal(t, domain.CampaignActive, c.Status)
	assert.Equal(t, int64(0), c.CompletedCount)
	assert.Equal(t, domain.Worldwide, c.Targeting.Country)

	w, err := svc.Wallet(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), w.User.Credits)
	require.Len(t, w.Transactions, 2)
	assert.Equal(t, domain.KindSpend, w.Transactions[0].Kind)
	assert.Equal(t, int64(150), w.Transactions[0].Amount)
	assertBalanced(t, svc, 50)
}

func TestCreateCampaignInsufficientFunds(t *testing.T) {
	svc, _ := newService(t, 100)
	ctx := context.Background()

	out, err := svc.CreateCampaign(ctx, "u1", domain.CampaignSpec{
		Platform:       domain.PlatformInstagram,
		Action:         domain.ActionFollow,
		TargetURL:      "https://instagram.com/coinloop",
		TotalRequested: 50,
		CostPerAction:  3,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, "Not enough credits", out.Notification.Message)
	assert.Equal(t, domain.SeverityError, out.Notification.Severity)

	campaigns, err := svc.ListCampaigns(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, campaigns)
	assertBalanced(t, svc, 100)
}

func TestCreateCampaignValidation(t *testing.T) {
	svc, _ := newService(t, 100)
	specs := map[string]domain.CampaignSpec{
		"zero total":   {Platform: domain.PlatformTikTok, Action: domain.ActionView, TargetURL: "x", CostPerAction: 1},
		"zero cost":    {Platform: domain.PlatformTikTok, Action: domain.ActionView, TargetURL: "x", TotalRequested: 1},
		"no target":    {Platform: domain.PlatformTikTok, Action: domain.ActionView, TotalRequested: 1, CostPerAction: 1},
		"bad platform": {Platform: "Orkut", Action: domain.ActionView, TargetURL: "x", TotalRequested: 1, CostPerAction: 1},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateCampaign(context.Background(), "u1", spec)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	assertBalanced(t, svc, 100)
}

func TestDeleteCampaignRefundsUndelivered(t *testing.T) {
	svc, _ := newService(t, 200)
	ctx := context.Background()
	c := launch(t, svc, 50, 3)

	_, err := svc.RecordCampaignCompletion(ctx, c.ID, 12)
	require.NoError(t, err)

	out, err := svc.DeleteCampaign(ctx, "u1", c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(114), out.Refund)
	assert.Equal(t, domain.KindBonus, out.Transaction.Kind)
	assert.Equal(t, "Refund: Instagram Campaign", out.Transaction.Description)
	assert.Equal(t, "Campaign deleted, 114 unused credits refunded", out.Notification.Message)
	assertBalanced(t, svc, 164)

	_, err = svc.DeleteCampaign(ctx, "u1", c.ID)
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
	assertBalanced(t, svc, 164)
}

func TestDeleteExhaustedCampaignHasNoRefund(t *testing.T) {
	svc, _ := newService(t, 10)
	ctx := context.Background()
	c := launch(t, svc, 2, 5)

	_, err := svc.RecordCampaignCompletion(ctx, c.ID, 5)
	require.NoError(t, err)

	out, err := svc.DeleteCampaign(ctx, "u1", c.ID)
	require.NoError(t, err)
	assert.Zero(t, out.Refund)
	assert.Nil(t, out.Transaction)
	assertBalanced(t, svc, 0)
}

func TestCampaignOwnership(t *testing.T) {
	svc, _ := newService(t, 100)
	ctx := context.Background()
	_, err := svc.RegisterUser(ctx, domain.Profile{UserID: "u2"})
	require.NoError(t, err)
	c := launch(t, svc, 10, 1)

	_, err = svc.DeleteCampaign(ctx, "u2", c.ID)
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
	_, err = svc.ToggleCampaignStatus(ctx, "u2", c.ID)
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)

	list, err := svc.ListCampaigns(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestToggleAndUpdateCampaign(t *testing.T) {
	svc, _ := newService(t, 100)
	ctx := context.Background()
	c := launch(t, svc, 10, 2)

	out, err := svc.ToggleCampaignStatus(ctx, "u1", c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPaused, out.Campaign.Status)
	out, err = svc.ToggleCampaignStatus(ctx, "u1", c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignActive, out.Campaign.Status)

	total := int64(40)
	desc := "more followers"
	out, err = svc.UpdateCampaign(ctx, "u1", c.ID, domain.CampaignPatch{TotalRequested: &total, Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, int64(40), out.Campaign.TotalRequested)
	assert.Equal(t, desc, out.Campaign.Description)

	// no re-settlement on update
	assertBalanced(t, svc, 80)
}

// Refunds are priced on the campaign's current terms, so growing a campaign
// after launch raises the refund above what was originally paid.
func TestDeleteRefundsOnCurrentTerms(t *testing.T) {
	svc, _ := newService(t, 100)
	ctx := context.Background()
	c := launch(t, svc, 10, 2)
	assertBalanced(t, svc, 80)

	total := int64(40)
	_, err := svc.UpdateCampaign(ctx, "u1", c.ID, domain.CampaignPatch{TotalRequested: &total})
	require.NoError(t, err)
	assertBalanced(t, svc, 80)

	out, err := svc.DeleteCampaign(ctx, "u1", c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(80), out.Refund)
	assertBalanced(t, svc, 160)
}

func TestSupplyDuplicateTask(t *testing.T) {
	svc, _ := newService(t, 0)
	supply(t, svc, "t1", 5)

	_, err := svc.SupplyTask(context.Background(), domain.Task{
		ID:       "t1",
		Platform: domain.PlatformTikTok,
		Action:   domain.ActionView,
		Reward:   9,
	})
	require.ErrorIs(t, err, domain.ErrTaskExists)
	require.ErrorIs(t, err, domain.ErrConflict)

	tasks, err := svc.ListTasks(context.Background(), "u1", domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, int64(5), tasks[0].Reward)
}

func TestRecordCompletionCapsAtTotal(t *testing.T) {
	svc, _ := newService(t, 100)
	ctx := context.Background()
	c := launch(t, svc, 3, 1)

	out, err := svc.RecordCampaignCompletion(ctx, c.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Campaign.CompletedCount)
	assert.Equal(t, "Campaign progress: 3 of 3", out.Notification.Message)

	_, err = svc.RecordCampaignCompletion(ctx, c.ID, 1)
	require.ErrorIs(t, err, domain.ErrCampaignExhausted)

	_, err = svc.RecordCampaignCompletion(ctx, "missing", 1)
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestAddCredits(t *testing.T) {
	svc, _ := newService(t, 0)
	ctx := context.Background()

	out, err := svc.AddCredits(ctx, "u1", 500)
	require.NoError(t, err)
	assert.Equal(t, "+500 Coins added to wallet", out.Notification.Message)
	assert.Equal(t, domain.KindPurchase, out.Transaction.Kind)

	_, err = svc.AddCredits(ctx, "u1", 0)
	require.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.AddCredits(ctx, "", 5)
	require.ErrorIs(t, err, domain.ErrValidation)
	assertBalanced(t, svc, 500)
}

func TestRegisterUser(t *testing.T) {
	svc, _ := newService(t, 40)
	ctx := context.Background()

	user, err := svc.RegisterUser(ctx, domain.Profile{UserID: "u1", Country: "Brazil", Language: "fr"})
	require.NoError(t, err)
	assert.Equal(t, "Brazil", user.Country)
	assert.Equal(t, "FR", user.Language)
	assert.Equal(t, int64(40), user.Credits)

	_, err = svc.RegisterUser(ctx, domain.Profile{UserID: "u1", Language: "de"})
	require.ErrorIs(t, err, domain.ErrValidation)

	fresh, err := svc.RegisterUser(ctx, domain.Profile{UserID: "u3"})
	require.NoError(t, err)
	assert.Equal(t, domain.Worldwide, fresh.Country)
	assert.Equal(t, "EN", fresh.Language)
	assert.Zero(t, fresh.Credits)
}

func TestListTasksUsesUserCountry(t *testing.T) {
	svc, _ := newService(t, 0)
	ctx := context.Background()
	for _, task := range []domain.Task{
		{ID: "a", Platform: domain.PlatformTikTok, Action: domain.ActionView, Reward: 1, Country: "USA"},
		{ID: "b", Platform: domain.PlatformTikTok, Action: domain.ActionView, Reward: 1, Country: "India"},
		{ID: "c", Platform: domain.PlatformYouTube, Action: domain.ActionLike, Reward: 1},
	} {
		_, err := svc.SupplyTask(ctx, task)
		require.NoError(t, err)
	}

	tasks, err := svc.ListTasks(ctx, "u1", domain.TaskFilter{})
	require.NoError(t, err)
	var ids []string
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)

	tasks, err = svc.ListTasks(ctx, "u1", domain.TaskFilter{Country: "India", Platform: domain.PlatformTikTok})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "b", tasks[0].ID)
}

func TestWalletNewestFirst(t *testing.T) {
	svc, _ := newService(t, 100)
	supply(t, svc, "t1", 5)
	_, err := svc.CompleteTask(context.Background(), "u1", "t1")
	require.NoError(t, err)

	w, err := svc.Wallet(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, w.Transactions, 2)
	assert.Equal(t, domain.KindEarn, w.Transactions[0].Kind)
	assert.Equal(t, domain.KindPurchase, w.Transactions[1].Kind)

	_, err = svc.Wallet(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestReconcileDetectsDrift(t *testing.T) {
	svc, store := newService(t, 30)
	require.NoError(t, store.SaveUser(context.Background(), domain.User{ID: "u1", Credits: 31}))

	w, err := svc.Reconcile(context.Background(), "u1")
	require.ErrorIs(t, err, domain.ErrLedgerMismatch)
	require.NotNil(t, w)
	assert.Equal(t, int64(31), w.User.Credits)
}

func TestConfiguredDismissAfter(t *testing.T) {
	store := memory.NewStore()
	svc := NewEconomyUseCase(store, nil, WithDismissAfter(time.Second))
	out, err := svc.AddCredits(context.Background(), "ghost", 5)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Equal(t, time.Second, out.Notification.DismissAfter)
	assert.Equal(t, "Account not found", out.Notification.Message)
}

// TestConcurrentCompletionsCreditOnce races many completions of the same
// tasks. Each task must be paid out exactly once.
func TestConcurrentCompletionsCreditOnce(t *testing.T) {
	svc, _ := newService(t, 0)
	ctx := context.Background()
	_, err := svc.RegisterUser(ctx, domain.Profile{UserID: "u2"})
	require.NoError(t, err)

	const tasks = 20
	for i := range tasks {
		supply(t, svc, fmt.Sprintf("t%d", i), 3)
	}

	var paid atomic.Int64
	var g errgroup.Group
	for i := range tasks {
		for _, user := range []string{"u1", "u2", "u1", "u2"} {
			id := fmt.Sprintf("t%d", i)
			g.Go(func() error {
				_, err := svc.CompleteTask(ctx, user, id)
				switch {
				case err == nil:
					paid.Add(1)
					return nil
				case isNotFound(err):
					return nil
				default:
					return err
				}
			})
		}
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int64(tasks), paid.Load())

	total := int64(0)
	for _, user := range []string{"u1", "u2"} {
		w, err := svc.Reconcile(ctx, user)
		require.NoError(t, err)
		total += w.User.Credits
	}
	assert.Equal(t, int64(tasks*3), total)
	assert.Zero(t, svc.gates.size())
}

// TestConcurrentDebitsNeverOverdraw fires more campaign launches than the
// balance can fund.
func TestConcurrentDebitsNeverOverdraw(t *testing.T) {
	svc, _ := newService(t, 100)
	ctx := context.Background()

	var launched atomic.Int64
	var g errgroup.Group
	for range 25 {
		g.Go(func() error {
			_, err := svc.CreateCampaign(ctx, "u1", domain.CampaignSpec{
				Platform:       domain.PlatformTwitter,
				Action:         domain.ActionShare,
				TargetURL:      "https://x.com/coinloop",
				TotalRequested: 10,
				CostPerAction:  1,
			})
			if err == nil {
				launched.Add(1)
				return nil
			}
			if isInsufficient(err) {
				return nil
			}
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int64(10), launched.Load())

	list, err := svc.ListCampaigns(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 10)
	assertBalanced(t, svc, 0)
}

func TestCancelledContextLeavesNoEffect(t *testing.T) {
	svc, _ := newService(t, 50)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := svc.AddCredits(ctx, "u1", 10)
	require.Error(t, err)
	assert.Equal(t, domain.SeverityError, out.Notification.Severity)
	assertBalanced(t, svc, 50)
}
