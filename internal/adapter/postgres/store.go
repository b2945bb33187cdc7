package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"coinloop/internal/core/domain"
	"coinloop/internal/core/port"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements port.Store using pgxpool for PostgreSQL. Reads on the
// Store go straight to the pool; Atomic binds the repositories to one
// transaction.
type Store struct {
	*repos
	pool *pgxpool.Pool
}

var _ port.Store = (*Store)(nil)

// NewStore returns a new store instance.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{repos: &repos{q: pool}, pool: pool}
}

// Atomic runs fn inside a read-committed transaction. User rows read
// through the bound repositories are locked FOR UPDATE, and tasks are
// removed with DELETE ... RETURNING, so two transactions racing for the
// same task see exactly one winner.
func (s *Store) Atomic(ctx context.Context, fn func(ctx context.Context, repos port.Repositories) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = fmt.Errorf("commit: %w", err)
		}
	}()
	return fn(ctx, &repos{q: tx, forUpdate: true})
}

type repos struct {
	q         querier
	forUpdate bool
}

// GetUser returns a user by id.
func (r *repos) GetUser(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, credits, reputation, streak, country, language, created_at, updated_at FROM users WHERE id = $1`
	if r.forUpdate {
		query += ` FOR UPDATE`
	}
	var u domain.User
	err := r.q.QueryRow(ctx, query, id).
		Scan(&u.ID, &u.Credits, &u.Reputation, &u.Streak, &u.Country, &u.Language, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SaveUser upserts a user row.
func (r *repos) SaveUser(ctx context.Context, u domain.User) error {
	_, err := r.q.Exec(ctx, `INSERT INTO users (id, credits, reputation, streak, country, language, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
ON CONFLICT (id) DO UPDATE SET credits = EXCLUDED.credits, reputation = EXCLUDED.reputation, streak = EXCLUDED.streak,
    country = EXCLUDED.country, language = EXCLUDED.language, updated_at = EXCLUDED.updated_at`,
		u.ID, u.Credits, u.Reputation, u.Streak, u.Country, u.Language, u.CreatedAt, u.UpdatedAt)
	return err
}

// AppendTransaction inserts a ledger entry.
func (r *repos) AppendTransaction(ctx context.Context, t domain.Transaction) error {
	_, err := r.q.Exec(ctx, `INSERT INTO transactions (id, user_id, kind, amount, description, created_at) VALUES ($1,$2,$3,$4,$5,$6)`,
		t.ID, t.UserID, string(t.Kind), t.Amount, t.Description, t.CreatedAt)
	return err
}

// ListTransactions returns a user's ledger in append order.
func (r *repos) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	rows, err := r.q.Query(ctx, `SELECT id, user_id, kind, amount, description, created_at FROM transactions WHERE user_id = $1 ORDER BY seq`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var t domain.Transaction
		err := row.Scan(&t.ID, &t.UserID, &t.Kind, &t.Amount, &t.Description, &t.CreatedAt)
		return t, err
	})
}

// ListTasks returns pooled tasks in arrival order.
func (r *repos) ListTasks(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.q.Query(ctx, `SELECT id, seq, platform, action, reward, description, target_url, thumbnail_url, country, created_at FROM tasks ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanTask)
}

// uniqueViolation is the SQLSTATE of a duplicate key.
const uniqueViolation = "23505"

// AddTask inserts a task and records its arrival sequence. A duplicate id
// is reported as ErrTaskExists.
func (r *repos) AddTask(ctx context.Context, t *domain.Task) error {
	err := r.q.QueryRow(ctx, `INSERT INTO tasks (id, platform, action, reward, description, target_url, thumbnail_url, country, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING seq`,
		t.ID, string(t.Platform), string(t.Action), t.Reward, t.Description, t.TargetURL, t.ThumbnailURL, t.Country, t.CreatedAt).
		Scan(&t.Seq)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrTaskExists, t.ID)
	}
	return err
}

// RemoveTask deletes a task and returns it, or nil when it is gone.
func (r *repos) RemoveTask(ctx context.Context, id string) (*domain.Task, error) {
	rows, err := r.q.Query(ctx, `DELETE FROM tasks WHERE id = $1
RETURNING id, seq, platform, action, reward, description, target_url, thumbnail_url, country, created_at`, id)
	if err != nil {
		return nil, err
	}
	t, err := pgx.CollectOneRow(rows, scanTask)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTask(row pgx.CollectableRow) (domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.Seq, &t.Platform, &t.Action, &t.Reward, &t.Description, &t.TargetURL, &t.ThumbnailURL, &t.Country, &t.CreatedAt)
	return t, err
}

const campaignColumns = `id, owner_id, platform, action, target_url, description, total_requested, completed_count,
    cost_per_action, status, country, created_at, updated_at`

// GetCampaign returns a campaign by id.
func (r *repos) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`
	if r.forUpdate {
		query += ` FOR UPDATE`
	}
	rows, err := r.q.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns an owner's campaigns, newest first.
func (r *repos) ListCampaigns(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	rows, err := r.q.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE owner_id = $1 ORDER BY seq DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// InsertCampaign stores a new campaign.
func (r *repos) InsertCampaign(ctx context.Context, c domain.Campaign) error {
	_, err := r.q.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		c.ID, c.OwnerID, string(c.Platform), string(c.Action), c.TargetURL, c.Description, c.TotalRequested, c.CompletedCount,
		c.CostPerAction, string(c.Status), c.Targeting.Country, c.CreatedAt, c.UpdatedAt)
	return err
}

// UpdateCampaign overwrites the mutable campaign fields.
func (r *repos) UpdateCampaign(ctx context.Context, c domain.Campaign) error {
	tag, err := r.q.Exec(ctx, `UPDATE campaigns SET target_url = $2, description = $3, total_requested = $4, completed_count = $5,
    cost_per_action = $6, status = $7, country = $8, updated_at = $9 WHERE id = $1`,
		c.ID, c.TargetURL, c.Description, c.TotalRequested, c.CompletedCount, c.CostPerAction, string(c.Status), c.Targeting.Country, c.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

// DeleteCampaign removes a campaign.
func (r *repos) DeleteCampaign(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.OwnerID, &c.Platform, &c.Action, &c.TargetURL, &c.Description, &c.TotalRequested, &c.CompletedCount,
		&c.CostPerAction, &c.Status, &c.Targeting.Country, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
