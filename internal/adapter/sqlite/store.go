// Package sqlite implements port.Store on an embedded SQLite database
// (modernc.org/sqlite). Timestamps are stored as unix microseconds.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"coinloop/internal/core/domain"
	"coinloop/internal/core/port"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store implements port.Store. The database handle should be limited to a
// single open connection so that units of work never interleave.
type Store struct {
	*repos
	db *sql.DB
}

var _ port.Store = (*Store)(nil)

// NewStore wraps an open database that already carries the schema.
func NewStore(db *sql.DB) *Store {
	return &Store{repos: &repos{q: db}, db: db}
}

// Atomic runs fn inside a database transaction.
func (s *Store) Atomic(ctx context.Context, fn func(ctx context.Context, repos port.Repositories) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if err = tx.Commit(); err != nil {
			err = fmt.Errorf("commit: %w", err)
		}
	}()
	return fn(ctx, &repos{q: tx})
}

type repos struct {
	q querier
}

func micros(t time.Time) int64 { return t.UnixMicro() }

func fromMicros(v int64) time.Time { return time.UnixMicro(v).UTC() }

func (r *repos) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var (
		u                domain.User
		created, updated int64
	)
	err := r.q.QueryRowContext(ctx, `SELECT id, credits, reputation, streak, country, language, created_at, updated_at FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Credits, &u.Reputation, &u.Streak, &u.Country, &u.Language, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt, u.UpdatedAt = fromMicros(created), fromMicros(updated)
	return &u, nil
}

func (r *repos) SaveUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx, `INSERT INTO users (id, credits, reputation, streak, country, language, created_at, updated_at)
VALUES (?,?,?,?,?,?,?,?)
ON CONFLICT (id) DO UPDATE SET credits = excluded.credits, reputation = excluded.reputation, streak = excluded.streak,
    country = excluded.country, language = excluded.language, updated_at = excluded.updated_at`,
		u.ID, u.Credits, u.Reputation, u.Streak, u.Country, u.Language, micros(u.CreatedAt), micros(u.UpdatedAt))
	return err
}

func (r *repos) AppendTransaction(ctx context.Context, t domain.Transaction) error {
	_, err := r.q.ExecContext(ctx, `INSERT INTO transactions (id, user_id, kind, amount, description, created_at) VALUES (?,?,?,?,?,?)`,
		t.ID, t.UserID, string(t.Kind), t.Amount, t.Description, micros(t.CreatedAt))
	return err
}

func (r *repos) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, user_id, kind, amount, description, created_at FROM transactions WHERE user_id = ? ORDER BY seq`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Transaction
	for rows.Next() {
		var (
			t       domain.Transaction
			created int64
		)
		if err = rows.Scan(&t.ID, &t.UserID, &t.Kind, &t.Amount, &t.Description, &created); err != nil {
			return nil, err
		}
		t.CreatedAt = fromMicros(created)
		out = append(out, t)
	}
	return out, rows.Err()
}

const taskColumns = `id, seq, platform, action, reward, description, target_url, thumbnail_url, country, created_at`

func (r *repos) ListTasks(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *repos) AddTask(ctx context.Context, t *domain.Task) error {
	err := r.q.QueryRowContext(ctx, `INSERT INTO tasks (id, platform, action, reward, description, target_url, thumbnail_url, country, created_at)
VALUES (?,?,?,?,?,?,?,?,?) RETURNING seq`,
		t.ID, string(t.Platform), string(t.Action), t.Reward, t.Description, t.TargetURL, t.ThumbnailURL, t.Country, micros(t.CreatedAt)).
		Scan(&t.Seq)
	var sqlErr *msqlite.Error
	if errors.As(err, &sqlErr) && sqlErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return fmt.Errorf("%w: %s", domain.ErrTaskExists, t.ID)
	}
	return err
}

func (r *repos) RemoveTask(ctx context.Context, id string) (*domain.Task, error) {
	t, err := scanTask(r.q.QueryRowContext(ctx, `DELETE FROM tasks WHERE id = ? RETURNING `+taskColumns, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (domain.Task, error) {
	var (
		t       domain.Task
		created int64
	)
	err := s.Scan(&t.ID, &t.Seq, &t.Platform, &t.Action, &t.Reward, &t.Description, &t.TargetURL, &t.ThumbnailURL, &t.Country, &created)
	t.CreatedAt = fromMicros(created)
	return t, err
}

const campaignColumns = `id, owner_id, platform, action, target_url, description, total_requested, completed_count,
    cost_per_action, status, country, created_at, updated_at`

func (r *repos) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.q.QueryRowContext(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repos) ListCampaigns(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE owner_id = ? ORDER BY seq DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repos) InsertCampaign(ctx context.Context, c domain.Campaign) error {
	_, err := r.q.ExecContext(ctx, `INSERT INTO campaigns (`+campaignColumns+`) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		c.ID, c.OwnerID, string(c.Platform), string(c.Action), c.TargetURL, c.Description, c.TotalRequested, c.CompletedCount,
		c.CostPerAction, string(c.Status), c.Targeting.Country, micros(c.CreatedAt), micros(c.UpdatedAt))
	return err
}

func (r *repos) UpdateCampaign(ctx context.Context, c domain.Campaign) error {
	res, err := r.q.ExecContext(ctx, `UPDATE campaigns SET target_url = ?, description = ?, total_requested = ?, completed_count = ?,
    cost_per_action = ?, status = ?, country = ?, updated_at = ? WHERE id = ?`,
		c.TargetURL, c.Description, c.TotalRequested, c.CompletedCount, c.CostPerAction, string(c.Status), c.Targeting.Country, micros(c.UpdatedAt), c.ID)
	if err != nil {
		return err
	}
	return expectRow(res)
}

func (r *repos) DeleteCampaign(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM campaigns WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return expectRow(res)
}

func expectRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

func scanCampaign(s scanner) (domain.Campaign, error) {
	var (
		c                domain.Campaign
		created, updated int64
	)
	err := s.Scan(&c.ID, &c.OwnerID, &c.Platform, &c.Action, &c.TargetURL, &c.Description, &c.TotalRequested, &c.CompletedCount,
		&c.CostPerAction, &c.Status, &c.Targeting.Country, &created, &updated)
	c.CreatedAt, c.UpdatedAt = fromMicros(created), fromMicros(updated)
	return c, err
}
