// Package taskpool owns the queue of earnable tasks. Completing or skipping
// a task removes it exactly once; crediting the reward is left to the caller.
package taskpool

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"coinloop/internal/core/domain"
	"coinloop/internal/core/port"
)

// Pool implements the task pool operations on top of a TaskRepository.
type Pool struct {
	now   func() time.Time
	newID func() string
}

// New returns a Pool.
func New() *Pool {
	return &Pool{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// List returns a snapshot of the tasks matching filter in arrival order.
// Each call re-reads current state.
func (p *Pool) List(ctx context.Context, repo port.TaskRepository, filter domain.TaskFilter) ([]domain.Task, error) {
	tasks, err := repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Add validates a task and appends it to the pool. A missing id is
// generated.
func (p *Pool) Add(ctx context.Context, repo port.TaskRepository, task domain.Task) (*domain.Task, error) {
	if err := validate(task); err != nil {
		return nil, err
	}
	if task.ID == "" {
		task.ID = p.newID()
	}
	if task.Country == "" {
		task.Country = domain.Worldwide
	}
	task.CreatedAt = p.now()
	if err := repo.AddTask(ctx, &task); err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}
	return &task, nil
}

// Complete removes a task that the user reports as done.
func (p *Pool) Complete(ctx context.Context, repo port.TaskRepository, id string) (*domain.Task, error) {
	return p.take(ctx, repo, id)
}

// Skip removes a task the user declined.
func (p *Pool) Skip(ctx context.Context, repo port.TaskRepository, id string) (*domain.Task, error) {
	return p.take(ctx, repo, id)
}

func (p *Pool) take(ctx context.Context, repo port.TaskRepository, id string) (*domain.Task, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.Invalid("task_id", "must not be empty")
	}
	task, err := repo.RemoveTask(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("remove task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func validate(t domain.Task) error {
	switch {
	case !t.Platform.Valid():
		return domain.Invalid("platform", fmt.Sprintf("unsupported platform %q", t.Platform))
	case !t.Action.Valid():
		return domain.Invalid("action", fmt.Sprintf("unsupported action %q", t.Action))
	case t.Reward <= 0:
		return domain.Invalid("reward", "must be positive")
	}
	return nil
}
