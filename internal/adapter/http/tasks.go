package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"coinloop/internal/core/domain"
)

// handleListTasks returns the pool filtered by the optional `platform`,
// `action` and `country` query parameters.
func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.TaskFilter{
		Platform: domain.Platform(q.Get("platform")),
		Action:   domain.Action(q.Get("action")),
		Country:  q.Get("country"),
	}
	tasks, err := h.svc.ListTasks(r.Context(), userID(r), filter)
	h.writeQuery(w, r, tasks, err)
}

// handleSupplyTask lets the task supplier add a task to the pool.
func (h *Handler) handleSupplyTask(w http.ResponseWriter, r *http.Request) {
	var task domain.Task
	if err := decode(r, &task); err != nil {
		h.writeQuery(w, r, nil, err)
		return
	}
	added, err := h.svc.SupplyTask(r.Context(), task)
	h.writeQuery(w, r, added, err)
}

func (h *Handler) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.CompleteTask(r.Context(), userID(r), chi.URLParam(r, "id"))
	h.writeOutcome(w, r, out, err)
}

func (h *Handler) handleSkipTask(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.SkipTask(r.Context(), userID(r), chi.URLParam(r, "id"))
	h.writeOutcome(w, r, out, err)
}
