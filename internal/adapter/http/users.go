package httpadapter

import (
	"net/http"

	"coinloop/internal/core/domain"
)

// registerRequest carries the onboarding choices a user may make. Reputation
// and streak are earned, so they are not accepted from the client.
type registerRequest struct {
	Country  string `json:"country"`
	Language string `json:"language"`
}

// handleRegisterUser provisions the calling user or updates its onboarding
// profile.
func (h *Handler) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		h.writeQuery(w, r, nil, err)
		return
	}
	user, err := h.svc.RegisterUser(r.Context(), domain.Profile{
		UserID:   userID(r),
		Country:  req.Country,
		Language: req.Language,
	})
	h.writeQuery(w, r, user, err)
}
