package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"coinloop/internal/core/domain"
)

type completionRequest struct {
	Count int64 `json:"count"`
}

// CampaignList is the body of a campaign listing.
type CampaignList struct {
	Campaigns []domain.Campaign      `json:"campaigns"`
	Summary   domain.CampaignSummary `json:"summary"`
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context(), userID(r))
	if err != nil {
		h.writeQuery(w, r, nil, err)
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	h.writeQuery(w, r, CampaignList{Campaigns: campaigns, Summary: domain.SummarizeCampaigns(campaigns)}, nil)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var spec domain.CampaignSpec
	if err := decode(r, &spec); err != nil {
		h.writeQuery(w, r, nil, err)
		return
	}
	out, err := h.svc.CreateCampaign(r.Context(), userID(r), spec)
	h.writeOutcome(w, r, out, err)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var patch domain.CampaignPatch
	if err := decode(r, &patch); err != nil {
		h.writeQuery(w, r, nil, err)
		return
	}
	out, err := h.svc.UpdateCampaign(r.Context(), userID(r), chi.URLParam(r, "id"), patch)
	h.writeOutcome(w, r, out, err)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.DeleteCampaign(r.Context(), userID(r), chi.URLParam(r, "id"))
	h.writeOutcome(w, r, out, err)
}

func (h *Handler) handleToggleCampaign(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ToggleCampaignStatus(r.Context(), userID(r), chi.URLParam(r, "id"))
	h.writeOutcome(w, r, out, err)
}

// handleRecordCompletion is used by the verification collaborator to count
// delivered actions. An empty body counts one action.
func (h *Handler) handleRecordCompletion(w http.ResponseWriter, r *http.Request) {
	req := completionRequest{Count: 1}
	if r.ContentLength != 0 {
		if err := decode(r, &req); err != nil {
			h.writeQuery(w, r, nil, err)
			return
		}
	}
	out, err := h.svc.RecordCampaignCompletion(r.Context(), chi.URLParam(r, "id"), req.Count)
	h.writeOutcome(w, r, out, err)
}
