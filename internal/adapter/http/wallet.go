package httpadapter

import (
	"net/http"
)

// Package is a purchasable credit bundle advertised to the payment flow.
type Package struct {
	Credits  int64   `json:"credits"`
	PriceUSD float64 `json:"price_usd"`
	Popular  bool    `json:"popular,omitempty"`
}

var packages = []Package{
	{Credits: 100, PriceUSD: 4.99},
	{Credits: 500, PriceUSD: 19.99, Popular: true},
	{Credits: 1200, PriceUSD: 39.99},
}

type addCreditsRequest struct {
	Amount int64 `json:"amount"`
}

func (h *Handler) handleWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.svc.Wallet(r.Context(), userID(r))
	h.writeQuery(w, r, wallet, err)
}

func (h *Handler) handlePackages(w http.ResponseWriter, r *http.Request) {
	h.writeQuery(w, r, packages, nil)
}

func (h *Handler) handleReconcile(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.svc.Reconcile(r.Context(), userID(r))
	h.writeQuery(w, r, wallet, err)
}

// handleAddCredits is called once the payment provider has confirmed a
// purchase. It never talks to the provider itself.
func (h *Handler) handleAddCredits(w http.ResponseWriter, r *http.Request) {
	var req addCreditsRequest
	if err := decode(r, &req); err != nil {
		h.writeQuery(w, r, nil, err)
		return
	}
	out, err := h.svc.AddCredits(r.Context(), userID(r), req.Amount)
	h.writeOutcome(w, r, out, err)
}
