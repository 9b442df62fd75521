package barter

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"embervale/globals"
	"embervale/models"
	"embervale/mq"
	"embervale/utils"

	"github.com/julienschmidt/httprouter"
)

type proposalPayload struct {
	ProposedItem string `json:"proposedItem"`
}

// ProposeTrade records an offer against a listing. Proposals are
// append-only; there is no accept or reject flow.
func (h *Handler) ProposeTrade(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	item, found := h.findItem(ctx, ps.ByName("id"))
	if !found {
		utils.RespondWithError(w, http.StatusNotFound, "Listing not found")
		return
	}

	var payload proposalPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	payload.ProposedItem = strings.TrimSpace(payload.ProposedItem)
	if payload.ProposedItem == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Proposed item is required")
		return
	}

	proposal := models.TradeProposal{
		ItemID:       item.ID,
		ItemName:     item.Name,
		OwnerName:    item.Owner.Name,
		ProposedItem: payload.ProposedItem,
		ProposedBy:   userID,
		CreatedAt:    time.Now(),
	}

	if err := h.store.InsertProposal(ctx, proposal); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save proposal")
		return
	}

	go mq.Emit(context.Background(), "proposal-created", models.Index{
		EntityType: "proposal", EntityId: item.ID, Method: "POST", UserId: userID,
	})
	h.notify("trade-proposed", proposal)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "proposal": proposal})
}

// GetTradeProposals returns the caller's own proposals.
func (h *Handler) GetTradeProposals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	proposals, err := h.store.Proposals(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch proposals")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "proposals": proposals})
}
