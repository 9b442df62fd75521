package barter

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"embervale/catalog"
	"embervale/globals"
	"embervale/models"
	"embervale/mq"
	"embervale/rdx"
	"embervale/utils"

	"github.com/julienschmidt/httprouter"
)

const (
	cacheKey = "barter_catalogue"
	cacheTTL = 2 * time.Hour

	defaultListingImage  = "/barter/placeholder.jpg"
	defaultListingAvatar = "/avatars/default.jpg"
)

// Feed receives trade events for live subscribers. The websocket hub
// implements it; handlers tolerate a nil feed.
type Feed interface {
	Broadcast(event string, payload interface{})
}

type Handler struct {
	store ListingStore
	feed  Feed
}

func NewHandler(store ListingStore, feed Feed) *Handler {
	return &Handler{store: store, feed: feed}
}

func (h *Handler) notify(event string, payload interface{}) {
	if h.feed != nil {
		h.feed.Broadcast(event, payload)
	}
}

func (h *Handler) invalidateCache() {
	rdx.RdxDel(cacheKey)
}

// mergedItems loads user listings and appends them after the seed
// inventory. A store failure degrades to the seed alone.
func (h *Handler) mergedItems(ctx context.Context) []models.BarterItem {
	userItems, err := h.store.UserListings(ctx)
	if err != nil {
		log.Printf("barter: failed to fetch user listings: %v", err)
		return SeedItems()
	}
	return MergeWithSeed(userItems)
}

// GetBarterItems lists the merged inventory, optionally filtered. The
// unfiltered merge is cached; filters always compute fresh.
func (h *Handler) GetBarterItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	params := utils.ParseFilterParams(r)

	if params.Query == "" && params.Category == "" {
		if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	items := h.mergedItems(ctx)
	items = catalog.Filter(items, catalog.FilterOptions{
		Query:    params.Query,
		Category: params.Category,
	})

	if params.Query == "" && params.Category == "" {
		if body, err := json.Marshal(utils.M{"success": true, "items": items}); err == nil {
			rdx.SetWithExpiry(cacheKey, string(body), cacheTTL)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "items": items})
}

func (h *Handler) GetBarterItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, found := h.findItem(ctx, ps.ByName("id"))
	if !found {
		utils.RespondWithError(w, http.StatusNotFound, "Listing not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "item": item})
}

// findItem resolves an id against the seed inventory first, then the
// listing store.
func (h *Handler) findItem(ctx context.Context, id string) (models.BarterItem, bool) {
	for _, item := range seedItems {
		if item.ID == id {
			return item, true
		}
	}
	item, found, err := h.store.GetListing(ctx, id)
	if err != nil {
		log.Printf("barter: lookup %s failed: %v", id, err)
		return models.BarterItem{}, false
	}
	return item, found
}

type listingPayload struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Condition   string        `json:"condition"`
	ImageURL    string        `json:"imageUrl"`
	Owner       *models.Owner `json:"owner"`
}

// CreateBarterItem adds a user listing after the seed inventory.
func (h *Handler) CreateBarterItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload listingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if payload.Name == "" || payload.Description == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and description are required")
		return
	}
	if payload.Category == "" {
		payload.Category = "Tools"
	}
	if payload.Condition == "" {
		payload.Condition = "Good"
	}
	if payload.ImageURL == "" {
		payload.ImageURL = defaultListingImage
	}

	owner := models.Owner{Name: "You", Avatar: defaultListingAvatar, Rating: 5.0}
	if payload.Owner != nil && payload.Owner.Name != "" {
		owner = *payload.Owner
	}

	item := models.BarterItem{
		ID:            utils.TimestampID(),
		Name:          payload.Name,
		Description:   payload.Description,
		Category:      payload.Category,
		Condition:     payload.Condition,
		ImageURL:      payload.ImageURL,
		Owner:         owner,
		OwnerID:       userID,
		IsUserListing: true,
		CreatedAt:     time.Now(),
	}

	if err := h.store.InsertListing(ctx, item); err != nil {
		log.Printf("barter: insert failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create listing")
		return
	}

	h.invalidateCache()
	go mq.Emit(context.Background(), "listing-created", models.Index{
		EntityType: "listing", EntityId: item.ID, Method: "POST", UserId: userID,
	})
	h.notify("listing-created", item)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "item": item})
}

// UpdateBarterItem edits a listing. Only the owner may edit, and seed
// items are immutable.
func (h *Handler) UpdateBarterItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	id := ps.ByName("id")

	existing, found, err := h.store.GetListing(ctx, id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch listing")
		return
	}
	if !found {
		utils.RespondWithError(w, http.StatusNotFound, "Listing not found")
		return
	}
	if existing.OwnerID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "You can only edit your own listings")
		return
	}

	var payload listingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if payload.Name != "" {
		existing.Name = payload.Name
	}
	if payload.Description != "" {
		existing.Description = payload.Description
	}
	if payload.Category != "" {
		existing.Category = payload.Category
	}
	if payload.Condition != "" {
		existing.Condition = payload.Condition
	}
	if payload.ImageURL != "" {
		existing.ImageURL = payload.ImageURL
	}
	existing.IsUserListing = true

	if err := h.store.UpdateListing(ctx, existing); err != nil {
		log.Printf("barter: update %s failed: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update listing")
		return
	}

	h.invalidateCache()
	h.notify("listing-updated", existing)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "item": existing})
}

// DeleteBarterItem removes a user listing. Seed items cannot be removed.
func (h *Handler) DeleteBarterItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	id := ps.ByName("id")

	existing, found, err := h.store.GetListing(ctx, id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch listing")
		return
	}
	if !found {
		utils.RespondWithError(w, http.StatusNotFound, "Listing not found")
		return
	}
	if existing.OwnerID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "You can only remove your own listings")
		return
	}

	if err := h.store.DeleteListing(ctx, id); err != nil {
		log.Printf("barter: delete %s failed: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete listing")
		return
	}

	h.invalidateCache()
	h.notify("listing-deleted", utils.M{"id": id})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}
