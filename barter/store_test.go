package barter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"embervale/models"
)

// failingListingStore simulates an unreachable backing store.
type failingListingStore struct{}

var errStoreDown = errors.New("store unreachable")

func (failingListingStore) UserListings(ctx context.Context) ([]models.BarterItem, error) {
	return nil, errStoreDown
}

func (failingListingStore) GetListing(ctx context.Context, id string) (models.BarterItem, bool, error) {
	return models.BarterItem{}, false, errStoreDown
}

func (failingListingStore) InsertListing(ctx context.Context, item models.BarterItem) error {
	return errStoreDown
}

func (failingListingStore) UpdateListing(ctx context.Context, item models.BarterItem) error {
	return errStoreDown
}

func (failingListingStore) DeleteListing(ctx context.Context, id string) error {
	return errStoreDown
}

func (failingListingStore) Proposals(ctx context.Context, userID string) ([]models.TradeProposal, error) {
	return nil, errStoreDown
}

func (failingListingStore) InsertProposal(ctx context.Context, p models.TradeProposal) error {
	return errStoreDown
}

func TestMergeWithEmptyKeepsSeedOrder(t *testing.T) {
	merged := MergeWithSeed(nil)

	if !reflect.DeepEqual(merged, SeedItems()) {
		t.Fatal("merging with no user listings should return the seed inventory unchanged")
	}
	if merged[0].Name != "Combat Knife" || merged[len(merged)-1].Name != "Seeds Collection" {
		t.Fatalf("seed order not preserved: first=%s last=%s", merged[0].Name, merged[len(merged)-1].Name)
	}
}

func TestMergeAppendsUserListingsLast(t *testing.T) {
	user := models.BarterItem{
		ID:            "1756300000000",
		Name:          "Hand-Crank Radio",
		Description:   "Still picks up the emergency band.",
		Category:      "Tools",
		Condition:     "Fair",
		IsUserListing: true,
	}

	merged := MergeWithSeed([]models.BarterItem{user})

	if len(merged) != len(seedItems)+1 {
		t.Fatalf("expected %d items, got %d", len(seedItems)+1, len(merged))
	}
	last := merged[len(merged)-1]
	if last.ID != user.ID || !last.IsUserListing {
		t.Fatalf("user listing should come last: %+v", last)
	}
}

func TestMemStoreListingRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemListingStore()

	item := models.BarterItem{
		ID:            "1756300000001",
		Name:          "Water Purification Tablets",
		Description:   "Sealed box, 50 tablets.",
		Category:      "Resources",
		Condition:     "New",
		ImageURL:      defaultListingImage,
		Owner:         models.Owner{Name: "You", Avatar: defaultListingAvatar, Rating: 5.0},
		OwnerID:       "user-1",
		IsUserListing: true,
		CreatedAt:     time.Now(),
	}
	if err := store.InsertListing(ctx, item); err != nil {
		t.Fatal(err)
	}

	got, found, err := store.GetListing(ctx, item.ID)
	if err != nil || !found {
		t.Fatalf("listing not found after insert: found=%v err=%v", found, err)
	}
	if !reflect.DeepEqual(got, item) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, item)
	}

	listings, err := store.UserListings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected one listing, got %d", len(listings))
	}
}

func TestMemStoreDeleteAndUpdate(t *testing.T) {
	ctx := context.Background()
	store := NewMemListingStore()

	item := models.BarterItem{ID: "a", Name: "Flare Gun", OwnerID: "user-1"}
	store.InsertListing(ctx, item)

	item.Condition = "Poor"
	if err := store.UpdateListing(ctx, item); err != nil {
		t.Fatal(err)
	}
	got, _, _ := store.GetListing(ctx, "a")
	if got.Condition != "Poor" {
		t.Fatalf("update not applied: %+v", got)
	}

	if err := store.DeleteListing(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := store.GetListing(ctx, "a"); found {
		t.Fatal("listing should be gone after delete")
	}
}

func TestFindItemChecksSeedThenStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemListingStore()
	h := NewHandler(store, nil)

	if item, found := h.findItem(ctx, "5"); !found || item.Name != "Crossbow" {
		t.Fatalf("seed lookup failed: found=%v item=%+v", found, item)
	}

	store.InsertListing(ctx, models.BarterItem{ID: "u1", Name: "Gas Mask", OwnerID: "user-2"})
	if item, found := h.findItem(ctx, "u1"); !found || item.Name != "Gas Mask" {
		t.Fatalf("store lookup failed: found=%v item=%+v", found, item)
	}

	if _, found := h.findItem(ctx, "missing"); found {
		t.Fatal("unknown id should not resolve")
	}
}

// When the listing store is down, the merged inventory degrades to
// exactly the seed items rather than failing the read.
func TestGetBarterItemsDegradesToSeedOnStoreFailure(t *testing.T) {
	h := NewHandler(failingListingStore{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/barter/items", nil)
	rec := httptest.NewRecorder()
	h.GetBarterItems(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Success bool                `json:"success"`
		Items   []models.BarterItem `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.Success {
		t.Error("read should still report success")
	}

	seed := SeedItems()
	if len(body.Items) != len(seed) {
		t.Fatalf("expected the %d seed items, got %d", len(seed), len(body.Items))
	}
	for i := range seed {
		if body.Items[i].ID != seed[i].ID || body.Items[i].Name != seed[i].Name {
			t.Fatalf("item %d: got %s/%s, want %s/%s",
				i, body.Items[i].ID, body.Items[i].Name, seed[i].ID, seed[i].Name)
		}
	}
}

func TestMemStoreProposalsFilterByProposer(t *testing.T) {
	ctx := context.Background()
	store := NewMemListingStore()

	store.InsertProposal(ctx, models.TradeProposal{ItemID: "1", ItemName: "Combat Knife", ProposedItem: "Two rabbits", ProposedBy: "user-1"})
	store.InsertProposal(ctx, models.TradeProposal{ItemID: "2", ItemName: "Medicinal Herbs Bundle", ProposedItem: "Boots", ProposedBy: "user-2"})

	mine, err := store.Proposals(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 || mine[0].ProposedItem != "Two rabbits" {
		t.Fatalf("expected only user-1 proposals, got %+v", mine)
	}

	all, _ := store.Proposals(ctx, "")
	if len(all) != 2 {
		t.Fatalf("expected both proposals, got %d", len(all))
	}
}
