package barter

import (
	"context"
	"sync"

	"embervale/db"
	"embervale/models"
	"embervale/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListingStore holds user-created listings and trade proposals. Seed
// items never pass through it.
type ListingStore interface {
	UserListings(ctx context.Context) ([]models.BarterItem, error)
	GetListing(ctx context.Context, id string) (models.BarterItem, bool, error)
	InsertListing(ctx context.Context, item models.BarterItem) error
	UpdateListing(ctx context.Context, item models.BarterItem) error
	DeleteListing(ctx context.Context, id string) error
	Proposals(ctx context.Context, userID string) ([]models.TradeProposal, error)
	InsertProposal(ctx context.Context, p models.TradeProposal) error
}

type MongoListingStore struct {
	listings  *mongo.Collection
	proposals *mongo.Collection
}

func NewMongoListingStore() *MongoListingStore {
	return &MongoListingStore{
		listings:  db.BarterCollection,
		proposals: db.ProposalsCollection,
	}
}

func (s *MongoListingStore) UserListings(ctx context.Context) ([]models.BarterItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return utils.FindAndDecode[models.BarterItem](ctx, s.listings, bson.M{}, opts)
}

func (s *MongoListingStore) GetListing(ctx context.Context, id string) (models.BarterItem, bool, error) {
	var item models.BarterItem
	err := s.listings.FindOne(ctx, bson.M{"itemid": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return models.BarterItem{}, false, nil
	}
	if err != nil {
		return models.BarterItem{}, false, err
	}
	return item, true, nil
}

func (s *MongoListingStore) InsertListing(ctx context.Context, item models.BarterItem) error {
	_, err := s.listings.InsertOne(ctx, item)
	return err
}

func (s *MongoListingStore) UpdateListing(ctx context.Context, item models.BarterItem) error {
	_, err := s.listings.ReplaceOne(ctx, bson.M{"itemid": item.ID}, item)
	return err
}

func (s *MongoListingStore) DeleteListing(ctx context.Context, id string) error {
	_, err := s.listings.DeleteOne(ctx, bson.M{"itemid": id})
	return err
}

func (s *MongoListingStore) Proposals(ctx context.Context, userID string) ([]models.TradeProposal, error) {
	filter := bson.M{}
	if userID != "" {
		filter["proposedBy"] = userID
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return utils.FindAndDecode[models.TradeProposal](ctx, s.proposals, filter, opts)
}

func (s *MongoListingStore) InsertProposal(ctx context.Context, p models.TradeProposal) error {
	_, err := s.proposals.InsertOne(ctx, p)
	return err
}

// MemListingStore is an in-memory ListingStore used in tests.
type MemListingStore struct {
	mu        sync.Mutex
	listings  []models.BarterItem
	proposals []models.TradeProposal
}

func NewMemListingStore() *MemListingStore { return &MemListingStore{} }

func (s *MemListingStore) UserListings(ctx context.Context) ([]models.BarterItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.BarterItem, len(s.listings))
	copy(out, s.listings)
	return out, nil
}

func (s *MemListingStore) GetListing(ctx context.Context, id string) (models.BarterItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.listings {
		if item.ID == id {
			return item, true, nil
		}
	}
	return models.BarterItem{}, false, nil
}

func (s *MemListingStore) InsertListing(ctx context.Context, item models.BarterItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = append(s.listings, item)
	return nil
}

func (s *MemListingStore) UpdateListing(ctx context.Context, item models.BarterItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.listings {
		if s.listings[i].ID == item.ID {
			s.listings[i] = item
			return nil
		}
	}
	return nil
}

func (s *MemListingStore) DeleteListing(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.listings[:0]
	for _, item := range s.listings {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.listings = kept
	return nil
}

func (s *MemListingStore) Proposals(ctx context.Context, userID string) ([]models.TradeProposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.TradeProposal{}
	for _, p := range s.proposals {
		if userID == "" || p.ProposedBy == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemListingStore) InsertProposal(ctx context.Context, p models.TradeProposal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.proposals = append(s.proposals, p)
	return nil
}
