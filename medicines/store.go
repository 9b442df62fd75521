package medicines

import (
	"context"
	"sync"

	"embervale/db"
	"embervale/models"
	"embervale/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store is the injected persistence boundary for medicines. The
// original kept these in a process-global slice that reset on every
// restart; handlers now only see this interface.
type Store interface {
	All(ctx context.Context) ([]models.Medicine, error)
	Get(ctx context.Context, id string) (models.Medicine, bool, error)
	Insert(ctx context.Context, m models.Medicine) error
}

// MongoStore persists medicines in the external store.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore() *MongoStore {
	return &MongoStore{coll: db.MedicinesCollection}
}

func (s *MongoStore) All(ctx context.Context) ([]models.Medicine, error) {
	return utils.FindAndDecode[models.Medicine](ctx, s.coll, bson.M{})
}

func (s *MongoStore) Get(ctx context.Context, id string) (models.Medicine, bool, error) {
	var m models.Medicine
	err := s.coll.FindOne(ctx, bson.M{"medicineid": id}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return models.Medicine{}, false, nil
	}
	if err != nil {
		return models.Medicine{}, false, err
	}
	return m, true, nil
}

func (s *MongoStore) Insert(ctx context.Context, m models.Medicine) error {
	_, err := s.coll.InsertOne(ctx, m)
	return err
}

// MemStore is an in-memory Store used in tests.
type MemStore struct {
	mu    sync.Mutex
	items []models.Medicine
}

func NewMemStore() *MemStore { return &MemStore{} }

func (s *MemStore) All(ctx context.Context) ([]models.Medicine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Medicine, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemStore) Get(ctx context.Context, id string) (models.Medicine, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.items {
		if m.ID == id {
			return m, true, nil
		}
	}
	return models.Medicine{}, false, nil
}

func (s *MemStore) Insert(ctx context.Context, m models.Medicine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, m)
	return nil
}
