package medicines

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"embervale/models"

	"github.com/julienschmidt/httprouter"
)

// failingStore simulates an unreachable backing store.
type failingStore struct{}

func (failingStore) All(ctx context.Context) ([]models.Medicine, error) {
	return nil, errors.New("store unreachable")
}

func (failingStore) Get(ctx context.Context, id string) (models.Medicine, bool, error) {
	return models.Medicine{}, false, errors.New("store unreachable")
}

func (failingStore) Insert(ctx context.Context, m models.Medicine) error {
	return errors.New("store unreachable")
}

func validPayload() map[string]any {
	return map[string]any{
		"name":        "Willow Bark Tea",
		"description": "Eases pain and fever when real painkillers ran out years ago.",
		"ingredients": []map[string]string{
			{"plantId": "willow", "plantName": "White Willow", "amount": "2 tbsp bark"},
		},
		"uses":        []string{"Pain relief", "Fever"},
		"preparation": "Simmer the bark for 15 minutes, strain.",
		"dosage":      "One cup up to three times daily.",
		"difficulty":  "Easy",
		"category":    "Tea",
		"time":        "20 min",
		"shelf_life":  "1 day brewed",
	}
}

func postMedicine(t *testing.T, h *Handler, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/medicines", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateMedicine(rec, req, nil)
	return rec
}

func TestCreateMedicineMissingDosage(t *testing.T) {
	h := NewHandler(NewMemStore())

	payload := validPayload()
	delete(payload, "dosage")

	rec := postMedicine(t, h, payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "dosage") {
		t.Fatalf("error should name the dosage field: %s", rec.Body.String())
	}
}

func TestCreateMedicineIngredientMissingPlantID(t *testing.T) {
	h := NewHandler(NewMemStore())

	payload := validPayload()
	payload["ingredients"] = []map[string]string{
		{"plantName": "White Willow", "amount": "2 tbsp"},
	}

	rec := postMedicine(t, h, payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(strings.ToLower(rec.Body.String()), "ingredient") {
		t.Fatalf("error should name the ingredients field: %s", rec.Body.String())
	}
}

func TestCreateMedicineInvalidEnums(t *testing.T) {
	h := NewHandler(NewMemStore())

	payload := validPayload()
	payload["difficulty"] = "Impossible"
	if rec := postMedicine(t, h, payload); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad difficulty: expected 400, got %d", rec.Code)
	}

	payload = validPayload()
	payload["category"] = "Potion"
	if rec := postMedicine(t, h, payload); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad category: expected 400, got %d", rec.Code)
	}
}

func TestCreateMedicineSuccess(t *testing.T) {
	store := NewMemStore()
	h := NewHandler(store)

	rec := postMedicine(t, h, validPayload())
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created models.Medicine
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Error("expected a generated id")
	}
	if created.Name != "Willow Bark Tea" || created.Category != "Tea" || created.Difficulty != "Easy" {
		t.Errorf("submitted fields not echoed back: %+v", created)
	}

	stored, _ := store.All(context.Background())
	if len(stored) != 1 || stored[0].ID != created.ID {
		t.Fatalf("medicine not persisted: %v", stored)
	}
}

// The list read path degrades to an empty list when the store is
// unreachable; callers cannot tell "no data" from "store down".
func TestGetMedicinesEmptyListOnStoreFailure(t *testing.T) {
	h := NewHandler(failingStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/medicines", nil)
	rec := httptest.NewRecorder()
	h.GetMedicines(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Success   bool              `json:"success"`
		Medicines []models.Medicine `json:"medicines"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.Success {
		t.Error("list read should still report success")
	}
	if body.Medicines == nil {
		t.Fatal("expected an empty array, got null")
	}
	if len(body.Medicines) != 0 {
		t.Fatalf("expected no medicines, got %d", len(body.Medicines))
	}
}

func TestGetMedicineNotFound(t *testing.T) {
	h := NewHandler(NewMemStore())

	req := httptest.NewRequest(http.MethodGet, "/api/medicines/nope", nil)
	rec := httptest.NewRecorder()
	h.GetMedicine(rec, req, httprouter.Params{{Key: "id", Value: "nope"}})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetMedicineFound(t *testing.T) {
	store := NewMemStore()
	h := NewHandler(store)

	rec := postMedicine(t, h, validPayload())
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var created models.Medicine
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/medicines/"+created.ID, nil)
	rec = httptest.NewRecorder()
	h.GetMedicine(rec, req, httprouter.Params{{Key: "id", Value: created.ID}})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), created.ID) {
		t.Fatalf("response should contain the medicine id: %s", rec.Body.String())
	}
}
