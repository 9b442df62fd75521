package medicines

import (
	"encoding/json"
	"log"
	"net/http"

	"embervale/catalog"
	"embervale/globals"
	"embervale/models"
	"embervale/mq"
	"embervale/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

// Handler serves the medicine catalog against an injected Store.
type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) GetMedicines(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	meds, err := h.store.All(ctx)
	if err != nil {
		log.Printf("medicines: fetch failed: %v", err)
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "medicines": []models.Medicine{}})
		return
	}

	params := utils.ParseFilterParams(r)
	meds = catalog.Filter(meds, catalog.FilterOptions{
		Query:    params.Query,
		Category: params.Category,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "medicines": meds})
}

func (h *Handler) GetMedicine(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	m, found, err := h.store.Get(ctx, ps.ByName("id"))
	if err != nil {
		log.Printf("medicines: fetch %s failed: %v", ps.ByName("id"), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch medicine")
		return
	}
	if !found {
		utils.RespondWithError(w, http.StatusNotFound, "Medicine not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "medicine": m})
}

// CreateMedicine validates the payload and persists a new medicine.
func (h *Handler) CreateMedicine(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var payload createMedicinePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := payload.validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	medicine := models.Medicine{
		ID:          uuid.New().String(),
		Name:        payload.Name,
		Description: payload.Description,
		Ingredients: payload.Ingredients,
		Uses:        payload.Uses,
		Preparation: payload.Preparation,
		Dosage:      payload.Dosage,
		ImageURL:    payload.ImageURL,
		Difficulty:  payload.Difficulty,
		Category:    payload.Category,
		Time:        payload.Time,
		ShelfLife:   payload.ShelfLife,
		CreatedBy:   userID,
	}

	if err := h.store.Insert(ctx, medicine); err != nil {
		log.Printf("medicines: insert failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create medicine")
		return
	}

	go mq.Emit(ctx, "medicine-created", models.Index{
		EntityType: "medicine", EntityId: medicine.ID, Method: "POST", UserId: userID,
	})

	utils.RespondWithJSON(w, http.StatusCreated, medicine)
}
