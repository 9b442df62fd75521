package plants

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"embervale/catalog"
	"embervale/db"
	"embervale/globals"
	"embervale/models"
	"embervale/mq"
	"embervale/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func getUserIDFromContext(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	return userID, ok
}

// GetPlants lists the plant catalog, optionally narrowed by ?q= and
// ?category=. A store failure on this read path yields an empty list;
// callers cannot tell "no data" from "store unreachable" (kept for
// compatibility with the existing clients, detail goes to the log).
func GetPlants(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	rows, err := utils.FindAndDecode[models.PlantRow](ctx, db.PlantsCollection, bson.M{})
	if err != nil {
		log.Printf("plants: fetch failed: %v", err)
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "plants": []models.Plant{}})
		return
	}

	plants := make([]models.Plant, 0, len(rows))
	for _, row := range rows {
		plants = append(plants, catalog.PlantFromRow(row))
	}

	params := utils.ParseFilterParams(r)
	plants = catalog.Filter(plants, catalog.FilterOptions{
		Query:    params.Query,
		Category: params.Category,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "plants": plants})
}

func GetPlant(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	plantID := ps.ByName("id")

	var row models.PlantRow
	err := db.PlantsCollection.FindOne(ctx, bson.M{"plantid": plantID}).Decode(&row)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Plant not found")
		return
	}
	if err != nil {
		log.Printf("plants: fetch %s failed: %v", plantID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch plant")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "plant": catalog.PlantFromRow(row)})
}

type createPlantPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	GrowthTime  string `json:"growth_time"`
	Sunlight    string `json:"sunlight"`
	Water       string `json:"water"`
	Difficulty  string `json:"difficulty"`
	ImageURL    string `json:"image_url"`
}

// CreatePlant forwards the payload to the store with the default
// lifecycle flags attached.
func CreatePlant(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	userID, ok := getUserIDFromContext(r)
	if !ok {
		http.Error(w, "Invalid user", http.StatusBadRequest)
		return
	}

	var payload createPlantPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if payload.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	row := models.PlantRow{
		ID:          plantID(payload.Name),
		Name:        payload.Name,
		Description: payload.Description,
		Category:    payload.Category,
		GrowthTime:  payload.GrowthTime,
		Sunlight:    payload.Sunlight,
		Water:       payload.Water,
		Difficulty:  payload.Difficulty,
		ImageURL:    payload.ImageURL,
		CreatedBy:   userID,
	}

	if _, err := db.PlantsCollection.InsertOne(ctx, row); err != nil {
		log.Printf("plants: insert failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create plant")
		return
	}

	go mq.Emit(ctx, "plant-created", models.Index{
		EntityType: "plant", EntityId: row.ID, Method: "POST", UserId: userID,
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "plant": catalog.PlantFromRow(row)})
}

func plantID(name string) string {
	formatted := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
	return formatted + "_" + utils.GenerateRandomString(6)
}
