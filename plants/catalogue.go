package plants

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"embervale/catalog"
	"embervale/db"
	"embervale/models"
	"embervale/openfarm"
	"embervale/rdx"
	"embervale/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var cropDB = openfarm.NewClient()

// SearchPlants relays a query to the external crop database.
func SearchPlants(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	query := r.URL.Query().Get("q")
	if query == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Query is required")
		return
	}

	plants, err := cropDB.SearchCrops(ctx, query)
	if err != nil {
		log.Printf("plants: crop search failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to search plants")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "plants": plants})
}

// GetCropDetail fetches a single crop from the external database.
func GetCropDetail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	plant, err := cropDB.GetCrop(ctx, ps.ByName("id"))
	if err != nil {
		log.Printf("plants: crop fetch failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch crop")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "plant": plant})
}

// GetPlantCatalogue serves the full plant catalog through a Redis
// cache with a two hour TTL.
func GetPlantCatalogue(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	const redisKey = "plant_catalogue"
	var plants []models.Plant

	if val, err := rdx.Conn.Get(ctx, redisKey).Result(); err == nil && val != "" {
		if err := json.Unmarshal([]byte(val), &plants); err == nil {
			utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "plants": plants})
			return
		}
	}

	rows, err := utils.FindAndDecode[models.PlantRow](ctx, db.PlantsCollection, bson.M{})
	if err != nil {
		log.Printf("plants: catalogue fetch failed: %v", err)
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "plants": []models.Plant{}})
		return
	}

	plants = make([]models.Plant, 0, len(rows))
	for _, row := range rows {
		plants = append(plants, catalog.PlantFromRow(row))
	}

	if jsonBytes, err := json.Marshal(plants); err == nil {
		_ = rdx.Conn.Set(ctx, redisKey, jsonBytes, 2*time.Hour).Err()
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "plants": plants})
}
