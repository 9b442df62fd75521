package leaderboard

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"embervale/db"
	"embervale/globals"
	"embervale/models"
	"embervale/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// seedSurvivors is the settlement's founding roster. Karma events
// recorded by the worker are merged on top of it per request.
var seedSurvivors = []models.Survivor{
	{
		ID: "1", Name: "Sarah Connor", Initials: "SC",
		Contributions: models.Contributions{Plants: 15, Medicines: 8, Trades: 12, Total: 35},
		Badge:         "🌿", Specialty: "Master Botanist",
	},
	{
		ID: "2", Name: "Max Rockatansky", Initials: "MR",
		Contributions: models.Contributions{Plants: 7, Medicines: 4, Trades: 25, Total: 36},
		Badge:         "🔄", Specialty: "Trade Navigator",
	},
	{
		ID: "3", Name: "Ellen Ripley", Initials: "ER",
		Contributions: models.Contributions{Plants: 10, Medicines: 16, Trades: 5, Total: 31},
		Badge:         "🧪", Specialty: "Medicine Crafter",
	},
	{
		ID: "4", Name: "Joel Miller", Initials: "JM",
		Contributions: models.Contributions{Plants: 10, Medicines: 10, Trades: 10, Total: 30},
		Badge:         "⚖️", Specialty: "Balanced Survivor",
	},
	{
		ID: "5", Name: "Aloy", Initials: "AL",
		Contributions: models.Contributions{Plants: 8, Medicines: 12, Trades: 8, Total: 28},
		Badge:         "🎯", Specialty: "Resource Scout",
	},
}

var currentUserSeed = models.Survivor{
	ID: "current", Name: "You", Initials: "YU",
	Contributions: models.Contributions{Plants: 6, Medicines: 3, Trades: 4, Total: 13},
	Badge:         "🌟", Specialty: "Rising Survivor",
}

type karmaDoc struct {
	SurvivorID    string               `bson:"survivorid"`
	Contributions models.Contributions `bson:"contributions"`
}

// GetLeaderboard returns the ranked roster plus the caller's own entry.
// Authenticated callers see their accrued karma folded into the "You"
// row; everyone else sees the seed baseline.
func GetLeaderboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	current := currentUserSeed
	if userID != "" {
		var doc karmaDoc
		err := db.KarmaCollection.FindOne(ctx, bson.M{"survivorid": userID}).Decode(&doc)
		switch {
		case err == nil:
			current.ID = userID
			current.Contributions.Plants += doc.Contributions.Plants
			current.Contributions.Medicines += doc.Contributions.Medicines
			current.Contributions.Trades += doc.Contributions.Trades
			current.Contributions.Total += doc.Contributions.Total
		case err != mongo.ErrNoDocuments:
			log.Printf("leaderboard: karma lookup for %s failed: %v", userID, err)
		}
	}

	roster := make([]models.Survivor, len(seedSurvivors))
	copy(roster, seedSurvivors)
	roster = append(roster, current)
	roster = AssignRanks(roster)

	for _, s := range roster {
		if s.ID == current.ID {
			current = s
			break
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":     true,
		"survivors":   roster,
		"currentUser": current,
	})
}

// InitialsOf derives a two-letter avatar tag from a survivor name.
func InitialsOf(name string) string {
	parts := strings.Fields(name)
	switch {
	case len(parts) == 0:
		return "??"
	case len(parts) == 1:
		upper := strings.ToUpper(parts[0])
		if len(upper) == 1 {
			return upper
		}
		return upper[:2]
	default:
		return strings.ToUpper(parts[0][:1] + parts[len(parts)-1][:1])
	}
}
