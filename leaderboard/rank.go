package leaderboard

import (
	"fmt"
	"sort"

	"embervale/models"
)

// AssignRanks orders survivors by total contributions, highest first,
// and stamps ranks A1, A2, ... in that order. Ties keep their input
// order.
func AssignRanks(survivors []models.Survivor) []models.Survivor {
	ranked := make([]models.Survivor, len(survivors))
	copy(ranked, survivors)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Contributions.Total > ranked[j].Contributions.Total
	})
	for i := range ranked {
		ranked[i].Rank = fmt.Sprintf("A%d", i+1)
	}
	return ranked
}
