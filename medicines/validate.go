package medicines

import (
	"fmt"
	"strings"

	"embervale/models"
	"embervale/utils"
)

var (
	validDifficulties = []string{"Easy", "Medium", "Hard"}
	validCategories   = []string{"Tincture", "Tea", "Poultice", "Salve", "Syrup", "Oil", "Balm"}
)

type createMedicinePayload struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Ingredients []models.Ingredient `json:"ingredients"`
	Uses        []string            `json:"uses"`
	Preparation string              `json:"preparation"`
	Dosage      string              `json:"dosage"`
	ImageURL    string              `json:"imageUrl"`
	Difficulty  string              `json:"difficulty"`
	Category    string              `json:"category"`
	Time        string              `json:"time"`
	ShelfLife   string              `json:"shelf_life"`
}

// validate checks the payload against the medicine schema. The same
// rules apply to every write path.
func (p createMedicinePayload) validate() error {
	missing := []string{}
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Description == "" {
		missing = append(missing, "description")
	}
	if len(p.Ingredients) == 0 {
		missing = append(missing, "ingredients")
	}
	if len(p.Uses) == 0 {
		missing = append(missing, "uses")
	}
	if p.Preparation == "" {
		missing = append(missing, "preparation")
	}
	if p.Dosage == "" {
		missing = append(missing, "dosage")
	}
	if p.Difficulty == "" {
		missing = append(missing, "difficulty")
	}
	if p.Category == "" {
		missing = append(missing, "category")
	}
	if p.Time == "" {
		missing = append(missing, "time")
	}
	if p.ShelfLife == "" {
		missing = append(missing, "shelf_life")
	}
	if len(missing) > 0 {
		return fmt.Errorf("Missing required fields: %s", strings.Join(missing, ", "))
	}

	for _, ing := range p.Ingredients {
		if ing.PlantID == "" || ing.PlantName == "" || ing.Amount == "" {
			return fmt.Errorf("Invalid ingredients structure. Each ingredient must have plantId, plantName, and amount.")
		}
	}

	if !utils.Contains(validDifficulties, p.Difficulty) {
		return fmt.Errorf("Invalid difficulty level. Must be Easy, Medium, or Hard.")
	}
	if !utils.Contains(validCategories, p.Category) {
		return fmt.Errorf("Invalid category. Must be one of: %s.", strings.Join(validCategories, ", "))
	}
	return nil
}
