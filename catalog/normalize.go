package catalog

import (
	"fmt"
	"strings"

	"embervale/models"
)

const (
	DefaultDifficulty    = "Medium"
	DefaultPlantImage    = "/images/plants/default-plant.jpg"
	DefaultMedicineImage = "/images/medicines/default-medicine.jpg"
)

var difficulties = map[string]bool{"Easy": true, "Medium": true, "Hard": true}

// PlantFromRow maps a flat store row into a Plant record. Absent
// fields get deterministic defaults so a sparse row never crashes a
// catalog page.
func PlantFromRow(row models.PlantRow) models.Plant {
	difficulty := row.Difficulty
	if !difficulties[difficulty] {
		difficulty = DefaultDifficulty
	}

	imageURL := row.ImageURL
	if imageURL == "" {
		imageURL = DefaultPlantImage
	}

	description := row.Description
	if description == "" {
		description = "No description available"
	}

	uses := map[string][]string{}
	if row.Category != "" {
		uses[strings.ToLower(row.Category)] = []string{description}
	}

	tags := []string{}
	if row.Category != "" {
		tags = append(tags, row.Category)
	}

	return models.Plant{
		ID:          row.ID,
		Name:        row.Name,
		Description: description,
		GrowthTime:  orUnknown(row.GrowthTime),
		Difficulty:  difficulty,
		Category:    row.Category,
		Tags:        tags,
		ImageURL:    imageURL,
		Stages:      models.PlantStages{},
		Requirements: models.PlantRequirements{
			Sun:         orUnknown(row.Sunlight),
			Soil:        "Any",
			Water:       orUnknown(row.Water),
			Temperature: "Moderate",
		},
		Uses:      uses,
		CreatedBy: row.CreatedBy,
	}
}

// OpenFarmCrop is the alternate crop-database row shape.
type OpenFarmCrop struct {
	ID         string
	Attributes OpenFarmAttributes
}

type OpenFarmAttributes struct {
	Name                    string  `json:"name"`
	Description             string  `json:"description"`
	GrowingDegreeDays       int     `json:"growing_degree_days"`
	Difficulty              int     `json:"difficulty"`
	SunRequirements         string  `json:"sun_requirements"`
	SoilRequirements        string  `json:"soil_requirements"`
	TemperatureRequirements string  `json:"temperature_requirements"`
	SowingMethod            string  `json:"sowing_method"`
	RowSpacing              float64 `json:"row_spacing"`
	MainImagePath           string  `json:"main_image_path"`
	MedicinalUse            string  `json:"medicinal_use"`
	CulinaryUse             string  `json:"culinary_use"`
	OtherUses               string  `json:"other_uses"`
}

// PlantFromOpenFarm maps the crop API shape into a Plant record.
func PlantFromOpenFarm(crop OpenFarmCrop) models.Plant {
	attrs := crop.Attributes

	difficulty := "Hard"
	switch attrs.Difficulty {
	case 1:
		difficulty = "Easy"
	case 2:
		difficulty = "Medium"
	}

	growthTime := "Unknown"
	if attrs.GrowingDegreeDays > 0 {
		growthTime = fmt.Sprintf("%d degree days", attrs.GrowingDegreeDays)
	}

	tags := []string{}
	if attrs.SunRequirements != "" {
		tags = append(tags, attrs.SunRequirements)
	}
	if attrs.SowingMethod != "" {
		tags = append(tags, "Sowing: "+attrs.SowingMethod)
	}
	if attrs.RowSpacing > 0 {
		tags = append(tags, fmt.Sprintf("Row spacing: %gcm", attrs.RowSpacing))
	}

	imageURL := attrs.MainImagePath
	if imageURL == "" {
		imageURL = DefaultPlantImage
	}

	description := attrs.Description
	if description == "" {
		description = "No description available"
	}

	uses := map[string][]string{}
	if attrs.MedicinalUse != "" {
		uses["medicinal"] = []string{attrs.MedicinalUse}
	}
	if attrs.CulinaryUse != "" {
		uses["food"] = []string{attrs.CulinaryUse}
	}
	if attrs.OtherUses != "" {
		uses["other"] = []string{attrs.OtherUses}
	}

	return models.Plant{
		ID:          crop.ID,
		Name:        attrs.Name,
		Description: description,
		GrowthTime:  growthTime,
		Difficulty:  difficulty,
		Tags:        tags,
		ImageURL:    imageURL,
		Stages:      models.PlantStages{},
		Requirements: models.PlantRequirements{
			Sun:  orUnknown(attrs.SunRequirements),
			Soil: orUnknown(attrs.SoilRequirements),
			// the crop API has no direct water field
			Water:       "Moderate",
			Temperature: orUnknown(attrs.TemperatureRequirements),
		},
		Uses: uses,
	}
}

// MedicineFromRow maps a flat store row into a Medicine record.
func MedicineFromRow(row models.MedicineRow) models.Medicine {
	difficulty := row.Difficulty
	if !difficulties[difficulty] {
		difficulty = DefaultDifficulty
	}

	imageURL := row.ImageURL
	if imageURL == "" {
		imageURL = DefaultMedicineImage
	}

	return models.Medicine{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Ingredients: row.Ingredients,
		Uses:        row.Uses,
		Preparation: row.Preparation,
		Dosage:      row.Dosage,
		ImageURL:    imageURL,
		Difficulty:  difficulty,
		Category:    row.Category,
		Time:        row.Time,
		ShelfLife:   row.ShelfLife,
	}
}

// ResolveIngredients rewrites ingredient plant references against the
// known plant list. Lookups go through a lower-cased name→id map;
// entries that resolve to no known plant are dropped, not rejected.
func ResolveIngredients(medicines []models.Medicine, plants []models.Plant) []models.Medicine {
	byID := make(map[string]bool, len(plants))
	byName := make(map[string]string, len(plants))
	for _, p := range plants {
		byID[p.ID] = true
		byName[strings.ToLower(p.Name)] = p.ID
	}

	out := make([]models.Medicine, 0, len(medicines))
	for _, m := range medicines {
		kept := make([]models.Ingredient, 0, len(m.Ingredients))
		for _, ing := range m.Ingredients {
			if byID[ing.PlantID] {
				kept = append(kept, ing)
				continue
			}
			if id, ok := byName[strings.ToLower(ing.PlantName)]; ok {
				ing.PlantID = id
				kept = append(kept, ing)
			}
			// unresolved references are dropped silently
		}
		m.Ingredients = kept
		out = append(out, m)
	}
	return out
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
