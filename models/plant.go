package models

// PlantStages is the fixed four-flag lifecycle record. Flags start
// false and are never transitioned server-side.
type PlantStages struct {
	Planted   bool `json:"planted" bson:"planted"`
	Sprouted  bool `json:"sprouted" bson:"sprouted"`
	Flowering bool `json:"flowering" bson:"flowering"`
	Harvested bool `json:"harvested" bson:"harvested"`
}

type PlantRequirements struct {
	Sun         string `json:"sun" bson:"sun"`
	Soil        string `json:"soil" bson:"soil"`
	Water       string `json:"water" bson:"water"`
	Temperature string `json:"temperature" bson:"temperature"`
}

type Plant struct {
	ID           string              `json:"id" bson:"plantid"`
	Name         string              `json:"name" bson:"name"`
	Description  string              `json:"description" bson:"description"`
	GrowthTime   string              `json:"growthTime" bson:"growthTime"`
	Difficulty   string              `json:"difficulty" bson:"difficulty"` // Easy | Medium | Hard
	Category     string              `json:"category" bson:"category"`     // Food | Medicinal
	Tags         []string            `json:"tags" bson:"tags"`
	ImageURL     string              `json:"imageUrl" bson:"imageUrl"`
	Stages       PlantStages         `json:"stages" bson:"stages"`
	Requirements PlantRequirements   `json:"requirements" bson:"requirements"`
	Uses         map[string][]string `json:"uses" bson:"uses"`
	CreatedBy    string              `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
}

// PlantRow is the flat snake_cased shape rows come back from the store in.
type PlantRow struct {
	ID          string `json:"id" bson:"plantid"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Category    string `json:"category" bson:"category"`
	GrowthTime  string `json:"growth_time" bson:"growth_time"`
	Sunlight    string `json:"sunlight" bson:"sunlight"`
	Water       string `json:"water" bson:"water"`
	Difficulty  string `json:"difficulty" bson:"difficulty"`
	ImageURL    string `json:"image_url" bson:"image_url"`
	CreatedBy   string `json:"created_by,omitempty" bson:"created_by,omitempty"`
}

func (p Plant) FilterFields() (name, description, category string) {
	return p.Name, p.Description, p.Category
}
