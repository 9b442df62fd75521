package models

type Ingredient struct {
	PlantID   string `json:"plantId" bson:"plantId"`
	PlantName string `json:"plantName" bson:"plantName"`
	Amount    string `json:"amount" bson:"amount"`
}

type Medicine struct {
	ID          string       `json:"id" bson:"medicineid"`
	Name        string       `json:"name" bson:"name"`
	Description string       `json:"description" bson:"description"`
	Ingredients []Ingredient `json:"ingredients" bson:"ingredients"`
	Uses        []string     `json:"uses" bson:"uses"`
	Preparation string       `json:"preparation" bson:"preparation"`
	Dosage      string       `json:"dosage" bson:"dosage"`
	ImageURL    string       `json:"imageUrl" bson:"imageUrl"`
	Difficulty  string       `json:"difficulty" bson:"difficulty"` // Easy | Medium | Hard
	Category    string       `json:"category" bson:"category"`     // Tincture | Tea | Poultice | Salve | Syrup | Oil | Balm
	Time        string       `json:"time" bson:"time"`
	ShelfLife   string       `json:"shelf_life" bson:"shelf_life"`
	CreatedBy   string       `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
}

// MedicineRow is the flat store shape for medicines.
type MedicineRow struct {
	ID          string       `json:"id" bson:"medicineid"`
	Name        string       `json:"name" bson:"name"`
	Description string       `json:"description" bson:"description"`
	Ingredients []Ingredient `json:"ingredients" bson:"ingredients"`
	Uses        []string     `json:"uses" bson:"uses"`
	Preparation string       `json:"preparation" bson:"preparation"`
	Dosage      string       `json:"dosage" bson:"dosage"`
	ImageURL    string       `json:"image_url" bson:"image_url"`
	Difficulty  string       `json:"difficulty" bson:"difficulty"`
	Category    string       `json:"category" bson:"category"`
	Time        string       `json:"time" bson:"time"`
	ShelfLife   string       `json:"shelf_life" bson:"shelf_life"`
}

func (m Medicine) FilterFields() (name, description, category string) {
	return m.Name, m.Description, m.Category
}
