package models

// Index represents an entity event published to the karma worker.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	UserId     string `json:"user_id"`
}
