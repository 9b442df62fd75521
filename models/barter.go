package models

import "time"

type Owner struct {
	Name   string  `json:"name" bson:"name"`
	Avatar string  `json:"avatar" bson:"avatar"`
	Rating float64 `json:"rating" bson:"rating"`
}

type BarterItem struct {
	ID            string    `json:"id" bson:"itemid"`
	Name          string    `json:"name" bson:"name"`
	Description   string    `json:"description" bson:"description"`
	Category      string    `json:"category" bson:"category"`   // Food | Medicine | Tools | Weapons | Resources
	Condition     string    `json:"condition" bson:"condition"` // New | Good | Fair | Poor
	ImageURL      string    `json:"imageUrl" bson:"imageUrl"`
	Owner         Owner     `json:"owner" bson:"owner"`
	OwnerID       string    `json:"ownerId,omitempty" bson:"ownerId,omitempty"`
	IsUserListing bool      `json:"isUserListing,omitempty" bson:"isUserListing,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// TradeProposal is an inert, append-only record. There are no
// accepted/rejected/expired transitions.
type TradeProposal struct {
	ItemID       string    `json:"itemId" bson:"itemId"`
	ItemName     string    `json:"itemName" bson:"itemName"`
	OwnerName    string    `json:"ownerName" bson:"ownerName"`
	ProposedItem string    `json:"proposedItem" bson:"proposedItem"`
	ProposedBy   string    `json:"proposedBy,omitempty" bson:"proposedBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

func (b BarterItem) FilterFields() (name, description, category string) {
	return b.Name, b.Description, b.Category
}
