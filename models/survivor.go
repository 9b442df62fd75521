package models

import "time"

type Contributions struct {
	Plants    int `json:"plants" bson:"plants"`
	Medicines int `json:"medicines" bson:"medicines"`
	Trades    int `json:"trades" bson:"trades"`
	Total     int `json:"total" bson:"total"`
}

type Survivor struct {
	ID            string        `json:"id" bson:"survivorid"`
	Name          string        `json:"name" bson:"name"`
	Initials      string        `json:"initials" bson:"initials"`
	Contributions Contributions `json:"contributions" bson:"contributions"`
	Badge         string        `json:"badge" bson:"badge"`
	Specialty     string        `json:"specialty" bson:"specialty"`
	Rank          string        `json:"rank,omitempty" bson:"rank,omitempty"`
	UpdatedAt     time.Time     `json:"-" bson:"updatedAt,omitempty"`
}
