package barter

import "embervale/models"

// seedItems is the fixed community inventory shown to every survivor.
// User listings are appended after these, never merged into them.
var seedItems = []models.BarterItem{
	{
		ID:          "1",
		Name:        "Combat Knife",
		Description: "High-quality survival knife, perfect for hunting and crafting. Carbon steel blade with serrated edge.",
		Category:    "Tools",
		Condition:   "Good",
		ImageURL:    "/images/barter/knife.jpg",
		Owner:       models.Owner{Name: "Sarah Connor", Avatar: "/images/avatars/avatar1.jpg", Rating: 4.8},
	},
	{
		ID:          "2",
		Name:        "Medicinal Herbs Bundle",
		Description: "Freshly gathered medicinal herbs for natural remedies. Includes sage, yarrow, and echinacea.",
		Category:    "Medicine",
		Condition:   "New",
		ImageURL:    "/images/barter/herbs.jpg",
		Owner:       models.Owner{Name: "John Smith", Avatar: "/images/avatars/avatar2.jpg", Rating: 4.5},
	},
	{
		ID:          "3",
		Name:        "Canned Food Cache",
		Description: "Long-lasting preserved food supplies. Mix of vegetables, fruits, and proteins. 20+ cans.",
		Category:    "Food",
		Condition:   "Good",
		ImageURL:    "/images/barter/canned-food.jpg",
		Owner:       models.Owner{Name: "Max Rockatansky", Avatar: "/images/avatars/avatar3.jpg", Rating: 4.9},
	},
	{
		ID:          "4",
		Name:        "Advanced Water Filter",
		Description: "Portable water filtration system. Removes 99.9% of contaminants. Solar-powered.",
		Category:    "Resources",
		Condition:   "Fair",
		ImageURL:    "/images/barter/water-filter.jpg",
		Owner:       models.Owner{Name: "Ellen Ripley", Avatar: "/images/avatars/avatar4.jpg", Rating: 4.7},
	},
	{
		ID:          "5",
		Name:        "Crossbow",
		Description: "Compound crossbow with scope. Silent and deadly. Includes 12 carbon arrows.",
		Category:    "Weapons",
		Condition:   "Good",
		ImageURL:    "/images/barter/crossbow.jpg",
		Owner:       models.Owner{Name: "Daryl Dixon", Avatar: "/images/avatars/avatar5.jpg", Rating: 4.9},
	},
	{
		ID:          "6",
		Name:        "Solar Generator",
		Description: "Portable solar power station. 1000W output. Perfect for charging essential devices.",
		Category:    "Resources",
		Condition:   "New",
		ImageURL:    "/images/barter/solar-generator.jpg",
		Owner:       models.Owner{Name: "Aloy", Avatar: "/images/avatars/avatar6.jpg", Rating: 4.6},
	},
	{
		ID:          "7",
		Name:        "First Aid Kit",
		Description: "Comprehensive medical supplies. Includes antibiotics, bandages, and surgical tools.",
		Category:    "Medicine",
		Condition:   "New",
		ImageURL:    "/images/barter/medical-kit.jpg",
		Owner:       models.Owner{Name: "Claire Redfield", Avatar: "/images/avatars/avatar7.jpg", Rating: 4.8},
	},
	{
		ID:          "8",
		Name:        "Machete",
		Description: "Heavy-duty machete. Perfect for clearing paths and self-defense.",
		Category:    "Weapons",
		Condition:   "Good",
		ImageURL:    "/images/barter/machete.jpg",
		Owner:       models.Owner{Name: "Joel Miller", Avatar: "/images/avatars/avatar8.jpg", Rating: 4.7},
	},
	{
		ID:          "9",
		Name:        "Dried Meat Stock",
		Description: "Preserved jerky and dried meats. High protein, long shelf life.",
		Category:    "Food",
		Condition:   "Good",
		ImageURL:    "/images/barter/dried-meat.jpg",
		Owner:       models.Owner{Name: "Carol Peletier", Avatar: "/images/avatars/avatar9.jpg", Rating: 4.5},
	},
	{
		ID:          "10",
		Name:        "Multi-Tool Set",
		Description: "Professional grade multi-tools. Includes pliers, screwdrivers, and wire cutters.",
		Category:    "Tools",
		Condition:   "Fair",
		ImageURL:    "/images/barter/tools.jpg",
		Owner:       models.Owner{Name: "Marcus Wright", Avatar: "/images/avatars/avatar10.jpg", Rating: 4.4},
	},
	{
		ID:          "11",
		Name:        "Ammunition Cache",
		Description: "Mixed ammunition box. Various calibers. Trade by type.",
		Category:    "Weapons",
		Condition:   "New",
		ImageURL:    "/images/barter/ammo.jpg",
		Owner:       models.Owner{Name: "Chris Redfield", Avatar: "/images/avatars/avatar11.jpg", Rating: 4.9},
	},
	{
		ID:          "12",
		Name:        "Seeds Collection",
		Description: "Variety of vegetable and fruit seeds. Non-GMO, heirloom varieties.",
		Category:    "Resources",
		Condition:   "New",
		ImageURL:    "/images/barter/seeds.jpg",
		Owner:       models.Owner{Name: "Ellie Williams", Avatar: "/images/avatars/avatar12.jpg", Rating: 4.6},
	},
}

// SeedItems returns a copy of the community inventory.
func SeedItems() []models.BarterItem {
	out := make([]models.BarterItem, len(seedItems))
	copy(out, seedItems)
	return out
}

// MergeWithSeed appends user listings after the seed inventory,
// preserving insertion order on both sides. Duplicate ids are kept
// as-is; the seed side always wins display order.
func MergeWithSeed(userItems []models.BarterItem) []models.BarterItem {
	merged := make([]models.BarterItem, 0, len(seedItems)+len(userItems))
	merged = append(merged, seedItems...)
	merged = append(merged, userItems...)
	return merged
}
