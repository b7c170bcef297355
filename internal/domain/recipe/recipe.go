package recipe

import "time"

// ID identifies a recipe in the static catalog.
type ID string

const (
	Omelette    ID = "omelette"
	Pancakes    ID = "pancakes"
	Quiche      ID = "quiche"
	Souffle     ID = "souffle"
	GoldenCake  ID = "golden_cake"
	ChickenSoup ID = "chicken_soup"
)

// Recipe is an immutable catalog entry describing what a dish costs to
// cook, how long it takes and what it sells for.
type Recipe struct {
	ID            ID
	Icon          string
	Name          string
	EggCost       int
	GoldenEggCost int
	ChickenCost   int
	BaseTime      time.Duration
	SellPrice     float64
}

// catalog is ordered cheapest-first; order matters for display only.
var catalog = []Recipe{
	{ID: Omelette, Icon: "🍳", Name: "Omelette", EggCost: 2, BaseTime: 30 * time.Second, SellPrice: 15},
	{ID: Pancakes, Icon: "🥞", Name: "Pancakes", EggCost: 3, BaseTime: 45 * time.Second, SellPrice: 25},
	{ID: Quiche, Icon: "🥧", Name: "Quiche", EggCost: 5, BaseTime: 90 * time.Second, SellPrice: 50},
	{ID: Souffle, Icon: "🍮", Name: "Soufflé", EggCost: 8, BaseTime: 2 * time.Minute, SellPrice: 90},
	{ID: GoldenCake, Icon: "🎂", Name: "Golden Cake", EggCost: 4, GoldenEggCost: 2, BaseTime: 3 * time.Minute, SellPrice: 250},
	{ID: ChickenSoup, Icon: "🍲", Name: "Chicken Soup", EggCost: 1, ChickenCost: 1, BaseTime: 100 * time.Second, SellPrice: 120},
}

// Catalog returns a copy of the full recipe catalog.
func Catalog() []Recipe {
	out := make([]Recipe, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks a recipe up in the catalog.
func ByID(id ID) (Recipe, bool) {
	for _, r := range catalog {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

// ProductionTime returns the effective cook time for a recipe given the
// number of kitchen upgrades. Each upgrade shaves 20% off the base rate.
func (r Recipe) ProductionTime(kitchenUpgrades int) time.Duration {
	if kitchenUpgrades < 0 {
		kitchenUpgrades = 0
	}
	divisor := 1.0 + 0.2*float64(kitchenUpgrades)
	return time.Duration(float64(r.BaseTime) / divisor)
}

// OrderTimeLimit is how long a customer will wait for this dish:
// the cook time plus a 50% buffer.
func (r Recipe) OrderTimeLimit() time.Duration {
	return time.Duration(float64(r.BaseTime) * 1.5)
}
