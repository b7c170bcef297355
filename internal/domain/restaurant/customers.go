package restaurant

import "math/rand"

// customerNames is the fixed pool arrivals draw from.
var customerNames = []string{
	"Ava", "Bruno", "Clara", "Diego", "Elena",
	"Felix", "Greta", "Hugo", "Iris", "Jonas",
	"Klara", "Luis", "Mira", "Nils", "Olive",
	"Pablo", "Quinn", "Rosa", "Sven", "Tilda",
}

// RandomCustomerName draws a uniformly random name from the pool.
func RandomCustomerName(rng *rand.Rand) string {
	return customerNames[rng.Intn(len(customerNames))]
}

// Counters tracks how many counters a restaurant has and may expand to.
type Counters struct {
	Count    int `json:"count"`
	MaxCount int `json:"maxCount"`
}

// Restaurants tracks owned restaurants and their counter capacity.
// Capacity for concurrent orders is Count * Counters.Count.
type Restaurants struct {
	Count    int      `json:"count"`
	MaxCount int      `json:"maxCount"`
	Counters Counters `json:"counters"`
}

// Capacity is the number of orders that can be active at once.
func (r Restaurants) Capacity() int {
	return r.Count * r.Counters.Count
}

// DefaultRestaurants seeds the structures created when the restaurant
// unlocks: one restaurant of a possible three, three counters of five.
func DefaultRestaurants() Restaurants {
	return Restaurants{
		Count:    1,
		MaxCount: 3,
		Counters: Counters{Count: 3, MaxCount: 5},
	}
}
