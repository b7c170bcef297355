package recipe

// PackSize tiers the feed store offerings.
type PackSize string

const (
	PackSmall  PackSize = "small"
	PackMedium PackSize = "medium"
	PackBulk   PackSize = "bulk"
)

// FeedPack is a purchasable quantity of chicken feed.
type FeedPack struct {
	Size  PackSize
	Units float64
	Price float64
}

var feedPacks = []FeedPack{
	{Size: PackSmall, Units: 50, Price: 50},
	{Size: PackMedium, Units: 150, Price: 120},
	{Size: PackBulk, Units: 500, Price: 350},
}

// FeedPacks returns the store's feed pack table, cheapest first.
func FeedPacks() []FeedPack {
	out := make([]FeedPack, len(feedPacks))
	copy(out, feedPacks)
	return out
}

// FeedPackBySize looks up a pack by its size tier.
func FeedPackBySize(size PackSize) (FeedPack, bool) {
	for _, p := range feedPacks {
		if p.Size == size {
			return p, true
		}
	}
	return FeedPack{}, false
}

// OptimalFeedPack picks the pack the auto-feeder should buy given the
// current feed level, livestock count and available money.
//
// Below an hour of feed left it is an emergency: take the cheapest pack
// the player can afford. Otherwise prefer a tier matching farm size
// (small under 10 birds, medium under 50, bulk beyond) and fall back to
// the next best affordable pack.
func OptimalFeedPack(feed float64, livestock int, money float64) (FeedPack, bool) {
	perHour := float64(livestock) * 0.2
	if perHour < 0.1 {
		perHour = 0.1
	}
	hoursLeft := feed / perHour

	if hoursLeft < 1 {
		for _, p := range feedPacks {
			if p.Price <= money {
				return p, true
			}
		}
		return FeedPack{}, false
	}

	var preferred PackSize
	switch {
	case livestock < 10:
		preferred = PackSmall
	case livestock < 50:
		preferred = PackMedium
	default:
		preferred = PackBulk
	}

	if p, ok := FeedPackBySize(preferred); ok && p.Price <= money {
		return p, true
	}

	// Preferred tier unaffordable: walk down from the largest affordable pack.
	for i := len(feedPacks) - 1; i >= 0; i-- {
		if feedPacks[i].Price <= money {
			return feedPacks[i], true
		}
	}
	return FeedPack{}, false
}
