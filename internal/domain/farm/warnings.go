package farm

// Warning flags a condition the player should look at. Warnings are a
// derived view recomputed every tick; they are never persisted.
type Warning string

const (
	WarningNoFeed      Warning = "NO_FEED"
	WarningLowFeed     Warning = "LOW_FEED"
	WarningNoChickens  Warning = "NO_CHICKENS"
	WarningNoEggsReady Warning = "NO_EGGS_READY"
	WarningLowMoney    Warning = "LOW_MONEY"
)

const (
	lowFeedThreshold  = 10.0
	lowMoneyThreshold = 50.0
)

// Warnings derives the current warning set from the state.
func (s *GameState) Warnings() []Warning {
	var out []Warning
	switch {
	case s.Feed <= 0:
		out = append(out, WarningNoFeed)
	case s.Feed < lowFeedThreshold:
		out = append(out, WarningLowFeed)
	}
	if s.Livestock() == 0 {
		out = append(out, WarningNoChickens)
	}
	if s.ReadyEggs == 0 && s.ReadyGoldenEggs == 0 {
		out = append(out, WarningNoEggsReady)
	}
	if s.Money < lowMoneyThreshold {
		out = append(out, WarningLowMoney)
	}
	return out
}
