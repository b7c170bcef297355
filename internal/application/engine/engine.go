package engine

import (
	"math/rand"
	"sync"
	"time"

	"github.com/featherlane/henhouse-go/internal/domain/farm"
	"github.com/featherlane/henhouse-go/internal/domain/ledger"
	"github.com/featherlane/henhouse-go/internal/domain/recipe"
	"github.com/featherlane/henhouse-go/internal/domain/restaurant"
	"github.com/featherlane/henhouse-go/internal/domain/shared"
)

// Engine owns the GameState and is its single writer. Every public
// method takes the engine mutex, so timer callbacks and player commands
// are serialized exactly like callbacks on one event loop.
type Engine struct {
	mu      sync.Mutex
	state   *farm.GameState
	clock   shared.Clock
	rng     *rand.Rand
	toasts  ToastSink
	sounds  SoundSink
	metrics MetricsRecorder
	paused  bool
}

// NewEngine wires an engine around an already-hydrated state. Nil
// collaborators fall back to no-op implementations.
func NewEngine(state *farm.GameState, clock shared.Clock, toasts ToastSink, sounds SoundSink, metrics MetricsRecorder, rng *rand.Rand) *Engine {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if toasts == nil {
		toasts = NopToastSink{}
	}
	if sounds == nil {
		sounds = NopSoundSink{}
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	state.HydrateDefaults()
	return &Engine{
		state:   state,
		clock:   clock,
		rng:     rng,
		toasts:  toasts,
		sounds:  sounds,
		metrics: metrics,
	}
}

// Pause freezes the tick body. Timers keep firing but become cheap
// check-and-returns; elapsed frozen time is never replayed on resume.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paused = true
}

// Resume unfreezes the tick body.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paused = false
	e.state.LastUpdate = e.clock.Now()
}

// IsPaused reports whether the engine is frozen.
func (e *Engine) IsPaused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

// Snapshot returns a deep copy of the current state for readers.
func (e *Engine) Snapshot() *farm.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Warnings returns the current derived warning view.
func (e *Engine) Warnings() []farm.Warning {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Warnings()
}

// Advance moves the simulation to now. The step order is fixed: feed
// decay, production sweep, breeding sweep, auto-collector, auto-feeder,
// milestones, restaurant unlock, order status refresh. Calling it again
// with the same now is a no-op.
func (e *Engine) Advance(now time.Time) {
	started := time.Now()
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.paused {
		// Frozen interval is dropped, not accrued.
		e.state.LastUpdate = now
		return
	}

	delta := now.Sub(e.state.LastUpdate)
	if delta < 0 {
		delta = 0
	}
	if delta > farm.MaxTickDelta {
		delta = farm.MaxTickDelta
	}
	e.state.LastUpdate = now

	if delta > 0 {
		e.consumeFeed(delta)
	}
	e.sweepProduction(now)
	e.sweepBreeding(now)
	if delta > 0 {
		e.processCollector(now)
		e.processFeeder(now)
	}
	e.checkMilestones()
	e.checkRestaurantUnlock()
	e.refreshOrderStatuses()

	e.metrics.ObserveState(e.state)
	e.metrics.RecordTickDuration(time.Since(started).Seconds())
}

// consumeFeed drains feed proportionally to livestock and elapsed time,
// clamped at zero.
func (e *Engine) consumeFeed(delta time.Duration) {
	livestock := e.state.Livestock()
	if livestock == 0 {
		return
	}
	e.state.Feed -= float64(livestock) * float64(delta.Milliseconds()) / farm.FeedDecayDivisor
	if e.state.Feed < 0 {
		e.state.Feed = 0
	}
}

// sweepProduction completes every cooking job past its deadline. This is
// the only path that increases product stock.
func (e *Engine) sweepProduction(now time.Time) {
	remaining := e.state.ProductionQueue[:0]
	for _, job := range e.state.ProductionQueue {
		if job.Done(now) {
			e.state.Products[job.RecipeID]++
			e.metrics.RecordProductCompleted()
			if r, ok := recipe.ByID(job.RecipeID); ok {
				e.toasts.Emit(r.Icon+" "+r.Name+" is ready!", SeveritySuccess)
			}
			continue
		}
		remaining = append(remaining, job)
	}
	e.state.ProductionQueue = remaining
}

// sweepBreeding hatches every breeding job past its deadline.
func (e *Engine) sweepBreeding(now time.Time) {
	remaining := e.state.BreedingQueue[:0]
	for _, job := range e.state.BreedingQueue {
		if job.Done(now) {
			e.state.GoldenChickens++
			e.toasts.Emit("✨ A golden chicken hatched!", SeveritySuccess)
			continue
		}
		remaining = append(remaining, job)
	}
	e.state.BreedingQueue = remaining
}

// processCollector drains the auto-collector budget and gathers ready
// eggs once they reach the level threshold.
func (e *Engine) processCollector(now time.Time) {
	c := &e.state.AutoCollector
	if !c.IsActive {
		return
	}
	if c.Drain() {
		e.toasts.Emit("Auto-collector ran out of time", SeverityWarning)
		return
	}
	ready := e.state.ReadyEggs + e.state.ReadyGoldenEggs
	if ready < c.Threshold() {
		return
	}
	eggs, golden := e.state.CollectReadyEggs()
	if c.ShouldNotify(now) {
		e.toasts.Emit(collectedMessage(eggs, golden), SeverityInfo)
	}
}

// processFeeder lets the auto-feeder buy feed when stock is low,
// respecting its purchase cooldown.
func (e *Engine) processFeeder(now time.Time) {
	f := &e.state.AutoFeeder
	if !f.WantsToBuy(e.state.Feed, now) {
		return
	}
	pack, ok := recipe.OptimalFeedPack(e.state.Feed, e.state.Livestock(), e.state.Money)
	if !ok {
		return
	}
	e.state.Money -= pack.Price
	e.state.Feed += pack.Units
	f.RecordPurchase(now)
	e.state.RecordTransaction(ledger.TransactionTypeAutomation,
		"Auto-feeder bought a "+string(pack.Size)+" feed pack", -pack.Price, now)
	if f.ShouldNotify(now) {
		e.toasts.Emit("🌾 Auto-feeder restocked feed", SeverityInfo)
	}
}

// checkMilestones fires each money milestone celebration at most once.
func (e *Engine) checkMilestones() {
	for _, threshold := range farm.Milestones {
		if e.state.Money < threshold || e.state.HasMilestone(threshold) {
			continue
		}
		e.state.ReachedMilestones = append(e.state.ReachedMilestones, threshold)
		e.toasts.Emit(milestoneMessage(threshold), SeveritySuccess)
		e.sounds.PlayEvent(SoundSuccess)
	}
}

// checkRestaurantUnlock flips the one-way unlock and seeds the default
// restaurant structures.
func (e *Engine) checkRestaurantUnlock() {
	if e.state.RestaurantUnlocked || e.state.Money < farm.RestaurantUnlockThreshold {
		return
	}
	e.state.RestaurantUnlocked = true
	if e.state.Restaurants.Count == 0 {
		e.state.Restaurants = restaurant.DefaultRestaurants()
	}
	e.toasts.Emit("🍽️ Restaurant unlocked!", SeveritySuccess)
	e.sounds.PlayEvent(SoundSuccess)
}

// refreshOrderStatuses re-derives each open order's status from the
// product stock and the production queue.
func (e *Engine) refreshOrderStatuses() {
	for i := range e.state.ActiveOrders {
		o := &e.state.ActiveOrders[i]
		if o.Status.IsTerminal() {
			continue
		}
		target := restaurant.OrderStatusOrdering
		switch {
		case e.state.Products[o.RecipeID] > 0:
			target = restaurant.OrderStatusReadyToServe
		case e.hasJobFor(o.RecipeID):
			target = restaurant.OrderStatusAwaitingCook
		}
		_ = o.TransitionTo(target)
	}
}

func (e *Engine) hasJobFor(id recipe.ID) bool {
	for _, job := range e.state.ProductionQueue {
		if job.RecipeID == id {
			return true
		}
	}
	return false
}

// AccrueEggs adds one ready egg per flock type. It is driven by its own
// variable-period timer, suppressed entirely while feed is empty.
func (e *Engine) AccrueEggs() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.paused || e.state.Feed <= 0 {
		return
	}
	if e.state.Chickens > 0 {
		e.state.ReadyEggs++
		e.metrics.RecordEggsLaid(1, false)
	}
	if e.state.GoldenChickens > 0 {
		e.state.ReadyGoldenEggs++
		e.metrics.RecordEggsLaid(1, true)
	}
}

// AccrualPeriod is the egg timer period for the current flock size. The
// timer must be restarted, not reused, whenever this changes.
func (e *Engine) AccrualPeriod() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return accrualPeriod(e.state.Livestock())
}

func accrualPeriod(livestock int) time.Duration {
	if livestock < 1 {
		livestock = 1
	}
	return farm.LayBaseInterval / time.Duration(livestock)
}
