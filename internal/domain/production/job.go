package production

import (
	"time"

	"github.com/google/uuid"

	"github.com/featherlane/henhouse-go/internal/domain/recipe"
)

// BreedingTime is how long one breeding job takes to hatch a golden chicken.
const BreedingTime = 60 * time.Second

// Job is an in-flight cooking job occupying one production slot.
// Resources are deducted when the job is admitted, so a job can never
// fail at completion.
type Job struct {
	ID        string    `json:"id"`
	RecipeID  recipe.ID `json:"recipeId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// NewJob admits a cooking job for the given recipe, applying the kitchen
// upgrade speed bonus to its deadline.
func NewJob(r recipe.Recipe, kitchenUpgrades int, now time.Time) Job {
	return Job{
		ID:        uuid.NewString(),
		RecipeID:  r.ID,
		StartTime: now,
		EndTime:   now.Add(r.ProductionTime(kitchenUpgrades)),
	}
}

// Done reports whether the job's deadline has passed.
func (j Job) Done(now time.Time) bool {
	return !j.EndTime.After(now)
}

// BreedingJob is an in-flight breeding job yielding one golden chicken
// on completion.
type BreedingJob struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// NewBreedingJob starts a breeding job completing after BreedingTime.
func NewBreedingJob(now time.Time) BreedingJob {
	return BreedingJob{
		ID:        uuid.NewString(),
		StartTime: now,
		EndTime:   now.Add(BreedingTime),
	}
}

// Done reports whether the breeding job's deadline has passed.
func (j BreedingJob) Done(now time.Time) bool {
	return !j.EndTime.After(now)
}
