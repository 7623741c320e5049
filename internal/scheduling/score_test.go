package scheduling

import (
	"context"
	"testing"

	"referee-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProximityScore(t *testing.T) {
	assert.Equal(t, 1.0, ProximityScore(0, 50))
	assert.Equal(t, 0.5, ProximityScore(25, 50))
	assert.Equal(t, 0.0, ProximityScore(50, 50))
	assert.Equal(t, 0.0, ProximityScore(80, 50), "beyond range floors at zero")
	assert.Equal(t, 0.0, ProximityScore(10, 0), "no travel limit scores zero")
}

func TestAvailabilityScore(t *testing.T) {
	game := mustWindow(t, "19:00", "21:00")

	t.Run("no windows", func(t *testing.T) {
		assert.Equal(t, 1.0, AvailabilityScore(game, nil, false))
	})

	t.Run("open window restores full score", func(t *testing.T) {
		blockout := mustWindow(t, "19:30", "20:00")
		assert.Equal(t, 1.0, AvailabilityScore(game, []Window{blockout}, true))
	})

	t.Run("overlapping blockout", func(t *testing.T) {
		blockout := mustWindow(t, "19:30", "20:00")
		assert.InDelta(t, 0.5, AvailabilityScore(game, []Window{blockout}, false), 1e-9)
	})

	t.Run("adjacent blockout", func(t *testing.T) {
		blockout := mustWindow(t, "21:30", "22:30")
		assert.InDelta(t, 0.8, AvailabilityScore(game, []Window{blockout}, false), 1e-9)
	})

	t.Run("distant blockout is free", func(t *testing.T) {
		blockout := mustWindow(t, "08:00", "09:00")
		assert.Equal(t, 1.0, AvailabilityScore(game, []Window{blockout}, false))
	})

	t.Run("stacked penalties clamp at zero", func(t *testing.T) {
		blockouts := []Window{
			mustWindow(t, "19:00", "19:30"),
			mustWindow(t, "19:45", "20:15"),
			mustWindow(t, "20:30", "21:00"),
		}
		assert.Equal(t, 0.0, AvailabilityScore(game, blockouts, false))
	})
}

func TestExperienceScore(t *testing.T) {
	// ten or more years saturates the experience term
	assert.InDelta(t, 1.0, ExperienceScore(10, 3), 1e-9)
	assert.InDelta(t, 1.0, ExperienceScore(25, 3), 1e-9)
	// rookie at the lowest level
	assert.InDelta(t, 0.1, ExperienceScore(0, 1), 1e-9)
	// mid-career at competitive level
	assert.InDelta(t, 0.7*0.5+0.3*(2.0/3.0), ExperienceScore(5, 2), 1e-9)
}

func TestPerformanceScore(t *testing.T) {
	assert.InDelta(t, 1.0, PerformanceScore(5, 30), 1e-9)
	assert.InDelta(t, 0.0, PerformanceScore(0, 0), 1e-9)
	assert.InDelta(t, 0.7*0.8+0.3*(10.0/30.0), PerformanceScore(4, 10), 1e-9)
}

func TestCompositeWeighting(t *testing.T) {
	f := FactorScores{Proximity: 1, Availability: 1, Experience: 1, Performance: 1}

	t.Run("default weights sum to one", func(t *testing.T) {
		assert.InDelta(t, 1.0, f.Composite(DefaultWeights()), 1e-9)
	})

	t.Run("weights are literal, not renormalized", func(t *testing.T) {
		half := Weights{Proximity: 0.1, Availability: 0.2, Experience: 0.1, Performance: 0.1}
		assert.InDelta(t, 0.5, f.Composite(half), 1e-9)
	})

	t.Run("oversized weights clamp at one", func(t *testing.T) {
		big := Weights{Proximity: 1, Availability: 1, Experience: 1, Performance: 1}
		assert.Equal(t, 1.0, f.Composite(big))
	})
}

func TestWeightsValidate(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())
	assert.Error(t, Weights{Proximity: -0.1}.Validate())
}

func TestAlgorithmicStrategyScore(t *testing.T) {
	game := mustWindow(t, "19:00", "21:00")
	near := models.Referee{
		BaseModel:           models.BaseModel{ID: uuid.New()},
		YearsExperience:     10,
		GamesRefereedSeason: 30,
		EvaluationScore:     5,
		MaxDistanceKm:       50,
	}
	far := models.Referee{
		BaseModel:           models.BaseModel{ID: uuid.New()},
		YearsExperience:     1,
		GamesRefereedSeason: 2,
		EvaluationScore:     2,
		MaxDistanceKm:       50,
	}

	candidates := []Candidate{
		{Referee: near, DistanceKm: 5, GameWindow: game, GameLevel: models.GameLevelElite},
		{Referee: far, DistanceKm: 45, GameWindow: game, GameLevel: models.GameLevelElite},
	}

	scored, err := NewAlgorithmicStrategy().Score(context.Background(), uuid.New(), candidates, DefaultWeights())
	require.NoError(t, err)
	require.Len(t, scored, 2)

	for _, s := range scored {
		assert.GreaterOrEqual(t, s.Confidence, 0.0)
		assert.LessOrEqual(t, s.Confidence, 1.0)
		assert.NotEmpty(t, s.Reasoning)
	}
	assert.Greater(t, scored[0].Confidence, scored[1].Confidence)
	assert.Equal(t, near.ID, scored[0].RefereeID)
}
