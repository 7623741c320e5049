package scheduling

import (
	"context"
	"math"
	"time"

	"referee-scheduler-backend/internal/database/models"

	apperrors "referee-scheduler-backend/internal/errors"

	"github.com/google/uuid"
)

// Default factor weights. Caller-supplied weights are used literally, never
// renormalized; the composite is clamped to [0,1] after summation.
const (
	DefaultWeightProximity    = 0.3
	DefaultWeightAvailability = 0.4
	DefaultWeightExperience   = 0.2
	DefaultWeightPerformance  = 0.1
)

// Availability grading penalties applied per block-out
const (
	overlapPenalty  = 0.5
	adjacentPenalty = 0.2
	adjacencyRange  = time.Hour
)

// Weights is the explicit per-request factor weighting for candidate scoring
type Weights struct {
	Proximity    float64 `json:"proximity"`
	Availability float64 `json:"availability"`
	Experience   float64 `json:"experience"`
	Performance  float64 `json:"performance"`
}

// DefaultWeights returns the engine's default factor weighting
func DefaultWeights() Weights {
	return Weights{
		Proximity:    DefaultWeightProximity,
		Availability: DefaultWeightAvailability,
		Experience:   DefaultWeightExperience,
		Performance:  DefaultWeightPerformance,
	}
}

// Validate rejects negative weights. Weights need not sum to 1.
func (w Weights) Validate() error {
	if w.Proximity < 0 || w.Availability < 0 || w.Experience < 0 || w.Performance < 0 {
		return apperrors.NewValidationError("factors", "weights must be non-negative")
	}
	return nil
}

// Candidate bundles everything the scoring strategy needs about one
// (game, referee) pair. Distance and windows are materialized by the caller;
// scoring never reaches out to storage.
type Candidate struct {
	Referee    models.Referee
	DistanceKm float64
	GameWindow Window
	Blockouts  []Window // declared is_available=false windows on the game date
	OpenWindow bool     // an explicit open window covers the game window
	GameLevel  models.GameLevel
}

// FactorScores are the four normalized sub-scores of one candidate
type FactorScores struct {
	Proximity    float64
	Availability float64
	Experience   float64
	Performance  float64
}

// Composite computes the literal weighted sum, clamped to [0,1]
func (f FactorScores) Composite(w Weights) float64 {
	sum := w.Proximity*f.Proximity +
		w.Availability*f.Availability +
		w.Experience*f.Experience +
		w.Performance*f.Performance
	return clamp01(sum)
}

// ScoredCandidate is a candidate with its computed scores
type ScoredCandidate struct {
	RefereeID  uuid.UUID
	Scores     FactorScores
	Confidence float64
	Reasoning  string
}

// ScoringStrategy ranks the candidates for one game. The algorithmic variant
// computes weighted sub-scores locally; the delegate variant ships the
// context to an external scorer and trusts its ranking.
type ScoringStrategy interface {
	Score(ctx context.Context, gameID uuid.UUID, candidates []Candidate, weights Weights) ([]ScoredCandidate, error)
}

// AlgorithmicStrategy is the built-in weighted-composite scorer
type AlgorithmicStrategy struct{}

// NewAlgorithmicStrategy creates the built-in scoring strategy
func NewAlgorithmicStrategy() *AlgorithmicStrategy {
	return &AlgorithmicStrategy{}
}

// Score computes factor sub-scores and the weighted composite per candidate
func (s *AlgorithmicStrategy) Score(_ context.Context, _ uuid.UUID, candidates []Candidate, weights Weights) ([]ScoredCandidate, error) {
	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		f := FactorScores{
			Proximity:    ProximityScore(c.DistanceKm, c.Referee.MaxDistanceKm),
			Availability: AvailabilityScore(c.GameWindow, c.Blockouts, c.OpenWindow),
			Experience:   ExperienceScore(c.Referee.YearsExperience, c.GameLevel.Rank()),
			Performance:  PerformanceScore(c.Referee.EvaluationScore, c.Referee.GamesRefereedSeason),
		}
		scored = append(scored, ScoredCandidate{
			RefereeID:  c.Referee.ID,
			Scores:     f,
			Confidence: f.Composite(weights),
			Reasoning:  reasoning(c, f),
		})
	}
	return scored, nil
}

// ProximityScore grades distance against the referee's travel limit:
// 1 - distance/maxDistance, floored at 0.
func ProximityScore(distanceKm, maxDistanceKm float64) float64 {
	if maxDistanceKm <= 0 {
		return 0
	}
	return clamp01(1 - distanceKm/maxDistanceKm)
}

// AvailabilityScore starts at 1.0 and grades down per conflicting or
// adjacent block-out. An explicit open window covering the game restores 1.0.
func AvailabilityScore(game Window, blockouts []Window, openWindow bool) float64 {
	if openWindow {
		return 1.0
	}
	score := 1.0
	for _, b := range blockouts {
		if game.Overlaps(b) {
			score -= overlapPenalty
		} else if game.Gap(b) <= adjacencyRange {
			score -= adjacentPenalty
		}
	}
	return clamp01(score)
}

// ExperienceScore blends years of experience with the game's level rank
func ExperienceScore(yearsExperience, levelRank int) float64 {
	years := math.Min(float64(yearsExperience)/10.0, 1.0)
	rank := float64(levelRank) / 3.0
	return clamp01(0.7*years + 0.3*rank)
}

// PerformanceScore blends the evaluation score with season volume
func PerformanceScore(evaluationScore float64, gamesSeason int) float64 {
	eval := clamp01(evaluationScore / 5.0)
	volume := math.Min(float64(gamesSeason)/30.0, 1.0)
	return clamp01(0.7*eval + 0.3*volume)
}

func reasoning(c Candidate, f FactorScores) string {
	switch {
	case f.Availability >= 1 && f.Proximity >= 0.7:
		return "nearby and fully available for this window"
	case f.Availability < 0.5:
		return "declared block-outs reduce availability for this window"
	case f.Proximity < 0.3:
		return "near the edge of the referee's travel range"
	default:
		return "balanced fit across distance, availability and track record"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
