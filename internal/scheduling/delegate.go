package scheduling

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DelegateStrategy ships the scoring context to an external scorer over HTTP
// and returns its ranking verbatim. Failures surface as errors; there is no
// silent fallback to the algorithmic strategy.
type DelegateStrategy struct {
	endpoint string
	client   *http.Client
}

// NewDelegateStrategy creates a delegate scorer against the given endpoint
func NewDelegateStrategy(endpoint string, timeout time.Duration) *DelegateStrategy {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &DelegateStrategy{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type delegateCandidate struct {
	RefereeID       uuid.UUID `json:"referee_id"`
	DistanceKm      float64   `json:"distance_km"`
	MaxDistanceKm   float64   `json:"max_distance_km"`
	YearsExperience int       `json:"years_experience"`
	GamesSeason     int       `json:"games_refereed_season"`
	EvaluationScore float64   `json:"evaluation_score"`
	BlockoutCount   int       `json:"blockout_count"`
}

type delegateRequest struct {
	GameID     uuid.UUID           `json:"game_id"`
	GameLevel  string              `json:"game_level"`
	Weights    Weights             `json:"weights"`
	Candidates []delegateCandidate `json:"candidates"`
}

type delegateResponse struct {
	Ranked []struct {
		RefereeID    uuid.UUID `json:"referee_id"`
		Confidence   float64   `json:"confidence"`
		Proximity    float64   `json:"proximity"`
		Availability float64   `json:"availability"`
		Experience   float64   `json:"experience"`
		Performance  float64   `json:"performance"`
		Reasoning    string    `json:"reasoning"`
	} `json:"ranked"`
}

// Score posts the candidates to the delegate and maps its ranking back
func (s *DelegateStrategy) Score(ctx context.Context, gameID uuid.UUID, candidates []Candidate, weights Weights) ([]ScoredCandidate, error) {
	req := delegateRequest{GameID: gameID, Weights: weights}
	for _, c := range candidates {
		req.GameLevel = string(c.GameLevel)
		req.Candidates = append(req.Candidates, delegateCandidate{
			RefereeID:       c.Referee.ID,
			DistanceKm:      c.DistanceKm,
			MaxDistanceKm:   c.Referee.MaxDistanceKm,
			YearsExperience: c.Referee.YearsExperience,
			GamesSeason:     c.Referee.GamesRefereedSeason,
			EvaluationScore: c.Referee.EvaluationScore,
			BlockoutCount:   len(c.Blockouts),
		})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal delegate request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build delegate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call scoring delegate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scoring delegate returned status %d", resp.StatusCode)
	}

	var out delegateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode delegate response: %w", err)
	}

	scored := make([]ScoredCandidate, 0, len(out.Ranked))
	for _, r := range out.Ranked {
		scored = append(scored, ScoredCandidate{
			RefereeID: r.RefereeID,
			Scores: FactorScores{
				Proximity:    clamp01(r.Proximity),
				Availability: clamp01(r.Availability),
				Experience:   clamp01(r.Experience),
				Performance:  clamp01(r.Performance),
			},
			Confidence: clamp01(r.Confidence),
			Reasoning:  r.Reasoning,
		})
	}
	return scored, nil
}
