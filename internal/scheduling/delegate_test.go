package scheduling

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"referee-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelegateStrategyScore(t *testing.T) {
	refereeID := uuid.New()
	candidate := Candidate{
		Referee: models.Referee{
			BaseModel:     models.BaseModel{ID: refereeID},
			MaxDistanceKm: 50,
		},
		DistanceKm: 10,
		GameLevel:  models.GameLevelCompetitive,
	}

	t.Run("maps the delegate ranking back", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req delegateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Candidates, 1)
			assert.Equal(t, refereeID, req.Candidates[0].RefereeID)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ranked":[{"referee_id":"` + refereeID.String() + `","confidence":0.85,"proximity":0.8,"availability":1,"experience":0.5,"performance":0.6,"reasoning":"strong fit"}]}`))
		}))
		defer server.Close()

		strategy := NewDelegateStrategy(server.URL, 5*time.Second)
		scored, err := strategy.Score(context.Background(), uuid.New(), []Candidate{candidate}, DefaultWeights())
		require.NoError(t, err)
		require.Len(t, scored, 1)
		assert.Equal(t, refereeID, scored[0].RefereeID)
		assert.InDelta(t, 0.85, scored[0].Confidence, 1e-9)
		assert.Equal(t, "strong fit", scored[0].Reasoning)
	})

	t.Run("out of range scores are clamped", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ranked":[{"referee_id":"` + refereeID.String() + `","confidence":1.7,"proximity":-0.2}]}`))
		}))
		defer server.Close()

		strategy := NewDelegateStrategy(server.URL, 5*time.Second)
		scored, err := strategy.Score(context.Background(), uuid.New(), []Candidate{candidate}, DefaultWeights())
		require.NoError(t, err)
		require.Len(t, scored, 1)
		assert.Equal(t, 1.0, scored[0].Confidence)
		assert.Equal(t, 0.0, scored[0].Scores.Proximity)
	})

	t.Run("non-200 status is an error, not a fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		strategy := NewDelegateStrategy(server.URL, 5*time.Second)
		_, err := strategy.Score(context.Background(), uuid.New(), []Candidate{candidate}, DefaultWeights())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("unreachable delegate is an error", func(t *testing.T) {
		strategy := NewDelegateStrategy("http://127.0.0.1:1", time.Second)
		_, err := strategy.Score(context.Background(), uuid.New(), []Candidate{candidate}, DefaultWeights())
		assert.Error(t, err)
	})
}
