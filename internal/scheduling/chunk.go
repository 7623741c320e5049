package scheduling

import (
	"sort"
	"time"

	"referee-scheduler-backend/internal/database/models"
)

// ChunkGroup is one greedy grouping of consecutive same-location games
type ChunkGroup struct {
	Location string
	Date     time.Time
	Games    []models.Game
}

// GroupGames partitions unassigned games by (location, date), sorts each
// partition by start time, and greedily merges consecutive games while the
// gap to the next game stays under maxGap. Groups smaller than minGames are
// dropped; their games remain unchunked.
func GroupGames(games []models.Game, maxGap time.Duration, minGames int) ([]ChunkGroup, error) {
	type key struct {
		location string
		date     string
	}
	partitions := make(map[key][]models.Game)
	for _, g := range games {
		k := key{location: g.Location, date: g.Date.Format("2006-01-02")}
		partitions[k] = append(partitions[k], g)
	}

	keys := make([]key, 0, len(partitions))
	for k := range partitions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].date != keys[j].date {
			return keys[i].date < keys[j].date
		}
		return keys[i].location < keys[j].location
	})

	var groups []ChunkGroup
	for _, k := range keys {
		members := partitions[k]
		sort.Slice(members, func(i, j int) bool {
			return members[i].StartTime < members[j].StartTime
		})

		var current []models.Game
		var currentEnd time.Time
		flush := func() {
			if len(current) >= minGames {
				groups = append(groups, ChunkGroup{
					Location: k.location,
					Date:     current[0].Date,
					Games:    current,
				})
			}
			current = nil
		}

		for _, g := range members {
			w, err := GameWindow(g.Date, g.StartTime, g.EndTime)
			if err != nil {
				return nil, err
			}
			if len(current) > 0 && w.Start.Sub(currentEnd) >= maxGap {
				flush()
			}
			if len(current) == 0 || w.End.After(currentEnd) {
				currentEnd = w.End
			}
			current = append(current, g)
		}
		flush()
	}
	return groups, nil
}

// Span returns the chunk time span [min(start), max(start)) over member games
func Span(games []models.Game) (start, end string) {
	for _, g := range games {
		if start == "" || g.StartTime < start {
			start = g.StartTime
		}
		if end == "" || g.StartTime > end {
			end = g.StartTime
		}
	}
	return start, end
}
