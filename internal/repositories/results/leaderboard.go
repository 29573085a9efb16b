package results

import (
	"sort"

	"github.com/KirkDiggler/pig/internal/models"
)

// buildLeaderboard tallies wins and points from a session's results
func buildLeaderboard(sessionID string, results []*models.GameResult) *models.Leaderboard {
	byPlayer := make(map[string]*models.LeaderboardEntry)
	entries := make([]*models.LeaderboardEntry, 0)

	for _, result := range results {
		for _, score := range result.Scores {
			entry, ok := byPlayer[score.PlayerID]
			if !ok {
				entry = &models.LeaderboardEntry{
					PlayerID:   score.PlayerID,
					PlayerName: score.PlayerName,
				}
				byPlayer[score.PlayerID] = entry
				entries = append(entries, entry)
			}
			entry.Points += score.Score
		}

		if entry, ok := byPlayer[result.WinnerID]; ok {
			entry.Wins++
		}
	}

	sortEntries(entries)

	return &models.Leaderboard{
		SessionID: sessionID,
		Entries:   entries,
	}
}

// sortEntries orders standings by wins, then points, then name
func sortEntries(entries []*models.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Wins != entries[j].Wins {
			return entries[i].Wins > entries[j].Wins
		}
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].PlayerName < entries[j].PlayerName
	})
}
