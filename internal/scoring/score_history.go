package scoring

import (
	"sort"
	"time"
)

// ScoreHistory keeps the results of finished games for the session. Nothing
// is written to disk.
type ScoreHistory struct {
	Entries        []ScoreHistoryEntry
	HighScoreEntry *ScoreHistoryEntry
	Attempts       int
}

// ScoreHistoryEntry is the result of one game.
type ScoreHistoryEntry struct {
	Score     int
	Level     int
	Lines     int
	Timestamp time.Time
}

// Record adds a finished game and reports whether it set a new high score.
// Ties with the previous best count as a high score.
func (sh *ScoreHistory) Record(entry ScoreHistoryEntry) bool {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	high := sh.GotHighScore(entry.Score)

	sh.Entries = append(sh.Entries, entry)
	sh.Attempts++
	if high {
		sh.HighScoreEntry = &sh.Entries[len(sh.Entries)-1]
	}
	return high
}

// Best returns the highest score recorded, or 0 if no game has finished.
func (sh *ScoreHistory) Best() int {
	if sh.HighScoreEntry == nil {
		return 0
	}
	return sh.HighScoreEntry.Score
}

// GetHighScoreEntry returns the best entry, or nil.
func (sh *ScoreHistory) GetHighScoreEntry() *ScoreHistoryEntry {
	return sh.HighScoreEntry
}

// GetNScoreEntries returns the top N entries, highest score first.
func (sh *ScoreHistory) GetNScoreEntries(n int) []ScoreHistoryEntry {
	// Make a copy to avoid modifying the original slice.
	entriesCopy := make([]ScoreHistoryEntry, len(sh.Entries))
	copy(entriesCopy, sh.Entries)

	sort.SliceStable(entriesCopy, func(i, j int) bool {
		return entriesCopy[i].Score > entriesCopy[j].Score
	})

	if len(entriesCopy) < n {
		return entriesCopy
	}
	return entriesCopy[:n]
}

// GotHighScore checks if score is greater than or equal to the recorded high
// score. With no history any score counts.
func (sh *ScoreHistory) GotHighScore(score int) bool {
	if sh.HighScoreEntry == nil {
		return true
	}
	return score >= sh.HighScoreEntry.Score
}
