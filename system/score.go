package system

import "github.com/milk9111/puzzlepath/config"

// Result is the summary of a finished (or abandoned) level attempt, taken
// once by the shell for display and persistence.
type Result struct {
	LevelName          string
	Score              int
	TimeSpent          float64
	ParTime            float64
	TreasuresCollected int
	TreasuresInLevel   int
	AttemptsLeft       int
	Completed          bool
	ParMet             bool
}

// completionBonus is added to the score when the goal is reached: a bonus per
// unused attempt plus the par bonus when the level was finished in time.
func completionBonus(sc config.Scoring, attempts int, elapsed, par float64) int {
	bonus := sc.AttemptBonus * attempts
	if parMet(elapsed, par) {
		bonus += sc.ParBonus
	}
	return bonus
}

func parMet(elapsed, par float64) bool {
	return par > 0 && elapsed <= par
}

func (s *Simulation) Result() Result {
	return Result{
		LevelName:          s.level.Name,
		Score:              s.score,
		TimeSpent:          s.elapsed,
		ParTime:            s.level.ParTime,
		TreasuresCollected: s.collected,
		TreasuresInLevel:   len(s.treasures),
		AttemptsLeft:       s.attempts,
		Completed:          s.completed,
		ParMet:             s.completed && parMet(s.elapsed, s.level.ParTime),
	}
}
