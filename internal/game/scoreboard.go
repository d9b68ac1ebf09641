package game

// Scoreboard counts the goals of one player
type Scoreboard struct {
	Player int
	hits   int
}

func NewScoreboard(player int) *Scoreboard {
	return &Scoreboard{Player: player}
}

// Update records a goal and returns the new count
func (s *Scoreboard) Update() int {
	s.hits++
	return s.hits
}

func (s *Scoreboard) Hits() int {
	return s.hits
}

// Reset clears the count for a new match
func (s *Scoreboard) Reset() {
	s.hits = 0
}
