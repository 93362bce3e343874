package model

import "strings"

// Standing is one team's row in the league table. ManualOrder, when set on
// every row being compared, overrides the computed win/loss ordering.
type Standing struct {
	Team        string `json:"team"`
	Division    string `json:"division"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	PointDiff   int    `json:"pointDifferential"`
	ManualOrder *int   `json:"manualOrder,omitempty"`
}

func (s *Standing) GamesPlayed() int {
	return s.Wins + s.Losses
}

// WinPct is wins over games played, or 0 for a team that hasn't played.
func (s *Standing) WinPct() float64 {
	played := s.GamesPlayed()
	if played == 0 {
		return 0
	}
	return float64(s.Wins) / float64(played)
}

// Conference returns the conference prefix of the division string, e.g.
// "AFC" for "AFC East". A division with no space is its own conference.
func (s *Standing) Conference() string {
	if i := strings.IndexByte(s.Division, ' '); i > 0 {
		return s.Division[:i]
	}
	return s.Division
}
