package model

import "time"

// Quarter labels stored on a game. Admin tools write either the short or
// long form ("Q1" or "1st"), so both are accepted everywhere quarters are
// interpreted.
const (
	QuarterScheduled = "Scheduled"
	QuarterOT        = "OT"
	QuarterFinal     = "FINAL"
)

type Game struct {
	ID         int32      `json:"id"`
	Week       int        `json:"week"`
	Team1      string     `json:"team1"`
	Team2      string     `json:"team2"`
	Team1Score *int       `json:"team1Score"`
	Team2Score *int       `json:"team2Score"`
	Quarter    string     `json:"quarter"`
	IsLive     bool       `json:"isLive"`
	IsFinal    bool       `json:"isFinal"`
	GameTime   time.Time  `json:"gameTime"`
	StreamURL  string     `json:"streamUrl,omitempty"`
}

// HasScores reports whether both scores have been recorded. A game without
// both scores cannot be settled.
func (g *Game) HasScores() bool {
	return g.Team1Score != nil && g.Team2Score != nil
}

// Involves reports whether the named team is one of the two participants.
func (g *Game) Involves(team string) bool {
	return g.Team1 == team || g.Team2 == team
}

// Opponent returns the other participant for the named team, or "" if the
// team is not playing in this game.
func (g *Game) Opponent(team string) string {
	switch team {
	case g.Team1:
		return g.Team2
	case g.Team2:
		return g.Team1
	}
	return ""
}

// GameTransition describes what changed between two snapshots of the same
// game. It drives settlement and client notifications.
type GameTransition struct {
	Finalized   bool
	Unfinalized bool
	WentLive    bool
}

// DiffGameState compares an explicit previous snapshot against the updated
// game. Passing the snapshot in keeps transition detection free of any
// module-level state.
func DiffGameState(prev, next *Game) GameTransition {
	var t GameTransition
	if prev == nil {
		return t
	}
	t.Finalized = !prev.IsFinal && next.IsFinal
	t.Unfinalized = prev.IsFinal && !next.IsFinal
	t.WentLive = !prev.IsLive && next.IsLive
	return t
}
