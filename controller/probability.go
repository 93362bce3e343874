package controller

import (
	"context"
	"fmt"
	"math"

	"github.com/mww/gameday/model"
)

func (c *controller) GameProbability(ctx context.Context, gameID int32, team string) (int, float64, error) {
	g, err := c.db.GetGame(ctx, gameID)
	if err != nil {
		return 0, 0, err
	}
	if !g.Involves(team) {
		return 0, 0, fmt.Errorf("%s is not playing in game %d", team, gameID)
	}

	standings, err := c.db.ListStandings(ctx)
	if err != nil {
		return 0, 0, err
	}
	games, err := c.db.ListGames(ctx, 0)
	if err != nil {
		return 0, 0, err
	}

	p := winProbability(g, team, standings, games)
	return p, payoutMultiplier(p), nil
}

// winProbability estimates the chance, as an integer percentage in
// [1,99], that the named side wins the game. It blends team rank, record,
// point differential and schedule strength, and once a game is underway
// blends in the live score weighted by how late the game is. The two
// sides of a game always sum to exactly 100.
//
// This is a display heuristic for the coins mini-game, not a calibrated
// model.
func winProbability(g *model.Game, team string, standings []model.Standing, games []model.Game) int {
	p := team1Probability(g, standings, games)
	if team == g.Team2 {
		return 100 - p
	}
	return p
}

func team1Probability(g *model.Game, standings []model.Standing, games []model.Game) int {
	if len(standings) == 0 {
		return 50
	}

	total := len(standings)
	rankScore1 := normalizedRankScore(teamRank(standings, g.Team1), total)
	rankScore2 := normalizedRankScore(teamRank(standings, g.Team2), total)

	var winPct1, winPct2 float64
	var pd1, pd2 int
	var played1, played2 bool
	if s := findStanding(standings, g.Team1); s != nil {
		winPct1 = s.WinPct()
		pd1 = s.PointDiff
		played1 = s.GamesPlayed() > 0
	}
	if s := findStanding(standings, g.Team2); s != nil {
		winPct2 = s.WinPct()
		pd2 = s.PointDiff
		played2 = s.GamesPlayed() > 0
	}

	rankingImpact := (rankScore1 - rankScore2) * 40
	pdImpact := clampFloat(float64(pd1-pd2), -200, 200) / 30 * 25
	recordImpact := (winPct1 - winPct2) * 50
	sos1 := scheduleStrength(g.Team1, games, standings)
	sos2 := scheduleStrength(g.Team2, games, standings)
	sosImpact := (sos1 - sos2) * 20

	// Weight the impacts by how much signal each team's record carries.
	// Early in the season record and schedule strength are mostly noise,
	// so rank and point differential take over.
	base := 50.0
	switch {
	case played1 && played2:
		base += rankingImpact*0.40 + recordImpact*0.35 + pdImpact*0.25 + sosImpact*0.30
	case played1 || played2:
		base += rankingImpact*0.50 + pdImpact*0.40 + recordImpact*0.40
	default:
		base += rankingImpact*0.70 + pdImpact*0.50
	}

	p := base
	if g.Quarter != model.QuarterScheduled {
		p = liveAdjusted(base, g)
	}

	return clampInt(int(math.Round(p)), 1, 99)
}

// liveAdjusted blends the pre-game probability with the current score.
// The later the quarter, the more the scoreboard matters.
func liveAdjusted(base float64, g *model.Game) float64 {
	scoreDiff := scoreOrZero(g.Team1Score) - scoreOrZero(g.Team2Score)
	margin := math.Abs(float64(scoreDiff))

	scoreImpact := float64(scoreDiff) / 7 * 10
	if margin > 21 {
		// A blowout score means more than the raw point count.
		scoreImpact *= 1.3
	}

	weight := quarterWeight(g.Quarter)
	switch {
	case margin > 35:
		weight = math.Min(0.75, weight+0.20)
	case margin > 28:
		weight = math.Min(0.65, weight+0.15)
	case margin > 21:
		weight = math.Min(0.60, weight+0.10)
	}

	return base*(1-weight) + (50+scoreImpact)*weight
}

func quarterWeight(quarter string) float64 {
	switch quarter {
	case "1st", "Q1":
		return 0.25
	case "2nd", "Q2":
		return 0.45
	case "3rd", "Q3":
		return 0.70
	case "4th", "Q4":
		return 0.90
	case model.QuarterOT:
		return 0.95
	default:
		return 0.50
	}
}

// normalizedRankScore maps a 1-based rank onto (0,1] where 1.0 is the top
// team. A rank of total+1 (team missing from standings) maps to 0.
func normalizedRankScore(rank, total int) float64 {
	return float64(total-rank+1) / float64(total)
}

// payoutMultiplier converts a win probability into the coin payout odds
// quoted to bettors. Longshots cap at 10x and favorites never pay less
// than 1.10x.
func payoutMultiplier(probability int) float64 {
	if probability < 1 {
		probability = 1
	}
	raw := 100 / float64(probability)
	rounded := math.Round(raw*100) / 100
	return clampFloat(rounded, 1.10, 10.00)
}

func scoreOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
