package controller

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/mww/gameday/model"
)

func (c *controller) GetStandings(ctx context.Context, conference string) ([]model.Standing, error) {
	standings, err := c.db.ListStandings(ctx)
	if err != nil {
		return nil, err
	}
	if conference != "" {
		standings = filterConference(standings, conference)
	}
	return rankStandings(standings), nil
}

func (c *controller) SaveStanding(ctx context.Context, s *model.Standing) error {
	return c.db.SaveStanding(ctx, s)
}

func (c *controller) DeleteStanding(ctx context.Context, team string) error {
	return c.db.DeleteStanding(ctx, team)
}

// rankStandings returns a copy of standings ordered best team first. When
// every row carries a manual order that ordering wins outright; otherwise
// teams sort by win percentage with point differential as the tie break.
func rankStandings(standings []model.Standing) []model.Standing {
	ranked := slices.Clone(standings)

	if allManuallyOrdered(ranked) {
		slices.SortFunc(ranked, func(a, b model.Standing) int {
			return *a.ManualOrder - *b.ManualOrder
		})
		return ranked
	}

	slices.SortFunc(ranked, func(a, b model.Standing) int {
		if c := cmp.Compare(b.WinPct(), a.WinPct()); c != 0 {
			return c
		}
		return cmp.Compare(b.PointDiff, a.PointDiff)
	})
	return ranked
}

func allManuallyOrdered(standings []model.Standing) bool {
	if len(standings) == 0 {
		return false
	}
	for _, s := range standings {
		if s.ManualOrder == nil {
			return false
		}
	}
	return true
}

// teamRank is the 1-based position of a team in the ranked order. A team
// with no standings row ranks below everyone.
func teamRank(standings []model.Standing, team string) int {
	ranked := rankStandings(standings)
	for i := range ranked {
		if ranked[i].Team == team {
			return i + 1
		}
	}
	return len(standings) + 1
}

func filterConference(standings []model.Standing, conference string) []model.Standing {
	filtered := make([]model.Standing, 0, len(standings))
	for _, s := range standings {
		if strings.EqualFold(s.Conference(), conference) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func findStanding(standings []model.Standing, team string) *model.Standing {
	for i := range standings {
		if standings[i].Team == team {
			return &standings[i]
		}
	}
	return nil
}

// scheduleStrength is the average win percentage of the opponents a team
// has already played, in [0,1]. Opponents without meaningful records count
// as neutral 0.5, and a team with no completed games gets 0.5 rather than
// looking like it played a soft schedule.
func scheduleStrength(team string, games []model.Game, standings []model.Standing) float64 {
	var total float64
	var count int
	for i := range games {
		g := &games[i]
		if !g.IsFinal || !g.Involves(team) {
			continue
		}
		total += opponentWinPct(standings, g.Opponent(team))
		count++
	}
	if count == 0 {
		return 0.5
	}
	return total / float64(count)
}

func opponentWinPct(standings []model.Standing, team string) float64 {
	s := findStanding(standings, team)
	if s == nil || s.GamesPlayed() == 0 {
		return 0.5
	}
	return s.WinPct()
}
