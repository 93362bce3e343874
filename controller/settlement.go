package controller

import (
	"context"
	"log"

	"github.com/mww/gameday/model"
)

// settleGame resolves every pending bet on a game that just went final.
// Bets already settled are untouched, so finalizing the same game twice
// cannot pay anyone twice. The outcome updates and balance credits are
// applied in a single transaction.
func (c *controller) settleGame(ctx context.Context, g *model.Game) error {
	if !g.HasScores() {
		// No winner is determinable. The game update itself still stands;
		// bets stay pending until scores are recorded and the game is
		// re-finalized.
		log.Printf("game %d is final without both scores, leaving bets pending", g.ID)
		return nil
	}

	bets, err := c.db.PendingBets(ctx, g.ID)
	if err != nil {
		return err
	}
	if len(bets) == 0 {
		return nil
	}

	return c.db.ApplySettlements(ctx, settleBets(g, bets))
}

// settleBets computes the outcome of each pending bet against the final
// score. A tie is a push: the stake comes back and nobody wins or loses.
func settleBets(g *model.Game, bets []model.Bet) []model.BetSettlement {
	winner, tie := gameWinner(g)

	settlements := make([]model.BetSettlement, 0, len(bets))
	for i := range bets {
		b := &bets[i]
		s := model.BetSettlement{
			BetID:    b.ID,
			Username: b.Username,
		}
		switch {
		case tie:
			s.Status = model.BetStatusPush
			s.CoinsDelta = b.Amount
		case b.PickedTeam == winner:
			won := true
			s.Won = &won
			s.Status = model.BetStatusWon
			s.CoinsDelta = b.Payout()
		default:
			won := false
			s.Won = &won
			s.Status = model.BetStatusLost
		}
		settlements = append(settlements, s)
	}
	return settlements
}

// reverseGame undoes a settlement when the admin flips a game back to not
// final. Every settled bet returns to pending and any coins credited at
// settlement time are taken back. Balances that would underflow clamp at
// zero; the deficit is logged and accepted as lost.
func (c *controller) reverseGame(ctx context.Context, g *model.Game) error {
	bets, err := c.db.SettledBets(ctx, g.ID)
	if err != nil {
		return err
	}
	if len(bets) == 0 {
		return nil
	}

	return c.db.ApplySettlements(ctx, reverseBets(bets))
}

func reverseBets(bets []model.Bet) []model.BetSettlement {
	settlements := make([]model.BetSettlement, 0, len(bets))
	for i := range bets {
		b := &bets[i]
		s := model.BetSettlement{
			BetID:    b.ID,
			Username: b.Username,
			Status:   model.BetStatusPending,
		}
		switch b.Status {
		case model.BetStatusWon:
			s.CoinsDelta = -b.Payout()
		case model.BetStatusPush:
			s.CoinsDelta = -b.Amount
		}
		settlements = append(settlements, s)
	}
	return settlements
}

// gameWinner names the winning team, or reports a tie. Callers must have
// checked HasScores first.
func gameWinner(g *model.Game) (string, bool) {
	s1, s2 := *g.Team1Score, *g.Team2Score
	switch {
	case s1 > s2:
		return g.Team1, false
	case s2 > s1:
		return g.Team2, false
	}
	return "", true
}
