package controller

import (
	"context"
	"fmt"
	"math"

	"github.com/mww/gameday/model"
)

const (
	leaderboardSize     = 10
	leaderboardCacheKey = "leaderboard"
)

func (c *controller) PlaceBet(ctx context.Context, username string, gameID int32, pickedTeam string, amount int, odds float64) (*model.Bet, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: missing username", ErrInvalidBet)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidBet)
	}
	if odds < 1.10 || odds > 10.00 {
		return nil, fmt.Errorf("%w: odds %.2f out of range", ErrInvalidBet, odds)
	}

	g, err := c.db.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !g.Involves(pickedTeam) {
		return nil, fmt.Errorf("%w: %s is not playing in game %d", ErrInvalidBet, pickedTeam, gameID)
	}
	if g.IsFinal {
		return nil, fmt.Errorf("%w: game %d is already final", ErrInvalidBet, gameID)
	}

	b := &model.Bet{
		Username:   username,
		GameID:     gameID,
		Amount:     amount,
		PickedTeam: pickedTeam,
		// Lock the quoted odds now. Later standings changes never touch a
		// pending bet's payout.
		Multiplier: int(math.Round(odds * 100)),
	}
	if err := c.db.AddBet(ctx, b); err != nil {
		return nil, err
	}

	c.cache.Delete(leaderboardCacheKey)
	return b, nil
}

func (c *controller) GetBalance(ctx context.Context, username string) (int, error) {
	u, err := c.db.GetUser(ctx, username)
	if err != nil {
		return 0, err
	}
	return u.Coins, nil
}

func (c *controller) GetUserBets(ctx context.Context, username string) ([]model.Bet, error) {
	return c.db.GetBetsByUser(ctx, username)
}

func (c *controller) Leaderboard(ctx context.Context) ([]model.User, error) {
	if cached, found := c.cache.Get(leaderboardCacheKey); found {
		return cached.([]model.User), nil
	}

	users, err := c.db.Leaderboard(ctx, leaderboardSize)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(leaderboardCacheKey, users)
	return users, nil
}

func (c *controller) GrantCoins(ctx context.Context, username string, delta int) (int, error) {
	coins, err := c.db.AdjustCoins(ctx, username, delta)
	if err != nil {
		return 0, err
	}
	c.cache.Delete(leaderboardCacheKey)
	return coins, nil
}
