package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/mww/gameday/model"
)

// GameUpdate is a partial update to a game. Nil fields are left untouched.
type GameUpdate struct {
	Week       *int       `json:"week"`
	Team1Score *int       `json:"team1Score"`
	Team2Score *int       `json:"team2Score"`
	Quarter    *string    `json:"quarter"`
	IsLive     *bool      `json:"isLive"`
	IsFinal    *bool      `json:"isFinal"`
	GameTime   *time.Time `json:"gameTime"`
	StreamURL  *string    `json:"streamUrl"`
}

func (c *controller) ListGames(ctx context.Context, week int) ([]model.Game, error) {
	return c.db.ListGames(ctx, week)
}

func (c *controller) GetGame(ctx context.Context, id int32) (*model.Game, error) {
	return c.db.GetGame(ctx, id)
}

func (c *controller) AddGame(ctx context.Context, g *model.Game) error {
	if g.Team1 == "" || g.Team2 == "" || g.Team1 == g.Team2 {
		return fmt.Errorf("a game needs two distinct teams")
	}
	if g.Quarter == "" {
		g.Quarter = model.QuarterScheduled
	}
	return c.db.AddGame(ctx, g)
}

func (c *controller) DeleteGame(ctx context.Context, id int32) error {
	return c.db.DeleteGame(ctx, id)
}

func (c *controller) UpdateGame(ctx context.Context, id int32, update GameUpdate) (*model.Game, error) {
	prev, err := c.db.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	next := applyGameUpdate(prev, update)
	if err := c.db.UpdateGame(ctx, next); err != nil {
		return nil, fmt.Errorf("error updating game %d: %w", id, err)
	}

	transition := model.DiffGameState(prev, next)
	if transition.Finalized {
		if err := c.settleGame(ctx, next); err != nil {
			return nil, fmt.Errorf("error settling game %d: %w", id, err)
		}
	} else if transition.Unfinalized {
		if err := c.reverseGame(ctx, next); err != nil {
			return nil, fmt.Errorf("error reversing settlement for game %d: %w", id, err)
		}
	}

	if c.broadcaster != nil {
		c.broadcaster.GameUpdate(next)
	}
	return next, nil
}

// applyGameUpdate merges a partial update onto a snapshot of the stored
// game. Live and final are kept mutually exclusive here: marking a game
// live clears final and the other way around, matching what the admin UI
// expects.
func applyGameUpdate(prev *model.Game, update GameUpdate) *model.Game {
	next := *prev
	if update.Week != nil {
		next.Week = *update.Week
	}
	if update.Team1Score != nil {
		v := *update.Team1Score
		next.Team1Score = &v
	}
	if update.Team2Score != nil {
		v := *update.Team2Score
		next.Team2Score = &v
	}
	if update.Quarter != nil {
		next.Quarter = *update.Quarter
	}
	if update.GameTime != nil {
		next.GameTime = *update.GameTime
	}
	if update.StreamURL != nil {
		next.StreamURL = *update.StreamURL
	}
	if update.IsLive != nil {
		next.IsLive = *update.IsLive
		if next.IsLive {
			next.IsFinal = false
		}
	}
	if update.IsFinal != nil {
		next.IsFinal = *update.IsFinal
		if next.IsFinal {
			next.IsLive = false
		}
	}
	return &next
}
