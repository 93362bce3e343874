package db

import (
	"context"

	"github.com/mww/gameday/model"
)

type DB interface {
	// ListGames returns every game for the given week, or all games when
	// week <= 0. Games are ordered by week then game time.
	ListGames(ctx context.Context, week int) ([]model.Game, error)
	GetGame(ctx context.Context, id int32) (*model.Game, error)
	AddGame(ctx context.Context, g *model.Game) error
	UpdateGame(ctx context.Context, g *model.Game) error
	DeleteGame(ctx context.Context, id int32) error

	ListStandings(ctx context.Context) ([]model.Standing, error)
	// SaveStanding inserts or updates the row for the standing's team.
	SaveStanding(ctx context.Context, s *model.Standing) error
	DeleteStanding(ctx context.Context, team string) error

	// GetUser returns the user's row, creating it with the default coin
	// balance if one doesn't exist yet.
	GetUser(ctx context.Context, username string) (*model.User, error)
	// AdjustCoins applies delta to the user's balance, clamping the result
	// at zero, and returns the new balance.
	AdjustCoins(ctx context.Context, username string, delta int) (int, error)
	Leaderboard(ctx context.Context, limit int) ([]model.User, error)

	// AddBet debits the stake and inserts the bet row in one transaction.
	// Returns ErrInsufficientFunds without mutating anything if the user
	// cannot cover the stake.
	AddBet(ctx context.Context, b *model.Bet) error
	GetBetsByUser(ctx context.Context, username string) ([]model.Bet, error)
	// PendingBets returns the bets for a game that have not been settled.
	PendingBets(ctx context.Context, gameID int32) ([]model.Bet, error)
	// SettledBets returns the bets for a game that have been settled,
	// including pushes.
	SettledBets(ctx context.Context, gameID int32) ([]model.Bet, error)
	// ApplySettlements updates bet outcomes and user balances in a single
	// transaction so a settlement is all-or-nothing.
	ApplySettlements(ctx context.Context, settlements []model.BetSettlement) error

	ListArticles(ctx context.Context) ([]model.Article, error)
	GetArticle(ctx context.Context, id int32) (*model.Article, error)
	AddArticle(ctx context.Context, a *model.Article) error
	DeleteArticle(ctx context.Context, id int32) error

	AddChatMessage(ctx context.Context, m *model.ChatMessage) error
	// ListChatMessages returns the most recent messages, oldest first.
	ListChatMessages(ctx context.Context, limit int) ([]model.ChatMessage, error)
}
