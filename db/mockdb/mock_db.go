package mockdb

import (
	"context"

	"github.com/mww/gameday/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) ListGames(ctx context.Context, week int) ([]model.Game, error) {
	args := db.Called(ctx, week)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (db *DB) GetGame(ctx context.Context, id int32) (*model.Game, error) {
	args := db.Called(ctx, id)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (db *DB) AddGame(ctx context.Context, g *model.Game) error {
	args := db.Called(ctx, g)
	return args.Error(0)
}

func (db *DB) UpdateGame(ctx context.Context, g *model.Game) error {
	args := db.Called(ctx, g)
	return args.Error(0)
}

func (db *DB) DeleteGame(ctx context.Context, id int32) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListStandings(ctx context.Context) ([]model.Standing, error) {
	args := db.Called(ctx)

	var r []model.Standing
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Standing)
	}
	return r, args.Error(1)
}

func (db *DB) SaveStanding(ctx context.Context, s *model.Standing) error {
	args := db.Called(ctx, s)
	return args.Error(0)
}

func (db *DB) DeleteStanding(ctx context.Context, team string) error {
	args := db.Called(ctx, team)
	return args.Error(0)
}

func (db *DB) GetUser(ctx context.Context, username string) (*model.User, error) {
	args := db.Called(ctx, username)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (db *DB) AdjustCoins(ctx context.Context, username string, delta int) (int, error) {
	args := db.Called(ctx, username, delta)
	return args.Int(0), args.Error(1)
}

func (db *DB) Leaderboard(ctx context.Context, limit int) ([]model.User, error) {
	args := db.Called(ctx, limit)

	var r []model.User
	if args.Get(0) != nil {
		r = args.Get(0).([]model.User)
	}
	return r, args.Error(1)
}

func (db *DB) AddBet(ctx context.Context, b *model.Bet) error {
	args := db.Called(ctx, b)
	return args.Error(0)
}

func (db *DB) GetBetsByUser(ctx context.Context, username string) ([]model.Bet, error) {
	args := db.Called(ctx, username)

	var r []model.Bet
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Bet)
	}
	return r, args.Error(1)
}

func (db *DB) PendingBets(ctx context.Context, gameID int32) ([]model.Bet, error) {
	args := db.Called(ctx, gameID)

	var r []model.Bet
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Bet)
	}
	return r, args.Error(1)
}

func (db *DB) SettledBets(ctx context.Context, gameID int32) ([]model.Bet, error) {
	args := db.Called(ctx, gameID)

	var r []model.Bet
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Bet)
	}
	return r, args.Error(1)
}

func (db *DB) ApplySettlements(ctx context.Context, settlements []model.BetSettlement) error {
	args := db.Called(ctx, settlements)
	return args.Error(0)
}

func (db *DB) ListArticles(ctx context.Context) ([]model.Article, error) {
	args := db.Called(ctx)

	var r []model.Article
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Article)
	}
	return r, args.Error(1)
}

func (db *DB) GetArticle(ctx context.Context, id int32) (*model.Article, error) {
	args := db.Called(ctx, id)

	var a *model.Article
	if args.Get(0) != nil {
		a = args.Get(0).(*model.Article)
	}
	return a, args.Error(1)
}

func (db *DB) AddArticle(ctx context.Context, a *model.Article) error {
	args := db.Called(ctx, a)
	return args.Error(0)
}

func (db *DB) DeleteArticle(ctx context.Context, id int32) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) AddChatMessage(ctx context.Context, m *model.ChatMessage) error {
	args := db.Called(ctx, m)
	return args.Error(0)
}

func (db *DB) ListChatMessages(ctx context.Context, limit int) ([]model.ChatMessage, error) {
	args := db.Called(ctx, limit)

	var r []model.ChatMessage
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ChatMessage)
	}
	return r, args.Error(1)
}
