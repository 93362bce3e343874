package controller

import (
	"context"
	"errors"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/gameday/db"
	"github.com/mww/gameday/model"
	"github.com/patrickmn/go-cache"
)

var (
	ErrInvalidBet = errors.New("invalid bet")
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	ListGames(ctx context.Context, week int) ([]model.Game, error)
	GetGame(ctx context.Context, id int32) (*model.Game, error)
	AddGame(ctx context.Context, g *model.Game) error
	// UpdateGame applies a partial update to a game. An isFinal transition
	// settles or reverses the game's bets before the updated game is
	// broadcast to websocket subscribers.
	UpdateGame(ctx context.Context, id int32, update GameUpdate) (*model.Game, error)
	DeleteGame(ctx context.Context, id int32) error

	// GetStandings returns standings in ranked order, best team first.
	// When conference is non-empty only divisions with that prefix are
	// considered.
	GetStandings(ctx context.Context, conference string) ([]model.Standing, error)
	SaveStanding(ctx context.Context, s *model.Standing) error
	DeleteStanding(ctx context.Context, team string) error

	// GameProbability returns the win probability (1-99) for one side of
	// a game along with the payout multiplier that probability quotes.
	GameProbability(ctx context.Context, gameID int32, team string) (int, float64, error)

	// PlaceBet locks the quoted odds and debits the stake. The odds are
	// never recomputed after placement.
	PlaceBet(ctx context.Context, username string, gameID int32, pickedTeam string, amount int, odds float64) (*model.Bet, error)
	GetBalance(ctx context.Context, username string) (int, error)
	GetUserBets(ctx context.Context, username string) ([]model.Bet, error)
	Leaderboard(ctx context.Context) ([]model.User, error)
	GrantCoins(ctx context.Context, username string, delta int) (int, error)

	// AddChatMessage profanity-filters and persists a message, returning
	// the stored form for broadcast.
	AddChatMessage(ctx context.Context, username, message string) (*model.ChatMessage, error)
	ListChatMessages(ctx context.Context) ([]model.ChatMessage, error)

	ListArticles(ctx context.Context) ([]model.Article, error)
	GetArticle(ctx context.Context, id int32) (*model.Article, error)
	AddArticle(ctx context.Context, a *model.Article) error
	DeleteArticle(ctx context.Context, id int32) error
}

// Broadcaster pushes server-originated events to connected websocket
// clients. Delivery is best-effort and must never block the caller.
type Broadcaster interface {
	GameUpdate(g *model.Game)
}

type controller struct {
	clock       clock.Clock
	db          db.DB
	broadcaster Broadcaster
	cache       *cache.Cache
}

func New(clock clock.Clock, db db.DB, broadcaster Broadcaster) (C, error) {
	c := &controller{
		clock:       clock,
		db:          db,
		broadcaster: broadcaster,
		cache:       cache.New(30*time.Second, 5*time.Minute),
	}
	return c, nil
}
