package model

import "time"

type BetStatus string

const (
	BetStatusPending BetStatus = "pending"
	BetStatusWon     BetStatus = "won"
	BetStatusLost    BetStatus = "lost"
	// BetStatusPush marks a bet on a game that finished tied. The stake is
	// refunded rather than paid out or kept.
	BetStatusPush BetStatus = "push"
)

// Bet is a wager of coins on one side of a game. Amount, PickedTeam and
// Multiplier are immutable after placement; only the settlement path
// changes Won and Status.
type Bet struct {
	ID         int32  `json:"id"`
	Username   string `json:"username"`
	GameID     int32  `json:"gameId"`
	Amount     int    `json:"amount"`
	PickedTeam string `json:"pickedTeam"`
	// Multiplier is the payout odds locked at placement time, stored as
	// odds x100 so 2.5x is 250.
	Multiplier int       `json:"multiplier"`
	Won        *bool     `json:"won"`
	Status     BetStatus `json:"status"`
	Placed     time.Time `json:"placed"`
}

// Payout is the number of coins credited when the bet wins. Integer
// division floors, matching how winnings are displayed.
func (b *Bet) Payout() int {
	return b.Amount * b.Multiplier / 100
}

// BetSettlement is one bet's outcome as computed by the settlement engine,
// ready to be applied to storage. CoinsDelta is the balance change for the
// bet's owner: a payout or refund on finalize, the same amount negated
// when a result is undone.
type BetSettlement struct {
	BetID      int32
	Username   string
	Won        *bool
	Status     BetStatus
	CoinsDelta int
}
