package model

import "time"

// DefaultCoins is the balance assumed for a user with no recorded row.
const DefaultCoins = 1000

type User struct {
	Username string    `json:"username"`
	Coins    int       `json:"coins"`
	Created  time.Time `json:"created"`
}
