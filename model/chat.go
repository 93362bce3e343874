package model

import "time"

type ChatMessage struct {
	ID       int32     `json:"id"`
	Username string    `json:"username"`
	Message  string    `json:"message"`
	Sent     time.Time `json:"sent"`
}
