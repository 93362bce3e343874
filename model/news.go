package model

import "time"

type Article struct {
	ID        int32     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	Published time.Time `json:"published"`
}
