package controller

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/mww/gameday/model"
)

const chatHistoryLimit = 100

func (c *controller) AddChatMessage(ctx context.Context, username, message string) (*model.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if username == "" || message == "" {
		return nil, fmt.Errorf("chat messages need a username and a message")
	}

	m := &model.ChatMessage{
		Username: username,
		Message:  filterProfanity(message),
	}
	if err := c.db.AddChatMessage(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *controller) ListChatMessages(ctx context.Context) ([]model.ChatMessage, error) {
	return c.db.ListChatMessages(ctx, chatHistoryLimit)
}

// The league chat is family-facing, so a small word list is masked before
// messages are stored or broadcast.
var profanityPatterns = compileProfanity([]string{
	"damn",
	"hell",
	"crap",
	"ass",
	"bastard",
	"bitch",
	"shit",
	"fuck",
})

func compileProfanity(words []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+w+`\b`))
	}
	return patterns
}

func filterProfanity(message string) string {
	for _, p := range profanityPatterns {
		message = p.ReplaceAllStringFunc(message, func(match string) string {
			return strings.Repeat("*", len(match))
		})
	}
	return message
}
