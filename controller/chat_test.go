package controller

import (
	"context"
	"testing"

	"github.com/mww/gameday/model"
	"github.com/stretchr/testify/mock"
)

func TestFilterProfanity(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "clean", in: "great catch by the Hawks!", expected: "great catch by the Hawks!"},
		{name: "masked", in: "that call was crap", expected: "that call was ****"},
		{name: "case insensitive", in: "DAMN what a throw", expected: "**** what a throw"},
		{name: "word boundary", in: "classic pass", expected: "classic pass"},
		{name: "multiple", in: "damn, damn", expected: "****, ****"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := filterProfanity(tc.in); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestAddChatMessage(t *testing.T) {
	ctrl, mdb, _ := controllerForTest(t)
	ctx := context.Background()

	mdb.On("AddChatMessage", ctx, mock.MatchedBy(func(m *model.ChatMessage) bool {
		return m.Username == "alice" && m.Message == "what a ****ing... wait, what a game"
	})).Return(nil)

	m, err := ctrl.AddChatMessage(ctx, "alice", "  what a ****ing... wait, what a game  ")
	if err != nil {
		t.Fatalf("error adding chat message: %v", err)
	}
	if m.Username != "alice" {
		t.Errorf("unexpected message: %+v", m)
	}
	mdb.AssertExpectations(t)
}

func TestAddChatMessageValidation(t *testing.T) {
	ctrl, _, _ := controllerForTest(t)
	ctx := context.Background()

	if _, err := ctrl.AddChatMessage(ctx, "", "hello"); err == nil {
		t.Error("expected an error for a missing username")
	}
	if _, err := ctrl.AddChatMessage(ctx, "alice", "   "); err == nil {
		t.Error("expected an error for an empty message")
	}
}
