package model

import "testing"

func TestDiffGameState(t *testing.T) {
	tests := []struct {
		name     string
		prev     *Game
		next     *Game
		expected GameTransition
	}{
		{
			name:     "finalize",
			prev:     &Game{IsLive: true},
			next:     &Game{IsFinal: true},
			expected: GameTransition{Finalized: true},
		},
		{
			name:     "unfinalize",
			prev:     &Game{IsFinal: true},
			next:     &Game{},
			expected: GameTransition{Unfinalized: true},
		},
		{
			name:     "went live",
			prev:     &Game{},
			next:     &Game{IsLive: true},
			expected: GameTransition{WentLive: true},
		},
		{
			name:     "no change",
			prev:     &Game{IsFinal: true},
			next:     &Game{IsFinal: true},
			expected: GameTransition{},
		},
		{
			name:     "nil previous snapshot",
			prev:     nil,
			next:     &Game{IsFinal: true},
			expected: GameTransition{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DiffGameState(tc.prev, tc.next)
			if got != tc.expected {
				t.Errorf("expected %+v, got %+v", tc.expected, got)
			}
		})
	}
}

func TestOpponent(t *testing.T) {
	g := &Game{Team1: "Ravens", Team2: "Steelers"}

	if o := g.Opponent("Ravens"); o != "Steelers" {
		t.Errorf("expected Steelers, got %s", o)
	}
	if o := g.Opponent("Steelers"); o != "Ravens" {
		t.Errorf("expected Ravens, got %s", o)
	}
	if o := g.Opponent("Browns"); o != "" {
		t.Errorf("expected empty opponent, got %s", o)
	}
}

func TestHasScores(t *testing.T) {
	s := 14
	if (&Game{Team1Score: &s}).HasScores() {
		t.Error("game missing team2 score should not report HasScores")
	}
	if !(&Game{Team1Score: &s, Team2Score: &s}).HasScores() {
		t.Error("game with both scores should report HasScores")
	}
}
