package controller

import (
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/mww/gameday/db/mockdb"
	"github.com/mww/gameday/model"
)

// recordingBroadcaster captures broadcasts so tests can assert on them.
type recordingBroadcaster struct {
	games []*model.Game
}

func (b *recordingBroadcaster) GameUpdate(g *model.Game) {
	b.games = append(b.games, g)
}

func controllerForTest(t *testing.T) (*controller, *mockdb.DB, *recordingBroadcaster) {
	t.Helper()

	mdb := &mockdb.DB{}
	broadcaster := &recordingBroadcaster{}
	c, err := New(clock.NewMock(), mdb, broadcaster)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}
	return c.(*controller), mdb, broadcaster
}
