package web

import (
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/mww/gameday/controller"
	"github.com/mww/gameday/db/mockdb"
	"github.com/mww/gameday/relay"
)

func TestNewServer_requiresAdminCredentials(t *testing.T) {
	ctrl, err := controller.New(clock.NewMock(), &mockdb.DB{}, nil)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}
	hub := relay.NewHub()

	tests := []struct {
		name string
		user string
		pass string
	}{
		{name: "no user", user: "", pass: "secret"},
		{name: "no pass", user: "admin", pass: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewServer(8080, tc.user, tc.pass, ctrl, hub); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}

	if _, err := NewServer(8080, "admin", "secret", ctrl, hub); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
