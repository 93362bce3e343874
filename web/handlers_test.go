package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/mww/gameday/controller"
	"github.com/mww/gameday/db"
	"github.com/mww/gameday/db/mockdb"
	"github.com/mww/gameday/model"
	"github.com/mww/gameday/relay"
	"github.com/stretchr/testify/mock"
)

const (
	testAdminUser = "admin"
	testAdminPass = "hut-hut-hike"
)

// testServer runs the full router over a controller backed by a mock
// database, so handler tests exercise routing, decoding, and status
// mapping without a real postgres.
func testServer(t *testing.T) (*httptest.Server, *mockdb.DB) {
	t.Helper()

	mdb := &mockdb.DB{}
	hub := relay.NewHub()
	go hub.Run()
	t.Cleanup(hub.Shutdown)

	ctrl, err := controller.New(clock.NewMock(), mdb, hub)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	srv := httptest.NewServer(getRouter(ctrl, hub, newRender(), testAdminUser, testAdminPass))
	t.Cleanup(srv.Close)
	return srv, mdb
}

func getJSON(t *testing.T, srv *httptest.Server, path string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("error sending request: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
	}
	return resp
}

func postJSON(t *testing.T, srv *httptest.Server, path string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("error marshaling request body: %v", err)
	}

	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("error sending request: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestListGamesHandler(t *testing.T) {
	srv, mdb := testServer(t)

	games := []model.Game{
		{ID: 1, Week: 3, Team1: "Hawks", Team2: "Mudcats"},
		{ID: 2, Week: 3, Team1: "Giants", Team2: "Rhinos"},
	}
	mdb.On("ListGames", mock.Anything, 3).Return(games, nil)

	var got []model.Game
	resp := getJSON(t, srv, "/api/games?week=3", &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if len(got) != 2 || got[0].Team1 != "Hawks" {
		t.Errorf("unexpected games response: %+v", got)
	}
}

func TestListGamesHandler_badWeek(t *testing.T) {
	srv, _ := testServer(t)

	resp := getJSON(t, srv, "/api/games?week=playoffs", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
}

func TestGetGameHandler_notFound(t *testing.T) {
	srv, mdb := testServer(t)

	mdb.On("GetGame", mock.Anything, int32(99)).Return(nil, db.ErrGameNotFound)

	resp := getJSON(t, srv, "/api/games/99", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
}

func TestGameProbabilityHandler(t *testing.T) {
	srv, mdb := testServer(t)

	mdb.On("GetGame", mock.Anything, int32(5)).
		Return(&model.Game{ID: 5, Week: 1, Team1: "Hawks", Team2: "Mudcats"}, nil)
	mdb.On("ListStandings", mock.Anything).Return([]model.Standing{}, nil)
	mdb.On("ListGames", mock.Anything, 0).Return([]model.Game{}, nil)

	var got struct {
		Probability int     `json:"probability"`
		Multiplier  float64 `json:"multiplier"`
	}
	resp := getJSON(t, srv, "/api/games/5/probability?team=Hawks", &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}

	// With no standings both sides are even money.
	if got.Probability != 50 {
		t.Errorf("expected probability 50, got %d", got.Probability)
	}
	if got.Multiplier != 2.0 {
		t.Errorf("expected multiplier 2.0, got %f", got.Multiplier)
	}
}

func TestGameProbabilityHandler_missingTeam(t *testing.T) {
	srv, _ := testServer(t)

	resp := getJSON(t, srv, "/api/games/5/probability", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
}

func TestPlaceBetHandler(t *testing.T) {
	srv, mdb := testServer(t)

	mdb.On("GetGame", mock.Anything, int32(7)).
		Return(&model.Game{ID: 7, Week: 2, Team1: "Hawks", Team2: "Giants"}, nil)
	mdb.On("AddBet", mock.Anything, mock.AnythingOfType("*model.Bet")).Return(nil)

	resp := postJSON(t, srv, "/api/bets", map[string]any{
		"username": "pat",
		"gameId":   7,
		"team":     "Hawks",
		"amount":   50,
		"odds":     1.75,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}

	var bet model.Bet
	if err := json.NewDecoder(resp.Body).Decode(&bet); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if bet.Multiplier != 175 {
		t.Errorf("expected multiplier 175, got %d", bet.Multiplier)
	}
	mdb.AssertExpectations(t)
}

func TestPlaceBetHandler_validation(t *testing.T) {
	srv, mdb := testServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing username", body: map[string]any{"gameId": 7, "team": "Hawks", "amount": 50, "odds": 1.75}},
		{name: "zero amount", body: map[string]any{"username": "pat", "gameId": 7, "team": "Hawks", "amount": 0, "odds": 1.75}},
		{name: "odds too low", body: map[string]any{"username": "pat", "gameId": 7, "team": "Hawks", "amount": 50, "odds": 1.05}},
		{name: "odds too high", body: map[string]any{"username": "pat", "gameId": 7, "team": "Hawks", "amount": 50, "odds": 12.0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, srv, "/api/bets", tc.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
			}
		})
	}

	// Requests rejected by the validator never reach storage.
	mdb.AssertNotCalled(t, "AddBet", mock.Anything, mock.Anything)
}

func TestPlaceBetHandler_insufficientFunds(t *testing.T) {
	srv, mdb := testServer(t)

	mdb.On("GetGame", mock.Anything, int32(7)).
		Return(&model.Game{ID: 7, Week: 2, Team1: "Hawks", Team2: "Giants"}, nil)
	mdb.On("AddBet", mock.Anything, mock.AnythingOfType("*model.Bet")).
		Return(db.ErrInsufficientFunds)

	resp := postJSON(t, srv, "/api/bets", map[string]any{
		"username": "pat",
		"gameId":   7,
		"team":     "Hawks",
		"amount":   5000,
		"odds":     1.75,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
}

func TestBalanceHandler(t *testing.T) {
	srv, mdb := testServer(t)

	mdb.On("GetUser", mock.Anything, "pat").
		Return(&model.User{Username: "pat", Coins: 850}, nil)

	var got struct {
		Username string `json:"username"`
		Coins    int    `json:"coins"`
	}
	resp := getJSON(t, srv, "/api/users/pat/balance", &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if got.Coins != 850 {
		t.Errorf("expected 850 coins, got %d", got.Coins)
	}
}

func TestAdminRoutes_requireAuth(t *testing.T) {
	srv, _ := testServer(t)

	tests := []struct {
		method string
		path   string
	}{
		{method: http.MethodPost, path: "/admin/games"},
		{method: http.MethodPatch, path: "/admin/games/1"},
		{method: http.MethodDelete, path: "/admin/games/1"},
		{method: http.MethodPut, path: "/admin/standings"},
		{method: http.MethodPost, path: "/admin/news"},
		{method: http.MethodPost, path: "/admin/coins"},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s %s", tc.method, tc.path), func(t *testing.T) {
			req, err := http.NewRequest(tc.method, srv.URL+tc.path, nil)
			if err != nil {
				t.Fatalf("error creating request: %v", err)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("error sending request: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
			}
		})
	}
}

func TestUpdateGameHandler(t *testing.T) {
	srv, mdb := testServer(t)

	prev := &model.Game{ID: 3, Week: 4, Team1: "Hawks", Team2: "Rhinos", Quarter: "Q1"}
	mdb.On("GetGame", mock.Anything, int32(3)).Return(prev, nil)
	mdb.On("UpdateGame", mock.Anything, mock.MatchedBy(func(g *model.Game) bool {
		return g.ID == 3 && g.Quarter == "Q2" && g.IsLive
	})).Return(nil)

	body, err := json.Marshal(map[string]any{"quarter": "Q2", "isLive": true})
	if err != nil {
		t.Fatalf("error marshaling request body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPatch, srv.URL+"/admin/games/3", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("error creating request: %v", err)
	}
	req.SetBasicAuth(testAdminUser, testAdminPass)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}

	var got model.Game
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if got.Quarter != "Q2" || !got.IsLive {
		t.Errorf("unexpected updated game: %+v", got)
	}
	mdb.AssertExpectations(t)
}

func TestGrantCoinsHandler(t *testing.T) {
	srv, mdb := testServer(t)

	mdb.On("AdjustCoins", mock.Anything, "pat", 250).Return(1250, nil)

	body, err := json.Marshal(map[string]any{"username": "pat", "amount": 250})
	if err != nil {
		t.Fatalf("error marshaling request body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/admin/coins", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("error creating request: %v", err)
	}
	req.SetBasicAuth(testAdminUser, testAdminPass)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}

	var got struct {
		Coins int `json:"coins"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if got.Coins != 1250 {
		t.Errorf("expected 1250 coins, got %d", got.Coins)
	}
}
