package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/mww/gameday/controller"
	"github.com/mww/gameday/db"
	"github.com/mww/gameday/model"
	"github.com/unrolled/render"
)

var validate = validator.New()

type errorResponse struct {
	Error string `json:"error"`
}

// renderError maps controller and db errors onto HTTP status codes.
// Invalid input and insufficient funds are the caller's fault, missing
// rows are 404, everything else is a 500.
func renderError(render *render.Render, w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, controller.ErrInvalidBet), errors.Is(err, db.ErrInsufficientFunds):
		status = http.StatusBadRequest
	case errors.Is(err, db.ErrGameNotFound), errors.Is(err, db.ErrArticleNotFound):
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
	}
	render.JSON(w, status, errorResponse{Error: err.Error()})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("error parsing request body: %w", err)
	}
	return nil
}

func urlParamID(r *http.Request, name string) (int32, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", name, err)
	}
	return int32(id), nil
}

func rootHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "ok")
	}
}

func listGamesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week := 0
		if q := r.URL.Query().Get("week"); q != "" {
			var err error
			week, err = strconv.Atoi(q)
			if err != nil {
				render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing week: %v", err)})
				return
			}
		}

		games, err := ctrl.ListGames(r.Context(), week)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, games)
	}
}

func getGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r, "gameID")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		g, err := ctrl.GetGame(r.Context(), id)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, g)
	}
}

func gameProbabilityHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r, "gameID")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		team := r.URL.Query().Get("team")
		if team == "" {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "team parameter is required"})
			return
		}

		prob, multiplier, err := ctrl.GameProbability(r.Context(), id, team)
		if err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{
			"gameId":      id,
			"team":        team,
			"probability": prob,
			"multiplier":  multiplier,
		})
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conference := r.URL.Query().Get("conference")
		standings, err := ctrl.GetStandings(r.Context(), conference)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, standings)
	}
}

type betRequest struct {
	Username string  `json:"username" validate:"required"`
	GameID   int32   `json:"gameId" validate:"required"`
	Team     string  `json:"team" validate:"required"`
	Amount   int     `json:"amount" validate:"required,gt=0"`
	Odds     float64 `json:"odds" validate:"required,gte=1.1,lte=10"`
}

func placeBetHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req betRequest
		if err := decodeJSON(r, &req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid bet request: %v", err)})
			return
		}

		bet, err := ctrl.PlaceBet(r.Context(), req.Username, req.GameID, req.Team, req.Amount, req.Odds)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, bet)
	}
}

func balanceHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		coins, err := ctrl.GetBalance(r.Context(), username)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{
			"username": username,
			"coins":    coins,
		})
	}
}

func userBetsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		bets, err := ctrl.GetUserBets(r.Context(), username)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, bets)
	}
}

func leaderboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := ctrl.Leaderboard(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, users)
	}
}

func chatHistoryHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := ctrl.ListChatMessages(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, messages)
	}
}

func listArticlesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := ctrl.ListArticles(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, articles)
	}
}

func getArticleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r, "articleID")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		a, err := ctrl.GetArticle(r.Context(), id)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, a)
	}
}

func addGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var g model.Game
		if err := decodeJSON(r, &g); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		if err := ctrl.AddGame(r.Context(), &g); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, &g)
	}
}

func updateGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r, "gameID")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		var update controller.GameUpdate
		if err := decodeJSON(r, &update); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		g, err := ctrl.UpdateGame(r.Context(), id, update)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, g)
	}
}

func deleteGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r, "gameID")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		if err := ctrl.DeleteGame(r.Context(), id); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func saveStandingHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var s model.Standing
		if err := decodeJSON(r, &s); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		if s.Team == "" {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "team is required"})
			return
		}

		if err := ctrl.SaveStanding(r.Context(), &s); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, &s)
	}
}

func deleteStandingHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := chi.URLParam(r, "team")
		if err := ctrl.DeleteStanding(r.Context(), team); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type articleRequest struct {
	Title  string `json:"title" validate:"required"`
	Body   string `json:"body" validate:"required"`
	Author string `json:"author"`
}

func addArticleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req articleRequest
		if err := decodeJSON(r, &req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid article: %v", err)})
			return
		}

		a := &model.Article{Title: req.Title, Body: req.Body, Author: req.Author}
		if err := ctrl.AddArticle(r.Context(), a); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, a)
	}
}

func deleteArticleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r, "articleID")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		if err := ctrl.DeleteArticle(r.Context(), id); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// positionStatFieldsHandler tells the admin console which stat columns to
// show for a player position.
func positionStatFieldsHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pos := model.ParsePosition(chi.URLParam(r, "position"))
		if pos == model.POS_UNKNOWN {
			render.JSON(w, http.StatusNotFound, errorResponse{Error: "unknown position"})
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{
			"position":   pos,
			"statFields": pos.StatFields(),
		})
	}
}

type grantCoinsRequest struct {
	Username string `json:"username" validate:"required"`
	Amount   int    `json:"amount" validate:"required"`
}

func grantCoinsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req grantCoinsRequest
		if err := decodeJSON(r, &req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid grant request: %v", err)})
			return
		}

		coins, err := ctrl.GrantCoins(r.Context(), req.Username, req.Amount)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{
			"username": req.Username,
			"coins":    coins,
		})
	}
}
