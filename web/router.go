package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mww/gameday/controller"
	"github.com/mww/gameday/relay"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, hub *relay.Hub, render *render.Render, adminUser, adminPass string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(render))

	r.Route("/api", func(r chi.Router) {
		r.Route("/games", func(r chi.Router) {
			r.Get("/", listGamesHandler(ctrl, render))
			r.Get("/{gameID:\\d+}", getGameHandler(ctrl, render))
			r.Get("/{gameID:\\d+}/probability", gameProbabilityHandler(ctrl, render))
		})

		r.Get("/standings", standingsHandler(ctrl, render))

		r.Route("/news", func(r chi.Router) {
			r.Get("/", listArticlesHandler(ctrl, render))
			r.Get("/{articleID:\\d+}", getArticleHandler(ctrl, render))
		})

		r.Post("/bets", placeBetHandler(ctrl, render))

		r.Route("/users/{username}", func(r chi.Router) {
			r.Get("/balance", balanceHandler(ctrl, render))
			r.Get("/bets", userBetsHandler(ctrl, render))
		})

		r.Get("/leaderboard", leaderboardHandler(ctrl, render))
		r.Get("/chat", chatHistoryHandler(ctrl, render))
	})

	r.Get("/ws", websocketHandler(ctrl, hub))

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("gameday", map[string]string{adminUser: adminPass}))
		r.Use(middleware.Timeout(30 * time.Second)) // Set a longer timeout for /admin actions

		r.Post("/games", addGameHandler(ctrl, render))
		r.Patch("/games/{gameID:\\d+}", updateGameHandler(ctrl, render))
		r.Delete("/games/{gameID:\\d+}", deleteGameHandler(ctrl, render))

		r.Put("/standings", saveStandingHandler(ctrl, render))
		r.Delete("/standings/{team}", deleteStandingHandler(ctrl, render))

		r.Post("/news", addArticleHandler(ctrl, render))
		r.Delete("/news/{articleID:\\d+}", deleteArticleHandler(ctrl, render))

		r.Post("/coins", grantCoinsHandler(ctrl, render))

		r.Get("/positions/{position}", positionStatFieldsHandler(render))
	})

	return r
}
