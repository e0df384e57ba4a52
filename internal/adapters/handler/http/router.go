package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/vncsmyrnk/pollstate/internal/adapters/handler/http/docs"
)

// @title       Poll state API
// @version     1.0
// @description Reads the poll catalog and vote log, triggers catalog loads and casts votes.
// @BasePath    /api
func NewHandler(pollHandler *PollHandler, voteHandler *VoteHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", welcome)
		r.Get("/health", pollHandler.Health)

		r.Route("/polls", func(r chi.Router) {
			r.Get("/", pollHandler.ListPolls)
			r.Post("/load", pollHandler.LoadPolls)
			r.Get("/{id}", pollHandler.GetPoll)
			r.Get("/{id}/results", pollHandler.GetPollResults)
		})
		r.Get("/results", pollHandler.ListResults)

		r.Route("/votes", func(r chi.Router) {
			r.Get("/", voteHandler.ListVotes)
			r.Post("/", voteHandler.CastVote)
		})
		r.Get("/choices/{id}/votes", voteHandler.ListChoiceVotes)
	})

	return r
}

// welcome godoc
// @Summary      API root
// @Tags         meta
// @Produce      plain
// @Success      200  {string}  string  "welcome"
// @Router       / [get]
func welcome(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("welcome"))
}
