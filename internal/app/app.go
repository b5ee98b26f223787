package app

import (
	"net/http"
	"openhours/internal/app/deps"
	"openhours/internal/app/services"
	checkhours "openhours/internal/http/handlers/hours/check_hours"
	findopenrestaurants "openhours/internal/http/handlers/restaurants/find_open_restaurants"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(deps *deps.Deps, s *services.Services) http.Handler {
	restaurantsRouter := chi.NewRouter()
	restaurantsRouter.Method(http.MethodGet, "/open", findopenrestaurants.New(s.FindOpenRestaurants, deps.Now))

	hoursRouter := chi.NewRouter()
	hoursRouter.Method(http.MethodPost, "/check", checkhours.New(s.CheckHours, deps.Now))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/restaurants", restaurantsRouter)
	router.Mount("/hours", hoursRouter)
	return router
}

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	return &http.Server{
		Handler: NewRouter(deps, s),
		Addr:    deps.Config.HTTPAddress,
	}
}
