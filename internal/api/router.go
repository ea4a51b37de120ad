package api

import (
	"net/http"
	"time"
	"user_api/internal/api/handler"
	"user_api/internal/api/middleware"
	"user_api/internal/app/service"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func NewRouter(userService *service.UserService, accessToken string) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
	}).Handler)

	// Public health check
	r.Get("/healthcheck", handler.Healthcheck)

	// User routes, all behind the access-key check
	userHandler := handler.NewUserHandler(userService)
	r.Route("/users", func(users chi.Router) {
		users.Use(middleware.AccessKey(accessToken))
		userHandler.RegisterRoutes(users)
	})

	return r
}
