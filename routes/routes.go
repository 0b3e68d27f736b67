package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"

	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/handlers"
	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/middleware"
)

func InitRoutes(
	auth *middleware.Auth,
	authHandler *handlers.AuthHandler,
	userAuthHandler *handlers.UserAuthHandler,
	teamHandler *handlers.TeamHandler,
	scheduleHandler *handlers.ScheduleHandler,
	settingsHandler *handlers.SettingsHandler,
) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Auth-Token", "X-Admin-Token", "X-Session-Token"},
		MaxAge:         86400,
	}))

	router.MethodNotAllowed(handlers.MethodNotAllowed)

	router.Route("/auth", func(r chi.Router) {
		// Вход админа и create_admin различаются полем action в теле,
		// поэтому POST остаётся открытым, гейт — внутри обработчика.
		r.Post("/", authHandler.Post)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireSuperAdmin)
			r.Get("/", authHandler.ListAdmins)
			r.Delete("/", authHandler.DeleteAdmin)
		})
	})

	router.Post("/user-auth", userAuthHandler.Post)

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", teamHandler.Get)
		r.Post("/", teamHandler.Post)
		r.Put("/", teamHandler.Put)
		r.Delete("/", teamHandler.Delete)
	})

	router.Route("/schedule", func(r chi.Router) {
		r.Get("/", scheduleHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin)
			r.Post("/", scheduleHandler.Post)
			r.Put("/", scheduleHandler.Put)
			r.Delete("/", scheduleHandler.Delete)
		})
	})

	router.Route("/settings", func(r chi.Router) {
		r.Get("/", settingsHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin)
			r.Put("/", settingsHandler.Put)
		})
	})

	return router
}
