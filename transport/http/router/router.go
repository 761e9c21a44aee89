package router

import (
	"primecm/config"
	"primecm/internal/handlers/admin"
	"primecm/internal/handlers/auth"
	"primecm/internal/handlers/booking"
	"primecm/internal/handlers/customer"
	"primecm/internal/handlers/home"
	"primecm/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type DomainHandlers struct {
	Home     home.Handler
	Auth     auth.Handler
	Admin    admin.Handler
	Customer customer.Handler
	Booking  booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	app            middleware.AppMiddleware
	authRole       middleware.AuthRole
	cfg            *config.Config
}

// SetupRoutes mounts the global middleware stack and every domain route.
// Routes under /v1 pass through Auth and RBAC.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(r.app.AccessLog)
	router.Use(chiMiddleware.Recoverer)
	router.Use(r.app.Tracing)

	if corsCfg := r.cfg.App.CORS; corsCfg.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsCfg.AllowedOrigins,
			AllowedMethods:   corsCfg.AllowedMethods,
			AllowedHeaders:   corsCfg.AllowedHeaders,
			AllowCredentials: corsCfg.AllowCredentials,
			MaxAge:           corsCfg.MaxAgeSeconds,
		}))
	}

	r.DomainHandlers.Home.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.authRole.Auth, r.authRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		app:            app,
		authRole:       authRole,
		cfg:            cfg,
	}
}
