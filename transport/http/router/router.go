package router

import (
	"kosan/internal/handlers/admin"
	"kosan/internal/handlers/facility"
	"kosan/internal/handlers/kos"
	"kosan/internal/handlers/rent"
	"kosan/internal/handlers/user"
	"kosan/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	User     user.Handler
	Kos      kos.Handler
	Facility facility.Handler
	Rent     rent.Handler
	Admin    admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit())

	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Kos.Router(routerGroup)
		r.DomainHandlers.Facility.Router(routerGroup)
		r.DomainHandlers.Rent.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthRole:       authRole,
	}
}
