//go:build wireinject
// +build wireinject

package di

import (
	"primecm/config"
	"primecm/infras/jwt"
	"primecm/infras/otel"
	"primecm/infras/postgres"
	"primecm/infras/redis"
	"primecm/permissions"
	"primecm/shared/cache"
	"primecm/transport/http"
	"primecm/transport/http/middleware"
	"primecm/transport/http/router"

	"github.com/google/wire"

	adminRepository "primecm/internal/domains/admin/repository"
	adminService "primecm/internal/domains/admin/service"
	authRepository "primecm/internal/domains/auth/repository"
	authService "primecm/internal/domains/auth/service"
	bookingRepository "primecm/internal/domains/booking/repository"
	bookingService "primecm/internal/domains/booking/service"
	customerRepository "primecm/internal/domains/customer/repository"
	customerService "primecm/internal/domains/customer/service"

	adminHandler "primecm/internal/handlers/admin"
	authHandler "primecm/internal/handlers/auth"
	bookingHandler "primecm/internal/handlers/booking"
	customerHandler "primecm/internal/handlers/customer"
	homeHandler "primecm/internal/handlers/home"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var adminDomain = wire.NewSet(
	adminRepository.New,
	adminRepository.NewPhoneNumber,
	adminService.New,
)

var authDomain = wire.NewSet(
	authRepository.New,
	authService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerRepository.NewPhoneNumber,
	customerService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.NewTransaction,
	bookingRepository.NewBooking,
	bookingService.New,
)

var domains = wire.NewSet(
	adminDomain,
	authDomain,
	customerDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	homeHandler.New,
	authHandler.New,
	adminHandler.New,
	customerHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
