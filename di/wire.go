//go:build wireinject
// +build wireinject

package di

import (
	"kosan/config"
	"kosan/infras/jwt"
	"kosan/infras/kafka"
	"kosan/infras/otel"
	"kosan/infras/postgres"
	"kosan/infras/redis"
	"kosan/infras/s3"
	"kosan/permissions"
	"kosan/shared/cache"
	"kosan/transport/http"
	"kosan/transport/http/middleware"
	"kosan/transport/http/router"

	facilityRepository "kosan/internal/domains/facility/repository"
	facilityService "kosan/internal/domains/facility/service"
	imageKosanRepository "kosan/internal/domains/imagekosan/repository"
	imageKosanService "kosan/internal/domains/imagekosan/service"
	kamarRepository "kosan/internal/domains/kamar/repository"
	kamarService "kosan/internal/domains/kamar/service"
	kosRepository "kosan/internal/domains/kos/repository"
	kosService "kosan/internal/domains/kos/service"
	kosanFacilityRepository "kosan/internal/domains/kosanfacility/repository"
	userRepository "kosan/internal/domains/user/repository"
	userService "kosan/internal/domains/user/service"

	adminHandler "kosan/internal/handlers/admin"
	facilityHandler "kosan/internal/handlers/facility"
	kosHandler "kosan/internal/handlers/kos"
	rentHandler "kosan/internal/handlers/rent"
	userHandler "kosan/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var catalogDomain = wire.NewSet(
	facilityRepository.New,
	facilityService.New,
	kosRepository.New,
	kosService.New,
	kosanFacilityRepository.New,
	imageKosanRepository.New,
	imageKosanService.New,
)

var bookingDomain = wire.NewSet(
	kamarRepository.New,
	kamarService.New,
)

var domains = wire.NewSet(
	userDomain,
	catalogDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	userHandler.New,
	kosHandler.New,
	facilityHandler.New,
	rentHandler.New,
	adminHandler.New,
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
