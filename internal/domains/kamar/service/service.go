package service

import (
	"context"
	"fmt"
	"time"

	"kosan/config"
	"kosan/infras/kafka"
	"kosan/infras/otel"
	"kosan/internal/domains/kamar/model"
	"kosan/internal/domains/kamar/model/dto"
	"kosan/internal/domains/kamar/repository"
	kosModel "kosan/internal/domains/kos/model"
	kosRepo "kosan/internal/domains/kos/repository"
	"kosan/shared"
	"kosan/shared/cache"
	"kosan/shared/constant"
	gDto "kosan/shared/dto"
	"kosan/shared/failure"
	"kosan/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRent    = "rent:get"
	cacheGetAllRent = "rent:gets"
	cacheCountRent  = "rent:count"

	// kos list/detail responses embed availableRooms, so booking writes
	// invalidate the whole kos prefix too.
	cacheKosPrefix = "kos"

	eventRentCreated       = "rent.created"
	eventRentStatusUpdated = "rent.status_updated"
)

type Kamar interface {
	Rent(ctx context.Context, req dto.RentRequest, userID string) (dto.RentResponse, error)
	GetSelf(ctx context.Context, params gDto.QueryParams, userID string) (dto.GetRentsResponse, error)
	Get(ctx context.Context, id, userID, role string) (dto.RentResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRentsResponse, error)
	AdminGet(ctx context.Context, id string) (dto.RentResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateRentStatusRequest, id string) error
}

type serviceImpl struct {
	repo    repository.Kamar
	kosRepo kosRepo.Kos
	kafka   kafka.Client
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(
	repo repository.Kamar,
	kosRepo kosRepo.Kos,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Kamar {
	return &serviceImpl{
		repo:    repo,
		kosRepo: kosRepo,
		kafka:   kafka,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func availableFilter(kosanID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldKosanID,
				Operator: gDto.FilterOperatorEq,
				Value:    kosanID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    constant.KamarStatusAvailable,
				Table:    model.TableName,
			},
		},
	}
}

func tenantFilter(userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}
}

// Rent books the first available kamar of a kos for the caller. The pick and
// the write run as two statements without a row lock; concurrent callers can
// race for the same kamar.
func (s *serviceImpl) Rent(ctx context.Context, req dto.RentRequest, userID string) (res dto.RentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rent")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.kosRepo.Exist(ctx, shared.FilterByID(req.KosanID, kosModel.FieldID, kosModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if kos exists")

		return res, fmt.Errorf("failed to check if kos exists: %w", err)
	}

	if !exists {
		return res, failure.NotFound("Kos not found") // nolint:wrapcheck
	}

	kamar, err := s.repo.Get(ctx, availableFilter(req.KosanID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get available kamar")

		return res, fmt.Errorf("failed to get available kamar: %w", err)
	}

	if kamar.ID == constant.Empty {
		return res, failure.NotFound("No available kamar") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldUserID:       userID,
		model.FieldStatus:       constant.KamarStatusBooked,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if req.Duration != nil {
		updatedFields[model.FieldDuration] = *req.Duration
	}

	if req.StartDate != constant.Empty {
		startDate, err := time.Parse(constant.DateOnlyFormat, req.StartDate)
		if err != nil {
			return res, failure.BadRequestFromString("Invalid start date") // nolint:wrapcheck
		}

		updatedFields[model.FieldStartDate] = startDate

		if req.Duration != nil {
			updatedFields[model.FieldEndDate] = startDate.AddDate(0, *req.Duration, 0)
		}
	}

	kamarFilter := shared.FilterByID(kamar.ID, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, updatedFields, kamarFilter); err != nil {
		log.Error().Err(err).Msg("failed to book kamar")

		return res, fmt.Errorf("failed to book kamar: %w", err)
	}

	rent, err := s.repo.GetRent(ctx, kamarFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rent")

		return res, fmt.Errorf("failed to get rent: %w", err)
	}

	res.FromModel(rent)

	s.publishBookingEvent(ctx, eventRentCreated, rent)
	s.invalidateRentCaches(ctx)

	return res, nil
}

func (s *serviceImpl) GetSelf(ctx context.Context, params gDto.QueryParams, userID string) (res dto.GetRentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSelf")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := tenantFilter(userID)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllRent, userID), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for own rents")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rents")

		return res, fmt.Errorf("failed to count rents: %w", err)
	}

	rents, err := s.repo.GetAllRent(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rents")

		return res, fmt.Errorf("failed to get rents: %w", err)
	}

	res.FromModels(rents, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rents to cache")
		}
	}()

	return res, nil
}

// Get returns a rent by id. Admins see any row; other roles only their own,
// and both a missing row and someone else's row come back as the same not
// found error.
func (s *serviceImpl) Get(ctx context.Context, id, userID, role string) (res dto.RentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	rent, err := s.repo.GetRent(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rent")

		return res, fmt.Errorf("failed to get rent: %w", err)
	}

	if rent.ID == constant.Empty {
		return res, failure.NotFound("Rent not found/no access to rent") // nolint:wrapcheck
	}

	if role != constant.RoleAdmin {
		if rent.UserID == nil || *rent.UserID != userID {
			return res, failure.NotFound("Rent not found/no access to rent") // nolint:wrapcheck
		}
	}

	res.FromModel(rent)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRent, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rent list")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rents")

		return res, fmt.Errorf("failed to count rents: %w", err)
	}

	rents, err := s.repo.GetAllRent(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rents")

		return res, fmt.Errorf("failed to get rents: %w", err)
	}

	res.FromModels(rents, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rent list to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) AdminGet(ctx context.Context, id string) (res dto.RentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminGet")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRent, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rent")

		return res, nil
	}

	rent, err := s.repo.GetRent(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rent")

		return res, fmt.Errorf("failed to get rent: %w", err)
	}

	if rent.ID == constant.Empty {
		return res, failure.NotFound("Rent not found") // nolint:wrapcheck
	}

	res.FromModel(rent)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rent to cache")
		}
	}()

	return res, nil
}

// UpdateStatus force-sets a kamar's status. Setting it back to available also
// clears the tenant and the rental period.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateRentStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	kamarFilter := shared.FilterByID(id, model.FieldID, model.TableName)

	kamar, err := s.repo.Get(ctx, kamarFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get kamar")

		return fmt.Errorf("failed to get kamar: %w", err)
	}

	if kamar.ID == constant.Empty {
		return failure.NotFound("Rent not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:       req.Status,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if req.Status == constant.KamarStatusAvailable {
		updatedFields[model.FieldUserID] = nil
		updatedFields[model.FieldDuration] = nil
		updatedFields[model.FieldStartDate] = nil
		updatedFields[model.FieldEndDate] = nil
	}

	if err = s.repo.Update(ctx, updatedFields, kamarFilter); err != nil {
		log.Error().Err(err).Msg("failed to update kamar status")

		return fmt.Errorf("failed to update kamar status: %w", err)
	}

	rent, err := s.repo.GetRent(ctx, kamarFilter)
	if err != nil {
		log.Warn().Err(err).Msg("failed to reload rent for event")
	} else {
		s.publishBookingEvent(ctx, eventRentStatusUpdated, rent)
	}

	s.invalidateRentCaches(ctx)

	return nil
}

// publishBookingEvent pushes a booking lifecycle event to Kafka without
// blocking the request; failures are logged only.
func (s *serviceImpl) publishBookingEvent(ctx context.Context, event string, rent model.RentView) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key: rent.ID,
			Value: dto.BookingEvent{
				Event:   event,
				KamarID: rent.ID,
				KosanID: rent.KosanID,
				UserID:  rent.UserID,
				Status:  rent.Status,
			},
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.BookingEventsTopic, message); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidateRentCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetRent)
		shared.InvalidateCaches(c, s.cache, cacheGetAllRent)
		shared.InvalidateCaches(c, s.cache, cacheCountRent)
		shared.InvalidateCaches(c, s.cache, cacheKosPrefix)
	}()
}
