package service

import (
	"context"
	"fmt"

	"kosan/config"
	"kosan/infras/otel"
	"kosan/infras/postgres"
	imageModel "kosan/internal/domains/imagekosan/model"
	imageRepo "kosan/internal/domains/imagekosan/repository"
	kamarModel "kosan/internal/domains/kamar/model"
	kamarRepo "kosan/internal/domains/kamar/repository"
	"kosan/internal/domains/kos/model"
	"kosan/internal/domains/kos/model/dto"
	"kosan/internal/domains/kos/repository"
	kosanFacilityModel "kosan/internal/domains/kosanfacility/model"
	kosanFacilityRepo "kosan/internal/domains/kosanfacility/repository"
	"kosan/shared"
	"kosan/shared/cache"
	"kosan/shared/constant"
	gDto "kosan/shared/dto"
	"kosan/shared/failure"
	gModel "kosan/shared/model"
	"kosan/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetKos    = "kos:get"
	cacheGetAllKos = "kos:gets"
	cacheCountKos  = "kos:count"

	cacheDetail      = "detail"
	cacheAdminDetail = "admin"
)

type Kos interface {
	Create(ctx context.Context, req dto.CreateKosRequest) (dto.KosResponse, error)
	CreateWithRooms(ctx context.Context, req dto.CreateKosRequest) (dto.KosResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetKosListResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string, withKamar bool) (dto.KosResponse, error)
	Update(ctx context.Context, req dto.UpdateKosRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo              repository.Kos
	kosanFacilityRepo kosanFacilityRepo.KosanFacility
	kamarRepo         kamarRepo.Kamar
	imageRepo         imageRepo.ImageKosan
	db                *postgres.Connection
	cfg               *config.Config
	cache             cache.RedisCache
	otel              otel.Otel
}

func New(
	repo repository.Kos,
	kosanFacilityRepo kosanFacilityRepo.KosanFacility,
	kamarRepo kamarRepo.Kamar,
	imageRepo imageRepo.ImageKosan,
	db *postgres.Connection,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Kos {
	return &serviceImpl{
		repo:              repo,
		kosanFacilityRepo: kosanFacilityRepo,
		kamarRepo:         kamarRepo,
		imageRepo:         imageRepo,
		db:                db,
		cfg:               cfg,
		cache:             cache,
		otel:              otel,
	}
}

func nameFilter(name string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorEq,
				Value:    name,
				Table:    model.TableName,
			},
		},
	}
}

func availableKamarFilter(kosanID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    kamarModel.FieldKosanID,
				Operator: gDto.FilterOperatorEq,
				Value:    kosanID,
				Table:    kamarModel.TableName,
			},
			gDto.Filter{
				Field:    kamarModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    constant.KamarStatusAvailable,
				Table:    kamarModel.TableName,
			},
		},
	}
}

func kosanIDFilter(kosanID, field, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    kosanID,
				Table:    table,
			},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateKosRequest) (res dto.KosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.create(ctx, req, false)
}

// CreateWithRooms creates the kos and seeds its kamar inventory, numbering
// rooms K1..Kn from stockKamar.
func (s *serviceImpl) CreateWithRooms(ctx context.Context, req dto.CreateKosRequest) (res dto.KosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateWithRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.create(ctx, req, true)
}

func (s *serviceImpl) create(ctx context.Context, req dto.CreateKosRequest, withRooms bool) (res dto.KosResponse, err error) {
	facilityIDs, err := req.FacilityIDs()
	if err != nil {
		return res, err
	}

	exists, err := s.repo.Exist(ctx, nameFilter(req.Name))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if kos exists")

		return res, fmt.Errorf("failed to check if kos exists: %w", err)
	}

	if exists {
		return res, failure.BadRequestFromString("Kos with this name already exists")
	}

	kos := req.ToModel()
	joins := dto.ToJoinModels(kos.ID, facilityIDs)

	var kamars []kamarModel.Kamar
	if withRooms {
		kamars = buildKamars(kos.ID, req.StockKamar)
	}

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, kos); err != nil {
			return err
		}

		if len(joins) > 0 {
			if err := s.kosanFacilityRepo.InsertBulkTx(ctx, tx, joins); err != nil {
				return err
			}
		}

		if len(kamars) > 0 {
			if err := s.kamarRepo.InsertBulkTx(ctx, tx, kamars); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create kos")

		return res, fmt.Errorf("failed to create kos: %w", err)
	}

	res.FromModel(kos)

	joined, err := s.kosanFacilityRepo.GetJoined(ctx, kosanIDFilter(kos.ID, kosanFacilityModel.FieldKosanID, kosanFacilityModel.TableName))
	if err != nil {
		log.Warn().Err(err).Msg("failed to load facilities for created kos")
	} else {
		res.AttachFacilities(joined)
	}

	if withRooms {
		res.AttachKamars(kamars)
		res.AvailableRooms = len(kamars)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllKos)
		shared.InvalidateCaches(c, s.cache, cacheCountKos)
	}()

	return res, nil
}

func buildKamars(kosanID string, stockKamar int) []kamarModel.Kamar {
	kamars := make([]kamarModel.Kamar, stockKamar)
	for i := range stockKamar {
		kamars[i] = kamarModel.Kamar{
			ID:      uuid.NewString(),
			KosanID: kosanID,
			NoKamar: fmt.Sprintf("K%d", i+1),
			Status:  constant.KamarStatusAvailable,
			Metadata: gModel.Metadata{
				CreatedAt: timezone.Now(),
				UpdatedAt: timezone.Now(),
			},
		}
	}

	return kamars
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetKosListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllKos, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for kos list")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count kos")

		return res, fmt.Errorf("failed to count kos: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get kos list")

		return res, fmt.Errorf("failed to get kos list: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err = s.attachRelations(ctx, res.Kos); err != nil {
		return dto.GetKosListResponse{}, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save kos list to cache")
		}
	}()

	return res, nil
}

// attachRelations joins facilities and the live available-room count onto
// the given responses. The count is recomputed on every read.
func (s *serviceImpl) attachRelations(ctx context.Context, items []dto.KosResponse) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	joinFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    kosanFacilityModel.FieldKosanID,
				Operator: gDto.FilterOperatorIn,
				Value:    ids,
				Table:    kosanFacilityModel.TableName,
			},
		},
	}

	joined, err := s.kosanFacilityRepo.GetJoined(ctx, joinFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get kos facilities")

		return fmt.Errorf("failed to get kos facilities: %w", err)
	}

	for i := range items {
		items[i].AttachFacilities(joined)

		available, err := s.kamarRepo.Count(ctx, availableKamarFilter(items[i].ID))
		if err != nil {
			log.Error().Err(err).Msg("failed to count available kamars")

			return fmt.Errorf("failed to count available kamars: %w", err)
		}

		items[i].AvailableRooms = available
	}

	return nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountKos, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count kos")

		return res, fmt.Errorf("failed to count kos: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save kos count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string, withKamar bool) (res dto.KosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	variant := cacheDetail
	if withKamar {
		variant = cacheAdminDetail
	}

	cacheKey := shared.BuildCacheKey(cacheGetKos, id, variant)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for kos")

		return res, nil
	}

	kos, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get kos")

		return res, fmt.Errorf("failed to get kos: %w", err)
	}

	if kos.ID == constant.Empty {
		return res, failure.NotFound("Kos not found") // nolint:wrapcheck
	}

	res.FromModel(kos)

	items := []dto.KosResponse{res}
	if err = s.attachRelations(ctx, items); err != nil {
		return dto.KosResponse{}, err
	}

	res = items[0]

	images, err := s.imageRepo.GetAll(ctx, gDto.QueryParams{}, kosanIDFilter(id, imageModel.FieldKosanID, imageModel.TableName))
	if err != nil {
		log.Warn().Err(err).Msg("failed to load kos images")
	} else {
		res.AttachImages(images)
	}

	if withKamar {
		kamars, err := s.kamarRepo.GetAll(ctx, gDto.QueryParams{}, kosanIDFilter(id, kamarModel.FieldKosanID, kamarModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get kamars")

			return dto.KosResponse{}, fmt.Errorf("failed to get kamars: %w", err)
		}

		res.AttachKamars(kamars)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save kos to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateKosRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get kos")

		return fmt.Errorf("failed to get kos: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("Kos not found") // nolint:wrapcheck
	}

	if req.Name != current.Name {
		exists, err := s.repo.Exist(ctx, nameFilter(req.Name))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if kos exists")

			return fmt.Errorf("failed to check if kos exists: %w", err)
		}

		if exists {
			return failure.BadRequestFromString("Kos with this name already exists")
		}
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req), filter); err != nil {
		log.Error().Err(err).Msg("failed to update kos")

		return fmt.Errorf("failed to update kos: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetKos, id))
		shared.InvalidateCaches(c, s.cache, cacheGetAllKos)
		shared.InvalidateCaches(c, s.cache, cacheCountKos)
	}()

	return nil
}

// Delete removes the kos; kamars, facility joins and images go with it via
// FK cascade.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if kos exists")

		return fmt.Errorf("failed to check if kos exists: %w", err)
	}

	if !exist {
		return failure.NotFound("Kos not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete kos")

		return fmt.Errorf("failed to delete kos: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetKos, id))
		shared.InvalidateCaches(c, s.cache, cacheGetAllKos)
		shared.InvalidateCaches(c, s.cache, cacheCountKos)
	}()

	return nil
}
