package service

import (
	"context"
	"fmt"
	"path/filepath"

	"kosan/config"
	"kosan/infras/otel"
	"kosan/infras/s3"
	"kosan/internal/domains/imagekosan/model"
	"kosan/internal/domains/imagekosan/model/dto"
	"kosan/internal/domains/imagekosan/repository"
	kosModel "kosan/internal/domains/kos/model"
	kosRepo "kosan/internal/domains/kos/repository"
	"kosan/shared"
	"kosan/shared/cache"
	"kosan/shared/constant"
	gDto "kosan/shared/dto"
	"kosan/shared/failure"
	gModel "kosan/shared/model"
	"kosan/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	imageDirectory = "kos"

	cacheKosPrefix = "kos"
)

type ImageKosan interface {
	Upload(ctx context.Context, req dto.UploadImageRequest, kosanID string) (dto.ImageKosanResponse, error)
	GetByKos(ctx context.Context, kosanID string) (dto.GetImageKosansResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.ImageKosan
	kosRepo kosRepo.Kos
	s3      s3.S3
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(
	repo repository.ImageKosan,
	kosRepo kosRepo.Kos,
	s3 s3.S3,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) ImageKosan {
	return &serviceImpl{
		repo:    repo,
		kosRepo: kosRepo,
		s3:      s3,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

// Upload stores the image on S3 under a random object name and records its
// URL against the kos.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadImageRequest, kosanID string) (res dto.ImageKosanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.kosRepo.Exist(ctx, shared.FilterByID(kosanID, kosModel.FieldID, kosModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if kos exists")

		return res, fmt.Errorf("failed to check if kos exists: %w", err)
	}

	if !exists {
		return res, failure.NotFound("Kos not found") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName
	fileName := uuid.NewString() + filepath.Ext(req.Image.Filename)

	url, err := s.s3.UploadFile(ctx, bucketName, imageDirectory, req.ImageFile, req.Image, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	image := model.ImageKosan{
		ID:      uuid.NewString(),
		KosanID: kosanID,
		Name:    url,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}

	if err = s.repo.Insert(ctx, image); err != nil {
		log.Error().Err(err).Msg("failed to save kos image")

		return res, fmt.Errorf("failed to save kos image: %w", err)
	}

	res.FromModel(image)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheKosPrefix)
	}()

	return res, nil
}

func (s *serviceImpl) GetByKos(ctx context.Context, kosanID string) (res dto.GetImageKosansResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByKos")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldKosanID,
				Operator: gDto.FilterOperatorEq,
				Value:    kosanID,
				Table:    model.TableName,
			},
		},
	}

	images, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get kos images")

		return res, fmt.Errorf("failed to get kos images: %w", err)
	}

	res.FromModels(images)

	return res, nil
}

// Delete removes the row first, then the S3 object out of band.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	image, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get kos image")

		return fmt.Errorf("failed to get kos image: %w", err)
	}

	if image.ID == constant.Empty {
		return failure.NotFound("Image not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete kos image")

		return fmt.Errorf("failed to delete kos image: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, image.Name)
		if objectName == constant.Empty {
			log.Warn().Str("url", image.Name).Msg("failed to extract object name from URL")
		} else if err := s.s3.DeleteFile(c, bucketName, imageDirectory, objectName); err != nil {
			log.Error().Err(err).Msg("failed to delete kos image from S3")
		}

		shared.InvalidateCaches(c, s.cache, cacheKosPrefix)
	}()

	return nil
}
