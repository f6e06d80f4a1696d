package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"kosan/infras/otel"
	"kosan/infras/postgres"
	"kosan/internal/domains/imagekosan/model"
	gDto "kosan/shared/dto"
	gRepo "kosan/shared/repository"
)

type ImageKosan interface {
	Insert(ctx context.Context, model model.ImageKosan) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ImageKosan, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ImageKosan, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ImageKosan]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) ImageKosan {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ImageKosan](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
