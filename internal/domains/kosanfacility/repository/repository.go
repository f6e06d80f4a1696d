package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"kosan/infras/otel"
	"kosan/infras/postgres"
	"kosan/internal/domains/kosanfacility/model"
	gDto "kosan/shared/dto"
	gRepo "kosan/shared/repository"

	"github.com/jmoiron/sqlx"
)

type KosanFacility interface {
	InsertBulk(ctx context.Context, models []model.KosanFacility) error
	InsertBulkTx(ctx context.Context, tx *sqlx.Tx, models []model.KosanFacility) error
	GetJoined(ctx context.Context, filter gDto.FilterGroup) ([]model.JoinedFacility, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.KosanFacility]
	joined gRepo.Repository[model.JoinedFacility]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) KosanFacility {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.KosanFacility](model.EntityName, model.TableName, model.FieldID, db, otel),
		joined:     gRepo.NewRepository[model.JoinedFacility](model.EntityName+"_joined", model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetJoined(ctx context.Context, filter gDto.FilterGroup) ([]model.JoinedFacility, error) {
	return repo.joined.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}
