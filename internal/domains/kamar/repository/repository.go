package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"kosan/infras/otel"
	"kosan/infras/postgres"
	"kosan/internal/domains/kamar/model"
	gDto "kosan/shared/dto"
	gRepo "kosan/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Kamar interface {
	InsertBulk(ctx context.Context, models []model.Kamar) error
	InsertBulkTx(ctx context.Context, tx *sqlx.Tx, models []model.Kamar) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Kamar, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Kamar, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetRent(ctx context.Context, filter gDto.FilterGroup) (model.RentView, error)
	GetAllRent(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.RentView, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Kamar]
	rents gRepo.Repository[model.RentView]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Kamar {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Kamar](model.EntityName, model.TableName, model.FieldID, db, otel),
		rents:      gRepo.NewRepository[model.RentView]("rent", model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetRent(ctx context.Context, filter gDto.FilterGroup) (model.RentView, error) {
	return repo.rents.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAllRent(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.RentView, error) {
	return repo.rents.GetAll(ctx, params, filter) //nolint:wrapcheck
}
