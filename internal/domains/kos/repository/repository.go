package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"kosan/infras/otel"
	"kosan/infras/postgres"
	"kosan/internal/domains/kos/model"
	gDto "kosan/shared/dto"
	gRepo "kosan/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Kos interface {
	Insert(ctx context.Context, model model.Kos) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Kos) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Kos, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Kos, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Kos]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Kos {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Kos](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
