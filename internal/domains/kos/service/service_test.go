package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"kosan/config"
	otelMocks "kosan/infras/otel/mocks"
	"kosan/infras/postgres"
	imageMocks "kosan/internal/domains/imagekosan/mocks"
	imageModel "kosan/internal/domains/imagekosan/model"
	kamarMocks "kosan/internal/domains/kamar/mocks"
	kamarModel "kosan/internal/domains/kamar/model"
	"kosan/internal/domains/kos/mocks"
	"kosan/internal/domains/kos/model"
	"kosan/internal/domains/kos/model/dto"
	"kosan/internal/domains/kos/service"
	kfMocks "kosan/internal/domains/kosanfacility/mocks"
	kfModel "kosan/internal/domains/kosanfacility/model"
	"kosan/shared/cache"
	cacheMocks "kosan/shared/cache/mocks"
	"kosan/shared/constant"
	gDto "kosan/shared/dto"
	"kosan/shared/failure"
)

type kosServiceMocks struct {
	repo    *mocks.MockKos
	kf      *kfMocks.MockKosanFacility
	kamar   *kamarMocks.MockKamar
	image   *imageMocks.MockImageKosan
	cache   *cacheMocks.MockRedisCache
	sqlMock sqlmock.Sqlmock
}

func newKosService(t *testing.T) (service.Kos, kosServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockDB, sqlMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	m := kosServiceMocks{
		repo:    mocks.NewMockKos(ctrl),
		kf:      kfMocks.NewMockKosanFacility(ctrl),
		kamar:   kamarMocks.NewMockKamar(ctrl),
		image:   imageMocks.NewMockImageKosan(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
		sqlMock: sqlMock,
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.kf, m.kamar, m.image, conn, cfg, m.cache, otelMocks.NewOtel())

	return svc, m
}

func TestKosService_CreateWithRooms(t *testing.T) {
	req := dto.CreateKosRequest{
		Name:       "Kos Melati",
		Price:      1500000,
		StockKamar: 5,
		Latitude:   -6.2,
		Longitude:  106.8,
		Address:    "Jl. Melati No. 1",
		Facility:   []any{"fac-1", "fac-2"},
	}

	t.Run("seeds numbered rooms inside one transaction", func(t *testing.T) {
		svc, m := newKosService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		m.sqlMock.ExpectBegin()
		m.sqlMock.ExpectCommit()

		var kosID string

		m.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, kos model.Kos) error {
				kosID = kos.ID
				assert.Equal(t, "Kos Melati", kos.Name)

				return nil
			})
		m.kf.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, joins []kfModel.KosanFacility) error {
				assert.Len(t, joins, 2)
				assert.Equal(t, "fac-1", joins[0].FacilityID)
				assert.Equal(t, kosID, joins[0].KosanID)

				return nil
			})
		m.kamar.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, kamars []kamarModel.Kamar) error {
				assert.Len(t, kamars, 5)
				for _, kamar := range kamars {
					assert.Equal(t, kosID, kamar.KosanID)
					assert.Equal(t, constant.KamarStatusAvailable, kamar.Status)
					assert.NotEmpty(t, kamar.ID)
				}
				assert.Equal(t, "K1", kamars[0].NoKamar)
				assert.Equal(t, "K5", kamars[4].NoKamar)

				return nil
			})
		m.kf.EXPECT().
			GetJoined(gomock.Any(), gomock.Any()).
			Return([]kfModel.JoinedFacility{}, nil)
		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.CreateWithRooms(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, 5, res.AvailableRooms)
		assert.Len(t, res.Kamars, 5)
		assert.NoError(t, m.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		svc, m := newKosService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.CreateWithRooms(context.Background(), req)

		assert.EqualError(t, err, "Kos with this name already exists")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("facility field must be an array", func(t *testing.T) {
		svc, _ := newKosService(t)

		bad := req
		bad.Facility = "fac-1"

		_, err := svc.CreateWithRooms(context.Background(), bad)

		assert.EqualError(t, err, "Facility must be an array")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("insert failure rolls the transaction back", func(t *testing.T) {
		svc, m := newKosService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		m.sqlMock.ExpectBegin()
		m.sqlMock.ExpectRollback()

		m.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		_, err := svc.CreateWithRooms(context.Background(), req)

		assert.Error(t, err)
		assert.NoError(t, m.sqlMock.ExpectationsWereMet())
	})
}

func TestKosService_Get(t *testing.T) {
	stored := model.Kos{
		ID:         "kos-1",
		Name:       "Kos Melati",
		Price:      1500000,
		StockKamar: 5,
		Address:    "Jl. Melati No. 1",
	}

	t.Run("detail includes facilities, live availability and images", func(t *testing.T) {
		svc, m := newKosService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), "kos:get:kos-1:detail", gomock.Any()).
			Return(cache.Nil)
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stored, nil)
		m.kf.EXPECT().
			GetJoined(gomock.Any(), gomock.Any()).
			Return([]kfModel.JoinedFacility{
				{KosanID: "kos-1", FacilityID: "fac-1", FacilityName: "WiFi"},
				{KosanID: "other", FacilityID: "fac-2", FacilityName: "AC"},
			}, nil)
		m.kamar.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(3, nil)
		m.image.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]imageModel.ImageKosan{{ID: "img-1", KosanID: "kos-1", Name: "https://cdn.example.com/kos/img-1.png"}}, nil)
		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "kos-1", false)

		assert.NoError(t, err)
		assert.Equal(t, 3, res.AvailableRooms)
		assert.Len(t, res.Facilities, 1)
		assert.Equal(t, "WiFi", res.Facilities[0].Name)
		assert.Len(t, res.Images, 1)
		assert.Empty(t, res.Kamars)
	})

	t.Run("missing kos", func(t *testing.T) {
		svc, m := newKosService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Kos{}, nil)

		_, err := svc.Get(context.Background(), "gone", false)

		assert.EqualError(t, err, "Kos not found")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestKosService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	svc, m := newKosService(t)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil).
		Times(2)
	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)
	m.repo.EXPECT().
		GetAll(gomock.Any(), params, gomock.Any()).
		Return([]model.Kos{{ID: "kos-1", Name: "Kos Melati"}, {ID: "kos-2", Name: "Kos Mawar"}}, nil)
	m.kf.EXPECT().
		GetJoined(gomock.Any(), gomock.Any()).
		Return([]kfModel.JoinedFacility{{KosanID: "kos-2", FacilityID: "fac-1", FacilityName: "WiFi"}}, nil)
	m.kamar.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil).
		Times(2)
	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Kos, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Empty(t, res.Kos[0].Facilities)
	assert.Len(t, res.Kos[1].Facilities, 1)
	assert.Equal(t, 1, res.Kos[0].AvailableRooms)
}

func TestKosService_Update(t *testing.T) {
	current := model.Kos{ID: "kos-1", Name: "Kos Melati"}
	req := dto.UpdateKosRequest{
		Name:       "Kos Mawar",
		Price:      2000000,
		StockKamar: 6,
		Latitude:   -6.2,
		Longitude:  106.8,
		Address:    "Jl. Mawar No. 2",
	}

	t.Run("renaming onto an existing kos is rejected", func(t *testing.T) {
		svc, m := newKosService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(current, nil)
		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Update(context.Background(), req, "kos-1")

		assert.EqualError(t, err, "Kos with this name already exists")
	})

	t.Run("keeping the same name skips the duplicate check", func(t *testing.T) {
		svc, m := newKosService(t)

		sameName := req
		sameName.Name = current.Name

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(current, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		assert.NoError(t, svc.Update(context.Background(), sameName, "kos-1"))
	})

	t.Run("missing kos", func(t *testing.T) {
		svc, m := newKosService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Kos{}, nil)

		err := svc.Update(context.Background(), req, "gone")

		assert.EqualError(t, err, "Kos not found")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestKosService_Delete(t *testing.T) {
	svc, m := newKosService(t)

	m.repo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)
	m.repo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	assert.NoError(t, svc.Delete(context.Background(), "kos-1"))
}
