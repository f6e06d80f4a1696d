package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"kosan/config"
	otelMocks "kosan/infras/otel/mocks"
	"kosan/internal/domains/facility/mocks"
	"kosan/internal/domains/facility/model"
	"kosan/internal/domains/facility/model/dto"
	"kosan/internal/domains/facility/service"
	"kosan/shared/cache"
	cacheMocks "kosan/shared/cache/mocks"
	gDto "kosan/shared/dto"
	"kosan/shared/failure"
)

func newFacilityService(t *testing.T) (service.Facility, *mocks.MockFacility, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockFacility(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo, mockCache
}

func TestFacilityService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *mocks.MockFacility, c *cacheMocks.MockRedisCache)
		wantErr   string
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func(repo *mocks.MockFacility, c *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, facility model.Facility) error {
						assert.Equal(t, "WiFi", facility.Name)
						assert.NotEmpty(t, facility.ID)

						return nil
					})
				c.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "duplicate name is rejected",
			setupMock: func(repo *mocks.MockFacility, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  "Facility with this name already exists",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newFacilityService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.Create(context.Background(), dto.CreateFacilityRequest{Name: "WiFi"})

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestFacilityService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}
	models := []model.Facility{
		{ID: "fac-1", Name: "WiFi"},
		{ID: "fac-2", Name: "AC"},
	}

	t.Run("cache miss falls through to repository", func(t *testing.T) {
		svc, mockRepo, mockCache := newFacilityService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil).
			Times(2)
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(15, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), params, gomock.Any()).
			Return(models, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Facilities, 2)
		assert.Equal(t, 15, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		assert.Equal(t, "WiFi", res.Facilities[0].Name)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		svc, _, mockCache := newFacilityService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				cached, ok := value.(*dto.GetFacilitiesResponse)
				assert.True(t, ok)
				cached.TotalData = 1
				cached.Facilities = []dto.FacilityResponse{{ID: "fac-1", Name: "WiFi"}}

				return nil
			})

		res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Facilities, 1)
		assert.Equal(t, 1, res.TotalData)
	})
}

func TestFacilityService_Get(t *testing.T) {
	t.Run("successful fetch", func(t *testing.T) {
		svc, mockRepo, mockCache := newFacilityService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), "facility:get:fac-1", gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Facility{ID: "fac-1", Name: "WiFi"}, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), "facility:get:fac-1", gomock.Any(), 3600).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "fac-1")

		assert.NoError(t, err)
		assert.Equal(t, "WiFi", res.Name)
	})

	t.Run("missing facility", func(t *testing.T) {
		svc, mockRepo, mockCache := newFacilityService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Facility{}, nil)

		_, err := svc.Get(context.Background(), "gone")

		assert.EqualError(t, err, "Facility not found")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestFacilityService_Update(t *testing.T) {
	req := dto.UpdateFacilityRequest{Name: "Parking"}

	t.Run("successful update", func(t *testing.T) {
		svc, mockRepo, mockCache := newFacilityService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "Parking", fields[model.FieldName])
				assert.Contains(t, fields, "updated_at")

				return nil
			})
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		assert.NoError(t, svc.Update(context.Background(), req, "fac-1"))
	})

	t.Run("missing facility", func(t *testing.T) {
		svc, mockRepo, _ := newFacilityService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(context.Background(), req, "gone")

		assert.EqualError(t, err, "Facility not found")
	})
}

func TestFacilityService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, mockRepo, mockCache := newFacilityService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		assert.NoError(t, svc.Delete(context.Background(), "fac-1"))
	})

	t.Run("missing facility", func(t *testing.T) {
		svc, mockRepo, _ := newFacilityService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "gone")

		assert.EqualError(t, err, "Facility not found")
	})
}
