package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"kosan/config"
	"kosan/infras/kafka"
	kafkaMocks "kosan/infras/kafka/mocks"
	otelMocks "kosan/infras/otel/mocks"
	"kosan/internal/domains/kamar/mocks"
	"kosan/internal/domains/kamar/model"
	"kosan/internal/domains/kamar/model/dto"
	"kosan/internal/domains/kamar/service"
	kosMocks "kosan/internal/domains/kos/mocks"
	"kosan/shared/cache"
	cacheMocks "kosan/shared/cache/mocks"
	"kosan/shared/constant"
	gDto "kosan/shared/dto"
	"kosan/shared/failure"
)

type kamarServiceMocks struct {
	repo  *mocks.MockKamar
	kos   *kosMocks.MockKos
	kafka *kafkaMocks.MockClient
	cache *cacheMocks.MockRedisCache
}

func newKamarService(t *testing.T) (service.Kamar, kamarServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := kamarServiceMocks{
		repo:  mocks.NewMockKamar(ctrl),
		kos:   kosMocks.NewMockKos(ctrl),
		kafka: kafkaMocks.NewMockClient(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.BookingEventsTopic = "booking-events"

	svc := service.New(m.repo, m.kos, m.kafka, cfg, m.cache, otelMocks.NewOtel())

	return svc, m
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestKamarService_Rent(t *testing.T) {
	duration := 6
	req := dto.RentRequest{
		KosanID:   "kos-1",
		Duration:  &duration,
		StartDate: "2026-09-01",
	}

	t.Run("books the first available kamar", func(t *testing.T) {
		svc, m := newKamarService(t)

		m.kos.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Kamar{ID: "kamar-1", KosanID: "kos-1", Status: constant.KamarStatusAvailable}, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "user-1", fields[model.FieldUserID])
				assert.Equal(t, constant.KamarStatusBooked, fields[model.FieldStatus])
				assert.Equal(t, 6, fields[model.FieldDuration])
				assert.Contains(t, fields, model.FieldStartDate)
				assert.Contains(t, fields, model.FieldEndDate)

				return nil
			})
		m.repo.EXPECT().
			GetRent(gomock.Any(), gomock.Any()).
			Return(model.RentView{
				ID:        "kamar-1",
				KosanID:   "kos-1",
				UserID:    strPtr("user-1"),
				NoKamar:   "K1",
				Status:    constant.KamarStatusBooked,
				Duration:  &duration,
				KosName:   "Kos Melati",
				KosPrice:  1500000,
				UserName:  strPtr("Budi"),
				UserEmail: strPtr("budi@example.com"),
			}, nil)
		m.kafka.EXPECT().
			SendMessages(gomock.Any(), "booking-events", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				if assert.Len(t, messages, 1) {
					assert.Equal(t, "kamar-1", messages[0].Key)

					event, ok := messages[0].Value.(dto.BookingEvent)
					if assert.True(t, ok) {
						assert.Equal(t, "rent.created", event.Event)
						assert.Equal(t, "kos-1", event.KosanID)
					}
				}

				return nil
			}).
			AnyTimes()
		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Rent(context.Background(), req, "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "kamar-1", res.ID)
		assert.Equal(t, constant.KamarStatusBooked, res.Status)
		assert.Equal(t, "Kos Melati", res.Kos.Name)
		if assert.NotNil(t, res.User) {
			assert.Equal(t, "Budi", res.User.Name)
		}
	})

	t.Run("unknown kos", func(t *testing.T) {
		svc, m := newKamarService(t)

		m.kos.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Rent(context.Background(), req, "user-1")

		assert.EqualError(t, err, "Kos not found")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("no available kamar", func(t *testing.T) {
		svc, m := newKamarService(t)

		m.kos.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Kamar{}, nil)

		_, err := svc.Rent(context.Background(), req, "user-1")

		assert.EqualError(t, err, "No available kamar")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("malformed start date", func(t *testing.T) {
		svc, m := newKamarService(t)

		bad := req
		bad.StartDate = "01-09-2026"

		m.kos.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Kamar{ID: "kamar-1"}, nil)

		_, err := svc.Rent(context.Background(), bad, "user-1")

		assert.EqualError(t, err, "Invalid start date")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestKamarService_Get(t *testing.T) {
	rent := model.RentView{
		ID:      "kamar-1",
		KosanID: "kos-1",
		UserID:  strPtr("user-1"),
		Status:  constant.KamarStatusBooked,
	}

	tests := []struct {
		name    string
		userID  string
		role    string
		stored  model.RentView
		wantErr bool
	}{
		{
			name:   "owner can read own rent",
			userID: "user-1",
			role:   constant.RoleUser,
			stored: rent,
		},
		{
			name:   "admin can read any rent",
			userID: "admin-1",
			role:   constant.RoleAdmin,
			stored: rent,
		},
		{
			name:    "other users get not found",
			userID:  "user-2",
			role:    constant.RoleUser,
			stored:  rent,
			wantErr: true,
		},
		{
			name:    "missing rent",
			userID:  "user-1",
			role:    constant.RoleUser,
			stored:  model.RentView{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newKamarService(t)

			m.repo.EXPECT().
				GetRent(gomock.Any(), gomock.Any()).
				Return(tt.stored, nil)

			_, err := svc.Get(context.Background(), "kamar-1", tt.userID, tt.role)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, "Rent not found/no access to rent")
			assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		})
	}
}

func TestKamarService_GetSelf(t *testing.T) {
	svc, m := newKamarService(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)
	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)
	m.repo.EXPECT().
		GetAllRent(gomock.Any(), params, gomock.Any()).
		Return([]model.RentView{{ID: "kamar-1", KosanID: "kos-1", UserID: strPtr("user-1"), Status: constant.KamarStatusBooked}}, nil)
	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
		Return(nil).
		AnyTimes()

	res, err := svc.GetSelf(context.Background(), params, "user-1")

	assert.NoError(t, err)
	assert.Len(t, res.Rents, 1)
	assert.Equal(t, 1, res.TotalData)
}

func TestKamarService_AdminGet(t *testing.T) {
	t.Run("missing rent", func(t *testing.T) {
		svc, m := newKamarService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), "rent:get:gone", gomock.Any()).
			Return(cache.Nil)
		m.repo.EXPECT().
			GetRent(gomock.Any(), gomock.Any()).
			Return(model.RentView{}, nil)

		_, err := svc.AdminGet(context.Background(), "gone")

		assert.EqualError(t, err, "Rent not found")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("successful fetch", func(t *testing.T) {
		svc, m := newKamarService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), "rent:get:kamar-1", gomock.Any()).
			Return(cache.Nil)
		m.repo.EXPECT().
			GetRent(gomock.Any(), gomock.Any()).
			Return(model.RentView{ID: "kamar-1", KosanID: "kos-1", Status: constant.KamarStatusBooked}, nil)
		m.cache.EXPECT().
			Save(gomock.Any(), "rent:get:kamar-1", gomock.Any(), 3600).
			Return(nil).
			AnyTimes()

		res, err := svc.AdminGet(context.Background(), "kamar-1")

		assert.NoError(t, err)
		assert.Equal(t, "kamar-1", res.ID)
		assert.Nil(t, res.User)
	})
}

func TestKamarService_UpdateStatus(t *testing.T) {
	t.Run("releasing a kamar clears the tenant", func(t *testing.T) {
		svc, m := newKamarService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Kamar{ID: "kamar-1", KosanID: "kos-1", UserID: strPtr("user-1"), Status: constant.KamarStatusBooked, Duration: intPtr(6)}, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, constant.KamarStatusAvailable, fields[model.FieldStatus])
				assert.Nil(t, fields[model.FieldUserID])
				assert.Nil(t, fields[model.FieldDuration])
				assert.Nil(t, fields[model.FieldStartDate])
				assert.Nil(t, fields[model.FieldEndDate])

				return nil
			})
		m.repo.EXPECT().
			GetRent(gomock.Any(), gomock.Any()).
			Return(model.RentView{ID: "kamar-1", KosanID: "kos-1", Status: constant.KamarStatusAvailable}, nil)
		m.kafka.EXPECT().
			SendMessages(gomock.Any(), "booking-events", gomock.Any()).
			Return(nil).
			AnyTimes()
		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.UpdateStatus(context.Background(), dto.UpdateRentStatusRequest{Status: constant.KamarStatusAvailable}, "kamar-1")

		assert.NoError(t, err)
	})

	t.Run("booking keeps the tenant fields", func(t *testing.T) {
		svc, m := newKamarService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Kamar{ID: "kamar-1", KosanID: "kos-1"}, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, constant.KamarStatusBooked, fields[model.FieldStatus])
				assert.NotContains(t, fields, model.FieldUserID)

				return nil
			})
		m.repo.EXPECT().
			GetRent(gomock.Any(), gomock.Any()).
			Return(model.RentView{ID: "kamar-1", KosanID: "kos-1", Status: constant.KamarStatusBooked}, nil)
		m.kafka.EXPECT().
			SendMessages(gomock.Any(), "booking-events", gomock.Any()).
			Return(nil).
			AnyTimes()
		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.UpdateStatus(context.Background(), dto.UpdateRentStatusRequest{Status: constant.KamarStatusBooked}, "kamar-1")

		assert.NoError(t, err)
	})

	t.Run("missing kamar", func(t *testing.T) {
		svc, m := newKamarService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Kamar{}, nil)

		err := svc.UpdateStatus(context.Background(), dto.UpdateRentStatusRequest{Status: constant.KamarStatusAvailable}, "gone")

		assert.EqualError(t, err, "Rent not found")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
