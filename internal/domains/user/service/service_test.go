package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"kosan/config"
	jwtMocks "kosan/infras/jwt/mocks"
	"kosan/infras/otel/mocks"
	userMocks "kosan/internal/domains/user/mocks"
	"kosan/internal/domains/user/model"
	"kosan/internal/domains/user/model/dto"
	"kosan/internal/domains/user/service"
	"kosan/shared/constant"
	gDto "kosan/shared/dto"
	"kosan/shared/failure"
	"kosan/shared/password"
)

func newUserService(t *testing.T) (service.User, *userMocks.MockUser, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.BcryptCost = bcrypt.MinCost

	return service.New(mockRepo, cfg, mockOtel, mockJWT), mockRepo, mockJWT
}

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func(repo *userMocks.MockUser)
		wantErr   string
		wantCode  int
	}{
		{
			name: "successful registration",
			req: dto.RegisterRequest{
				Name:        "Budi",
				Email:       "budi@example.com",
				Password:    "secret123",
				Role:        constant.RoleUser,
				PhoneNumber: "08123456789",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) error {
						assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
						assert.NoError(t, password.Verify("secret123", user.Password))

						return nil
					})
			},
		},
		{
			name: "duplicate email is rejected",
			req: dto.RegisterRequest{
				Name:        "Budi",
				Email:       "budi@example.com",
				Password:    "secret123",
				Role:        constant.RoleUser,
				PhoneNumber: "08123456789",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  "User with that email already exists",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: dto.RegisterRequest{
				Name:        "Budi",
				Email:       "budi@example.com",
				Password:    "secret123",
				Role:        constant.RoleUser,
				PhoneNumber: "08123456789",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr:  "failed to check if user exists: database error",
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newUserService(t)
			tt.setupMock(mockRepo)

			err := svc.Register(context.Background(), tt.req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestUserService_Login(t *testing.T) {
	hashed, err := password.Hash("secret123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	storedUser := model.User{
		ID:       "user-1",
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: hashed,
		Role:     constant.RoleUser,
	}

	t.Run("successful login", func(t *testing.T) {
		svc, mockRepo, mockJWT := newUserService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedUser, nil)
		mockJWT.EXPECT().
			GenerateToken("user-1", "budi@example.com", constant.RoleUser).
			Return("signed-token", nil)

		res, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "budi@example.com",
			Password: "secret123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", res.AccessToken)
		assert.Equal(t, constant.RoleUser, res.Role)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		_, unknownEmailErr := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedUser, nil)

		_, wrongPasswordErr := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "budi@example.com",
			Password: "not-the-password",
		})

		assert.EqualError(t, unknownEmailErr, "Invalid email or password")
		assert.EqualError(t, wrongPasswordErr, "Invalid email or password")
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(unknownEmailErr))
		assert.Equal(t, failure.GetCode(unknownEmailErr), failure.GetCode(wrongPasswordErr))
	})
}

func TestUserService_Profile(t *testing.T) {
	t.Run("successful fetch", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{
				ID:          "user-1",
				Name:        "Budi",
				Email:       "budi@example.com",
				Role:        constant.RoleUser,
				PhoneNumber: "08123456789",
			}, nil)

		res, err := svc.Profile(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "Budi", res.Name)
		assert.Equal(t, "budi@example.com", res.Email)
	})

	t.Run("missing user", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		_, err := svc.Profile(context.Background(), "gone")

		assert.EqualError(t, err, "User not found")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	req := dto.UpdateProfileRequest{
		Name:        "Budi Baru",
		Password:    "new-secret",
		PhoneNumber: "08987654321",
	}

	t.Run("successful update rehashes password", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{ID: "user-1"}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				hashed, ok := fields[model.FieldPassword].(string)
				assert.True(t, ok, "password field must be present")
				assert.NotEqual(t, "new-secret", hashed)
				assert.NoError(t, password.Verify("new-secret", hashed))
				assert.Equal(t, "Budi Baru", fields[model.FieldName])

				return nil
			})

		assert.NoError(t, svc.UpdateProfile(context.Background(), req, "user-1"))
	})

	t.Run("missing user", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		err := svc.UpdateProfile(context.Background(), req, "gone")

		assert.EqualError(t, err, "User not found")
	})
}

func TestUserService_GetAll(t *testing.T) {
	t.Run("paginated list without passwords", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(12, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.User{
				{ID: "user-1", Name: "Budi", Email: "budi@example.com", Role: constant.RoleUser, Password: "hash-1"},
				{ID: "user-2", Name: "Siti", Email: "siti@example.com", Role: constant.RoleAdmin, Password: "hash-2"},
			}, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 5}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 12, res.TotalData)
		assert.Equal(t, 3, res.TotalPage)
		assert.Len(t, res.Users, 2)
		assert.Equal(t, "budi@example.com", res.Users[0].Email)
		assert.Equal(t, constant.RoleAdmin, res.Users[1].Role)
	})

	t.Run("count error", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 5}, gDto.FilterGroup{})

		assert.EqualError(t, err, "failed to count users: database error")
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "user-1"))
	})

	t.Run("missing user", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "gone")

		assert.EqualError(t, err, "User not found")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
