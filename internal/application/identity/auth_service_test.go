package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/identity"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/infrastructure/auth"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/infrastructure/config"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/testsupport"
)

func newTestAuthService(userRepo *testsupport.MockUserRepository) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		RefreshSecret:          "test-refresh-secret-key-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
		MaxRefreshCount:        10,
	})
	return NewAuthService(userRepo, jwtService, DefaultAuthServiceConfig(), zap.NewNop())
}

func newTestUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("Chilenje Hardware", "B. Mbewe", "owner@example.com", "+260971234567", "S3cret-pass")
	require.NoError(t, err)
	user.ClearDomainEvents()
	return user
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account and returns tokens", func(t *testing.T) {
		userRepo := new(testsupport.MockUserRepository)
		svc := newTestAuthService(userRepo)

		userRepo.On("ExistsByEmail", ctx, "owner@example.com").Return(false, nil)
		userRepo.On("ExistsByPhone", ctx, "+260971234567").Return(false, nil)

		var created *identity.User
		userRepo.On("Create", ctx, mock.AnythingOfType("*identity.User")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*identity.User)
			}).
			Return(nil)

		resp, err := svc.Register(ctx, RegisterRequest{
			BusinessName: "Chilenje Hardware",
			OwnerName:    "B. Mbewe",
			Email:        "owner@example.com",
			Phone:        "+260971234567",
			Password:     "S3cret-pass",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created.ID, resp.User.ID)
		assert.Equal(t, "Chilenje Hardware", resp.User.BusinessName)
		assert.Equal(t, "ZMW", resp.User.Currency)
		assert.NotEmpty(t, resp.Token.AccessToken)
		assert.NotEmpty(t, resp.Token.RefreshToken)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		userRepo := new(testsupport.MockUserRepository)
		svc := newTestAuthService(userRepo)

		userRepo.On("ExistsByEmail", ctx, "owner@example.com").Return(true, nil)

		_, err := svc.Register(ctx, RegisterRequest{
			BusinessName: "Chilenje Hardware",
			Email:        "owner@example.com",
			Password:     "S3cret-pass",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects duplicate phone", func(t *testing.T) {
		userRepo := new(testsupport.MockUserRepository)
		svc := newTestAuthService(userRepo)

		userRepo.On("ExistsByPhone", ctx, "+260971234567").Return(true, nil)

		_, err := svc.Register(ctx, RegisterRequest{
			BusinessName: "Chilenje Hardware",
			Phone:        "+260971234567",
			Password:     "S3cret-pass",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PHONE_TAKEN", domainErr.Code)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return tokens", func(t *testing.T) {
		userRepo := new(testsupport.MockUserRepository)
		svc := newTestAuthService(userRepo)
		user := newTestUser(t)

		userRepo.On("FindByIdentifier", ctx, "owner@example.com").Return(user, nil)
		userRepo.On("Update", ctx, user).Return(nil)

		resp, err := svc.Login(ctx, LoginRequest{
			Identifier: "owner@example.com",
			Password:   "S3cret-pass",
			IP:         "10.0.0.1",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token.AccessToken)
		assert.Equal(t, "Bearer", resp.Token.TokenType)
		require.NotNil(t, user.LastLoginAt)
		assert.Equal(t, "10.0.0.1", user.LastLoginIP)
		assert.Zero(t, user.FailedAttempts)
	})

	t.Run("unknown identifier returns invalid credentials", func(t *testing.T) {
		userRepo := new(testsupport.MockUserRepository)
		svc := newTestAuthService(userRepo)

		userRepo.On("FindByIdentifier", ctx, "missing@example.com").Return(nil, shared.ErrNotFound)

		_, err := svc.Login(ctx, LoginRequest{Identifier: "missing@example.com", Password: "whatever"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("wrong password records the failure", func(t *testing.T) {
		userRepo := new(testsupport.MockUserRepository)
		svc := newTestAuthService(userRepo)
		user := newTestUser(t)

		userRepo.On("FindByIdentifier", ctx, "owner@example.com").Return(user, nil)
		userRepo.On("Update", ctx, user).Return(nil)

		_, err := svc.Login(ctx, LoginRequest{Identifier: "owner@example.com", Password: "wrong"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
		assert.Equal(t, 1, user.FailedAttempts)
	})

	t.Run("account locks after max failed attempts", func(t *testing.T) {
		userRepo := new(testsupport.MockUserRepository)
		svc := newTestAuthService(userRepo)
		user := newTestUser(t)
		user.FailedAttempts = 4

		userRepo.On("FindByIdentifier", ctx, "owner@example.com").Return(user, nil)
		userRepo.On("Update", ctx, user).Return(nil)

		_, err := svc.Login(ctx, LoginRequest{Identifier: "owner@example.com", Password: "wrong"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_LOCKED", domainErr.Code)
		assert.True(t, user.IsLocked())
	})

	t.Run("locked account cannot log in even with right password", func(t *testing.T) {
		userRepo := new(testsupport.MockUserRepository)
		svc := newTestAuthService(userRepo)
		user := newTestUser(t)
		until := time.Now().Add(10 * time.Minute)
		user.Status = identity.UserStatusLocked
		user.LockedUntil = &until

		userRepo.On("FindByIdentifier", ctx, "owner@example.com").Return(user, nil)

		_, err := svc.Login(ctx, LoginRequest{Identifier: "owner@example.com", Password: "S3cret-pass"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_LOCKED", domainErr.Code)
	})

	t.Run("deactivated account is rejected", func(t *testing.T) {
		userRepo := new(testsupport.MockUserRepository)
		svc := newTestAuthService(userRepo)
		user := newTestUser(t)
		require.NoError(t, user.Deactivate())

		userRepo.On("FindByIdentifier", ctx, "owner@example.com").Return(user, nil)

		_, err := svc.Login(ctx, LoginRequest{Identifier: "owner@example.com", Password: "S3cret-pass"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_DEACTIVATED", domainErr.Code)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("valid refresh token issues a new pair", func(t *testing.T) {
		userRepo := new(testsupport.MockUserRepository)
		svc := newTestAuthService(userRepo)
		user := newTestUser(t)

		pair, err := svc.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			UserID:       user.ID,
			BusinessName: user.BusinessName,
		})
		require.NoError(t, err)

		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		resp, err := svc.Refresh(ctx, RefreshRequest{RefreshToken: pair.RefreshToken})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEqual(t, pair.RefreshToken, resp.RefreshToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		userRepo := new(testsupport.MockUserRepository)
		svc := newTestAuthService(userRepo)

		_, err := svc.Refresh(ctx, RefreshRequest{RefreshToken: "garbage"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
	})

	t.Run("deactivated account cannot refresh", func(t *testing.T) {
		userRepo := new(testsupport.MockUserRepository)
		svc := newTestAuthService(userRepo)
		user := newTestUser(t)

		pair, err := svc.jwtService.GenerateTokenPair(auth.GenerateTokenInput{UserID: user.ID})
		require.NoError(t, err)
		require.NoError(t, user.Deactivate())

		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		_, err = svc.Refresh(ctx, RefreshRequest{RefreshToken: pair.RefreshToken})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_DEACTIVATED", domainErr.Code)
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("updates provided fields only", func(t *testing.T) {
		userRepo := new(testsupport.MockUserRepository)
		svc := newTestAuthService(userRepo)
		user := newTestUser(t)

		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		userRepo.On("Update", ctx, user).Return(nil)

		newName := "Chilenje Hardware & Tools"
		newType := "retail"
		resp, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileRequest{
			BusinessName: &newName,
			BusinessType: &newType,
		})

		require.NoError(t, err)
		assert.Equal(t, "Chilenje Hardware & Tools", resp.BusinessName)
		assert.Equal(t, "retail", resp.BusinessType)
		assert.Equal(t, "owner@example.com", resp.Email)
	})

	t.Run("rejects email already in use", func(t *testing.T) {
		userRepo := new(testsupport.MockUserRepository)
		svc := newTestAuthService(userRepo)
		user := newTestUser(t)

		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		userRepo.On("ExistsByEmail", ctx, "taken@example.com").Return(true, nil)

		taken := "taken@example.com"
		_, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileRequest{Email: &taken})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("changes password with correct old password", func(t *testing.T) {
		userRepo := new(testsupport.MockUserRepository)
		svc := newTestAuthService(userRepo)
		user := newTestUser(t)

		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		userRepo.On("Update", ctx, user).Return(nil)

		err := svc.ChangePassword(ctx, user.ID, ChangePasswordRequest{
			OldPassword: "S3cret-pass",
			NewPassword: "N3w-secret-pass",
		})

		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("N3w-secret-pass"))
	})

	t.Run("rejects wrong old password", func(t *testing.T) {
		userRepo := new(testsupport.MockUserRepository)
		svc := newTestAuthService(userRepo)
		user := newTestUser(t)

		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		err := svc.ChangePassword(ctx, user.ID, ChangePasswordRequest{
			OldPassword: "wrong",
			NewPassword: "N3w-secret-pass",
		})

		require.Error(t, err)
		assert.True(t, user.VerifyPassword("S3cret-pass"))
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
