package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workbridge/hrms-backend-go/internal/domain/auth"
	"github.com/workbridge/hrms-backend-go/internal/domain/user"
	"github.com/workbridge/hrms-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]user.User // by email
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func newAuthFixture(t *testing.T) auth.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	employeeID := "emp-1"
	repo := &fakeUserRepo{users: map[string]user.User{
		"ana@workbridge.test": {
			ID:           "user-1",
			CompanyID:    "company-1",
			EmployeeID:   &employeeID,
			Email:        "ana@workbridge.test",
			PasswordHash: string(hash),
			IsAdmin:      true,
		},
	}}
	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")

	return NewAuthService(repo, jwtService)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()

		svc := newAuthFixture(t)
		resp, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "ana@workbridge.test",
			Password: "secret-password",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "user-1", resp.User.ID)
		assert.True(t, resp.User.IsAdmin)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		svc := newAuthFixture(t)
		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "ana@workbridge.test",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		t.Parallel()

		svc := newAuthFixture(t)
		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "nobody@workbridge.test",
			Password: "secret-password",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()

		svc := newAuthFixture(t)
		_, err := svc.Login(context.Background(), auth.LoginRequest{})
		assert.Error(t, err)
	})
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	t.Run("re-issues both tokens", func(t *testing.T) {
		t.Parallel()

		svc := newAuthFixture(t)
		login, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "ana@workbridge.test",
			Password: "secret-password",
		})
		require.NoError(t, err)

		resp, err := svc.Refresh(context.Background(), login.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		t.Parallel()

		svc := newAuthFixture(t)
		login, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "ana@workbridge.test",
			Password: "secret-password",
		})
		require.NoError(t, err)

		_, err = svc.Refresh(context.Background(), login.AccessToken)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()

		svc := newAuthFixture(t)
		_, err := svc.Refresh(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
