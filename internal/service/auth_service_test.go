package service

import (
	"context"
	"testing"

	"rebowork/internal/config"
	"rebowork/internal/dto"
	"rebowork/internal/model"
	"rebowork/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func intPtr(i int) *int { return &i }

func newAuthFixture() (*fixture, AuthService, *token.Manager) {
	f := newFixture()
	tm := token.NewManager("test_jwt_secret_32_chars_minimum!")
	cfg := &config.Config{JWTExpirationHours: 3, JWTRefreshHours: 24}
	svc := NewAuthService(f.users, tm, cfg, f.clock)
	svc.(*authService).cost = bcrypt.MinCost
	return f, svc, tm
}

func TestAuth_CreateUserAndLogin(t *testing.T) {
	_, svc, tm := newAuthFixture()
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, dto.CreateUserRequest{Username: "boss", Password: "secret1", StatusIndex: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, "director", u.Role)
	assert.Equal(t, 1, u.StatusIndex)

	resp, err := svc.Login(ctx, dto.LoginRequest{Username: "boss", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3*3600, resp.ExpiresIn)

	claims, err := tm.Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "boss", claims.Username)
	assert.Equal(t, model.RoleDirector, claims.StatusIndex)
}

func TestAuth_PasswordIsHashed(t *testing.T) {
	f, svc, _ := newAuthFixture()
	ctx := context.Background()
	_, err := svc.CreateUser(ctx, dto.CreateUserRequest{Username: "boss", Password: "secret1", StatusIndex: intPtr(0)})
	require.NoError(t, err)

	stored, err := f.users.FindByUsername(ctx, "boss")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret1")))
}

func TestAuth_LoginFailures(t *testing.T) {
	_, svc, _ := newAuthFixture()
	ctx := context.Background()
	_, err := svc.CreateUser(ctx, dto.CreateUserRequest{Username: "boss", Password: "secret1", StatusIndex: intPtr(0)})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "boss", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "nobody", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuth_DuplicateUsername(t *testing.T) {
	_, svc, _ := newAuthFixture()
	ctx := context.Background()
	_, err := svc.CreateUser(ctx, dto.CreateUserRequest{Username: "boss", Password: "secret1", StatusIndex: intPtr(0)})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, dto.CreateUserRequest{Username: "boss", Password: "other1", StatusIndex: intPtr(3)})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	users, _ := svc.ListUsers(ctx)
	assert.Len(t, users, 1)
}

func TestAuth_RefreshIssuesNewPairForLiveAccount(t *testing.T) {
	_, svc, _ := newAuthFixture()
	ctx := context.Background()
	_, err := svc.CreateUser(ctx, dto.CreateUserRequest{Username: "boss", Password: "secret1", StatusIndex: intPtr(2)})
	require.NoError(t, err)
	login, err := svc.Login(ctx, dto.LoginRequest{Username: "boss", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, "boss", dto.UpdateUserRequest{StatusIndex: intPtr(1)})
	require.NoError(t, err)

	pair, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "director", pair.User.Role)

	_, err = svc.Refresh(ctx, login.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefresh)

	require.NoError(t, svc.DeleteUser(ctx, "boss"))
	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestAuth_UpdateUserRehashesPassword(t *testing.T) {
	_, svc, _ := newAuthFixture()
	ctx := context.Background()
	_, err := svc.CreateUser(ctx, dto.CreateUserRequest{Username: "boss", Password: "secret1", StatusIndex: intPtr(3)})
	require.NoError(t, err)

	pw := "newpass"
	u, err := svc.UpdateUser(ctx, "boss", dto.UpdateUserRequest{Password: &pw})
	require.NoError(t, err)
	assert.Equal(t, "user", u.Role, "role unchanged when not supplied")

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "boss", Password: "newpass"})
	assert.NoError(t, err)
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "boss", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.UpdateUser(ctx, "ghost", dto.UpdateUserRequest{Password: &pw})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuth_LookupAndDelete(t *testing.T) {
	_, svc, _ := newAuthFixture()
	ctx := context.Background()
	_, err := svc.CreateUser(ctx, dto.CreateUserRequest{Username: "boss", Password: "secret1", StatusIndex: intPtr(0)})
	require.NoError(t, err)

	u, err := svc.Lookup(ctx, "boss")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, u.StatusIndex)

	got, err := svc.GetUser(ctx, "boss")
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Role)

	require.NoError(t, svc.DeleteUser(ctx, "boss"))
	assert.ErrorIs(t, svc.DeleteUser(ctx, "boss"), ErrUserNotFound)
	_, err = svc.Lookup(ctx, "boss")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
