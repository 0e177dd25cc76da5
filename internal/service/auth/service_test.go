package auth

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/constrack/backoffice-backend-go/internal/domain/auth"
	"github.com/constrack/backoffice-backend-go/internal/domain/user"
	"github.com/constrack/backoffice-backend-go/internal/pkg/jwt"
	"github.com/constrack/backoffice-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byID   map[string]user.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]user.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	for _, existing := range f.byID {
		if strings.EqualFold(existing.Email, u.Email) {
			return user.User{}, user.ErrEmailExists
		}
	}
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.byID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id string, role user.Role) error {
	u, ok := f.byID[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Role = role
	f.byID[id] = u
	return nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, id string, active bool) error {
	u, ok := f.byID[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.IsActive = active
	f.byID[id] = u
	return nil
}

func newAuthFixture(t *testing.T) (auth.AuthService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	jwtService := jwt.NewJWTService("test-secret-key", "1h", "168h")
	return NewAuthService(repo, jwtService), repo
}

func registerAdmin(t *testing.T, svc auth.AuthService) auth.UserResponse {
	t.Helper()
	created, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "admin@constrack.in",
		Password: "supersecret",
		FullName: "Site Admin",
		Role:     "admin",
	})
	require.NoError(t, err)
	return created
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)
	created := registerAdmin(t, svc)

	assert.Equal(t, "admin", created.Role)
	assert.True(t, created.IsActive)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@constrack.in",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, created.ID, resp.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)
	registerAdmin(t, svc)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@constrack.in",
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailIndistinguishable(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@constrack.in",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	svc, repo := newAuthFixture(t)
	created := registerAdmin(t, svc)

	require.NoError(t, repo.SetActive(context.Background(), created.ID, false))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@constrack.in",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, user.ErrUserInactive)
}

func TestRegister_DefaultsToStaff(t *testing.T) {
	svc, _ := newAuthFixture(t)

	created, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "clerk@constrack.in",
		Password: "password123",
		FullName: "Site Clerk",
	})
	require.NoError(t, err)
	assert.Equal(t, "staff", created.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)
	registerAdmin(t, svc)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "admin@constrack.in",
		Password: "anotherpass",
		FullName: "Second Admin",
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestRefresh_RoundTrip(t *testing.T) {
	svc, _ := newAuthFixture(t)
	registerAdmin(t, svc)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@constrack.in",
		Password: "supersecret",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc, _ := newAuthFixture(t)
	registerAdmin(t, svc)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@constrack.in",
		Password: "supersecret",
	})
	require.NoError(t, err)

	// An access token must not pass as a refresh token.
	_, err = svc.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestUpdateUserRole_InvalidRole(t *testing.T) {
	svc, _ := newAuthFixture(t)
	created := registerAdmin(t, svc)

	err := svc.UpdateUserRole(context.Background(), created.ID, "superuser")

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}

func TestUpdateUserRole_Valid(t *testing.T) {
	svc, repo := newAuthFixture(t)
	created := registerAdmin(t, svc)

	require.NoError(t, svc.UpdateUserRole(context.Background(), created.ID, "staff"))

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleStaff, stored.Role)
}
