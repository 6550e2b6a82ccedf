package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rajib3777/academia/api/middleware"
	"github.com/rajib3777/academia/internal/entity"
	"github.com/rajib3777/academia/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User, roleIDs []uuid.UUID) error {
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByMobile(ctx context.Context, mobileNumber string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]entity.User, error) {
	return nil, nil
}

func newTestUser(roles ...entity.RoleName) *entity.User {
	user := &entity.User{ID: uuid.New(), FullName: "Test User", IsActive: true}
	for _, name := range roles {
		user.Roles = append(user.Roles, entity.Role{ID: uuid.New(), Name: name})
	}
	return user
}

func doRequest(t *testing.T, auth middleware.AuthMiddleware, role entity.RoleName, token string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	e.GET("/protected", handler, auth.RequireAuth, middleware.RequireRole(role))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuthAndRole(t *testing.T) {
	t.Parallel()

	jwtManager := utils.JWTManager{Secret: []byte("test-secret")}
	admin := newTestUser(entity.RoleAdmin, entity.RoleTeacher)
	student := newTestUser(entity.RoleStudent)
	repo := &fakeUserRepo{users: map[uuid.UUID]*entity.User{
		admin.ID:   admin,
		student.ID: student,
	}}
	auth := middleware.AuthMiddleware{JWT: &jwtManager, Users: repo}

	adminToken, _, err := jwtManager.IssueTokenPair(admin.ID.String(), []string{"admin", "teacher"})
	if err != nil {
		t.Fatalf("IssueTokenPair() error: %v", err)
	}
	studentToken, _, err := jwtManager.IssueTokenPair(student.ID.String(), []string{"student"})
	if err != nil {
		t.Fatalf("IssueTokenPair() error: %v", err)
	}

	if rec := doRequest(t, auth, entity.RoleAdmin, adminToken); rec.Code != http.StatusOK {
		t.Fatalf("expected admin to pass, got status %d", rec.Code)
	}
	if rec := doRequest(t, auth, entity.RoleAdmin, studentToken); rec.Code != http.StatusForbidden {
		t.Fatalf("expected student to be forbidden, got status %d", rec.Code)
	}
	if rec := doRequest(t, auth, entity.RoleStudent, studentToken); rec.Code != http.StatusOK {
		t.Fatalf("expected student to reach a student route, got status %d", rec.Code)
	}
	if rec := doRequest(t, auth, entity.RoleAdmin, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected missing token to be unauthorized, got status %d", rec.Code)
	}
	if rec := doRequest(t, auth, entity.RoleAdmin, "not-a-token"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected a garbage token to be unauthorized, got status %d", rec.Code)
	}
}

func TestRequireAuthRejectsUnknownUser(t *testing.T) {
	t.Parallel()

	jwtManager := utils.JWTManager{Secret: []byte("test-secret")}
	repo := &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	auth := middleware.AuthMiddleware{JWT: &jwtManager, Users: repo}

	// Token is valid but the account is gone or deactivated.
	token, _, err := jwtManager.IssueTokenPair(uuid.New().String(), []string{"admin"})
	if err != nil {
		t.Fatalf("IssueTokenPair() error: %v", err)
	}
	if rec := doRequest(t, auth, entity.RoleAdmin, token); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected unknown user to be unauthorized, got status %d", rec.Code)
	}
}
