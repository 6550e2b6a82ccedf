package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rajib3777/academia/internal/cache"
	"github.com/rajib3777/academia/internal/dto"
	"github.com/rajib3777/academia/internal/entity"
	"github.com/rajib3777/academia/internal/service"
	"github.com/rajib3777/academia/internal/utils"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	users       map[string]*entity.User
	lastRoleIDs []uuid.UUID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User, roleIDs []uuid.UUID) error {
	user.ID = uuid.New()
	f.lastRoleIDs = roleIDs
	f.users[user.MobileNumber] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByMobile(ctx context.Context, mobileNumber string) (*entity.User, error) {
	user, ok := f.users[mobileNumber]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (f *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]entity.User, error) {
	var out []entity.User
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

type fakeRoleRepo struct {
	roles []entity.Role
	calls int
}

func (f *fakeRoleRepo) ListAll(ctx context.Context) ([]entity.Role, error) {
	f.calls++
	return f.roles, nil
}

type fakeRoleCache struct {
	stored map[string]uuid.UUID
	sets   int
}

func (f *fakeRoleCache) GetRoleMap(ctx context.Context) (map[string]uuid.UUID, error) {
	return f.stored, nil
}

func (f *fakeRoleCache) SetRoleMap(ctx context.Context, roles map[string]uuid.UUID) error {
	f.stored = roles
	f.sets++
	return nil
}

type fakePhoneVerifier struct {
	err error
}

func (f *fakePhoneVerifier) RequireVerifiedPhone(ctx context.Context, phoneNumber string) error {
	return f.err
}

func allRoles() []entity.Role {
	names := []entity.RoleName{
		entity.RoleAdmin, entity.RoleTeacher, entity.RoleStudent, entity.RoleStaff, entity.RoleAcademy,
	}
	roles := make([]entity.Role, 0, len(names))
	for _, name := range names {
		roles = append(roles, entity.Role{ID: uuid.New(), Name: name})
	}
	return roles
}

func newAccountService(users *fakeUserRepo, roles *fakeRoleRepo, roleCache *fakeRoleCache, phones *fakePhoneVerifier) *service.AccountService {
	manager := utils.JWTManager{Secret: []byte("test-secret"), Issuer: "test"}
	var rc cache.RoleCache
	if roleCache != nil {
		rc = roleCache
	}
	return service.NewAccountService(users, roles, rc, phones, service.BcryptPasswordHasher{Cost: 4}, manager)
}

func registerInput() dto.RegisterRequest {
	return dto.RegisterRequest{
		FullName:     "Rahim Uddin",
		MobileNumber: testPhone,
		Email:        "rahim@example.com",
		Password:     "sup3rsecret",
		Roles:        "teacher,staff",
	}
}

func TestRegister_CreatesUserWithRoles(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	roles := &fakeRoleRepo{roles: allRoles()}
	svc := newAccountService(users, roles, nil, &fakePhoneVerifier{})

	user, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if user.ID == uuid.Nil {
		t.Fatal("expected a user id")
	}
	if user.PasswordHash == "sup3rsecret" {
		t.Fatal("password must be hashed")
	}
	if len(users.lastRoleIDs) != 2 {
		t.Fatalf("expected 2 role ids, got %d", len(users.lastRoleIDs))
	}
	if user.Email == nil || *user.Email != "rahim@example.com" {
		t.Fatalf("expected email to be kept, got %v", user.Email)
	}
}

func TestRegister_RequiresVerifiedPhone(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	roles := &fakeRoleRepo{roles: allRoles()}
	svc := newAccountService(users, roles, nil, &fakePhoneVerifier{err: service.ErrPhoneNotVerified})

	_, err := svc.Register(context.Background(), registerInput())
	if !errors.Is(err, service.ErrPhoneNotVerified) {
		t.Fatalf("expected ErrPhoneNotVerified, got %v", err)
	}
	if len(users.users) != 0 {
		t.Fatal("no user may be created for an unverified phone")
	}
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	t.Parallel()

	svc := newAccountService(newFakeUserRepo(), &fakeRoleRepo{roles: allRoles()}, nil, &fakePhoneVerifier{})

	input := registerInput()
	input.Roles = "teacher,principal"
	_, err := svc.Register(context.Background(), input)
	if !errors.Is(err, service.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if !strings.Contains(err.Error(), "principal") {
		t.Fatalf("expected the offending role in the error, got %q", err.Error())
	}
}

func TestRegister_RejectsConflictingRoles(t *testing.T) {
	t.Parallel()

	svc := newAccountService(newFakeUserRepo(), &fakeRoleRepo{roles: allRoles()}, nil, &fakePhoneVerifier{})

	for _, combo := range []string{"admin,student", "academy,staff", "teacher,student", "admin,academy"} {
		input := registerInput()
		input.Roles = combo
		_, err := svc.Register(context.Background(), input)
		if !errors.Is(err, service.ErrConflictingRoles) {
			t.Fatalf("expected ErrConflictingRoles for %q, got %v", combo, err)
		}
	}
}

func TestRegister_RejectsDuplicateMobile(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	svc := newAccountService(users, &fakeRoleRepo{roles: allRoles()}, nil, &fakePhoneVerifier{})
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerInput()); err != nil {
		t.Fatalf("first Register() error: %v", err)
	}
	_, err := svc.Register(ctx, registerInput())
	if !errors.Is(err, service.ErrMobileAlreadyTaken) {
		t.Fatalf("expected ErrMobileAlreadyTaken, got %v", err)
	}
}

func TestRegister_PopulatesRoleCacheOnMiss(t *testing.T) {
	t.Parallel()

	roleCache := &fakeRoleCache{}
	roles := &fakeRoleRepo{roles: allRoles()}
	svc := newAccountService(newFakeUserRepo(), roles, roleCache, &fakePhoneVerifier{})
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerInput()); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if roleCache.sets != 1 || roles.calls != 1 {
		t.Fatalf("expected one cache fill from one table read, got sets=%d reads=%d", roleCache.sets, roles.calls)
	}

	// A second registration is served from the cache.
	input := registerInput()
	input.MobileNumber = "+8801987654321"
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("second Register() error: %v", err)
	}
	if roles.calls != 1 {
		t.Fatalf("expected the role table to be read once, got %d", roles.calls)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	svc := newAccountService(users, &fakeRoleRepo{roles: allRoles()}, nil, &fakePhoneVerifier{})
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerInput()); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	_, err := svc.Login(ctx, dto.LoginRequest{MobileNumber: "+8801111111111", Password: "sup3rsecret"})
	if !errors.Is(err, service.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	_, err = svc.Login(ctx, dto.LoginRequest{MobileNumber: testPhone, Password: "wrongpass"})
	if !errors.Is(err, service.ErrIncorrectPassword) {
		t.Fatalf("expected ErrIncorrectPassword, got %v", err)
	}

	result, err := svc.Login(ctx, dto.LoginRequest{MobileNumber: testPhone, Password: "sup3rsecret"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if result.Access == "" || result.Refresh == "" {
		t.Fatal("expected both access and refresh tokens")
	}
	if result.Phone != testPhone || result.Name != "Rahim Uddin" {
		t.Fatalf("unexpected login payload: %+v", result)
	}

	manager := utils.JWTManager{Secret: []byte("test-secret"), Issuer: "test"}
	claims, err := manager.ParseAccessToken(result.Access)
	if err != nil {
		t.Fatalf("access token does not parse: %v", err)
	}
	if claims.UserID != result.UserID {
		t.Fatalf("expected subject %s, got %s", result.UserID, claims.UserID)
	}
	if _, err := manager.ParseAccessToken(result.Refresh); err == nil {
		t.Fatal("a refresh token must not be accepted as an access token")
	}
}
