package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rajib3777/academia/internal/cache"
	"github.com/rajib3777/academia/internal/dto"
	"github.com/rajib3777/academia/internal/entity"
	"github.com/rajib3777/academia/internal/repository"
	"github.com/rajib3777/academia/internal/utils"

	"github.com/google/uuid"
)

type TokenIssuer interface {
	IssueTokenPair(userID string, roles []string) (access string, refresh string, err error)
}

// PhoneVerifier gates registration on a previously verified phone number.
type PhoneVerifier interface {
	RequireVerifiedPhone(ctx context.Context, phoneNumber string) error
}

type AccountService struct {
	users     repository.UserRepository
	roles     repository.RoleRepository
	roleCache cache.RoleCache
	phones    PhoneVerifier
	hasher    PasswordHasher
	tokens    TokenIssuer
}

func NewAccountService(
	users repository.UserRepository,
	roles repository.RoleRepository,
	roleCache cache.RoleCache,
	phones PhoneVerifier,
	hasher PasswordHasher,
	tokens TokenIssuer,
) *AccountService {
	return &AccountService{
		users:     users,
		roles:     roles,
		roleCache: roleCache,
		phones:    phones,
		hasher:    hasher,
		tokens:    tokens,
	}
}

// Register creates a user for a phone number that already passed OTP
// verification. Role names come in as a comma-separated list and are
// resolved through the role cache.
func (s *AccountService) Register(ctx context.Context, input dto.RegisterRequest) (*entity.User, error) {
	fullName := strings.TrimSpace(input.FullName)
	mobile := utils.NormalizePhone(input.MobileNumber)
	if fullName == "" || mobile == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}

	if err := s.phones.RequireVerifiedPhone(ctx, mobile); err != nil {
		return nil, err
	}

	existing, err := s.users.FindByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMobileAlreadyTaken
	}

	roleIDs, err := s.resolveRoles(ctx, input.Roles)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FullName:     fullName,
		MobileNumber: mobile,
		PasswordHash: hash,
		IsActive:     true,
	}
	if email := strings.TrimSpace(input.Email); email != "" {
		user.Email = &email
	}

	if err := s.users.Create(ctx, user, roleIDs); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AccountService) Login(ctx context.Context, input dto.LoginRequest) (*dto.LoginResponse, error) {
	mobile := utils.NormalizePhone(input.MobileNumber)
	if mobile == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.FindByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !s.hasher.Verify(user.PasswordHash, input.Password) {
		return nil, ErrIncorrectPassword
	}

	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, string(role.Name))
	}

	access, refresh, err := s.tokens.IssueTokenPair(user.ID.String(), roles)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Access:  access,
		Refresh: refresh,
		UserID:  user.ID.String(),
		Name:    user.FullName,
		Phone:   user.MobileNumber,
		Roles:   roles,
	}, nil
}

func (s *AccountService) ListUsers(ctx context.Context, limit, offset int) ([]entity.User, error) {
	return s.users.List(ctx, limit, offset)
}

func (s *AccountService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// resolveRoles splits the submitted list, validates every name against the
// role table and rejects conflicting combinations.
func (s *AccountService) resolveRoles(ctx context.Context, raw string) ([]uuid.UUID, error) {
	names := map[string]struct{}{}
	for _, part := range strings.Split(strings.ToLower(raw), ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			names[part] = struct{}{}
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: at least one role is required", ErrInvalidRole)
	}

	mapping, err := s.roleMap(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRoleLookupUnavailable, err)
	}

	roleIDs := make([]uuid.UUID, 0, len(names))
	for name := range names {
		id, ok := mapping[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRole, name)
		}
		roleIDs = append(roleIDs, id)
	}

	for _, pair := range entity.ConflictRolePairs {
		_, hasFirst := names[string(pair.First)]
		_, hasSecond := names[string(pair.Second)]
		if hasFirst && hasSecond {
			return nil, fmt.Errorf("%w: %s", ErrConflictingRoles, pair.Message)
		}
	}
	return roleIDs, nil
}

// roleMap serves the role name to id mapping from the cache and falls
// through to the role table on a miss, repopulating the cache best effort.
func (s *AccountService) roleMap(ctx context.Context) (map[string]uuid.UUID, error) {
	if s.roleCache != nil {
		cached, err := s.roleCache.GetRoleMap(ctx)
		if err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	roles, err := s.roles.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	mapping := make(map[string]uuid.UUID, len(roles))
	for _, role := range roles {
		mapping[string(role.Name)] = role.ID
	}

	if s.roleCache != nil {
		_ = s.roleCache.SetRoleMap(ctx, mapping)
	}
	return mapping, nil
}
