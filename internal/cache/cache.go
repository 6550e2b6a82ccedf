package cache

import (
	"context"

	"github.com/google/uuid"
)

// RoleCache holds the role name to id mapping so registration does not hit
// the role table on every request. Get returns nil on a miss.
type RoleCache interface {
	GetRoleMap(ctx context.Context) (map[string]uuid.UUID, error)
	SetRoleMap(ctx context.Context, roles map[string]uuid.UUID) error
}
