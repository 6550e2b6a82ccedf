package repository

import (
	"context"

	"github.com/rajib3777/academia/internal/entity"

	"gorm.io/gorm"
)

type RoleRepository interface {
	ListAll(ctx context.Context) ([]entity.Role, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) ListAll(ctx context.Context) ([]entity.Role, error) {
	var roles []entity.Role
	if err := r.db.WithContext(ctx).Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}
