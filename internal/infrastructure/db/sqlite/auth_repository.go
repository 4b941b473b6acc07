package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/gln-plastics/smartfix-api/internal/core/domain"
)

// AuthRepository implements ports.AuthRepository over the operators table.
type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) FindByName(ctx context.Context, name string) (*domain.Operator, error) {
	var m operatorModel
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("find operator: %w", err)
	}
	return toDomainOperator(&m), nil
}

func (r *AuthRepository) Create(ctx context.Context, operator *domain.Operator) (*domain.Operator, error) {
	m := operatorModel{
		Name:         operator.Name,
		PasswordHash: operator.PasswordHash,
		Role:         operator.Role,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrOperatorExists
		}
		return nil, fmt.Errorf("insert operator: %w", err)
	}
	return toDomainOperator(&m), nil
}

func toDomainOperator(m *operatorModel) *domain.Operator {
	return &domain.Operator{
		ID:           strconv.FormatUint(uint64(m.ID), 10),
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt,
	}
}
