package repository

import (
	"github.com/meetyou/meetyou-backend/internal/domain"
	"gorm.io/gorm"
)

// InterestRepository interest catalog data access interface
type InterestRepository interface {
	FindAll() ([]*domain.Interest, error)
	FindByType(interestType string) (*domain.Interest, error)
	FindByTypeIgnoreCase(interestType string) (*domain.Interest, error)
	ExistsByType(interestType string) (bool, error)
	ExistsByTypeIgnoreCase(interestType string) (bool, error)
	Create(interest *domain.Interest) error
}

type interestRepository struct {
	db *gorm.DB
}

// NewInterestRepository creates a new InterestRepository
func NewInterestRepository(db *gorm.DB) InterestRepository {
	return &interestRepository{db: db}
}

// FindAll returns the interest catalog ordered by name
func (r *interestRepository) FindAll() ([]*domain.Interest, error) {
	var interests []*domain.Interest
	err := r.db.Order("interest_type ASC").Find(&interests).Error
	return interests, err
}

// FindByType finds an interest by exact name
func (r *interestRepository) FindByType(interestType string) (*domain.Interest, error) {
	var interest domain.Interest
	err := r.db.Where("interest_type = ?", interestType).First(&interest).Error
	if err != nil {
		return nil, err
	}
	return &interest, nil
}

// FindByTypeIgnoreCase finds an interest by name, case-insensitively
func (r *interestRepository) FindByTypeIgnoreCase(interestType string) (*domain.Interest, error) {
	var interest domain.Interest
	err := r.db.Where("LOWER(interest_type) = LOWER(?)", interestType).First(&interest).Error
	if err != nil {
		return nil, err
	}
	return &interest, nil
}

// ExistsByType checks existence by exact name
func (r *interestRepository) ExistsByType(interestType string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Interest{}).
		Where("interest_type = ?", interestType).
		Count(&count).Error
	return count > 0, err
}

// ExistsByTypeIgnoreCase checks existence by name, case-insensitively
func (r *interestRepository) ExistsByTypeIgnoreCase(interestType string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Interest{}).
		Where("LOWER(interest_type) = LOWER(?)", interestType).
		Count(&count).Error
	return count > 0, err
}

// Create creates a new interest
func (r *interestRepository) Create(interest *domain.Interest) error {
	return r.db.Create(interest).Error
}
