package repository

import (
	"strings"

	"github.com/meetyou/meetyou-backend/internal/domain"
	"gorm.io/gorm"
)

// UserRepository user data access interface
type UserRepository interface {
	// Read operations
	FindByID(id int64) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)

	// Interest search operations (all case-insensitive on interest name)
	FindByInterestType(interestType string) ([]*domain.User, error)
	FindByAllInterestTypes(interestTypes []string) ([]*domain.User, error)
	FindByAnyInterestTypes(interestTypes []string) ([]*domain.User, error)

	// Write operations
	Create(user *domain.User) error
	AddInterest(user *domain.User, interest *domain.Interest) error
	RemoveInterest(user *domain.User, interest *domain.Interest) error

	// Validation operations
	ExistsByID(id int64) (bool, error)
	ExistsByEmail(email string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByID finds a user by ID with interests loaded
func (r *userRepository) FindByID(id int64) (*domain.User, error) {
	var user domain.User
	err := r.db.Preload("Interests").Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by exact email
func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Preload("Interests").Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByInterestType returns users having the given interest, matched
// case-insensitively
func (r *userRepository) FindByInterestType(interestType string) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.Distinct("users.*").
		Joins("JOIN user_interests ui ON ui.user_id = users.id").
		Joins("JOIN interests i ON i.id = ui.interest_id").
		Where("LOWER(i.interest_type) = LOWER(?)", interestType).
		Preload("Interests").
		Find(&users).Error
	return users, err
}

// FindByAllInterestTypes returns users whose interest set covers every name in
// interestTypes (case-insensitive). The HAVING count is compared against the
// length of the request as passed: names duplicated across case can never
// match.
func (r *userRepository) FindByAllInterestTypes(interestTypes []string) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.
		Joins("JOIN user_interests ui ON ui.user_id = users.id").
		Joins("JOIN interests i ON i.id = ui.interest_id").
		Where("LOWER(i.interest_type) IN ?", lowerAll(interestTypes)).
		Group("users.id").
		Having("COUNT(DISTINCT i.id) = ?", len(interestTypes)).
		Preload("Interests").
		Find(&users).Error
	return users, err
}

// FindByAnyInterestTypes returns users having at least one of the given
// interests (case-insensitive), deduplicated by user
func (r *userRepository) FindByAnyInterestTypes(interestTypes []string) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.Distinct("users.*").
		Joins("JOIN user_interests ui ON ui.user_id = users.id").
		Joins("JOIN interests i ON i.id = ui.interest_id").
		Where("LOWER(i.interest_type) IN ?", lowerAll(interestTypes)).
		Preload("Interests").
		Find(&users).Error
	return users, err
}

// Create creates a new user
func (r *userRepository) Create(user *domain.User) error {
	return r.db.Create(user).Error
}

// AddInterest associates an interest with a user
func (r *userRepository) AddInterest(user *domain.User, interest *domain.Interest) error {
	return r.db.Model(user).Association("Interests").Append(interest)
}

// RemoveInterest removes an interest association from a user
func (r *userRepository) RemoveInterest(user *domain.User, interest *domain.Interest) error {
	return r.db.Model(user).Association("Interests").Delete(interest)
}

// ExistsByID checks whether a user with the given ID exists
func (r *userRepository) ExistsByID(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistsByEmail checks whether a user with the given email exists
func (r *userRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func lowerAll(values []string) []string {
	lowered := make([]string, len(values))
	for i, v := range values {
		lowered[i] = strings.ToLower(v)
	}
	return lowered
}
