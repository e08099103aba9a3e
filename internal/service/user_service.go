package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/meetyou/meetyou-backend/internal/common"
	"github.com/meetyou/meetyou-backend/internal/domain"
	"github.com/meetyou/meetyou-backend/internal/repository"
	"github.com/meetyou/meetyou-backend/pkg/cache"
	"gorm.io/gorm"
)

// UserService business logic for user profiles and interests
type UserService interface {
	GetUser(id int64) (*domain.UserResponse, error)
	GetUserByEmail(email string) (*domain.UserResponse, error)
	SearchByInterest(name string) ([]*domain.UserResponse, error)
	SearchByAllInterests(names []string) ([]*domain.UserResponse, error)
	SearchByAnyInterests(names []string) ([]*domain.UserResponse, error)
	AddInterest(userID int64, interestType string) (*domain.UserResponse, error)
	RemoveInterest(userID int64, interestType string) error
	ListInterests() ([]*domain.InterestResponse, error)
	CreateInterest(interestType string) (*domain.InterestResponse, error)
}

type userService struct {
	userRepo     repository.UserRepository
	interestRepo repository.InterestRepository
	cache        cache.Service
}

// NewUserService creates a new UserService. cacheService may be nil.
func NewUserService(userRepo repository.UserRepository, interestRepo repository.InterestRepository, cacheService cache.Service) UserService {
	return &userService{
		userRepo:     userRepo,
		interestRepo: interestRepo,
		cache:        cacheService,
	}
}

// GetUser returns a user profile by ID, served from cache when possible
func (s *userService) GetUser(id int64) (*domain.UserResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", common.ErrInvalidInput)
	}

	if s.cache != nil {
		if raw, err := s.cache.GetUserProfile(context.Background(), id); err == nil {
			var resp domain.UserResponse
			if json.Unmarshal(raw, &resp) == nil {
				return &resp, nil
			}
		}
	}

	user, err := s.findUser(id)
	if err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	if s.cache != nil {
		s.cache.SetUserProfile(context.Background(), id, resp) //nolint:errcheck
	}
	return resp, nil
}

// GetUserByEmail returns a user profile by exact email
func (s *userService) GetUserByEmail(email string) (*domain.UserResponse, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", common.ErrInvalidInput)
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: email %s", common.ErrUserNotFound, email)
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// SearchByInterest returns users having the given interest
func (s *userService) SearchByInterest(name string) ([]*domain.UserResponse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: interest name cannot be empty", common.ErrInvalidInput)
	}
	users, err := s.userRepo.FindByInterestType(name)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// SearchByAllInterests returns users having every one of the given interests
func (s *userService) SearchByAllInterests(names []string) ([]*domain.UserResponse, error) {
	if err := validateInterestNames(names); err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindByAllInterestTypes(names)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// SearchByAnyInterests returns users having at least one of the given
// interests
func (s *userService) SearchByAnyInterests(names []string) ([]*domain.UserResponse, error) {
	if err := validateInterestNames(names); err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindByAnyInterestTypes(names)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// AddInterest attaches an interest to a user, creating the catalog entry on
// the fly when it does not exist yet
func (s *userService) AddInterest(userID int64, interestType string) (*domain.UserResponse, error) {
	interestType = strings.TrimSpace(interestType)
	if interestType == "" {
		return nil, fmt.Errorf("%w: interest name cannot be empty", common.ErrInvalidInput)
	}

	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	interest, err := s.interestRepo.FindByTypeIgnoreCase(interestType)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		interest = &domain.Interest{InterestType: interestType}
		if err := s.interestRepo.Create(interest); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.AddInterest(user, interest); err != nil {
		return nil, err
	}
	s.invalidateUser(userID)

	updated, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}

// RemoveInterest detaches an interest from a user
func (s *userService) RemoveInterest(userID int64, interestType string) error {
	if strings.TrimSpace(interestType) == "" {
		return fmt.Errorf("%w: interest name cannot be empty", common.ErrInvalidInput)
	}

	user, err := s.findUser(userID)
	if err != nil {
		return err
	}

	interest, err := s.interestRepo.FindByTypeIgnoreCase(interestType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", common.ErrInterestNotFound, interestType)
		}
		return err
	}

	if err := s.userRepo.RemoveInterest(user, interest); err != nil {
		return err
	}
	s.invalidateUser(userID)
	return nil
}

// ListInterests returns the interest catalog
func (s *userService) ListInterests() ([]*domain.InterestResponse, error) {
	interests, err := s.interestRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]*domain.InterestResponse, len(interests))
	for i, in := range interests {
		responses[i] = in.ToResponse()
	}
	return responses, nil
}

// CreateInterest adds a new interest to the catalog; names are unique
// case-insensitively
func (s *userService) CreateInterest(interestType string) (*domain.InterestResponse, error) {
	interestType = strings.TrimSpace(interestType)
	if interestType == "" {
		return nil, fmt.Errorf("%w: interest name cannot be empty", common.ErrInvalidInput)
	}

	exists, err := s.interestRepo.ExistsByTypeIgnoreCase(interestType)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", common.ErrInterestExists, interestType)
	}

	interest := &domain.Interest{InterestType: interestType}
	if err := s.interestRepo.Create(interest); err != nil {
		return nil, err
	}
	return interest.ToResponse(), nil
}

func (s *userService) findUser(id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", common.ErrInvalidInput)
	}
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user with id %d", common.ErrUserNotFound, id)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) invalidateUser(userID int64) {
	if s.cache != nil {
		s.cache.InvalidateUser(context.Background(), userID) //nolint:errcheck
	}
}

func validateInterestNames(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("%w: interest names cannot be empty", common.ErrInvalidInput)
	}
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: interest name cannot be empty", common.ErrInvalidInput)
		}
	}
	return nil
}

func toUserResponses(users []*domain.User) []*domain.UserResponse {
	responses := make([]*domain.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses
}
