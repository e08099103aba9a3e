package service

import (
	"testing"

	"github.com/meetyou/meetyou-backend/internal/common"
	"github.com/meetyou/meetyou-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestGetUser_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo, new(mockInterestRepo), nil)

	userRepo.On("FindByID", int64(1)).Return(&domain.User{
		ID: 1, Name: "Anna", Email: "anna@example.com",
		Interests: []domain.Interest{{ID: 3, InterestType: "Music"}},
	}, nil)

	resp, err := svc.GetUser(1)

	assert.NoError(t, err)
	assert.Equal(t, "Anna", resp.Name)
	assert.Len(t, resp.Interests, 1)
	assert.Equal(t, "Music", resp.Interests[0].InterestType)
}

func TestGetUser_NotFound(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo, new(mockInterestRepo), nil)

	userRepo.On("FindByID", int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetUser(99)
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestGetUser_InvalidID(t *testing.T) {
	svc := NewUserService(new(mockUserRepo), new(mockInterestRepo), nil)

	_, err := svc.GetUser(-1)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestSearchByInterest_BlankName(t *testing.T) {
	svc := NewUserService(new(mockUserRepo), new(mockInterestRepo), nil)

	_, err := svc.SearchByInterest("  ")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestSearchByInterest_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo, new(mockInterestRepo), nil)

	userRepo.On("FindByInterestType", "music").Return([]*domain.User{
		{ID: 1, Name: "Anna"}, {ID: 2, Name: "Boris"},
	}, nil)

	resp, err := svc.SearchByInterest("music")

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
}

func TestSearchByAllInterests_EmptySet(t *testing.T) {
	svc := NewUserService(new(mockUserRepo), new(mockInterestRepo), nil)

	_, err := svc.SearchByAllInterests(nil)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.SearchByAllInterests([]string{"music", " "})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestSearchByAllInterests_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo, new(mockInterestRepo), nil)

	names := []string{"music", "hiking"}
	userRepo.On("FindByAllInterestTypes", names).Return([]*domain.User{{ID: 1}}, nil)

	resp, err := svc.SearchByAllInterests(names)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestSearchByAnyInterests_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo, new(mockInterestRepo), nil)

	names := []string{"music", "hiking"}
	userRepo.On("FindByAnyInterestTypes", names).Return([]*domain.User{{ID: 1}, {ID: 2}}, nil)

	resp, err := svc.SearchByAnyInterests(names)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
}

func TestAddInterest_ExistingCatalogEntry(t *testing.T) {
	userRepo := new(mockUserRepo)
	interestRepo := new(mockInterestRepo)
	svc := NewUserService(userRepo, interestRepo, nil)

	user := &domain.User{ID: 1, Name: "Anna"}
	interest := &domain.Interest{ID: 3, InterestType: "Music"}

	userRepo.On("FindByID", int64(1)).Return(user, nil)
	interestRepo.On("FindByTypeIgnoreCase", "music").Return(interest, nil)
	userRepo.On("AddInterest", user, interest).Return(nil)

	_, err := svc.AddInterest(1, "music")

	assert.NoError(t, err)
	interestRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAddInterest_CreatesMissingCatalogEntry(t *testing.T) {
	userRepo := new(mockUserRepo)
	interestRepo := new(mockInterestRepo)
	svc := NewUserService(userRepo, interestRepo, nil)

	user := &domain.User{ID: 1}
	userRepo.On("FindByID", int64(1)).Return(user, nil)
	interestRepo.On("FindByTypeIgnoreCase", "Chess").Return(nil, gorm.ErrRecordNotFound)
	interestRepo.On("Create", mock.MatchedBy(func(i *domain.Interest) bool {
		return i.InterestType == "Chess"
	})).Return(nil)
	userRepo.On("AddInterest", user, mock.Anything).Return(nil)

	_, err := svc.AddInterest(1, "Chess")

	assert.NoError(t, err)
	interestRepo.AssertExpectations(t)
}

func TestAddInterest_UserNotFound(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo, new(mockInterestRepo), nil)

	userRepo.On("FindByID", int64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.AddInterest(9, "music")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestRemoveInterest_UnknownInterest(t *testing.T) {
	userRepo := new(mockUserRepo)
	interestRepo := new(mockInterestRepo)
	svc := NewUserService(userRepo, interestRepo, nil)

	userRepo.On("FindByID", int64(1)).Return(&domain.User{ID: 1}, nil)
	interestRepo.On("FindByTypeIgnoreCase", "unknown").Return(nil, gorm.ErrRecordNotFound)

	err := svc.RemoveInterest(1, "unknown")
	assert.ErrorIs(t, err, common.ErrInterestNotFound)
}

func TestCreateInterest_Duplicate(t *testing.T) {
	interestRepo := new(mockInterestRepo)
	svc := NewUserService(new(mockUserRepo), interestRepo, nil)

	interestRepo.On("ExistsByTypeIgnoreCase", "Music").Return(true, nil)

	_, err := svc.CreateInterest("Music")
	assert.ErrorIs(t, err, common.ErrInterestExists)
	interestRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateInterest_Success(t *testing.T) {
	interestRepo := new(mockInterestRepo)
	svc := NewUserService(new(mockUserRepo), interestRepo, nil)

	interestRepo.On("ExistsByTypeIgnoreCase", "Chess").Return(false, nil)
	interestRepo.On("Create", mock.MatchedBy(func(i *domain.Interest) bool {
		return i.InterestType == "Chess"
	})).Return(nil)

	resp, err := svc.CreateInterest("  Chess  ")

	assert.NoError(t, err)
	assert.Equal(t, "Chess", resp.InterestType)
}

func TestCreateInterest_Blank(t *testing.T) {
	svc := NewUserService(new(mockUserRepo), new(mockInterestRepo), nil)

	_, err := svc.CreateInterest("   ")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
