package service

import (
	"github.com/meetyou/meetyou-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(id int64) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByInterestType(interestType string) ([]*domain.User, error) {
	args := m.Called(interestType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByAllInterestTypes(interestTypes []string) ([]*domain.User, error) {
	args := m.Called(interestTypes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByAnyInterestTypes(interestTypes []string) ([]*domain.User, error) {
	args := m.Called(interestTypes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *mockUserRepo) Create(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) AddInterest(user *domain.User, interest *domain.Interest) error {
	return m.Called(user, interest).Error(0)
}

func (m *mockUserRepo) RemoveInterest(user *domain.User, interest *domain.Interest) error {
	return m.Called(user, interest).Error(0)
}

func (m *mockUserRepo) ExistsByID(id int64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

// --- Mock InterestRepository ---

type mockInterestRepo struct {
	mock.Mock
}

func (m *mockInterestRepo) FindAll() ([]*domain.Interest, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Interest), args.Error(1)
}

func (m *mockInterestRepo) FindByType(interestType string) (*domain.Interest, error) {
	args := m.Called(interestType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interest), args.Error(1)
}

func (m *mockInterestRepo) FindByTypeIgnoreCase(interestType string) (*domain.Interest, error) {
	args := m.Called(interestType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interest), args.Error(1)
}

func (m *mockInterestRepo) ExistsByType(interestType string) (bool, error) {
	args := m.Called(interestType)
	return args.Bool(0), args.Error(1)
}

func (m *mockInterestRepo) ExistsByTypeIgnoreCase(interestType string) (bool, error) {
	args := m.Called(interestType)
	return args.Bool(0), args.Error(1)
}

func (m *mockInterestRepo) Create(interest *domain.Interest) error {
	return m.Called(interest).Error(0)
}

// --- Mock MessageRepository ---

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) Create(msg *domain.Message) error {
	return m.Called(msg).Error(0)
}

func (m *mockMessageRepo) FindConversation(user1ID, user2ID int64) ([]*domain.Message, error) {
	args := m.Called(user1ID, user2ID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

func (m *mockMessageRepo) FindUnread(receiverID, senderID int64) ([]*domain.Message, error) {
	args := m.Called(receiverID, senderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

func (m *mockMessageRepo) MarkConversationRead(receiverID, senderID int64) (int64, error) {
	args := m.Called(receiverID, senderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMessageRepo) CountUnread(receiverID int64) (int64, error) {
	args := m.Called(receiverID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock PhotoRepository ---

type mockPhotoRepo struct {
	mock.Mock
}

func (m *mockPhotoRepo) Create(photo *domain.Photo) error {
	return m.Called(photo).Error(0)
}

func (m *mockPhotoRepo) CreateClearingMain(photo *domain.Photo) error {
	return m.Called(photo).Error(0)
}

func (m *mockPhotoRepo) CreateBatch(userID int64, photos []*domain.Photo, resetMain bool) error {
	return m.Called(userID, photos, resetMain).Error(0)
}

func (m *mockPhotoRepo) FindByUserID(userID int64) ([]*domain.Photo, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Photo), args.Error(1)
}

func (m *mockPhotoRepo) FindByIDAndUserID(id, userID int64) (*domain.Photo, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Photo), args.Error(1)
}

func (m *mockPhotoRepo) Save(photo *domain.Photo) error {
	return m.Called(photo).Error(0)
}

func (m *mockPhotoRepo) SaveClearingMain(photo *domain.Photo) error {
	return m.Called(photo).Error(0)
}

func (m *mockPhotoRepo) Delete(photo *domain.Photo) error {
	return m.Called(photo).Error(0)
}

func (m *mockPhotoRepo) ClearMain(userID int64) error {
	return m.Called(userID).Error(0)
}
