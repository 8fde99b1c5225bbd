package progress

import (
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) SaveGuestResult(score int) error {
	args := m.Called(score)
	return args.Error(0)
}

func (m *MockRepository) SaveUserResult(userID uint, score int) error {
	args := m.Called(userID, score)
	return args.Error(0)
}

func (m *MockRepository) UpsertAchievement(userID uint, name string, value int) error {
	args := m.Called(userID, name, value)
	return args.Error(0)
}

func (m *MockRepository) FetchProfile(userID uint) (*ProfileView, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProfileView), args.Error(1)
}
