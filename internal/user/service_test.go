package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anbelova/mathblitz/internal/apperrors"
)

func newTestService() (*Service, *MockRepository) {
	mockRepo := &MockRepository{}
	return NewService(mockRepo), mockRepo
}

func TestService_Register(t *testing.T) {
	svc, mockRepo := newTestService()
	created := &User{ID: 1, Username: "test"}
	mockRepo.On("CreateUser", "test", "pass").Return(created, nil)

	id, err := svc.Register("test", "pass")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), id)
	mockRepo.AssertExpectations(t)
}

func TestService_Register_MissingFields(t *testing.T) {
	svc, mockRepo := newTestService()

	_, err := svc.Register("", "pass")
	assert.Error(t, err)

	_, err = svc.Register("test", "")
	assert.Error(t, err)

	mockRepo.AssertNotCalled(t, "CreateUser")
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	svc, mockRepo := newTestService()
	mockRepo.On("CreateUser", "taken", "pass").
		Return(nil, apperrors.NewAppError(400, "username already taken", nil))

	_, err := svc.Register("taken", "pass")
	assert.Error(t, err)

	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "already taken")
	mockRepo.AssertExpectations(t)
}

func TestService_Login(t *testing.T) {
	svc, mockRepo := newTestService()
	u := &User{ID: 2, Username: "foo"}
	mockRepo.On("ValidateUser", "foo", "bar").Return(u, nil)

	id, err := svc.Login("foo", "bar")
	assert.NoError(t, err)
	assert.Equal(t, uint(2), id)
	mockRepo.AssertExpectations(t)
}

func TestService_Login_BadCredentials(t *testing.T) {
	svc, mockRepo := newTestService()
	mockRepo.On("ValidateUser", "foo", "wrong").
		Return(nil, apperrors.NewAppError(400, "invalid password", nil))

	_, err := svc.Login("foo", "wrong")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid password")
	mockRepo.AssertExpectations(t)
}

func TestService_Login_MissingFields(t *testing.T) {
	svc, mockRepo := newTestService()

	_, err := svc.Login("", "")
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "ValidateUser")
}
