package user

import (
	"github.com/anbelova/mathblitz/internal/apperrors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates the account and returns its id. The id is the only
// credential later requests carry; no session or token is issued.
func (s *Service) Register(username, password string) (uint, error) {
	if username == "" || password == "" {
		return 0, apperrors.NewAppError(400, "username and password are required", nil)
	}

	u, err := s.repo.CreateUser(username, password)
	if err != nil {
		return 0, err
	}

	return u.ID, nil
}

func (s *Service) Login(username, password string) (uint, error) {
	if username == "" || password == "" {
		return 0, apperrors.NewAppError(400, "username and password are required", nil)
	}

	u, err := s.repo.ValidateUser(username, password)
	if err != nil {
		return 0, err
	}

	return u.ID, nil
}
