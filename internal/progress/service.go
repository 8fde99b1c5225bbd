package progress

import (
	"github.com/anbelova/mathblitz/internal/apperrors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SaveResult records one finished round. A nil userID is a guest round and
// never touches any profile.
func (s *Service) SaveResult(userID *uint, score int) error {
	if userID == nil {
		return s.repo.SaveGuestResult(score)
	}
	return s.repo.SaveUserResult(*userID, score)
}

func (s *Service) UpdateAchievement(userID uint, name string, value int) error {
	if userID == 0 || name == "" {
		return apperrors.NewAppError(400, "missing required fields", nil)
	}
	if value < 0 || value > 100 {
		return apperrors.NewAppError(400, "progress must be between 0 and 100", nil)
	}
	return s.repo.UpsertAchievement(userID, name, value)
}

func (s *Service) GetProfile(userID uint) (*ProfileView, error) {
	return s.repo.FetchProfile(userID)
}
