package progress

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/anbelova/mathblitz/internal/apperrors"
)

type Repository interface {
	SaveGuestResult(score int) error
	SaveUserResult(userID uint, score int) error
	UpsertAchievement(userID uint, name string, value int) error
	FetchProfile(userID uint) (*ProfileView, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Seed creates the initial ledger rows for a freshly registered account.
// It runs on the caller's transaction so a failed registration leaves no
// partial state behind.
func Seed(tx *gorm.DB, userID uint) error {
	profile := Profile{UserID: userID, Level: 1, TotalScore: 0}
	if err := tx.Create(&profile).Error; err != nil {
		return apperrors.NewAppError(500, "error creating profile", err)
	}

	seed := Achievement{UserID: userID, Name: SeedAchievement, Progress: 0}
	if err := tx.Create(&seed).Error; err != nil {
		return apperrors.NewAppError(500, "error creating seed achievement", err)
	}

	return nil
}

func (r *GormRepository) SaveGuestResult(score int) error {
	if err := r.db.Create(&Result{Score: score}).Error; err != nil {
		return apperrors.NewAppError(500, "error saving result", err)
	}
	return nil
}

// SaveUserResult appends a result row and bumps the account's total score.
// The FOR UPDATE lock on the profile row serializes every writer touching
// the same account.
func (r *GormRepository) SaveUserResult(userID uint, score int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockProfile(tx, userID); err != nil {
			return err
		}

		if err := tx.Create(&Result{UserID: &userID, Score: score}).Error; err != nil {
			return apperrors.NewAppError(500, "error saving result", err)
		}

		err := tx.Model(&Profile{}).Where("user_id = ?", userID).
			Update("total_score", gorm.Expr("total_score + ?", score)).Error
		if err != nil {
			return apperrors.NewAppError(500, "error updating total score", err)
		}

		return nil
	})
}

// UpsertAchievement stores the submitted progress for (userID, name) and
// raises the account level when the achievement crosses into completion.
// The increment is edge-triggered: re-submitting 100 for an achievement that
// is already complete changes nothing.
func (r *GormRepository) UpsertAchievement(userID uint, name string, value int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockProfile(tx, userID); err != nil {
			return err
		}

		var prev Achievement
		prevProgress := -1
		err := tx.Where("user_id = ? AND name = ?", userID, name).First(&prev).Error
		if err == nil {
			prevProgress = prev.Progress
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewAppError(500, "error loading achievement", err)
		}

		stored := value
		if stored > 100 {
			stored = 100
		}
		row := Achievement{UserID: userID, Name: name, Progress: stored}
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"progress"}),
		}).Create(&row).Error
		if err != nil {
			return apperrors.NewAppError(500, "error saving achievement", err)
		}

		if completesAchievement(prevProgress, stored) {
			err := tx.Model(&Profile{}).Where("user_id = ?", userID).
				Update("level", gorm.Expr("level + 1")).Error
			if err != nil {
				return apperrors.NewAppError(500, "error updating level", err)
			}
		}

		return nil
	})
}

func (r *GormRepository) FetchProfile(userID uint) (*ProfileView, error) {
	var view ProfileView
	err := r.db.Table("profiles").
		Select("users.username, profiles.level, profiles.total_score").
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("profiles.user_id = ?", userID).
		Take(&view).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(404, "user not found", nil)
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "error fetching profile", err)
	}

	achievements := []AchievementView{}
	err = r.db.Model(&Achievement{}).
		Select("name, progress").
		Where("user_id = ?", userID).
		Find(&achievements).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error fetching achievements", err)
	}

	view.Achievements = achievements
	return &view, nil
}

// lockProfile takes the per-account write lock for the current transaction.
func lockProfile(tx *gorm.DB, userID uint) (*Profile, error) {
	var profile Profile
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(400, "user not found", nil)
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "error loading profile", err)
	}
	return &profile, nil
}

// completesAchievement reports whether a write moves an achievement from
// incomplete to complete. prev is -1 when no row existed before.
func completesAchievement(prev, next int) bool {
	return prev < 100 && next >= 100
}
