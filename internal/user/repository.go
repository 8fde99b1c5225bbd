package user

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/anbelova/mathblitz/internal/apperrors"
	"github.com/anbelova/mathblitz/internal/progress"
)

type Repository interface {
	CreateUser(username, password string) (*User, error)
	ValidateUser(username, password string) (*User, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// CreateUser registers an account and seeds its progress ledger in one
// transaction. Only the bcrypt hash is stored.
func (r *GormRepository) CreateUser(username, password string) (*User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error hashing password", err)
	}

	newUser := User{
		Username: username,
		Password: string(hashed),
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return apperrors.NewAppError(500, "error checking username", err)
		}
		if count > 0 {
			return apperrors.NewAppError(400, "username already taken", nil)
		}

		if err := tx.Create(&newUser).Error; err != nil {
			// two registrations can race past the pre-check
			if isUniqueViolation(err) {
				return apperrors.NewAppError(400, "username already taken", err)
			}
			return apperrors.NewAppError(500, "error creating user", err)
		}

		return progress.Seed(tx, newUser.ID)
	})
	if err != nil {
		return nil, err
	}

	return &newUser, nil
}

func (r *GormRepository) ValidateUser(username, password string) (*User, error) {
	var u User
	result := r.db.Where("username = ?", username).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(400, "user not found", nil)
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error fetching user", result.Error)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, apperrors.NewAppError(400, "invalid password", nil)
	}

	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
