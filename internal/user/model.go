package user

import "github.com/anbelova/mathblitz/internal/progress"

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"password,omitempty"`

	// Dependent rows are cascade-deleted with the account. No delete
	// endpoint exists yet, the constraints are declared for when one does.
	Profile      *progress.Profile      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Results      []progress.Result      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Achievements []progress.Achievement `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
