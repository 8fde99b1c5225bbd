package progress

import "time"

// SeedAchievement is granted at progress 0 to every new account.
const SeedAchievement = "Новичок"

type Profile struct {
	UserID     uint `gorm:"primaryKey" json:"user_id"`
	Level      int  `gorm:"not null;default:1" json:"level"`
	TotalScore int  `gorm:"not null;default:0" json:"total_score"`
}

// Result is one finished quiz round. UserID is nil for guest rounds, which
// stay unattributed forever.
type Result struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	Score     int       `gorm:"not null" json:"score"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

type Achievement struct {
	UserID   uint   `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Name     string `gorm:"primaryKey" json:"name"`
	Progress int    `gorm:"not null" json:"progress"`
}

type AchievementView struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

type ProfileView struct {
	Username     string            `json:"username"`
	Level        int               `json:"level"`
	TotalScore   int               `json:"total_score"`
	Achievements []AchievementView `json:"achievements"`
}
