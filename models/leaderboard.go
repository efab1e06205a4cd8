package models

import (
	"time"

	"gorm.io/gorm"
)

// LeaderboardEntry holds cross-session standings for one player. TotalPoints
// is a personal-best ratchet: submissions only apply when they strictly
// exceed the stored value.
type LeaderboardEntry struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	PlayerID      string         `json:"player_id" gorm:"uniqueIndex;not null"`
	PlayerName    string         `json:"player_name" gorm:"not null"`
	TotalPoints   int            `json:"total_points" gorm:"not null;default:0"`
	TotalGames    int            `json:"total_games" gorm:"not null;default:0"`
	TotalBingos   int            `json:"total_bingos" gorm:"not null;default:0"`
	HighestScore  int            `json:"highest_score" gorm:"not null;default:0"`
	CurrentStreak int            `json:"current_streak" gorm:"not null;default:0"`
	BestStreak    int            `json:"best_streak" gorm:"not null;default:0"`
	WinRate       int            `json:"win_rate" gorm:"not null;default:0"` // percentage
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}
