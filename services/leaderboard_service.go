package services

import (
	"errors"
	"math"

	"phrasebingo/apperr"
	"phrasebingo/models"

	"gorm.io/gorm"
)

// LeaderboardService folds finished-session results into cross-session
// standings. TotalPoints is a personal-best ratchet: an entry only changes
// when the submitted total strictly exceeds the stored one.
type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

type SubmitStatsRequest struct {
	PlayerID      string `json:"player_id" binding:"required"`
	PlayerName    string `json:"player_name" binding:"required"`
	TotalPoints   int    `json:"total_points"`
	TotalGames    int    `json:"total_games"`
	TotalBingos   int    `json:"total_bingos"`
	HighestScore  int    `json:"highest_score"`
	CurrentStreak int    `json:"current_streak"`
	BestStreak    int    `json:"best_streak"`
}

// Submit inserts or ratchet-updates the player's entry. Returns whether the
// stored entry changed; an equal-or-lower submission is a no-op, not an
// error.
func (s *LeaderboardService) Submit(req *SubmitStatsRequest) (bool, error) {
	if req.PlayerID == "" {
		return false, apperr.InvalidArgument("player id is required")
	}

	updated := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var entry models.LeaderboardEntry
		err := tx.Where("player_id = ?", req.PlayerID).First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			entry = models.LeaderboardEntry{
				PlayerID:      req.PlayerID,
				PlayerName:    req.PlayerName,
				TotalPoints:   req.TotalPoints,
				TotalGames:    req.TotalGames,
				TotalBingos:   req.TotalBingos,
				HighestScore:  req.HighestScore,
				CurrentStreak: req.CurrentStreak,
				BestStreak:    req.BestStreak,
				WinRate:       winRate(req.TotalBingos, req.TotalGames),
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			updated = true
			return nil
		}
		if err != nil {
			return err
		}

		if req.TotalPoints <= entry.TotalPoints {
			return nil
		}

		entry.PlayerName = req.PlayerName
		entry.TotalPoints = req.TotalPoints
		entry.TotalGames = req.TotalGames
		entry.TotalBingos = req.TotalBingos
		entry.HighestScore = req.HighestScore
		entry.CurrentStreak = req.CurrentStreak
		entry.BestStreak = req.BestStreak
		entry.WinRate = winRate(req.TotalBingos, req.TotalGames)
		if err := tx.Save(&entry).Error; err != nil {
			return err
		}
		updated = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

// Top returns the n highest-scoring entries, insertion order breaking ties.
func (s *LeaderboardService) Top(n int) ([]models.LeaderboardEntry, error) {
	if n <= 0 {
		return nil, apperr.InvalidArgument("limit must be positive")
	}

	var entries []models.LeaderboardEntry
	if err := s.db.Order("total_points DESC, id ASC").Limit(n).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func winRate(bingos, games int) int {
	if games <= 0 {
		return 0
	}
	return int(math.Round(float64(bingos) / float64(games) * 100))
}
