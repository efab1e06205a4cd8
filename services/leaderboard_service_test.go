package services

import (
	"testing"

	"phrasebingo/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Phrase{},
		&models.LeaderboardEntry{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestSubmitInsertsNewEntry(t *testing.T) {
	assert := assert.New(t)
	svc := NewLeaderboardService(newTestDB(t))

	updated, err := svc.Submit(&SubmitStatsRequest{
		PlayerID:    "p1",
		PlayerName:  "Alice",
		TotalPoints: 100,
		TotalGames:  4,
		TotalBingos: 3,
	})

	assert.NoError(err)
	assert.True(updated)

	entries, err := svc.Top(10)
	assert.NoError(err)
	assert.Len(entries, 1)
	assert.Equal("Alice", entries[0].PlayerName)
	assert.Equal(100, entries[0].TotalPoints)
	assert.Equal(75, entries[0].WinRate)
}

func TestSubmitRatchet(t *testing.T) {
	assert := assert.New(t)
	svc := NewLeaderboardService(newTestDB(t))

	_, err := svc.Submit(&SubmitStatsRequest{PlayerID: "p1", PlayerName: "Alice", TotalPoints: 100, TotalGames: 2, TotalBingos: 1})
	assert.NoError(err)

	// Lower total is a no-op, not an error.
	updated, err := svc.Submit(&SubmitStatsRequest{PlayerID: "p1", PlayerName: "Alice", TotalPoints: 80, TotalGames: 3, TotalBingos: 1})
	assert.NoError(err)
	assert.False(updated)

	// Equal total is also a no-op.
	updated, err = svc.Submit(&SubmitStatsRequest{PlayerID: "p1", PlayerName: "Alice", TotalPoints: 100, TotalGames: 3, TotalBingos: 1})
	assert.NoError(err)
	assert.False(updated)

	entries, _ := svc.Top(1)
	assert.Equal(100, entries[0].TotalPoints)
	assert.Equal(2, entries[0].TotalGames)

	// A strictly higher total applies the whole submission.
	updated, err = svc.Submit(&SubmitStatsRequest{PlayerID: "p1", PlayerName: "Alice", TotalPoints: 120, TotalGames: 4, TotalBingos: 2})
	assert.NoError(err)
	assert.True(updated)

	entries, _ = svc.Top(1)
	assert.Equal(120, entries[0].TotalPoints)
	assert.Equal(4, entries[0].TotalGames)
	assert.Equal(50, entries[0].WinRate)
}

func TestWinRateZeroGames(t *testing.T) {
	assert := assert.New(t)
	svc := NewLeaderboardService(newTestDB(t))

	_, err := svc.Submit(&SubmitStatsRequest{PlayerID: "p1", PlayerName: "Alice", TotalPoints: 10})
	assert.NoError(err)

	entries, _ := svc.Top(1)
	assert.Equal(0, entries[0].WinRate)
}

func TestTopOrdering(t *testing.T) {
	assert := assert.New(t)
	svc := NewLeaderboardService(newTestDB(t))

	svc.Submit(&SubmitStatsRequest{PlayerID: "p1", PlayerName: "Alice", TotalPoints: 50})
	svc.Submit(&SubmitStatsRequest{PlayerID: "p2", PlayerName: "Bob", TotalPoints: 90})
	svc.Submit(&SubmitStatsRequest{PlayerID: "p3", PlayerName: "Carol", TotalPoints: 90})
	svc.Submit(&SubmitStatsRequest{PlayerID: "p4", PlayerName: "Dave", TotalPoints: 70})

	entries, err := svc.Top(3)
	assert.NoError(err)
	assert.Len(entries, 3)
	// Ties keep insertion order: Bob was submitted before Carol.
	assert.Equal("Bob", entries[0].PlayerName)
	assert.Equal("Carol", entries[1].PlayerName)
	assert.Equal("Dave", entries[2].PlayerName)
}

func TestTopInvalidLimit(t *testing.T) {
	assert := assert.New(t)
	svc := NewLeaderboardService(newTestDB(t))

	_, err := svc.Top(0)

	assert.Error(err)
}
