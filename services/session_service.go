package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"phrasebingo/apperr"
	"phrasebingo/game"
	"phrasebingo/models"
	"phrasebingo/store"

	"github.com/google/uuid"
)

const (
	roomCodeLength = 6
	// No 0/O/1/I: codes get read aloud and typed from phone screens.
	roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	// Attempts to find a free room code before giving up.
	maxCodeAttempts = 5
	// Attempts per operation when optimistic writes keep losing the race.
	maxWriteRetries = 3

	pointsPerCell = 10
	pointsPerLine = 50
)

// SessionService owns the room state machine: creation, admission, cell
// marking and termination. Every state change is an optimistic
// read-modify-write against the session store, retried a bounded number of
// times on write contention. Business rejections are never retried.
type SessionService struct {
	store store.SessionStore
}

func NewSessionService(store store.SessionStore) *SessionService {
	return &SessionService{store: store}
}

type MarkResult struct {
	Selected       game.Marks `json:"selected"`
	Won            bool       `json:"won"`
	LinesCompleted int        `json:"lines_completed"`
	Points         int        `json:"points"`
}

type StopResult struct {
	WinnerID     string `json:"winner_id"`
	WinnerName   string `json:"winner_name"`
	HighestScore int    `json:"highest_score"`
}

// CreateSession allocates a fresh room in waiting status with the host as
// its only player. The host carries an empty grid; hosts run the room
// rather than play a card.
func (s *SessionService) CreateSession(ctx context.Context, hostName string, categoryID uint) (*models.Session, error) {
	hostName = strings.TrimSpace(hostName)
	if hostName == "" {
		return nil, apperr.InvalidArgument("host name is required")
	}

	host := models.Player{
		ID:       uuid.NewString(),
		Name:     hostName,
		IsHost:   true,
		Selected: game.NewMarks(),
		JoinedAt: time.Now(),
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		session := &models.Session{
			RoomCode:   generateRoomCode(),
			Status:     models.StatusWaiting,
			CategoryID: categoryID,
			Players:    []models.Player{host},
			CreatedAt:  time.Now(),
		}

		err := s.store.CreateIfAbsent(ctx, session)
		if err == nil {
			log.Printf("Created room %s for host %s", session.RoomCode, hostName)
			return session, nil
		}
		if errors.Is(err, store.ErrConflict) {
			log.Printf("Room code collision on %s, retrying", session.RoomCode)
			continue
		}
		return nil, fmt.Errorf("create room: %w", err)
	}

	return nil, apperr.Conflict("could not allocate a free room code")
}

// Join admits a player into the room. The duplicate-name check and the
// append happen inside one compare-and-swap cycle, so two concurrent joins
// with the same name cannot both land.
func (s *SessionService) Join(ctx context.Context, roomCode, playerName string, rows [][]string) (*models.Session, string, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, "", apperr.InvalidArgument("player name is required")
	}
	grid, err := game.GridFromRows(rows)
	if err != nil {
		return nil, "", apperr.InvalidArgument("malformed grid: %v", err)
	}

	for attempt := 0; attempt < maxWriteRetries; attempt++ {
		session, err := s.store.Get(ctx, roomCode)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, "", apperr.NotFound("room %s not found", strings.ToUpper(roomCode))
			}
			return nil, "", fmt.Errorf("load room %s: %w", roomCode, err)
		}
		if session.Status == models.StatusFinished {
			return nil, "", apperr.NotFound("room %s has already finished", session.RoomCode)
		}
		if session.HasPlayerName(playerName) {
			return nil, "", apperr.Conflict("name %q is already taken in room %s", playerName, session.RoomCode)
		}

		player := models.Player{
			ID:       uuid.NewString(),
			Name:     playerName,
			Grid:     grid,
			Selected: game.NewMarks(),
			JoinedAt: time.Now(),
		}

		next := session.Clone()
		next.Players = append(next.Players, player)
		// First non-host join starts play; later joins leave it alone.
		if next.Status == models.StatusWaiting {
			next.Status = models.StatusPlaying
		}

		err = s.store.CompareAndSwap(ctx, session.Version, next)
		if errors.Is(err, store.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("join room %s: %w", roomCode, err)
		}

		log.Printf("Player %s (%s) joined room %s", playerName, player.ID, next.RoomCode)
		return next, player.ID, nil
	}

	return nil, "", apperr.Conflict("room %s is busy, try again", strings.ToUpper(roomCode))
}

// Mark sets one cell of the player's card. Marking an already-set cell is
// an idempotent no-op. Completing lines awards points and sets hasWon, but
// never finishes the session; termination stays a host decision.
func (s *SessionService) Mark(ctx context.Context, roomCode, playerID string, row, col int) (*MarkResult, error) {
	if !game.InBounds(row, col) {
		return nil, apperr.InvalidArgument("cell (%d,%d) is outside the %dx%d card", row, col, game.Size, game.Size)
	}

	for attempt := 0; attempt < maxWriteRetries; attempt++ {
		session, err := s.store.Get(ctx, roomCode)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, apperr.NotFound("room %s not found", strings.ToUpper(roomCode))
			}
			return nil, fmt.Errorf("load room %s: %w", roomCode, err)
		}
		if session.Status == models.StatusFinished {
			return nil, apperr.Conflict("room %s has already finished", session.RoomCode)
		}

		next := session.Clone()
		player, _ := next.PlayerByID(playerID)
		if player == nil {
			return nil, apperr.NotFound("player %s not found in room %s", playerID, session.RoomCode)
		}

		if player.Selected[row][col] {
			// Nothing to change; report current state without a write.
			res := game.Evaluate(player.Selected)
			return &MarkResult{
				Selected:       player.Selected,
				Won:            res.Won,
				LinesCompleted: res.LinesCompleted,
				Points:         player.Points,
			}, nil
		}

		before := game.Evaluate(player.Selected)
		player.Selected[row][col] = true
		player.Points += pointsPerCell

		after := game.Evaluate(player.Selected)
		if newLines := after.LinesCompleted - before.LinesCompleted; newLines > 0 {
			player.Points += newLines * pointsPerLine
		}
		if after.Won && !player.HasWon {
			player.HasWon = true
			log.Printf("Player %s got bingo in room %s (%d lines)", player.Name, next.RoomCode, after.LinesCompleted)
		}

		err = s.store.CompareAndSwap(ctx, session.Version, next)
		if errors.Is(err, store.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("mark cell in room %s: %w", roomCode, err)
		}

		return &MarkResult{
			Selected:       player.Selected,
			Won:            after.Won,
			LinesCompleted: after.LinesCompleted,
			Points:         player.Points,
		}, nil
	}

	return nil, apperr.Conflict("room %s is busy, try again", strings.ToUpper(roomCode))
}

// Stop finalizes the room. Only the host may call it. The winner is the
// player with the strictly highest score; ties go to the earliest join.
// Victory on manual stop is score-based, so the winner gets hasWon even
// without a completed line.
func (s *SessionService) Stop(ctx context.Context, roomCode, requestingPlayerID string) (*StopResult, error) {
	for attempt := 0; attempt < maxWriteRetries; attempt++ {
		session, err := s.store.Get(ctx, roomCode)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, apperr.NotFound("room %s not found", strings.ToUpper(roomCode))
			}
			return nil, fmt.Errorf("load room %s: %w", roomCode, err)
		}

		requester, _ := session.PlayerByID(requestingPlayerID)
		if requester == nil {
			return nil, apperr.NotFound("player %s not found in room %s", requestingPlayerID, session.RoomCode)
		}
		if !requester.IsHost {
			return nil, apperr.Forbidden("only the host can stop room %s", session.RoomCode)
		}
		if session.Status == models.StatusFinished {
			return nil, apperr.Conflict("room %s has already finished", session.RoomCode)
		}

		next := session.Clone()
		winnerIdx := 0
		for i := range next.Players {
			if next.Players[i].Points > next.Players[winnerIdx].Points {
				winnerIdx = i
			}
		}
		winner := &next.Players[winnerIdx]
		winner.HasWon = true

		now := time.Now()
		next.Status = models.StatusFinished
		next.WinnerID = winner.ID
		next.EndedBy = models.EndedByHost
		next.EndedAt = &now

		err = s.store.CompareAndSwap(ctx, session.Version, next)
		if errors.Is(err, store.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("stop room %s: %w", roomCode, err)
		}

		log.Printf("Room %s stopped by host, winner %s with %d points", next.RoomCode, winner.Name, winner.Points)
		return &StopResult{
			WinnerID:     winner.ID,
			WinnerName:   winner.Name,
			HighestScore: winner.Points,
		}, nil
	}

	return nil, apperr.Conflict("room %s is busy, try again", strings.ToUpper(roomCode))
}

// GetSession returns a read-only snapshot of the room for rendering.
func (s *SessionService) GetSession(ctx context.Context, roomCode string) (*models.Session, error) {
	session, err := s.store.Get(ctx, roomCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("room %s not found", strings.ToUpper(roomCode))
		}
		return nil, fmt.Errorf("load room %s: %w", roomCode, err)
	}
	return session, nil
}

func generateRoomCode() string {
	bytes := make([]byte, roomCodeLength)
	rand.Read(bytes)

	code := make([]byte, roomCodeLength)
	for i, b := range bytes {
		code[i] = roomCodeAlphabet[int(b)%len(roomCodeAlphabet)]
	}
	return string(code)
}
