package models

import (
	"time"

	"phrasebingo/game"
)

// Session status lifecycle: waiting -> playing -> finished. Finished is
// terminal; no join or mark succeeds against a finished session.
const (
	StatusWaiting  = "waiting"
	StatusPlaying  = "playing"
	StatusFinished = "finished"
)

// How a session ended. Only EndedByHost is produced today; EndedByCompletion
// is reserved for an auto-finish policy.
const (
	EndedByHost       = "host"
	EndedByCompletion = "completion"
)

// Session is the shared room document stored whole in redis, keyed by its
// uppercased room code. Version backs the store's compare-and-swap: every
// successful write increments it.
type Session struct {
	RoomCode   string     `json:"room_code"`
	Status     string     `json:"status"`
	CategoryID uint       `json:"category_id,omitempty"`
	Players    []Player   `json:"players"`
	WinnerID   string     `json:"winner_id,omitempty"`
	EndedBy    string     `json:"ended_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	Version    int64      `json:"version"`
}

// Player is owned exclusively by its session. Players are appended in join
// order and never removed; all lookups go through the generated ID.
type Player struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	IsHost   bool       `json:"is_host"`
	Grid     game.Grid  `json:"grid"`
	Selected game.Marks `json:"selected"`
	HasWon   bool       `json:"has_won"`
	Points   int        `json:"points"`
	JoinedAt time.Time  `json:"joined_at"`
}

// PlayerByID returns the player and its index in join order, or -1.
func (s *Session) PlayerByID(id string) (*Player, int) {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i], i
		}
	}
	return nil, -1
}

// HasPlayerName reports whether a player with the exact name already joined.
func (s *Session) HasPlayerName(name string) bool {
	for i := range s.Players {
		if s.Players[i].Name == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so a retry loop can mutate freely without
// touching the document another goroutine may still hold.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Players = make([]Player, len(s.Players))
	copy(cp.Players, s.Players)
	if s.EndedAt != nil {
		t := *s.EndedAt
		cp.EndedAt = &t
	}
	return &cp
}
