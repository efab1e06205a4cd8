package handlers

import (
	"net/http"

	"phrasebingo/services"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	sessionService *services.SessionService
	phraseService  *services.PhraseService
}

func NewRoomHandler(sessionService *services.SessionService, phraseService *services.PhraseService) *RoomHandler {
	return &RoomHandler{
		sessionService: sessionService,
		phraseService:  phraseService,
	}
}

type CreateRoomRequest struct {
	HostName   string `json:"host_name" binding:"required"`
	CategoryID uint   `json:"category_id" binding:"required"`
}

type JoinRoomRequest struct {
	Name string `json:"name" binding:"required"`
}

type MarkCellRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	Row      *int   `json:"row" binding:"required"`
	Col      *int   `json:"col" binding:"required"`
}

type StopRoomRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
}

func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionService.CreateSession(c.Request.Context(), req.HostName, req.CategoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *RoomHandler) JoinRoom(c *gin.Context) {
	roomCode := c.Param("code")

	var req JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The joining player's card is dealt server-side from the room's
	// phrase category.
	session, err := h.sessionService.GetSession(c.Request.Context(), roomCode)
	if err != nil {
		respondError(c, err)
		return
	}
	grid, err := h.phraseService.BuildGrid(session.CategoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	session, playerID, err := h.sessionService.Join(c.Request.Context(), roomCode, req.Name, grid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session, "player_id": playerID})
}

func (h *RoomHandler) GetRoom(c *gin.Context) {
	session, err := h.sessionService.GetSession(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *RoomHandler) MarkCell(c *gin.Context) {
	var req MarkCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.sessionService.Mark(c.Request.Context(), c.Param("code"), req.PlayerID, *req.Row, *req.Col)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *RoomHandler) StopRoom(c *gin.Context) {
	var req StopRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.sessionService.Stop(c.Request.Context(), c.Param("code"), req.PlayerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
