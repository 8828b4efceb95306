package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/services"
)

type RoomHandler struct {
	log         *logger.Logger
	roomService services.RoomService
}

func NewRoomHandler(baseLog *logger.Logger, roomService services.RoomService) *RoomHandler {
	return &RoomHandler{
		log:         baseLog.With("handler", "RoomHandler"),
		roomService: roomService,
	}
}

func (rh *RoomHandler) ListTypes(c *gin.Context) {
	roomTypes, err := rh.roomService.ListRoomTypes(c.Request.Context())
	if err != nil {
		respondServiceError(c, rh.log, err)
		return
	}
	RespondOK(c, gin.H{"room_types": roomTypes})
}

func (rh *RoomHandler) ListByMove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	moveID, ok := pathUUID(c, "moveId")
	if !ok {
		return
	}
	rooms, err := rh.roomService.ListRooms(c.Request.Context(), userID, moveID)
	if err != nil {
		respondServiceError(c, rh.log, err)
		return
	}
	RespondOK(c, gin.H{"rooms": rooms})
}

func (rh *RoomHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		MoveID   string `json:"move_id" binding:"required,uuid"`
		Name     string `json:"name"`
		RoomType string `json:"room_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	moveID, err := uuid.Parse(req.MoveID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid move_id"})
		return
	}
	room, err := rh.roomService.CreateRoom(c.Request.Context(), userID, moveID, req.Name, req.RoomType)
	if err != nil {
		respondServiceError(c, rh.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "room created", "room": room})
}

func (rh *RoomHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	roomID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Name     string `json:"name"`
		RoomType string `json:"room_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	room, err := rh.roomService.UpdateRoom(c.Request.Context(), userID, roomID, req.Name, req.RoomType)
	if err != nil {
		respondServiceError(c, rh.log, err)
		return
	}
	RespondOK(c, gin.H{"message": "room updated", "room": room})
}

func (rh *RoomHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	roomID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := rh.roomService.DeleteRoom(c.Request.Context(), userID, roomID); err != nil {
		respondServiceError(c, rh.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
