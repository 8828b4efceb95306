package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/services"
)

type MoveHandler struct {
	log         *logger.Logger
	moveService services.MoveService
}

func NewMoveHandler(baseLog *logger.Logger, moveService services.MoveService) *MoveHandler {
	return &MoveHandler{
		log:         baseLog.With("handler", "MoveHandler"),
		moveService: moveService,
	}
}

func (mh *MoveHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		CustomerName        string `json:"customer_name"`
		CustomerEmail       string `json:"customer_email"`
		CustomerPhone       string `json:"customer_phone"`
		FromAddress         string `json:"from_address"`
		ToAddress           string `json:"to_address"`
		MoveDate            string `json:"move_date"`
		MoveTime            string `json:"move_time"`
		SpecialRequirements string `json:"special_requirements"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	move, rooms, err := mh.moveService.CreateMove(c.Request.Context(), userID, services.MoveCreate{
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		FromAddress:         req.FromAddress,
		ToAddress:           req.ToAddress,
		MoveDate:            req.MoveDate,
		MoveTime:            req.MoveTime,
		SpecialRequirements: req.SpecialRequirements,
	})
	if err != nil {
		respondServiceError(c, mh.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "move created", "move": move, "rooms": rooms})
}

func (mh *MoveHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	moves, err := mh.moveService.ListMoves(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, mh.log, err)
		return
	}
	RespondOK(c, gin.H{"moves": moves})
}

func (mh *MoveHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	moveID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	move, err := mh.moveService.GetMove(c.Request.Context(), userID, moveID)
	if err != nil {
		respondServiceError(c, mh.log, err)
		return
	}
	RespondOK(c, gin.H{"move": move})
}

func (mh *MoveHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	moveID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		CustomerName        *string `json:"customer_name"`
		CustomerEmail       *string `json:"customer_email"`
		CustomerPhone       *string `json:"customer_phone"`
		FromAddress         *string `json:"from_address"`
		ToAddress           *string `json:"to_address"`
		MoveDate            *string `json:"move_date"`
		MoveTime            *string `json:"move_time"`
		SpecialRequirements *string `json:"special_requirements"`
		Status              *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	err := mh.moveService.UpdateMove(c.Request.Context(), userID, moveID, services.MoveUpdate{
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		FromAddress:         req.FromAddress,
		ToAddress:           req.ToAddress,
		MoveDate:            req.MoveDate,
		MoveTime:            req.MoveTime,
		SpecialRequirements: req.SpecialRequirements,
		Status:              req.Status,
	})
	if err != nil {
		respondServiceError(c, mh.log, err)
		return
	}
	RespondOK(c, gin.H{"message": "move updated"})
}

func (mh *MoveHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	moveID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := mh.moveService.DeleteMove(c.Request.Context(), userID, moveID); err != nil {
		respondServiceError(c, mh.log, err)
		return
	}
	RespondOK(c, gin.H{"message": "move deleted"})
}

func (mh *MoveHandler) AddStandardRooms(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	moveID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	rooms, err := mh.moveService.AddStandardRooms(c.Request.Context(), userID, moveID)
	if err != nil {
		respondServiceError(c, mh.log, err)
		return
	}
	RespondOK(c, gin.H{"message": "standard rooms added", "rooms": rooms})
}
