package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/services"
)

type FurnitureHandler struct {
	log              *logger.Logger
	furnitureService services.FurnitureService
}

func NewFurnitureHandler(baseLog *logger.Logger, furnitureService services.FurnitureService) *FurnitureHandler {
	return &FurnitureHandler{
		log:              baseLog.With("handler", "FurnitureHandler"),
		furnitureService: furnitureService,
	}
}

type furnitureAttrsRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Quantity int     `json:"quantity"`
	Weight   float64 `json:"weight"`
	IsCustom bool    `json:"is_custom"`
}

func (r furnitureAttrsRequest) attrs() services.FurnitureAttrs {
	return services.FurnitureAttrs{
		Name:     r.Name,
		Category: r.Category,
		Length:   r.Length,
		Width:    r.Width,
		Height:   r.Height,
		Quantity: r.Quantity,
		Weight:   r.Weight,
		IsCustom: r.IsCustom,
	}
}

func (fh *FurnitureHandler) ListCategories(c *gin.Context) {
	categories, err := fh.furnitureService.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, fh.log, err)
		return
	}
	RespondOK(c, gin.H{"categories": categories})
}

func (fh *FurnitureHandler) ListByRoom(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	roomID, ok := pathUUID(c, "roomId")
	if !ok {
		return
	}
	items, err := fh.furnitureService.ListFurniture(c.Request.Context(), userID, roomID)
	if err != nil {
		respondServiceError(c, fh.log, err)
		return
	}
	RespondOK(c, gin.H{"furniture": items})
}

func (fh *FurnitureHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		RoomID string `json:"room_id" binding:"required,uuid"`
		furnitureAttrsRequest
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room_id"})
		return
	}
	item, err := fh.furnitureService.CreateFurniture(c.Request.Context(), userID, roomID, req.attrs())
	if err != nil {
		respondServiceError(c, fh.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "furniture created", "furniture": item})
}

func (fh *FurnitureHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	furnitureID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req furnitureAttrsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	item, err := fh.furnitureService.UpdateFurniture(c.Request.Context(), userID, furnitureID, req.attrs())
	if err != nil {
		respondServiceError(c, fh.log, err)
		return
	}
	RespondOK(c, gin.H{"message": "furniture updated", "furniture": item})
}

func (fh *FurnitureHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	furnitureID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := fh.furnitureService.DeleteFurniture(c.Request.Context(), userID, furnitureID); err != nil {
		respondServiceError(c, fh.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
