package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/services"
)

type ExtrasHandler struct {
	log           *logger.Logger
	extrasService services.ExtrasService
}

func NewExtrasHandler(baseLog *logger.Logger, extrasService services.ExtrasService) *ExtrasHandler {
	return &ExtrasHandler{
		log:           baseLog.With("handler", "ExtrasHandler"),
		extrasService: extrasService,
	}
}

func (eh *ExtrasHandler) ListServices(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	moveID, ok := pathUUID(c, "moveId")
	if !ok {
		return
	}
	booked, err := eh.extrasService.ListServices(c.Request.Context(), userID, moveID)
	if err != nil {
		respondServiceError(c, eh.log, err)
		return
	}
	RespondOK(c, gin.H{"services": booked})
}

func (eh *ExtrasHandler) AddService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		MoveID      string           `json:"move_id" binding:"required,uuid"`
		ServiceType string           `json:"service_type"`
		Quantity    *int             `json:"quantity"`
		Price       *decimal.Decimal `json:"price"`
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
	in := services.ServiceCreate{ServiceType: req.ServiceType, Quantity: 1}
	if req.Quantity != nil {
		in.Quantity = *req.Quantity
	}
	if req.Price != nil {
		in.Price = *req.Price
	}
	svc, err := eh.extrasService.AddService(c.Request.Context(), userID, moveID, in)
	if err != nil {
		respondServiceError(c, eh.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "service added", "service": svc})
}

func (eh *ExtrasHandler) UpdateService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	serviceID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Quantity *int             `json:"quantity"`
		Price    *decimal.Decimal `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	svc, err := eh.extrasService.UpdateService(c.Request.Context(), userID, serviceID, services.ServiceUpdate{
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		respondServiceError(c, eh.log, err)
		return
	}
	RespondOK(c, gin.H{"message": "service updated", "service": svc})
}

func (eh *ExtrasHandler) DeleteService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	serviceID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := eh.extrasService.DeleteService(c.Request.Context(), userID, serviceID); err != nil {
		respondServiceError(c, eh.log, err)
		return
	}
	RespondOK(c, gin.H{"message": "service removed"})
}

func (eh *ExtrasHandler) ListMaterials(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	moveID, ok := pathUUID(c, "moveId")
	if !ok {
		return
	}
	materials, err := eh.extrasService.ListMaterials(c.Request.Context(), userID, moveID)
	if err != nil {
		respondServiceError(c, eh.log, err)
		return
	}
	RespondOK(c, gin.H{"materials": materials})
}

func (eh *ExtrasHandler) AddMaterial(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		MoveID       string           `json:"move_id" binding:"required,uuid"`
		MaterialType string           `json:"material_type"`
		Quantity     int              `json:"quantity"`
		PricePerUnit *decimal.Decimal `json:"price_per_unit"`
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
	in := services.MaterialCreate{MaterialType: req.MaterialType, Quantity: req.Quantity}
	if req.PricePerUnit != nil {
		in.PricePerUnit = *req.PricePerUnit
	}
	material, err := eh.extrasService.AddMaterial(c.Request.Context(), userID, moveID, in)
	if err != nil {
		respondServiceError(c, eh.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "material added", "material": material})
}
