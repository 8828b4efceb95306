package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/services"
	"github.com/umzugo/packapp-backend/internal/types"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthHandler(baseLog *logger.Logger, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		log:         baseLog.With("handler", "AuthHandler"),
		authService: authService,
	}
}

func (ah *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	user := types.User{
		Email:    req.Email,
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
	}
	if err := ah.authService.RegisterUser(c.Request.Context(), &user); err != nil {
		respondServiceError(c, ah.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "user registered", "user_id": user.ID})
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	accessToken, err := ah.authService.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, ah.log, err)
		return
	}
	expiresIn := int(ah.authService.GetAccessTTL().Seconds())
	c.JSON(http.StatusOK, gin.H{"access_token": accessToken, "expires_in": expiresIn})
}
