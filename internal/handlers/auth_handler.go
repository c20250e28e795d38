package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/smartserve-app/smartserve-api/internal/config"
	"github.com/smartserve-app/smartserve-api/internal/httpresp"
	"github.com/smartserve-app/smartserve-api/internal/middleware"
	"github.com/smartserve-app/smartserve-api/internal/models"
	"github.com/smartserve-app/smartserve-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type ClientRegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Location string `json:"location"`
}

type ProviderRegisterRequest struct {
	FullName    string  `json:"full_name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=6"`
	Category    string  `json:"category" binding:"required"`
	SubCategory string  `json:"sub_category" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Location    string  `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) RegisterClient(c *gin.Context) {
	var req ClientRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "The email domain does not look valid.",
		})
		return
	}

	var count int64
	h.db.Model(&models.Client{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_registered"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	client := models.Client{
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: string(hashed),
		Location:     req.Location,
	}

	if err := h.db.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_client"})
		return
	}

	token, err := h.generateToken(client.ID, middleware.RoleClient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	httpresp.Created(c, gin.H{
		"user":  clientJSON(&client),
		"token": token,
	})
}

func (h *AuthHandler) RegisterProvider(c *gin.Context) {
	var req ProviderRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "The email domain does not look valid.",
		})
		return
	}

	var count int64
	h.db.Model(&models.Provider{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_registered"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	provider := models.Provider{
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: string(hashed),
		Category:     req.Category,
		SubCategory:  req.SubCategory,
		Description:  req.Description,
		Price:        req.Price,
		Location:     req.Location,
		Available:    true,
	}

	if err := h.db.Create(&provider).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_provider"})
		return
	}

	token, err := h.generateToken(provider.ID, middleware.RoleProvider)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	httpresp.Created(c, gin.H{
		"user":  providerJSON(&provider),
		"token": token,
	})
}

func (h *AuthHandler) LoginClient(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var client models.Client
	if err := h.db.Where("email = ?", email).First(&client).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(client.ID, middleware.RoleClient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  clientJSON(&client),
		"token": token,
	})
}

func (h *AuthHandler) LoginProvider(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var provider models.Provider
	if err := h.db.Where("email = ?", email).First(&provider).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(provider.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(provider.ID, middleware.RoleProvider)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  providerJSON(&provider),
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(id uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  id,
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

// --------- Views ---------

func clientJSON(client *models.Client) gin.H {
	return gin.H{
		"id":            client.ID,
		"full_name":     client.FullName,
		"email":         client.Email,
		"location":      client.Location,
		"profile_photo": client.ProfilePhoto,
	}
}

func providerJSON(provider *models.Provider) gin.H {
	return gin.H{
		"id":            provider.ID,
		"full_name":     provider.FullName,
		"email":         provider.Email,
		"category":      provider.Category,
		"sub_category":  provider.SubCategory,
		"description":   provider.Description,
		"price":         provider.Price,
		"available":     provider.Available,
		"location":      provider.Location,
		"profile_photo": provider.ProfilePhoto,
		"rating":        provider.Rating,
		"review_count":  provider.ReviewCount,
	}
}
