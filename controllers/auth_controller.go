package controllers

import (
	"errors"

	"figure-store/models"
	"figure-store/repositories"
	"figure-store/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Signup godoc
// @Summary Register new user
// @Description Create a customer account and return a signed token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/signup [post]
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	result, err := ctrl.authService.Signup(req)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(400, gin.H{"success": false, "message": ve.Message})
		case errors.Is(err, repositories.ErrEmailTaken):
			c.JSON(400, gin.H{"success": false, "message": "User with this email already exists"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Error creating user", "error": err.Error()})
		}
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "User created successfully",
		"data":    result,
	})
}

// Login godoc
// @Summary User login
// @Description Authenticate with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	result, err := ctrl.authService.Login(req)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(400, gin.H{"success": false, "message": ve.Message})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(401, gin.H{"success": false, "message": "Invalid email or password"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Error during login", "error": err.Error()})
		}
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    result,
	})
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Partially update the authenticated user's profile
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/profile [put]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := ctrl.authService.UpdateProfile(userID, req)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Error updating profile", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"data":    user,
	})
}

// ChangePassword godoc
// @Summary Change password
// @Description Change the authenticated user's password
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ChangePasswordRequest true "Password request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/change-password [put]
func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if err := ctrl.authService.ChangePassword(userID, req); err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(400, gin.H{"success": false, "message": ve.Message})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(400, gin.H{"success": false, "message": "Current password is incorrect"})
		case errors.Is(err, repositories.ErrUserNotFound):
			c.JSON(404, gin.H{"success": false, "message": "User not found"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Error changing password", "error": err.Error()})
		}
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Password changed successfully"})
}

// Logout godoc
// @Summary Logout
// @Description Acknowledge logout; tokens are stateless and expire on their own
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Logout successful"})
}
