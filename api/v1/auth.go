package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/lib/security"
	"github.com/ideahub-simple/services"
	"github.com/ideahub-simple/utils"
)

// AuthController bundles the auth handlers with the token store they need
// for logout and lockout tracking.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller instance
func NewAuthController(store *security.TokenStore) *AuthController {
	return &AuthController{
		authService: services.NewAuthService(store),
	}
}

// Register handles user registration
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body: "+err.Error()))
		return
	}

	user, err := ctrl.authService.Register(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, "User registered successfully", user)
}

// Login handles user authentication
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body: "+err.Error()))
		return
	}

	authResponse, err := ctrl.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	// Set token as HttpOnly cookie (expires in 24 hours)
	c.SetCookie(
		"access_token",
		authResponse.Token,
		86400,
		"/",
		"",
		true,
		true,
	)

	// Also return token in response body for clients that prefer Bearer auth
	utils.Respond(c, http.StatusOK, "Login successful", authResponse)
}

// Logout revokes the current token and clears the cookie
func (ctrl *AuthController) Logout(c *gin.Context) {
	claimsValue, exists := c.Get("claims")
	if exists {
		if claims, ok := claimsValue.(*dto.TokenClaims); ok {
			if err := ctrl.authService.Logout(c.Request.Context(), claims); err != nil {
				utils.RespondError(c, err)
				return
			}
		}
	}

	c.SetCookie("access_token", "", -1, "/", "", true, true)
	utils.Respond(c, http.StatusOK, "Logged out successfully", nil)
}

// GetCurrentUser returns the currently authenticated user's profile
func (ctrl *AuthController) GetCurrentUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	user, err := ctrl.authService.GetUser(actor.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Current user profile", user)
}
