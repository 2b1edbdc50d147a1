package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ideahub-simple/models"
	"github.com/ideahub-simple/services"
)

// currentActor rebuilds the acting user from the claims the auth middleware
// stored in the context. A false return means the request was never
// authenticated and a 401 has been written.
func currentActor(c *gin.Context) (services.Actor, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "User not authenticated",
			"data":    nil,
		})
		return services.Actor{}, false
	}

	role, _ := c.Get("role")
	email, _ := c.Get("email")

	actor := services.Actor{
		ID:   userID.(string),
		Role: models.RoleUser,
	}
	if roleStr, ok := role.(string); ok {
		actor.Role = models.Role(roleStr)
	}
	if emailStr, ok := email.(string); ok {
		actor.Email = emailStr
	}
	return actor, true
}
