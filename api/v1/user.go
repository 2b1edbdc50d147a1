package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ideahub-simple/services"
	"github.com/ideahub-simple/utils"
)

var userService = services.NewUserService()

// ListUsers handles GET /users, admin only
func ListUsers(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	users, pagination, err := userService.ListUsers(page, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondPage(c, "Users retrieved successfully", users, pagination)
}

// GetUserStats handles GET /users/:id/stats
func GetUserStats(c *gin.Context) {
	stats, err := userService.GetContributionStats(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "User statistics retrieved successfully", stats)
}
