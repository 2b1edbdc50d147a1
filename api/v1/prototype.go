package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/services"
	"github.com/ideahub-simple/utils"
)

var prototypeService = services.NewPrototypeService()

// SubmitPrototype handles POST /prototypes/submit/:proposalId
func SubmitPrototype(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.SubmitPrototypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request data: "+err.Error()))
		return
	}

	prototype, err := prototypeService.SubmitPrototype(actor, c.Param("proposalId"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, "Prototype submitted successfully", prototype)
}

// ListPrototypes handles GET /prototypes
func ListPrototypes(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	filter := dto.PrototypeFilter{
		ProposalID: c.Query("proposalId"),
		Page:       page,
		Limit:      limit,
	}

	prototypes, pagination, err := prototypeService.ListPrototypes(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondPage(c, "Prototypes retrieved successfully", prototypes, pagination)
}

// GetPrototype handles GET /prototypes/:id
func GetPrototype(c *gin.Context) {
	prototype, err := prototypeService.GetPrototype(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Prototype retrieved successfully", prototype)
}

// UpdatePrototype handles PUT /prototypes/:id
func UpdatePrototype(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.UpdatePrototypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request data: "+err.Error()))
		return
	}

	prototype, err := prototypeService.UpdatePrototype(actor, c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Prototype updated successfully", prototype)
}

// AddTeamMember handles POST /prototypes/:id/team
func AddTeamMember(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request data: "+err.Error()))
		return
	}

	if err := prototypeService.AddTeamMember(actor, c.Param("id"), req.UserID); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Team member added successfully", nil)
}

// RemoveTeamMember handles DELETE /prototypes/:id/team/:userId
func RemoveTeamMember(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := prototypeService.RemoveTeamMember(actor, c.Param("id"), c.Param("userId")); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Team member removed successfully", nil)
}

// DeletePrototype handles DELETE /prototypes/:id
func DeletePrototype(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := prototypeService.DeletePrototype(actor, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Prototype deleted successfully", nil)
}
