package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/models"
	"github.com/ideahub-simple/services"
	"github.com/ideahub-simple/utils"
)

var subIdeaService = services.NewSubIdeaService()

// CreateSubIdea handles POST /subideas
func CreateSubIdea(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CreateSubIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request data: "+err.Error()))
		return
	}

	subIdea, err := subIdeaService.CreateSubIdea(actor, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, "Sub-idea created successfully", subIdea)
}

// ListSubIdeas handles GET /subideas
func ListSubIdeas(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	filter := dto.SubIdeaFilter{
		IdeaID: c.Query("ideaId"),
		Page:   page,
		Limit:  limit,
	}

	subIdeas, pagination, err := subIdeaService.ListSubIdeas(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondPage(c, "Sub-ideas retrieved successfully", subIdeas, pagination)
}

// GetSubIdea handles GET /subideas/:id
func GetSubIdea(c *gin.Context) {
	subIdea, err := subIdeaService.GetSubIdea(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Sub-idea retrieved successfully", subIdea)
}

// UpdateSubIdea handles PUT /subideas/:id
func UpdateSubIdea(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.UpdateSubIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request data: "+err.Error()))
		return
	}

	subIdea, err := subIdeaService.UpdateSubIdea(actor, c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Sub-idea updated successfully", subIdea)
}

// ChangeSubIdeaStatus handles PATCH /subideas/:id/status
func ChangeSubIdeaStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.ChangeSubIdeaStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request data: "+err.Error()))
		return
	}

	subIdea, err := subIdeaService.ChangeStatus(actor, c.Param("id"), models.SubIdeaStatus(req.Status))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Sub-idea status updated successfully", subIdea)
}

// DeleteSubIdea handles DELETE /subideas/:id with cascade
func DeleteSubIdea(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := subIdeaService.DeleteSubIdea(actor, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Sub-idea and its contributions deleted", nil)
}
