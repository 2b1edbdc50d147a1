package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/services"
	"github.com/ideahub-simple/utils"
)

var ideaService = services.NewIdeaService()

// CreateIdea handles POST /ideas
func CreateIdea(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request data: "+err.Error()))
		return
	}

	idea, err := ideaService.CreateIdea(actor, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, "Idea created successfully", idea)
}

// ListIdeas handles GET /ideas with pagination, filtering and sorting
func ListIdeas(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	filter := dto.IdeaFilter{
		Status:    c.Query("status"),
		Type:      c.Query("type"),
		AuthorID:  c.Query("authorId"),
		Search:    c.Query("search"),
		SortBy:    c.DefaultQuery("sortBy", "created_at"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
		Page:      page,
		Limit:     limit,
	}

	ideas, pagination, err := ideaService.ListIdeas(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondPage(c, "Ideas retrieved successfully", ideas, pagination)
}

// GetIdea handles GET /ideas/:id
func GetIdea(c *gin.Context) {
	idea, err := ideaService.GetIdea(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Idea retrieved successfully", idea)
}

// UpdateIdea handles PUT /ideas/:id
func UpdateIdea(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request data: "+err.Error()))
		return
	}

	idea, err := ideaService.UpdateIdea(actor, c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Idea updated successfully", idea)
}

// CloseIdea handles PATCH /ideas/:id/close
func CloseIdea(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	idea, err := ideaService.CloseIdea(actor, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Idea closed successfully", idea)
}

// DeleteIdea handles DELETE /ideas/:id with full cascade
func DeleteIdea(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := ideaService.DeleteIdea(actor, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Idea and all its contributions deleted", nil)
}
