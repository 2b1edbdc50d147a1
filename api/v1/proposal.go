package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/services"
	"github.com/ideahub-simple/utils"
)

var proposalService = services.NewProposalService()

// SubmitProposal handles POST /proposals/submit/:subIdeaId
func SubmitProposal(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.SubmitProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request data: "+err.Error()))
		return
	}

	proposal, err := proposalService.SubmitProposal(actor, c.Param("subIdeaId"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, "Proposal submitted successfully", proposal)
}

// ListProposals handles GET /proposals
func ListProposals(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	filter := dto.ProposalFilter{
		SubIdeaID: c.Query("subIdeaId"),
		Status:    c.Query("status"),
		Page:      page,
		Limit:     limit,
	}

	proposals, pagination, err := proposalService.ListProposals(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondPage(c, "Proposals retrieved successfully", proposals, pagination)
}

// GetProposal handles GET /proposals/:id
func GetProposal(c *gin.Context) {
	proposal, err := proposalService.GetProposal(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Proposal retrieved successfully", proposal)
}

// UpdateProposal handles PUT /proposals/:id
func UpdateProposal(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.UpdateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request data: "+err.Error()))
		return
	}

	proposal, err := proposalService.UpdateProposal(actor, c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Proposal updated successfully", proposal)
}

// ReviewProposal handles PATCH /proposals/:id/status
func ReviewProposal(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.ReviewProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request data: "+err.Error()))
		return
	}

	proposal, err := proposalService.ReviewProposal(actor, c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Proposal reviewed successfully", proposal)
}

// DeleteProposal handles DELETE /proposals/:id with cascade
func DeleteProposal(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := proposalService.DeleteProposal(actor, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Proposal and its prototypes deleted", nil)
}
