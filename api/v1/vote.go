package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/models"
	"github.com/ideahub-simple/services"
	"github.com/ideahub-simple/utils"
)

var voteService = services.NewVoteService()

// castVote runs the shared vote flow for one target kind.
func castVote(c *gin.Context, kind models.VoteTarget) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request data: "+err.Error()))
		return
	}

	result, err := voteService.Cast(actor, kind, c.Param("id"), req.Value)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Vote "+result.Action, result)
}

// getVoteCounts runs the shared aggregate lookup for one target kind.
func getVoteCounts(c *gin.Context, kind models.VoteTarget) {
	counts, err := voteService.Counts(kind, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Vote counts retrieved successfully", counts)
}

// VoteSubIdea handles POST /votes/subideas/:id
func VoteSubIdea(c *gin.Context) {
	castVote(c, models.VoteTargetSubIdea)
}

// VoteProposal handles POST /votes/proposals/:id
func VoteProposal(c *gin.Context) {
	castVote(c, models.VoteTargetProposal)
}

// VotePrototype handles POST /votes/prototypes/:id
func VotePrototype(c *gin.Context) {
	castVote(c, models.VoteTargetPrototype)
}

// GetSubIdeaVotes handles GET /votes/subideas/:id
func GetSubIdeaVotes(c *gin.Context) {
	getVoteCounts(c, models.VoteTargetSubIdea)
}

// GetProposalVotes handles GET /votes/proposals/:id
func GetProposalVotes(c *gin.Context) {
	getVoteCounts(c, models.VoteTargetProposal)
}

// GetPrototypeVotes handles GET /votes/prototypes/:id
func GetPrototypeVotes(c *gin.Context) {
	getVoteCounts(c, models.VoteTargetPrototype)
}
