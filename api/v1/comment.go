package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/models"
	"github.com/ideahub-simple/services"
	"github.com/ideahub-simple/utils"
)

var commentService = services.NewCommentService()

// createComment runs the shared comment flow for one target kind.
func createComment(c *gin.Context, kind models.CommentTarget) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request data: "+err.Error()))
		return
	}

	comment, err := commentService.CreateComment(actor, kind, c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, "Comment posted successfully", comment)
}

// getCommentTree runs the shared retrieval flow for one target kind.
func getCommentTree(c *gin.Context, kind models.CommentTarget) {
	tree, err := commentService.GetCommentTree(kind, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Comments retrieved successfully", tree)
}

// CommentSubIdea handles POST /comments/subideas/:id
func CommentSubIdea(c *gin.Context) {
	createComment(c, models.CommentTargetSubIdea)
}

// GetSubIdeaComments handles GET /comments/subideas/:id
func GetSubIdeaComments(c *gin.Context) {
	getCommentTree(c, models.CommentTargetSubIdea)
}

// CommentPrototype handles POST /comments/prototypes/:id
func CommentPrototype(c *gin.Context) {
	createComment(c, models.CommentTargetPrototype)
}

// GetPrototypeComments handles GET /comments/prototypes/:id
func GetPrototypeComments(c *gin.Context) {
	getCommentTree(c, models.CommentTargetPrototype)
}
