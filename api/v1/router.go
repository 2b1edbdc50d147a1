package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/ideahub-simple/lib/security"
	"github.com/ideahub-simple/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, store *security.TokenStore) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authController := NewAuthController(store)
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/logout", middleware.AuthMiddleware(store), authController.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(store), authController.GetCurrentUser)
	}

	// Everything below requires authentication
	authRouter := router.Group("")
	authRouter.Use(middleware.AuthMiddleware(store))

	ideaGroup := authRouter.Group("/ideas")
	{
		ideaGroup.GET("", ListIdeas)
		ideaGroup.POST("", CreateIdea)
		ideaGroup.GET("/:id", GetIdea)
		ideaGroup.PUT("/:id", UpdateIdea)
		ideaGroup.PATCH("/:id/close", CloseIdea)
		ideaGroup.DELETE("/:id", DeleteIdea)
	}

	subIdeaGroup := authRouter.Group("/subideas")
	{
		subIdeaGroup.GET("", ListSubIdeas)
		subIdeaGroup.POST("", CreateSubIdea)
		subIdeaGroup.GET("/:id", GetSubIdea)
		subIdeaGroup.PUT("/:id", UpdateSubIdea)
		subIdeaGroup.PATCH("/:id/status", ChangeSubIdeaStatus)
		subIdeaGroup.DELETE("/:id", DeleteSubIdea)
	}

	proposalGroup := authRouter.Group("/proposals")
	{
		proposalGroup.GET("", ListProposals)
		proposalGroup.POST("/submit/:subIdeaId", SubmitProposal)
		proposalGroup.GET("/:id", GetProposal)
		proposalGroup.PUT("/:id", UpdateProposal)
		proposalGroup.PATCH("/:id/status", ReviewProposal)
		proposalGroup.DELETE("/:id", DeleteProposal)
	}

	prototypeGroup := authRouter.Group("/prototypes")
	{
		prototypeGroup.GET("", ListPrototypes)
		prototypeGroup.POST("/submit/:proposalId", SubmitPrototype)
		prototypeGroup.GET("/:id", GetPrototype)
		prototypeGroup.PUT("/:id", UpdatePrototype)
		prototypeGroup.POST("/:id/team", AddTeamMember)
		prototypeGroup.DELETE("/:id/team/:userId", RemoveTeamMember)
		prototypeGroup.DELETE("/:id", DeletePrototype)
	}

	voteGroup := authRouter.Group("/votes")
	{
		voteGroup.POST("/subideas/:id", VoteSubIdea)
		voteGroup.GET("/subideas/:id", GetSubIdeaVotes)
		voteGroup.POST("/proposals/:id", VoteProposal)
		voteGroup.GET("/proposals/:id", GetProposalVotes)
		voteGroup.POST("/prototypes/:id", VotePrototype)
		voteGroup.GET("/prototypes/:id", GetPrototypeVotes)
	}

	commentGroup := authRouter.Group("/comments")
	{
		commentGroup.POST("/subideas/:id", CommentSubIdea)
		commentGroup.GET("/subideas/:id", GetSubIdeaComments)
		commentGroup.POST("/prototypes/:id", CommentPrototype)
		commentGroup.GET("/prototypes/:id", GetPrototypeComments)
	}

	userGroup := authRouter.Group("/users")
	{
		userGroup.GET("", middleware.AdminMiddleware(), ListUsers)
		userGroup.GET("/:id/stats", GetUserStats)
	}
}
